package main

import (
	"context"
	"io"
	"log/slog"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Searcher  scaladoc.Searcher
	Opener    scaladoc.Opener
	Previewer scaladoc.Previewer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	File     string   `short:"f" help:"File the lookup is made from (default: current directory)"`
	URL      []string `short:"u" name:"url" help:"Remote Scaladoc root URL (repeatable)"`
	Path     []string `short:"p" name:"path" help:"Local Scaladoc api directory (repeatable)"`
	CacheDir string   `name:"cache-dir" env:"SCALADOC_CACHE_DIR" help:"Index cache directory"`
	TTLDays  int      `name:"ttl-days" help:"Days before cached indexes are refreshed (default: 15)"`
	Open     bool     `short:"o" help:"Open the first result in a browser"`
	Preview  bool     `help:"Print the first result as Markdown instead of listing URLs"`
	Verbose  bool     `short:"v" help:"Log cache and network activity to stderr"`
	Keywords []string `arg:"" optional:"" help:"Package name fragments followed by the class name"`
}
