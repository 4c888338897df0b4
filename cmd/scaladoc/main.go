package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	scaladoc "github.com/alopatindev/vim-scaladoc"
	"github.com/alopatindev/vim-scaladoc/browser"
	"github.com/alopatindev/vim-scaladoc/fs"
	"github.com/alopatindev/vim-scaladoc/goquery"
	"github.com/alopatindev/vim-scaladoc/htmltomarkdown"
	scaladochttp "github.com/alopatindev/vim-scaladoc/http"
	"github.com/alopatindev/vim-scaladoc/json"
	"github.com/alopatindev/vim-scaladoc/search"
	scaladocslog "github.com/alopatindev/vim-scaladoc/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default cache directory, used when neither the flag, the environment
	// nor the config file name one.
	CacheDir string

	// Path of the YAML config file. A missing file is ignored.
	ConfigPath string

	// Working directory, used as the lookup context when no file is given.
	WorkDir string

	// Opener for end-to-end testing. Defaults to the system browser.
	Opener scaladoc.Opener
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	wd, _ := os.Getwd()
	return &Main{
		CacheDir:   defaultCacheDir(),
		ConfigPath: defaultConfigPath(),
		WorkDir:    wd,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scaladoc"),
		kong.Description("Find Scaladoc pages for a class or package name"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return scaladoc.Errorf(scaladoc.EINVALID, "no keywords provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	cacheDir := firstNonEmpty(cli.CacheDir, cfg.CacheDir, m.CacheDir)
	fetcher := scaladocslog.NewLoggingFetcher(scaladochttp.NewFetcher(), logger)
	defer fetcher.Close()

	store := fs.NewCacheStore(scaladoc.ExpandUser(cacheDir), fetcher, json.NewParser(), fs.WithLogger(logger))

	searcher := &search.Searcher{
		Cache:    scaladocslog.NewLoggingCacheStore(store, logger),
		Resolver: fs.NewDocsResolver(),
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Searcher: scaladocslog.NewLoggingSearcher(searcher, logger),
		Opener:   m.Opener,
	}
	if deps.Opener == nil {
		deps.Opener = browser.NewOpener()
	}
	if cli.Preview {
		deps.Previewer = &search.Previewer{
			Fetcher:   fetcher,
			Extractor: goquery.NewExtractor(),
			Converter: htmltomarkdown.NewConverter(),
		}
	}

	cmd := &SearchCmd{
		File:     firstNonEmpty(cli.File, m.WorkDir),
		Keywords: cli.Keywords,
		URLs:     append(append([]string(nil), cfg.URLs...), cli.URL...),
		Paths:    append(append([]string(nil), cfg.Paths...), cli.Path...),
		TTL:      ttlDays(cli.TTLDays, cfg.CacheTTLDays),
		Open:     cli.Open,
		Preview:  cli.Preview,
	}

	if err := cmd.Run(deps); err != nil {
		reportError(stderr, logger, err, cli.Verbose)
		return err
	}
	return nil
}

// reportError explains usage mistakes on stderr. Lookup failures, including
// no matches, are reported by exit status alone unless verbose.
func reportError(w io.Writer, logger *slog.Logger, err error, verbose bool) {
	switch {
	case scaladoc.ErrorCode(err) == scaladoc.EINVALID:
		fmt.Fprintf(w, "error: %s\n", scaladoc.ErrorMessage(err))
	case verbose:
		logger.Error("lookup failed", "err", err)
	}
}

// newLogger logs to stderr. Malformed index warnings are always shown;
// per-operation records only with verbose output.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ttlDays picks the first positive day count, falling back to the default.
func ttlDays(days ...int) time.Duration {
	for _, d := range days {
		if d > 0 {
			return time.Duration(d) * 24 * time.Hour
		}
	}
	return scaladoc.DefaultCacheTTL
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "scaladoc")
	}
	return filepath.Join(dir, "scaladoc")
}
