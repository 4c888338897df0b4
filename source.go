package scaladoc

import (
	"os"
	"path/filepath"
	"strings"
)

// IndexFileName is the name of the symbol index at the root of every
// Scaladoc site.
const IndexFileName = "index.js"

// SourceKind distinguishes how a Source is fetched and refreshed.
type SourceKind string

// SourceKind constants.
const (
	// SourceRemote is fetched over HTTP and refreshed after a fixed TTL.
	SourceRemote SourceKind = "remote"
	// SourceLocal is read from disk and refreshed when the docs directory
	// is newer than its cache entry.
	SourceLocal SourceKind = "local"
)

// Source is one documentation root contributing symbols to a search.
type Source struct {
	// Identity is the canonical root path or URL without a trailing slash.
	Identity string
	Kind     SourceKind
}

// NewRemoteSource returns a remote Source for the given Scaladoc root URL.
func NewRemoteSource(rawURL string) Source {
	return Source{Identity: stripTrailingSlash(rawURL), Kind: SourceRemote}
}

// NewLocalSource returns a local Source for the given API directory.
// A leading "~" is expanded to the user's home directory.
func NewLocalSource(path string) Source {
	return Source{Identity: ExpandUser(stripTrailingSlash(path)), Kind: SourceLocal}
}

// Validate returns an error if the source contains invalid fields.
func (s Source) Validate() error {
	if s.Identity == "" {
		return Errorf(EINVALID, "source identity required")
	}
	if s.Kind != SourceRemote && s.Kind != SourceLocal {
		return Errorf(EINVALID, "unknown source kind %q", s.Kind)
	}
	return nil
}

// URLPrefix returns the prefix that symbol paths are appended to when
// building result URLs.
func (s Source) URLPrefix() string {
	if s.Kind == SourceLocal {
		return "file://" + s.Identity
	}
	return s.Identity
}

// IndexLocation returns the URL or file path of the source's index.js.
func (s Source) IndexLocation() string {
	if s.Kind == SourceLocal {
		return filepath.Join(s.Identity, IndexFileName)
	}
	return s.Identity + "/" + IndexFileName
}

// ExpandUser replaces a leading "~" with the current user's home directory.
// The path is returned unchanged if the home directory is unknown.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func stripTrailingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}
