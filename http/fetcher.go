// Package http provides an HTTP-based implementation of scaladoc.Fetcher
// for downloading index.js files and documentation pages.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// UserAgent is sent with every request. Some documentation hosts refuse
// clients that do not look like a browser.
const UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/59.0.3071.104 Safari/537.36"

// Ensure Fetcher implements scaladoc.Fetcher at compile time.
var _ scaladoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents using HTTP GET requests. Redirects are
// followed and file:// URLs are read from the local filesystem.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// By default no client timeout is set and the transport defaults apply.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the document at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", scaladoc.Errorf(scaladoc.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "file" {
		return fetchFile(u.Path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func fetchFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", scaladoc.Errorf(scaladoc.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}
