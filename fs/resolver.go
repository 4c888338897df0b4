package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// Ensure DocsResolver implements scaladoc.DocsResolver at compile time.
var _ scaladoc.DocsResolver = (*DocsResolver)(nil)

// DocsResolver finds sbt-generated Scaladoc for the project containing a
// file. A project is recognised by a "src" path segment; its docs live in
// <root>/target/scala-<version>/api.
type DocsResolver struct{}

// NewDocsResolver creates a new DocsResolver.
func NewDocsResolver() *DocsResolver {
	return &DocsResolver{}
}

// FindLocalDocs walks path upward to the first "src" segment and returns
// the api directory of the greatest scala-* build under the project's
// target directory.
func (r *DocsResolver) FindLocalDocs(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	path = filepath.Clean(path)
	sep := string(filepath.Separator)
	for path != "" {
		dir, tail := filepath.Split(path)
		if tail == "" {
			return "", false
		}
		if tail == "src" {
			return findAPIDir(dir)
		}
		path = strings.TrimRight(dir, sep)
	}
	return "", false
}

func findAPIDir(root string) (string, bool) {
	target := filepath.Join(root, "target")
	entries, err := os.ReadDir(target)
	if err != nil {
		return "", false
	}

	var apis []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "scala-") {
			continue
		}
		api := filepath.Join(target, e.Name(), "api")
		if _, err := os.Stat(filepath.Join(api, scaladoc.IndexFileName)); err == nil {
			apis = append(apis, api)
		}
	}
	if len(apis) == 0 {
		return "", false
	}

	sort.Strings(apis)
	return apis[len(apis)-1], true
}
