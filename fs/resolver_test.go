package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	scaladoc "github.com/alopatindev/vim-scaladoc"
	"github.com/alopatindev/vim-scaladoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeAPI creates <root>/target/<build>/api/index.js and returns the api dir.
func makeAPI(t *testing.T, root, build string) string {
	t.Helper()
	api := filepath.Join(root, "target", build, "api")
	require.NoError(t, os.MkdirAll(api, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(api, scaladoc.IndexFileName), []byte(`Index.PACKAGES = {};`), 0644))
	return api
}

func TestDocsResolver_FindLocalDocs(t *testing.T) {
	t.Parallel()

	t.Run("finds api directory of project containing file", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "myproj")
		api := makeAPI(t, root, "scala-2.12")

		got, ok := fs.NewDocsResolver().FindLocalDocs(filepath.Join(root, "src", "main", "Foo.scala"))

		require.True(t, ok)
		assert.Equal(t, api, got)
	})

	t.Run("file need not exist", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "myproj")
		api := makeAPI(t, root, "scala-2.12")

		got, ok := fs.NewDocsResolver().FindLocalDocs(filepath.Join(root, "src", "main", "scala", "does", "not", "Exist.scala"))

		require.True(t, ok)
		assert.Equal(t, api, got)
	})

	t.Run("picks lexicographically greatest build", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "myproj")
		makeAPI(t, root, "scala-2.11")
		latest := makeAPI(t, root, "scala-2.13")
		makeAPI(t, root, "scala-2.12")

		got, ok := fs.NewDocsResolver().FindLocalDocs(filepath.Join(root, "src", "Foo.scala"))

		require.True(t, ok)
		assert.Equal(t, latest, got)
	})

	t.Run("ignores builds without index", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "myproj")
		api := makeAPI(t, root, "scala-2.11")
		require.NoError(t, os.MkdirAll(filepath.Join(root, "target", "scala-2.13", "api"), 0755))

		got, ok := fs.NewDocsResolver().FindLocalDocs(filepath.Join(root, "src", "Foo.scala"))

		require.True(t, ok)
		assert.Equal(t, api, got)
	})

	t.Run("ignores non-scala target directories", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "myproj")
		makeAPI(t, root, "streams")

		_, ok := fs.NewDocsResolver().FindLocalDocs(filepath.Join(root, "src", "Foo.scala"))

		assert.False(t, ok)
	})

	t.Run("stops at nearest src segment", func(t *testing.T) {
		t.Parallel()

		outer := filepath.Join(t.TempDir(), "outer")
		makeAPI(t, outer, "scala-2.12")
		inner := filepath.Join(outer, "src", "inner")

		_, ok := fs.NewDocsResolver().FindLocalDocs(filepath.Join(inner, "src", "Foo.scala"))

		assert.False(t, ok)
	})

	t.Run("reports nothing without target directory", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "myproj")
		require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))

		_, ok := fs.NewDocsResolver().FindLocalDocs(filepath.Join(root, "src", "Foo.scala"))

		assert.False(t, ok)
	})

	t.Run("reports nothing without src segment", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "myproj")
		makeAPI(t, root, "scala-2.12")

		_, ok := fs.NewDocsResolver().FindLocalDocs(filepath.Join(root, "lib", "Foo.scala"))

		assert.False(t, ok)
	})

	t.Run("reports nothing for empty path", func(t *testing.T) {
		t.Parallel()

		_, ok := fs.NewDocsResolver().FindLocalDocs("")

		assert.False(t, ok)
	})
}
