package search_test

import (
	"testing"

	scaladoc "github.com/alopatindev/vim-scaladoc"
	"github.com/alopatindev/vim-scaladoc/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Classify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		keywords []string
		line     string
		want     search.Match
	}{
		{
			name:     "single keyword exact",
			keywords: []string{"list"},
			line:     "scala/collection/immutable/List.html",
			want:     search.ExactMatch,
		},
		{
			name:     "companion object is exact",
			keywords: []string{"list"},
			line:     "scala/collection/immutable/List$.html",
			want:     search.ExactMatch,
		},
		{
			name:     "longer name is prefix",
			keywords: []string{"list"},
			line:     "scala/collection/mutable/ListBuffer.html",
			want:     search.PrefixMatch,
		},
		{
			name:     "package keyword constrains path",
			keywords: []string{"im", "queue"},
			line:     "scala/collection/immutable/Queue.html",
			want:     search.ExactMatch,
		},
		{
			name:     "package keyword rejects other package",
			keywords: []string{"im", "queue"},
			line:     "scala/collection/mutable/Queue.html",
			want:     search.NoMatch,
		},
		{
			name:     "package keywords must appear in order",
			keywords: []string{"immutable", "collection", "list"},
			line:     "scala/collection/immutable/List.html",
			want:     search.NoMatch,
		},
		{
			name:     "keywords are case-insensitive",
			keywords: []string{"IM", "LIST"},
			line:     "scala/collection/immutable/List.html",
			want:     search.ExactMatch,
		},
		{
			name:     "quotes are stripped",
			keywords: []string{`"im"`, `"list"`},
			line:     "scala/collection/immutable/List.html",
			want:     search.ExactMatch,
		},
		{
			name:     "target must start a segment",
			keywords: []string{"ist"},
			line:     "scala/collection/immutable/List.html",
			want:     search.NoMatch,
		},
		{
			name:     "regexp metacharacters are literal",
			keywords: []string{"l.st"},
			line:     "scala/collection/immutable/List.html",
			want:     search.NoMatch,
		},
		{
			name:     "non-html lines never match",
			keywords: []string{"list"},
			line:     "scala/collection/immutable/List.js",
			want:     search.NoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := search.NewMatcher(tt.keywords)
			require.NoError(t, err)

			assert.Equal(t, tt.want, m.Classify(tt.line))
		})
	}
}

func TestNewMatcher_RequiresKeyword(t *testing.T) {
	t.Parallel()

	_, err := search.NewMatcher(nil)

	require.Error(t, err)
	assert.Equal(t, scaladoc.EINVALID, scaladoc.ErrorCode(err))
}
