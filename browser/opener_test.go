package browser_test

import (
	"os/exec"
	"testing"

	"github.com/alopatindev/vim-scaladoc/browser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpener_Open(t *testing.T) {
	t.Parallel()

	t.Run("starts handler with url", func(t *testing.T) {
		t.Parallel()

		path, err := exec.LookPath("true")
		if err != nil {
			t.Skip("true not available")
		}

		var got string
		o := &browser.Opener{
			Command: func(url string) *exec.Cmd {
				got = url
				return exec.Command(path, url)
			},
		}

		require.NoError(t, o.Open("https://example.com/api/scala/List.html"))
		assert.Equal(t, "https://example.com/api/scala/List.html", got)
	})

	t.Run("reports handler that cannot start", func(t *testing.T) {
		t.Parallel()

		o := &browser.Opener{
			Command: func(url string) *exec.Cmd {
				return exec.Command("/nonexistent/handler", url)
			},
		}

		err := o.Open("https://example.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open")
	})
}
