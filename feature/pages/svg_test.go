package pages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iconPage = `<nav>
  <span class="material-symbols-outlined" aria-hidden="true">
    <svg viewBox="0 0 24 24"><path d="M3 13h8"/></svg>
  </span>
  <span class="material-symbols-outlined"><svg><circle r="4"/></svg></span>
  <span class="material-symbols-outlined">home</span>
</nav>`

func TestUnwrapSVG(t *testing.T) {
	out, n := UnwrapSVG(iconPage)
	assert.Equal(t, 2, n)
	assert.Equal(t, `<nav>
  <svg viewBox="0 0 24 24"><path d="M3 13h8"/></svg>
  <svg><circle r="4"/></svg>
  <span class="material-symbols-outlined">home</span>
</nav>`, out)

	again, n := UnwrapSVG(out)
	assert.Zero(t, n)
	assert.Equal(t, out, again)
}

func TestUnwrapSVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin-dashboard.html")
	require.NoError(t, os.WriteFile(path, []byte(iconPage), 0o644))

	n, err := UnwrapSVGFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `<span class="material-symbols-outlined" aria-hidden="true">`)

	_, err = UnwrapSVGFile(filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}
