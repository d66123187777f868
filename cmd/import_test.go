package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DmitriyMoseev/webmark/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCode(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		taken map[string]bool
		want  string
	}{
		{"plain host", "http://example.com/page", map[string]bool{}, "example.com"},
		{"www stripped", "https://www.golang.org/doc", map[string]bool{}, "golang.org"},
		{"collision suffixed", "http://example.com/other", map[string]bool{"example.com": true}, "example.com-2"},
		{"double collision", "http://example.com/more", map[string]bool{"example.com": true, "example.com-2": true}, "example.com-3"},
		{"no host falls back", "just-a-path", map[string]bool{}, "link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveCode(tt.url, tt.taken)
			assert.Equal(t, tt.want, got)
			assert.True(t, tt.taken[got], "chosen code must be marked taken")
		})
	}
}

func TestImportBookmarksFile(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "bookmarks.html")
	export := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<DL><p>
    <DT><A HREF="http://example.com/a" ADD_DATE="1700000000">Example A</A>
    <DT><A HREF="https://www.golang.org/doc" ADD_DATE="1700000000">Go Docs</A>
</DL><p>
`
	require.NoError(t, os.WriteFile(htmlPath, []byte(export), 0644))

	path := filepath.Join(dir, "webmark")
	require.NoError(t, runCommand(t, "--storage-path", path, "import", htmlPath))

	c, err := store.Open(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	b, ok := c.Get("example.com")
	require.True(t, ok)
	assert.Equal(t, "http://example.com/a", b.URL)
	assert.Equal(t, "Example A", b.Description)

	_, ok = c.Get("golang.org")
	assert.True(t, ok)

	// re-importing the same file without -f only skips
	require.NoError(t, runCommand(t, "--storage-path", path, "import", htmlPath))
	c, err = store.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}
