package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/DmitriyMoseev/webmark/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBookmarksEmpty(t *testing.T) {
	c, err := store.Open(filepath.Join(t.TempDir(), "webmark"))
	require.NoError(t, err)

	var buf bytes.Buffer
	printBookmarks(&buf, c)
	assert.Equal(t, "\tIt's empty here!  :(  \n", buf.String())
}

func TestPrintBookmarksInOrder(t *testing.T) {
	c, err := store.Open(filepath.Join(t.TempDir(), "webmark"))
	require.NoError(t, err)
	c.Put(store.Bookmark{Code: "a1", URL: "http://a.com", Description: "first"})
	c.Put(store.Bookmark{Code: "b2", URL: "http://b.com", Description: "second"})

	var buf bytes.Buffer
	printBookmarks(&buf, c)
	assert.Equal(t, "[a1] http://a.com - first\n[b2] http://b.com - second\n", buf.String())
}
