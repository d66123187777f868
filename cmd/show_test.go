package cmd

import (
	"bytes"
	"testing"

	"github.com/DmitriyMoseev/webmark/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputBookmark(t *testing.T) {
	b := store.Bookmark{Code: "a1", URL: "http://example.com", Description: "My Site"}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outputBookmark(&buf, "json", b))
		assert.JSONEq(t, `{"Code":"a1","URL":"http://example.com","Description":"My Site"}`, buf.String())
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outputBookmark(&buf, "csv", b))
		assert.Equal(t, "Code,URL,Description\na1,http://example.com,My Site\n", buf.String())
	})

	t.Run("unknown mode", func(t *testing.T) {
		var buf bytes.Buffer
		require.EqualError(t, outputBookmark(&buf, "yaml", b), "unknown output mode: yaml")
	})
}
