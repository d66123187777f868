package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DmitriyMoseev/webmark/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddListRemoveScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webmark")

	require.NoError(t, runCommand(t, "--storage-path", path, "add", "a1", "http://example.com", "My Site"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a1 http://example.com \"My Site\"\n", string(data))

	c, err := store.Open(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	b, ok := c.Get("a1")
	require.True(t, ok)
	assert.Equal(t, "[a1] http://example.com - My Site", b.String())

	require.NoError(t, runCommand(t, "--storage-path", path, "rm", "a1"))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, string(data))
}

func TestAddDuplicateLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webmark")

	require.NoError(t, runCommand(t, "--storage-path", path, "add", "a1", "http://x.com", "desc"))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = runCommand(t, "--storage-path", path, "add", "a1", "http://y.com", "desc2")
	var dup *store.DuplicateCodeError
	require.ErrorAs(t, err, &dup)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestAddWrongArgCount(t *testing.T) {
	err := runCommand(t, "add", "onlycode")
	require.EqualError(t, err, "To add bookmark use following command:\n\twebmark add {code} {url} {description}")
}

func TestRmWrongArgCount(t *testing.T) {
	err := runCommand(t, "rm")
	require.EqualError(t, err, "To remove bookmark use following command:\n\twebmark rm {code}")
}

func TestRmUnknownCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webmark")

	err := runCommand(t, "--storage-path", path, "rm", "nope")
	var unknown *store.UnknownCodeError
	require.ErrorAs(t, err, &unknown)
	assert.EqualError(t, err, "There is no bookmark with code nope")
}
