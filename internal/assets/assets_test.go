package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesParents(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	dir, err := EnsureDir(root)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "src", "main", "assets"), dir)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureDir_Idempotent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	first, err := EnsureDir(root)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(first, "keep.txt"), []byte("x"), 0600))

	second, err := EnsureDir(root)

	require.NoError(t, err)
	require.Equal(t, first, second)
	require.FileExists(t, filepath.Join(second, "keep.txt"))
}

func TestEnsureDir_BlockedByFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "src"), []byte("x"), 0600))

	_, err := EnsureDir(root)

	require.Error(t, err)
}

func TestMarshal_PrettyPrints(t *testing.T) {
	t.Parallel()

	data, err := Marshal(map[string]string{"gitRepo": "https://github.com/u/r?a=1&b=<2>"})

	require.NoError(t, err)
	require.Equal(t, "{\n  \"gitRepo\": \"https://github.com/u/r?a=1&b=<2>\"\n}\n", string(data))
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	v := struct {
		ABI string `json:"abi"`
	}{ABI: "arm64-v8a"}

	path, err := WriteJSON(dir, MetadataFile, v)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, MetadataFile), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"abi":"arm64-v8a"}`, string(data))
}
