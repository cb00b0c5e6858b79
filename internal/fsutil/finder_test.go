package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(root, n)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("#"), 0644))
	}
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.hcl", "a.hcl", "sub/c.hcl", "sub/readme.md")

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "sub", "c.hcl"),
	}, files)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "dir/x.hcl", "single.hcl", "notes.txt")

	single := filepath.Join(root, "single.hcl")
	files, err := CollectFiles(".hcl",
		single,
		filepath.Join(root, "dir"),
		single,
		filepath.Join(root, "notes.txt"),
		filepath.Join(root, "missing"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{single, filepath.Join(root, "dir", "x.hcl")}, files)
}
