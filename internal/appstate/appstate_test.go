package appstate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinnku-nikaidou/shinnku-com/internal/tree"
)

func writeCatalogue(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestBootstrap(t *testing.T) {
	dir := t.TempDir()
	shinnkuPath := writeCatalogue(t, dir, "shinnku.json", `[
		{"file_path":"foo/bar.txt","upload_timestamp":1,"file_size":1}
	]`)
	galgame0Path := writeCatalogue(t, dir, "galgame0.json", `[
		{"file_path":"合集系列/浮士德galgame游戏合集/a.rar","upload_timestamp":2,"file_size":2},
		{"file_path":"unrelated/b.rar","upload_timestamp":3,"file_size":3}
	]`)

	state, err := Bootstrap(shinnkuPath, galgame0Path)
	require.NoError(t, err)

	res := tree.Navigate(state.Tree, "shinnku/foo/bar.txt")
	assert.Equal(t, tree.FileHit, res.Kind)

	res = tree.Navigate(state.Tree, "galgame0/a.rar")
	assert.Equal(t, tree.FileHit, res.Kind)

	// Only the shinnku file plus the galgame0 fauststyle-subtree file are
	// indexed; the unrelated galgame0 file is excluded.
	require.Len(t, state.SearchIndex, 2)
	ids := []string{state.SearchIndex[0].ID, state.SearchIndex[1].ID}
	assert.Contains(t, ids, "foo/bar.txt")
	assert.Contains(t, ids, "浮士德galgame游戏合集/a.rar")
}

func TestBootstrap_MissingCatalogueIsError(t *testing.T) {
	dir := t.TempDir()
	_, err := Bootstrap(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing2.json"))
	assert.Error(t, err)
}
