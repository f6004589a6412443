package jars

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestFSSource_List(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.jar")
	writeFile(t, root, "a.txt")
	writeFile(t, root, "sub/b.jar")

	got, err := FSSource{Root: root}.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.jar", "sub/b.jar"}, got)
}

func TestFSSource_Nested(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "minecraft/1.12/server.jar")
	writeFile(t, root, "minecraft/readme.md")
	writeFile(t, root, "minerva/minerva.jar")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.jar"), 0755))

	got, err := FSSource{Root: root + string(filepath.Separator)}.List(context.Background())
	require.NoError(t, err)
	// WalkDir visits entries in lexical order.
	assert.Equal(t, []string{"minecraft/1.12/server.jar", "minerva/minerva.jar"}, got)
}

func TestFSSource_SymlinkedRoot(t *testing.T) {
	target := t.TempDir()
	writeFile(t, target, "a.jar")
	writeFile(t, target, "sub/b.jar")
	link := filepath.Join(t.TempDir(), "jars")
	require.NoError(t, os.Symlink(target, link))

	got, err := FSSource{Root: link}.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jar", "sub/b.jar"}, got)
}

func TestFSSource_MissingRoot(t *testing.T) {
	_, err := FSSource{Root: filepath.Join(t.TempDir(), "missing")}.List(context.Background())
	assert.Error(t, err)
}

func TestFSSource_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.jar")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FSSource{Root: root}.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStaticSource(t *testing.T) {
	src := StaticSource{"a.jar", "b/c.jar"}
	got, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jar", "b/c.jar"}, got)

	got[0] = "changed"
	again, _ := src.List(context.Background())
	assert.Equal(t, "a.jar", again[0])
}
