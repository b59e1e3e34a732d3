package watcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRelevantFile(t *testing.T) {
	relevant := []string{
		"prompts.csv",
		"templates/index.html",
		"style.css",
		"script.js",
		"favicon.ico",
		"site.config.yml",
	}
	for _, p := range relevant {
		assert.True(t, IsRelevantFile(p), p)
	}

	irrelevant := []string{
		"notes.md",
		"wordmark.svg",
		"other.yml",
		".DS_Store",
	}
	for _, p := range irrelevant {
		assert.False(t, IsRelevantFile(p), p)
	}
}

func TestAddRecursiveSkipsExcluded(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(root, "_site")
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "nested"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "templates"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))

	w, err := New(outDir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.AddRecursive(root))

	watched := w.WatchList()
	assert.Contains(t, watched, root)
	assert.Contains(t, watched, filepath.Join(root, "templates"))
	assert.NotContains(t, watched, outDir)
	assert.NotContains(t, watched, filepath.Join(outDir, "nested"))
	assert.NotContains(t, watched, filepath.Join(root, ".git"))
}
