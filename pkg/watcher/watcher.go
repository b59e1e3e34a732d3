package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// SiteWatcher wraps fsnotify with recursive directory support.
// fsnotify is NOT recursive on Linux/POSIX, so we must explicitly
// watch all subdirectories and dynamically add watchers for new directories.
type SiteWatcher struct {
	*fsnotify.Watcher
	excluded map[string]bool
}

// New creates a SiteWatcher. The excluded directories (typically the build
// output inside the site directory) are never watched.
func New(excludeDirs ...string) (*SiteWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	excluded := make(map[string]bool, len(excludeDirs))
	for _, dir := range excludeDirs {
		excluded[filepath.Clean(dir)] = true
	}
	return &SiteWatcher{Watcher: w, excluded: excluded}, nil
}

// AddRecursive adds a directory and all its subdirectories to the watcher.
func (w *SiteWatcher) AddRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip inaccessible directories
		}
		if !d.IsDir() {
			return nil
		}
		// Skip hidden directories (e.g., .git) and excluded ones
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if w.excluded[filepath.Clean(path)] {
			return filepath.SkipDir
		}
		w.Add(path) // Skip on failure, don't fail entirely
		return nil
	})
}

// HandleNewDirectory checks if an event is a new directory and adds it to
// the watcher. Returns true if a new directory was added.
func (w *SiteWatcher) HandleNewDirectory(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) {
		return false
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.IsDir() {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	if w.excluded[filepath.Clean(event.Name)] {
		return false
	}
	w.AddRecursive(event.Name)
	return true
}

// IsRelevantFile checks if a changed file affects rendered output: prompt
// data, templates, or static assets.
func IsRelevantFile(path string) bool {
	if filepath.Base(path) == "site.config.yml" {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	relevantExtensions := map[string]bool{
		".csv":  true,
		".html": true,
		".css":  true,
		".js":   true,
		".ico":  true,
	}
	return relevantExtensions[ext]
}
