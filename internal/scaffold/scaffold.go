// Package scaffold creates a starter site directory from embedded templates.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/promptstack/promptsite/pkg/config"
)

//go:embed all:starter
var starterFS embed.FS

// Init scaffolds a new prompt site in dir. It refuses to overwrite an
// existing site configuration.
func Init(dir string, logger *logrus.Logger) error {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current working directory: %w", err)
		}
		dir = cwd
	}

	configDest := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configDest); err == nil {
		return fmt.Errorf("site configuration already exists at %s", configDest)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create site directory: %w", err)
	}

	entries, err := starterFS.ReadDir("starter")
	if err != nil {
		return fmt.Errorf("failed to read embedded starter files: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		dest := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(dest); err == nil {
			logger.Debugf("Keeping existing file: %s", entry.Name())
			continue
		}
		if err := copyFileFromFS(filepath.Join("starter", entry.Name()), dest); err != nil {
			return err
		}
		logger.Infof("✓ Created %s", entry.Name())
	}

	logger.Info("✅ Prompt site initialized.")
	logger.Infof("   Next steps: 1. Edit %s to set your site title.", config.ConfigFileName)
	logger.Info("               2. Add prompts to prompts.csv.")
	logger.Info("               3. Run 'promptsite dev' to preview the site.")

	return nil
}

func copyFileFromFS(src, dest string) error {
	content, err := starterFS.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read embedded file %s: %w", src, err)
	}
	if err := os.WriteFile(dest, content, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", dest, err)
	}
	return nil
}
