package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Awesome AI Prompts", cfg.Title)
	assert.Equal(t, []string{"prompts.csv", "vibeprompts.csv"}, cfg.Data)
	assert.Equal(t, "_site", cfg.OutputDir)
	assert.Empty(t, cfg.BasePath)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "title: My Prompts\nbase_path: /prompts\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "My Prompts", cfg.Title)
	assert.Equal(t, "/prompts", cfg.BasePath)
	// unspecified fields fall back to defaults
	assert.Equal(t, "_site", cfg.OutputDir)
	assert.Equal(t, "prompts.csv", cfg.PrimaryData())
	assert.Equal(t, []string{"vibeprompts.csv"}, cfg.SecondaryData())
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	content := `title: Prompt Directory
subtitle: the prompts
data:
  - data/main.csv
assets:
  - "static/**/*.css"
output_dir: public
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Prompt Directory", cfg.Title)
	assert.Equal(t, "data/main.csv", cfg.PrimaryData())
	assert.Empty(t, cfg.SecondaryData())
	assert.Equal(t, []string{"static/**/*.css"}, cfg.Assets)
	assert.Equal(t, "public", cfg.OutputDir)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("title: [unclosed"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
