package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptstack/promptsite/pkg/config"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	require.NoError(t, Init(dir, logger))

	for _, name := range []string{
		config.ConfigFileName,
		"prompts.csv",
		"vibeprompts.csv",
		"style.css",
		"script.js",
		"embed-style.css",
		"embed-script.js",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	// the scaffolded config must parse and keep the defaults
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "prompts.csv", cfg.PrimaryData())
	assert.Equal(t, "_site", cfg.OutputDir)
}

func TestInitRefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("title: x\n"), 0644))

	err := Init(dir, logger)
	assert.ErrorContains(t, err, "already exists")
}

func TestInitKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	custom := []byte("act,prompt\n\"Mine\",\"Keep this\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prompts.csv"), custom, 0644))

	require.NoError(t, Init(dir, logger))

	got, err := os.ReadFile(filepath.Join(dir, "prompts.csv"))
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}
