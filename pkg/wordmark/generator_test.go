package wordmark

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRequiresText(t *testing.T) {
	g := New(logrus.New())
	err := g.Generate(Config{FontPath: "font.ttf"})
	assert.ErrorContains(t, err, "text is required")
}

func TestGenerateRequiresFont(t *testing.T) {
	g := New(logrus.New())
	err := g.Generate(Config{Text: "Awesome AI Prompts"})
	assert.ErrorContains(t, err, "font path is required")
}

func TestGenerateMissingFontFile(t *testing.T) {
	g := New(logrus.New())
	err := g.Generate(Config{
		Text:       "Awesome AI Prompts",
		FontPath:   filepath.Join(t.TempDir(), "missing.ttf"),
		OutputPath: filepath.Join(t.TempDir(), "wordmark.svg"),
	})
	assert.ErrorContains(t, err, "failed to load font")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 48.0, cfg.FontSize)
	assert.Equal(t, 320.0, cfg.Width)
	assert.NotEmpty(t, cfg.Color)
}

func TestExtractPathElements(t *testing.T) {
	svg := `<svg><rect width="1"/><path d="M0 0L1 1"/><path d="M2 2L3 3"></path></svg>`
	got := extractPathElements(svg)
	assert.Contains(t, got, `M0 0L1 1`)
	assert.Contains(t, got, `M2 2L3 3`)
	assert.NotContains(t, got, "rect")
}
