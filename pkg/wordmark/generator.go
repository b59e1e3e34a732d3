// Package wordmark renders a site title into a standalone SVG wordmark.
// The text is converted to vector paths, so the output displays identically
// without the font installed.
package wordmark

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/svg"
)

// Generator renders wordmark SVGs.
type Generator struct {
	logger *logrus.Logger
}

// New creates a Generator.
func New(logger *logrus.Logger) *Generator {
	return &Generator{logger: logger}
}

// Config controls one wordmark rendering.
type Config struct {
	Text       string  // Wordmark text, usually the site title
	OutputPath string  // Destination SVG path
	FontPath   string  // TTF/OTF file, required for path conversion
	Color      string  // Fill color (e.g. "#1a1a2e")
	FontSize   float64 // Font size in points (defaults to 48)
	Width      float64 // Output SVG width in pixels (defaults to 320)
	Padding    float64 // Padding around the text in output pixels (defaults to 16)
}

// DefaultConfig returns the defaults applied to zero-valued fields.
func DefaultConfig() Config {
	return Config{
		Color:    "#1a1a2e",
		FontSize: 48,
		Width:    320,
		Padding:  16,
	}
}

// Generate writes the wordmark SVG for cfg.Text to cfg.OutputPath.
func (g *Generator) Generate(cfg Config) error {
	if cfg.Text == "" {
		return fmt.Errorf("wordmark text is required")
	}
	if cfg.FontPath == "" {
		return fmt.Errorf("font path is required for text-to-path conversion")
	}

	defaults := DefaultConfig()
	if cfg.Color == "" {
		cfg.Color = defaults.Color
	}
	if cfg.FontSize == 0 {
		cfg.FontSize = defaults.FontSize
	}
	if cfg.Width == 0 {
		cfg.Width = defaults.Width
	}
	if cfg.Padding == 0 {
		cfg.Padding = defaults.Padding
	}

	fontFamily := canvas.NewFontFamily("wordmark")
	if err := fontFamily.LoadFontFile(cfg.FontPath, canvas.FontRegular); err != nil {
		return fmt.Errorf("failed to load font %s: %w", cfg.FontPath, err)
	}
	face := fontFamily.Face(cfg.FontSize, canvas.Black, canvas.FontRegular, canvas.FontNormal)

	textPath, _, err := face.ToPath(cfg.Text)
	if err != nil {
		return fmt.Errorf("failed to convert text to path: %w", err)
	}
	bounds := textPath.Bounds()
	if bounds.W() == 0 || bounds.H() == 0 {
		return fmt.Errorf("text %q produced an empty path", cfg.Text)
	}

	pathSVG, err := renderTextPaths(textPath, cfg.Color)
	if err != nil {
		return fmt.Errorf("failed to render text path: %w", err)
	}

	// Scale the glyph bounds to the requested output width, padding included.
	innerWidth := cfg.Width - 2*cfg.Padding
	scale := innerWidth / bounds.W()
	height := bounds.H()*scale + 2*cfg.Padding

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	buf.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.2f %.2f">`,
		cfg.Width, height, cfg.Width, height))
	buf.WriteString("\n")
	buf.WriteString(fmt.Sprintf(`  <g transform="translate(%.2f, %.2f) scale(%.4f)">`,
		cfg.Padding, cfg.Padding, scale))
	buf.WriteString("\n    ")
	buf.WriteString(pathSVG)
	buf.WriteString("\n  </g>\n</svg>\n")

	if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(cfg.OutputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output SVG: %w", err)
	}

	g.logger.Debugf("Generated wordmark SVG: %s", cfg.OutputPath)
	return nil
}

// renderTextPaths draws the glyph path onto a throwaway canvas and extracts
// the resulting <path> elements.
func renderTextPaths(textPath *canvas.Path, hexColor string) (string, error) {
	bounds := textPath.Bounds()

	c := canvas.New(bounds.W(), bounds.H())
	ctx := canvas.NewContext(c)

	fillColor := canvas.Black
	if hexColor != "" {
		fillColor = canvas.Hex(hexColor)
	}
	ctx.SetFillColor(fillColor)
	ctx.DrawPath(0, bounds.H(), textPath)

	var buf bytes.Buffer
	renderer := svg.New(&buf, c.W, c.H, nil)
	c.RenderTo(renderer)
	renderer.Close()

	return extractPathElements(buf.String()), nil
}

var pathElementRe = regexp.MustCompile(`(?s)<path[^>]*/>|<path[^>]*>.*?</path>`)

func extractPathElements(svgContent string) string {
	return strings.Join(pathElementRe.FindAllString(svgContent, -1), "\n    ")
}
