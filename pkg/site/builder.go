// Package site builds the static output tree: rendered pages, verbatim
// asset and CSV copies, and the hosting marker file.
package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"github.com/promptstack/promptsite/pkg/config"
	"github.com/promptstack/promptsite/pkg/prompt"
	"github.com/promptstack/promptsite/pkg/render"
)

// MarkerFileName is the zero-byte file that tells the hosting platform to
// skip its own build preprocessing of the output tree.
const MarkerFileName = ".nojekyll"

// OutputWriteError reports a destination path that could not be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }

// Builder produces the output tree for one site directory.
type Builder struct {
	siteDir  string
	cfg      *config.SiteConfig
	renderer *render.Renderer
	logger   *logrus.Logger
}

// New creates a Builder for the given site directory. Template overrides in
// <siteDir>/templates shadow the embedded defaults.
func New(siteDir string, cfg *config.SiteConfig, logger *logrus.Logger) (*Builder, error) {
	renderer, err := render.NewWithOverrides(logger, filepath.Join(siteDir, "templates"))
	if err != nil {
		return nil, err
	}
	return &Builder{siteDir: siteDir, cfg: cfg, renderer: renderer, logger: logger}, nil
}

// Renderer exposes the builder's template set so the dev server can reuse
// the same override resolution.
func (b *Builder) Renderer() *render.Renderer {
	return b.renderer
}

// LoadData reads the configured CSV sources into one snapshot. The primary
// source is required; secondary sources are loaded only when present.
func (b *Builder) LoadData() (*Data, error) {
	primary, err := prompt.Load(filepath.Join(b.siteDir, b.cfg.PrimaryData()))
	if err != nil {
		return nil, err
	}

	data := &Data{Prompts: primary}
	for _, name := range b.cfg.SecondaryData() {
		path := filepath.Join(b.siteDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			b.logger.Debugf("Skipping missing data file: %s", name)
			continue
		}
		recs, err := prompt.Load(path)
		if err != nil {
			return nil, err
		}
		data.VibePrompts = append(data.VibePrompts, recs...)
	}
	return data, nil
}

// Build writes the full output tree to dest. The destination is cleared
// first, so re-running build yields exactly the current file set. Any
// render or write failure aborts the whole build; no partial tree is
// reported as success.
func (b *Builder) Build(dest string) error {
	if err := os.RemoveAll(dest); err != nil {
		return &OutputWriteError{Path: dest, Err: err}
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return &OutputWriteError{Path: dest, Err: err}
	}

	// One snapshot for every page in this invocation.
	data, err := b.LoadData()
	if err != nil {
		return err
	}
	b.logger.Infof("Loaded %d prompts (%d vibe)", len(data.Prompts), len(data.VibePrompts))

	for _, page := range Pages() {
		html, err := b.renderer.Render(page.Template, ContextFor(page, b.cfg, data))
		if err != nil {
			return err
		}
		html = RewriteBasePath(html, b.cfg.BasePath)

		outPath := filepath.Join(dest, page.Output)
		if err := os.WriteFile(outPath, html, 0644); err != nil {
			return &OutputWriteError{Path: outPath, Err: err}
		}
		b.logger.Debugf("Rendered %s -> %s", page.Name, page.Output)
	}

	if err := b.copyAssets(dest); err != nil {
		return err
	}
	if err := b.copyData(dest); err != nil {
		return err
	}

	markerPath := filepath.Join(dest, MarkerFileName)
	if err := os.WriteFile(markerPath, nil, 0644); err != nil {
		return &OutputWriteError{Path: markerPath, Err: err}
	}

	b.logger.Infof("Site built: %s", dest)
	return nil
}

// copyAssets copies every file matching the configured glob patterns into
// dest, preserving relative paths and bytes exactly.
func (b *Builder) copyAssets(dest string) error {
	fsys := os.DirFS(b.siteDir)

	// When the destination lives inside the site directory, a broad glob
	// must not pick up a previous build's output.
	destRel, destErr := filepath.Rel(b.siteDir, dest)
	destInside := destErr == nil && !strings.HasPrefix(destRel, "..")

	for _, pattern := range b.cfg.Assets {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return fmt.Errorf("invalid asset pattern %q: %w", pattern, err)
		}
		for _, rel := range matches {
			if destInside && (rel == destRel || strings.HasPrefix(rel, destRel+"/")) {
				continue
			}
			src := filepath.Join(b.siteDir, rel)
			info, err := os.Stat(src)
			if err != nil || info.IsDir() {
				continue
			}
			dstPath := filepath.Join(dest, rel)

			var content []byte
			if strings.HasSuffix(rel, ".js") && b.cfg.BasePath != "" {
				raw, err := os.ReadFile(src)
				if err != nil {
					return fmt.Errorf("failed to read asset %s: %w", src, err)
				}
				content = RewriteBasePath(raw, b.cfg.BasePath)
				if err := writeFile(dstPath, content); err != nil {
					return err
				}
			} else {
				if err := copyFile(src, dstPath); err != nil {
					return err
				}
			}
			b.logger.Debugf("Copied asset: %s", rel)
		}
	}
	return nil
}

// copyData copies the raw CSV sources so the deployed site can serve them
// as fetchable data. Missing secondary files are skipped, matching
// LoadData.
func (b *Builder) copyData(dest string) error {
	for i, name := range b.cfg.Data {
		src := filepath.Join(b.siteDir, name)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			if i == 0 {
				// The primary source existed when LoadData ran; vanishing
				// mid-build is still a load failure.
				return &prompt.DataLoadError{Path: src, Reason: "cannot open file", Err: err}
			}
			continue
		}
		if err := copyFile(src, filepath.Join(dest, filepath.Base(name))); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return &OutputWriteError{Path: dst, Err: err}
	}
	out, err := os.Create(dst)
	if err != nil {
		return &OutputWriteError{Path: dst, Err: err}
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return &OutputWriteError{Path: dst, Err: err}
	}
	return nil
}

func writeFile(dst string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return &OutputWriteError{Path: dst, Err: err}
	}
	if err := os.WriteFile(dst, content, 0644); err != nil {
		return &OutputWriteError{Path: dst, Err: err}
	}
	return nil
}
