// Package render turns a template name plus a context into HTML bytes.
//
// Rendering is a pure function: identical inputs produce byte-identical
// output. The renderer embeds a default template set and lets a site
// directory shadow individual templates with its own templates/ files.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var defaultTemplates embed.FS

// TemplateError reports a render that could not be performed: the template
// does not exist, the context is missing a declared key, or execution
// failed. It carries enough context to diagnose without a debugger.
type TemplateError struct {
	Template string
	Key      string
	Err      error
}

func (e *TemplateError) Error() string {
	switch {
	case e.Key != "":
		return fmt.Sprintf("template %s: missing context key %q", e.Template, e.Key)
	case e.Err != nil:
		return fmt.Sprintf("template %s: %v", e.Template, e.Err)
	default:
		return fmt.Sprintf("template %s: unknown template", e.Template)
	}
}

func (e *TemplateError) Unwrap() error { return e.Err }

// Context carries the values a template may reference. Each template
// declares a closed set of required keys, validated before execution so a
// missing value fails loudly instead of rendering blank output.
type Context map[string]any

// requiredKeys is the declared context contract per template. Templates not
// listed here have no required keys.
var requiredKeys = map[string][]string{
	"index.html":         {"Title", "Subtitle", "Prompts", "TotalPrompts", "BasePath"},
	"vibe.html":          {"Title", "Subtitle", "Prompts", "TotalPrompts", "BasePath"},
	"admin.html":         {"Title", "Prompts", "TotalPrompts", "DevPrompts", "Contributors", "BasePath"},
	"embed.html":         {"Title", "Prompts", "BasePath"},
	"embed-preview.html": {"Title", "Prompts", "BasePath"},
	"error.html":         {"Title", "Message"},
}

// Renderer holds a parsed template set.
type Renderer struct {
	logger    *logrus.Logger
	templates *template.Template
}

// funcMap holds the helpers the default templates use. Everything here is
// deterministic; no clocks, counters, or randomness.
var funcMap = template.FuncMap{
	"truncate": truncate,
}

// New parses the embedded default template set.
func New(logger *logrus.Logger) (*Renderer, error) {
	tmpl, err := template.New("site").Funcs(funcMap).ParseFS(defaultTemplates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded templates: %w", err)
	}
	return &Renderer{logger: logger, templates: tmpl}, nil
}

// NewWithOverrides parses the embedded defaults and then re-parses any
// *.html files found in overrideDir, so a site can replace individual
// templates without forking the whole set. A missing override directory is
// fine; the defaults stand.
func NewWithOverrides(logger *logrus.Logger, overrideDir string) (*Renderer, error) {
	r, err := New(logger)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(overrideDir)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read template overrides: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		path := filepath.Join(overrideDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template override %s: %w", path, err)
		}
		if _, err := r.templates.New(entry.Name()).Parse(string(data)); err != nil {
			return nil, &TemplateError{Template: entry.Name(), Err: err}
		}
		logger.Debugf("Using template override: %s", path)
	}
	return r, nil
}

// Render executes the named template against the context and returns the
// resulting HTML. It has no side effects.
func (r *Renderer) Render(name string, ctx Context) ([]byte, error) {
	tmpl := r.templates.Lookup(name)
	if tmpl == nil {
		return nil, &TemplateError{Template: name}
	}

	for _, key := range requiredKeys[name] {
		if _, ok := ctx[key]; !ok {
			return nil, &TemplateError{Template: name, Key: key}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(ctx)); err != nil {
		return nil, &TemplateError{Template: name, Err: err}
	}
	return buf.Bytes(), nil
}

// truncate shortens prompt text for card previews, appending an ellipsis
// the way the full prompt view expects.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
