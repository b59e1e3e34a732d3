// Package config loads the per-site configuration file.
package config

//go:generate go run github.com/promptstack/promptsite/tools/schema-generator

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ConfigFileName = "site.config.yml"

// SiteConfig defines a prompt site's settings. All paths are relative to
// the site directory.
type SiteConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`

	// BasePath is the URL prefix the deployed site is served under, e.g.
	// "/prompts" for project pages. Empty means the site root.
	BasePath string `yaml:"base_path,omitempty"`

	// Data lists the CSV sources in order. The first file feeds the home,
	// admin, and embed pages; the second (if present) feeds the vibe page.
	Data []string `yaml:"data,omitempty"`

	// Assets are doublestar glob patterns for files copied verbatim into
	// the output tree.
	Assets []string `yaml:"assets,omitempty"`

	// OutputDir is the build destination, relative to the site directory
	// unless absolute.
	OutputDir string `yaml:"output_dir,omitempty"`
}

// Default returns the configuration used when no site.config.yml exists.
// It mirrors the conventional project layout produced by `promptsite init`.
func Default() *SiteConfig {
	return &SiteConfig{
		Title:    "Awesome AI Prompts",
		Subtitle: "A curated directory of prompts",
		Data:     []string{"prompts.csv", "vibeprompts.csv"},
		Assets: []string{
			"*.css",
			"*.js",
			"favicon.ico",
		},
		OutputDir: "_site",
	}
}

// Load reads site.config.yml from the given directory. A missing file is
// not an error: the defaults apply, so a bare directory with a prompts.csv
// is already buildable.
func Load(dir string) (*SiteConfig, error) {
	cfg := Default()

	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *SiteConfig) {
	def := Default()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if len(cfg.Data) == 0 {
		cfg.Data = def.Data
	}
	if len(cfg.Assets) == 0 {
		cfg.Assets = def.Assets
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
}

// PrimaryData returns the first configured CSV source, the one required for
// every build.
func (c *SiteConfig) PrimaryData() string {
	return c.Data[0]
}

// SecondaryData returns the remaining CSV sources, which are optional.
func (c *SiteConfig) SecondaryData() []string {
	return c.Data[1:]
}
