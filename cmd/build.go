package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/promptstack/promptsite/pkg/config"
	"github.com/promptstack/promptsite/pkg/site"
)

func newBuildCmd() *cobra.Command {
	var siteDir string
	var outputDir string
	var basePath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the static site into the output directory",
		Long: `Renders every page from the CSV data, copies static assets and the raw
CSV files, and writes the hosting marker file. The output directory is
cleared first, so the result always matches the current sources exactly.

Example:
  promptsite build
  promptsite build --site-dir ./my-site --output dist`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(siteDir)
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}
			if basePath != "" {
				cfg.BasePath = basePath
			}

			builder, err := site.New(siteDir, cfg, getLogger())
			if err != nil {
				return err
			}

			dest := cfg.OutputDir
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(siteDir, dest)
			}
			if err := builder.Build(dest); err != nil {
				return err
			}

			ulog.Success("Site built").Field("output", dest).Emit()
			return nil
		},
	}

	cmd.Flags().StringVar(&siteDir, "site-dir", ".", "Path to the site directory")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVar(&basePath, "base-path", "", "URL prefix for deployment under a subpath (overrides config)")

	return cmd
}
