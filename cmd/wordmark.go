package cmd

import (
	"github.com/spf13/cobra"

	"github.com/promptstack/promptsite/pkg/config"
	"github.com/promptstack/promptsite/pkg/wordmark"
)

func newWordmarkCmd() *cobra.Command {
	var (
		siteDir  string
		text     string
		color    string
		fontPath string
		fontSize float64
		width    float64
		output   string
	)

	cmd := &cobra.Command{
		Use:   "wordmark",
		Short: "Generate an SVG wordmark for the site title",
		Long: `Renders the site title (or custom text) into an SVG with the glyphs
converted to paths, so it displays identically without the font installed.
Useful for README headers and social preview images.

Example:
  promptsite wordmark --font /path/to/Inter.ttf -o wordmark.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default the text to the configured site title
			if text == "" {
				cfg, err := config.Load(siteDir)
				if err != nil {
					return err
				}
				text = cfg.Title
			}

			gen := wordmark.New(getLogger())
			if err := gen.Generate(wordmark.Config{
				Text:       text,
				OutputPath: output,
				FontPath:   fontPath,
				Color:      color,
				FontSize:   fontSize,
				Width:      width,
			}); err != nil {
				return err
			}

			ulog.Success("Generated wordmark").Field("output", output).Emit()
			return nil
		},
	}

	cmd.Flags().StringVar(&siteDir, "site-dir", ".", "Path to the site directory (for the default title)")
	cmd.Flags().StringVar(&text, "text", "", "Wordmark text (defaults to the configured site title)")
	cmd.Flags().StringVar(&color, "color", "#1a1a2e", "Fill color (hex)")
	cmd.Flags().StringVar(&fontPath, "font", "", "Path to TTF/OTF font file (required)")
	cmd.Flags().Float64Var(&fontSize, "size", 48, "Font size in points")
	cmd.Flags().Float64Var(&width, "width", 320, "Output SVG width in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "wordmark.svg", "Output path")

	cmd.MarkFlagRequired("font")

	return cmd
}
