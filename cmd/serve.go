package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/promptstack/promptsite/pkg/config"
	"github.com/promptstack/promptsite/pkg/site"
)

func newServeCmd() *cobra.Command {
	var siteDir string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a previously built site",
		Long: `Serves the built output directory as plain static files, the way a
hosting platform would. Run 'promptsite build' first.

Example:
  promptsite serve --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(siteDir)
			if err != nil {
				return err
			}

			dest := cfg.OutputDir
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(siteDir, dest)
			}
			if _, err := os.Stat(filepath.Join(dest, "index.html")); err != nil {
				return fmt.Errorf("no built site at %s, run 'promptsite build' first", dest)
			}
			if _, err := os.Stat(filepath.Join(dest, site.MarkerFileName)); err != nil {
				log.Warnf("Output at %s is missing the %s marker, it may be incomplete", dest, site.MarkerFileName)
			}

			ulog.Info("Serving built site").
				Field("addr", fmt.Sprintf("http://localhost:%d", port)).
				Field("dir", dest).
				Emit()

			addr := fmt.Sprintf(":%d", port)
			return http.ListenAndServe(addr, http.FileServer(http.Dir(dest)))
		},
	}

	cmd.Flags().StringVar(&siteDir, "site-dir", ".", "Path to the site directory")
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")

	return cmd
}
