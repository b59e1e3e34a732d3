package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/promptstack/promptsite/pkg/config"
	"github.com/promptstack/promptsite/pkg/server"
)

func newDevCmd() *cobra.Command {
	var siteDir string
	var port int
	var debounceMs int

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Run the development server with hot reload",
		Long: `Serves the site directly from its sources. Pages are rendered fresh on
every request, so CSV and template edits show up on the next load, and
connected browsers reload automatically when a source file changes.

Example:
  promptsite dev --port 4000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(siteDir)
			if err != nil {
				return err
			}

			srv := server.New(siteDir, cfg, getLogger())
			mux := http.NewServeMux()
			srv.RegisterHandlers(mux)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				if err := srv.Watch(ctx, time.Duration(debounceMs)*time.Millisecond); err != nil {
					ulog.Warn("File watching disabled").Err(err).Emit()
				}
			}()

			addr := fmt.Sprintf(":%d", port)
			httpSrv := &http.Server{Addr: addr, Handler: mux}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				defer cancel()
				httpSrv.Shutdown(shutdownCtx)
			}()

			ulog.Info("Development server running").
				Field("addr", fmt.Sprintf("http://localhost:%d", port)).
				Field("site_dir", siteDir).
				Emit()

			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&siteDir, "site-dir", ".", "Path to the site directory")
	cmd.Flags().IntVarP(&port, "port", "p", 4000, "Port to listen on")
	cmd.Flags().IntVar(&debounceMs, "debounce", 100, "Reload debounce interval in milliseconds")

	return cmd
}
