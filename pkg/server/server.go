// Package server implements the development server: it renders pages on
// demand from a fresh data snapshot per request, exposes read-only JSON
// query endpoints, and pushes live-reload events over SSE.
package server

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/promptstack/promptsite/pkg/config"
	"github.com/promptstack/promptsite/pkg/render"
	"github.com/promptstack/promptsite/pkg/site"
)

// Server serves a site directory during development. It holds no mutable
// state beyond the reload broadcaster: every request re-reads the CSV data
// and template overrides from disk, so edits show up on the next request
// without a restart.
type Server struct {
	siteDir string
	cfg     *config.SiteConfig
	logger  *logrus.Logger
	reload  *Broadcaster
}

// New creates a dev server for the given site directory.
func New(siteDir string, cfg *config.SiteConfig, logger *logrus.Logger) *Server {
	return &Server{
		siteDir: siteDir,
		cfg:     cfg,
		logger:  logger,
		reload:  NewBroadcaster(),
	}
}

// RegisterHandlers registers all routes on the given mux.
func (s *Server) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handlePage("home"))
	mux.HandleFunc("/index.html", s.handlePage("home"))
	mux.HandleFunc("/vibe", s.handlePage("vibe"))
	mux.HandleFunc("/vibe.html", s.handlePage("vibe"))
	mux.HandleFunc("/admin", s.handlePage("admin"))
	mux.HandleFunc("/admin.html", s.handlePage("admin"))
	mux.HandleFunc("/embed", s.handlePage("embed"))
	mux.HandleFunc("/embed.html", s.handlePage("embed"))
	mux.HandleFunc("/embed-preview", s.handlePage("embed-preview"))
	mux.HandleFunc("/embed-preview.html", s.handlePage("embed-preview"))

	mux.HandleFunc("/api/prompts", s.handleAPIPrompts)
	mux.HandleFunc("/api/search", s.handleAPISearch)

	mux.HandleFunc("/events", s.handleEvents)
}

// snapshot loads a fresh renderer and data set for one request. The
// renderer is rebuilt so template-override edits take effect immediately.
func (s *Server) snapshot() (*render.Renderer, *site.Data, error) {
	builder, err := site.New(s.siteDir, s.cfg, s.logger)
	if err != nil {
		return nil, nil, err
	}
	data, err := builder.LoadData()
	if err != nil {
		return nil, nil, err
	}
	return builder.Renderer(), data, nil
}

// handlePage renders one logical page per request. A root path that is not
// a registered page falls through to static file serving.
func (s *Server) handlePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if name == "home" && r.URL.Path != "/" && r.URL.Path != "/index.html" {
			s.handleStatic(w, r)
			return
		}

		renderer, data, err := s.snapshot()
		if err != nil {
			s.errorPage(w, err)
			return
		}

		var page site.Page
		for _, p := range site.Pages() {
			if p.Name == name {
				page = p
				break
			}
		}

		html, err := renderer.Render(page.Template, site.ContextFor(page, s.cfg, data))
		if err != nil {
			s.errorPage(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(injectReloadScript(html))
	}
}

// handleStatic serves data CSVs and root static assets from the site
// directory. Only known file types are served; everything else is 404.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	// Clean the path and forbid traversal outside the site directory.
	rel := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if rel == "" || strings.HasPrefix(rel, "..") {
		http.NotFound(w, r)
		return
	}

	switch strings.ToLower(path.Ext(rel)) {
	case ".csv", ".css", ".js", ".ico":
	default:
		http.NotFound(w, r)
		return
	}

	full := filepath.Join(s.siteDir, filepath.FromSlash(rel))
	if _, err := os.Stat(full); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, full)
}

// errorPage renders a visible error page instead of a blank response, per
// the fail-loudly policy. Falls back to plain text if even the error
// template cannot render.
func (s *Server) errorPage(w http.ResponseWriter, err error) {
	s.logger.WithError(err).Error("Request failed")

	renderer, rerr := render.New(s.logger)
	if rerr == nil {
		html, rerr := renderer.Render("error.html", render.Context{
			"Title":   "promptsite: request failed",
			"Message": err.Error(),
		})
		if rerr == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write(injectReloadScript(html))
			return
		}
	}
	http.Error(w, fmt.Sprintf("promptsite: request failed: %v", err), http.StatusInternalServerError)
}
