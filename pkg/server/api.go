package server

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/promptstack/promptsite/pkg/prompt"
)

// PromptsResponse is the body of /api/prompts and /api/search. Pure read
// projections over the prompt store; nothing here mutates state.
type PromptsResponse struct {
	Prompts  []prompt.Record `json:"prompts"`
	Total    int             `json:"total"`
	Filtered int             `json:"filtered"`
}

// handleAPIPrompts returns the prompt list, optionally filtered by the
// audience flag.
//
//	GET /api/prompts?audience=everyone|developers
func (s *Server) handleAPIPrompts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := s.loadPrompts()
	if err != nil {
		s.apiError(w, err)
		return
	}

	audience := prompt.ParseAudience(r.URL.Query().Get("audience"))
	filtered := prompt.FilterAudience(records, audience)

	writeJSON(w, http.StatusOK, PromptsResponse{
		Prompts:  filtered,
		Total:    len(filtered),
		Filtered: len(filtered),
	})
}

// handleAPISearch returns prompts matching a case-insensitive substring
// query, within the selected audience.
//
//	GET /api/search?q=<text>&audience=everyone|developers
func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := s.loadPrompts()
	if err != nil {
		s.apiError(w, err)
		return
	}

	audience := prompt.ParseAudience(r.URL.Query().Get("audience"))
	matched := prompt.Search(prompt.FilterAudience(records, audience), r.URL.Query().Get("q"))

	writeJSON(w, http.StatusOK, PromptsResponse{
		Prompts:  matched,
		Total:    len(matched),
		Filtered: len(matched),
	})
}

// loadPrompts reads the primary CSV fresh, matching the no-caching rule for
// the query surface.
func (s *Server) loadPrompts() ([]prompt.Record, error) {
	records, err := prompt.Load(filepath.Join(s.siteDir, s.cfg.PrimaryData()))
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []prompt.Record{}
	}
	return records, nil
}

func (s *Server) apiError(w http.ResponseWriter, err error) {
	s.logger.WithError(err).Error("API request failed")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
