package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListProfiles returns presets followed by saved profiles.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Profiles())
}

// handleGetProfile returns one profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.service.Profile(chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// createProfileRequest is the body of POST /api/profiles.
type createProfileRequest struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// handleCreateProfile saves a named field selection.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = invalidRequest("empty body")
		}
		fail(w, r, err)
		return
	}

	p, err := s.service.SaveProfile(req.Name, req.Fields)
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/profiles/"+p.ID)
	writeJSON(w, http.StatusCreated, p)
}

// handleDeleteProfile removes a saved profile. Presets cannot be deleted.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteProfile(chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
