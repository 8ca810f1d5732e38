package web

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/catalog-export/internal/core"
	"github.com/JonMunkholm/catalog-export/internal/logging"
	"github.com/go-chi/chi/v5"
)

// handleExport serializes the current catalog in one format and sends it
// as a download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := core.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		fail(w, r, err)
		return
	}

	opts, err := parseOptions(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	criteria, cfg, err := s.resolve(opts)
	if err != nil {
		fail(w, r, err)
		return
	}

	logger := logging.WithFields(r.Context(), "format", string(format))
	logger.Debug("export requested",
		"fields", len(cfg.SelectedFields),
		"filters", criteria.ActiveFilters(),
	)

	ctx := WithRequestMetadata(r.Context(), r)
	payload, err := s.service.Export(ctx, criteria, cfg, format)
	if err != nil {
		fail(w, r, err)
		return
	}

	writePayload(w, payload)
}

// writePayload sends a payload as an attachment.
func writePayload(w http.ResponseWriter, p core.Payload) {
	contentType := p.ContentType
	if contentType != "application/json" {
		contentType += "; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": p.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(p.Data)))
	w.Header().Set("X-Export-Records", strconv.Itoa(p.Records))
	w.WriteHeader(http.StatusOK)
	w.Write(p.Data)
}

// FormatInfo describes one output format for the settings screen.
type FormatInfo struct {
	ID          core.Format `json:"id"`
	Label       string      `json:"label"`
	Enabled     bool        `json:"enabled"`
	Filename    string      `json:"filename"`
	ContentType string      `json:"contentType"`
	URL         string      `json:"url"`
}

func (s *Server) formatInfos() []FormatInfo {
	_, cfg := s.service.Defaults()
	formats := core.Registered()
	infos := make([]FormatInfo, 0, len(formats))
	for _, f := range formats {
		infos = append(infos, FormatInfo{
			ID:          f,
			Label:       f.Label(),
			Enabled:     cfg.FormatEnabled(f),
			Filename:    cfg.Filename(f),
			ContentType: f.ContentType(),
			URL:         fmt.Sprintf("/api/export/%s", f),
		})
	}
	return infos
}

// handleListFormats returns the registered formats with their enable flags and filenames.
func (s *Server) handleListFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.formatInfos())
}

// handleListFields returns the canonical field registry.
func (s *Server) handleListFields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Fields())
}

// handleRecentExports returns the latest completed exports.
func (s *Server) handleRecentExports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.RecentExports())
}

// StatusResponse reports catalog and export capacity.
type StatusResponse struct {
	Catalog core.CatalogStatus `json:"catalog"`
	Exports core.LimiterStatus `json:"exports"`
	Formats []FormatInfo       `json:"formats"`
}

// handleStatus returns the catalog snapshot state and export limiter usage.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Catalog: s.service.CatalogStatus(),
		Exports: s.service.LimiterStatus(),
		Formats: s.formatInfos(),
	})
}

// handleRefreshCatalog reloads the catalog from its source.
// On failure the previous snapshot keeps serving.
func (s *Server) handleRefreshCatalog(w http.ResponseWriter, r *http.Request) {
	n, err := s.service.Refresh(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"products": n,
		"catalog":  s.service.CatalogStatus(),
	})
}

// handleHealth reports liveness and whether a catalog is loaded.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := s.service.CatalogStatus()
	code := http.StatusOK
	if !status.Loaded {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]any{"ok": status.Loaded, "products": status.Products})
}
