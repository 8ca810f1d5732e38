package web

import (
	"net/http"

	"github.com/JonMunkholm/catalog-export/internal/core"
)

// handlePreview returns the preview of an export as JSON.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	view, err := s.buildPreview(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view.Preview)
}

// handlePreviewPage renders the preview as an HTML page.
func (s *Server) handlePreviewPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.buildPreview(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := PreviewPage(view).Render(r.Context(), w); err != nil {
		logPageError(r, err)
	}
}

func (s *Server) buildPreview(r *http.Request) (previewView, error) {
	opts, err := parseOptions(r)
	if err != nil {
		return previewView{}, err
	}
	criteria, cfg, err := s.resolve(opts)
	if err != nil {
		return previewView{}, err
	}

	index := 0
	if opts.Index != nil {
		index = *opts.Index
	}

	preview, err := s.service.Preview(criteria, cfg.SelectedFields, index)
	if err != nil {
		return previewView{}, err
	}

	return previewView{
		Preview:  preview,
		Criteria: criteria,
		Catalog:  s.service.CatalogStatus(),
		Formats:  s.formatInfos(),
		Query:    r.URL.RawQuery,
	}, nil
}

// previewView is the data behind the preview page.
type previewView struct {
	Preview  core.Preview
	Criteria core.FilterCriteria
	Catalog  core.CatalogStatus
	Formats  []FormatInfo
	Query    string // forwarded to the download links
}
