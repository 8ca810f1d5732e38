package web

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JonMunkholm/catalog-export/internal/core"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		wantCode  string
		wantLevel string
	}{
		{"mapped client error", fmt.Errorf("load: %w", core.ErrProfileNotFound), http.StatusNotFound, "PRF001", `"level":"WARN"`},
		{"unmapped error", errors.New("boom: disk on fire"), http.StatusInternalServerError, "ERR000", `"level":"ERROR"`},
		{"unmapped error with client status", errors.New("odd"), http.StatusBadRequest, "ERR000", `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/thing", nil)

			respondError(rec, req, tt.err, tt.status)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			body := decodeBody[ErrorResponse](t, rec)
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
			if strings.Contains(body.Message, tt.err.Error()) {
				t.Errorf("message %q leaks the technical error", body.Message)
			}

			out := logs.String()
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("log = %s, want %s", out, tt.wantLevel)
			}
			if !strings.Contains(out, tt.err.Error()) {
				t.Errorf("log = %s, want the technical error", out)
			}
		})
	}
}
