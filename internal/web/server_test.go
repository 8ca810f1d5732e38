package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/catalog-export/internal/config"
	"github.com/JonMunkholm/catalog-export/internal/core"
	_ "github.com/JonMunkholm/catalog-export/internal/core/formats"
	"github.com/JonMunkholm/catalog-export/internal/source"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080, RequestTimeout: 30 * time.Second},
		Export: config.ExportConfig{
			JSON: true, CSV: true, WooCommerce: true, PrestaShop: false,
			JSONFilename: "products_export.json",
			Delimiter:    ",",
			ShowHeaders:  true,
			Fields:       []string{"Id", "BrandName", "Price"},
		},
		Filter: config.FilterConfig{Limit: 500},
		Limits: config.LimitsConfig{MaxConcurrentExports: 2, MaxWaitTime: time.Second, HistorySize: 6},
		Rate:   config.RateLimitConfig{Enabled: false},
	}
}

// newTestServer serves a 40-product fixture catalog.
func newTestServer(t *testing.T, mutate func(*config.Config)) (*Server, *core.Service) {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	svc := core.NewService(source.NewFixture(40, ""), cfg.ServiceConfig())
	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	s := NewServer(svc, cfg)
	t.Cleanup(func() { s.Shutdown(context.Background()) })
	return s, svc
}

func do(t *testing.T, s *Server, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode body: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func TestExport_CSVDefaults(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/api/export/csv?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename=products_export.csv` {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := rec.Header().Get("X-Export-Records"); got != "2" {
		t.Errorf("X-Export-Records = %q, want 2", got)
	}

	want := `"Id","BrandName","Price"` + "\n" +
		`"10000","Adolfo Dominguez","25"` + "\n" +
		`"10001","Clinique","26"`
	if got := rec.Body.String(); got != want {
		t.Errorf("body =\n%s\nwant\n%s", got, want)
	}
}

func TestExport_QueryOverrides(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet,
		"/api/export/csv?brand=Clinique,Lancome&fields=Id&fields=Gender&delimiter=%3B&headers=false&limit=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	lines := strings.Split(rec.Body.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q, want 3 rows without header", lines)
	}
	if lines[0] != `"10001";"Female"` {
		t.Errorf("first row = %q", lines[0])
	}
}

func TestExport_PostBody(t *testing.T) {
	s, _ := newTestServer(t, nil)

	body := `{"genders":["Kids"],"minStock":0,"limit":2,"fields":["Id","Gender","Nope"]}`
	rec := do(t, s, http.MethodPost, "/api/export/json", body, "Content-Type", "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["Id"] != "10003" || rows[0]["Gender"] != "Kids" || rows[0]["Nope"] != "N/A" {
		t.Errorf("row = %v", rows[0])
	}
}

func TestExport_Errors(t *testing.T) {
	s, _ := newTestServer(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		code   string
	}{
		{"unknown format", http.MethodGet, "/api/export/xml", "", http.StatusNotFound, "EXP001"},
		{"disabled format", http.MethodGet, "/api/export/prestashop", "", http.StatusForbidden, "EXP002"},
		{"bad integer", http.MethodGet, "/api/export/csv?limit=ten", "", http.StatusBadRequest, "REQ001"},
		{"bad boolean", http.MethodGet, "/api/export/csv?headers=maybe", "", http.StatusBadRequest, "REQ001"},
		{"unknown profile", http.MethodGet, "/api/export/csv?profile=missing", "", http.StatusNotFound, "PRF001"},
		{"unknown body key", http.MethodPost, "/api/export/csv", `{"colour":"red"}`, http.StatusBadRequest, "REQ001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.target, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
			resp := decodeBody[ErrorResponse](t, rec)
			if resp.Code != tt.code {
				t.Errorf("code = %q, want %q", resp.Code, tt.code)
			}
		})
	}
}

func TestExport_CatalogNotLoaded(t *testing.T) {
	cfg := testConfig()
	svc := core.NewService(source.NewFixture(1, ""), cfg.ServiceConfig())
	s := NewServer(svc, cfg)

	rec := do(t, s, http.MethodGet, "/api/export/json", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After")
	}
	if resp := decodeBody[ErrorResponse](t, rec); resp.Code != "CAT001" {
		t.Errorf("code = %q, want CAT001", resp.Code)
	}
}

func TestExport_RecordsHistory(t *testing.T) {
	s, _ := newTestServer(t, nil)

	do(t, s, http.MethodGet, "/api/export/woocommerce?limit=1", "", "User-Agent", "test-agent")

	rec := do(t, s, http.MethodGet, "/api/exports/recent", "")
	history := decodeBody[[]core.ExportRecord](t, rec)
	if len(history) != 1 {
		t.Fatalf("history = %d entries, want 1", len(history))
	}
	h := history[0]
	if h.Format != core.FormatWooCommerce || h.Filename != "export_woocommerce.csv" || h.Records != 1 {
		t.Errorf("record = %+v", h)
	}
	if h.UserAgent != "test-agent" || h.IPAddress != "192.0.2.1" {
		t.Errorf("requester = %q / %q", h.IPAddress, h.UserAgent)
	}
}

func TestListFormats(t *testing.T) {
	s, _ := newTestServer(t, nil)

	infos := decodeBody[[]FormatInfo](t, do(t, s, http.MethodGet, "/api/formats", ""))
	if len(infos) != 4 {
		t.Fatalf("formats = %d, want 4", len(infos))
	}
	if infos[0].ID != core.FormatJSON || !infos[0].Enabled {
		t.Errorf("first = %+v", infos[0])
	}
	if infos[3].ID != core.FormatPrestaShop || infos[3].Enabled || infos[3].Filename != "export_prestashop.csv" {
		t.Errorf("last = %+v", infos[3])
	}
}

func TestListFields(t *testing.T) {
	s, _ := newTestServer(t, nil)

	fields := decodeBody[[]map[string]any](t, do(t, s, http.MethodGet, "/api/fields", ""))
	if len(fields) != core.FieldCount() {
		t.Fatalf("fields = %d, want %d", len(fields), core.FieldCount())
	}
	if fields[0]["id"] != "Id" || fields[4]["kind"] != "decimal" {
		t.Errorf("fields[0] = %v, fields[4] = %v", fields[0], fields[4])
	}
}

func TestProfilesLifecycle(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(t, s, http.MethodPost, "/api/profiles", `{"name":"Slim","fields":["Id","EANs"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decodeBody[core.ExportProfile](t, rec)
	if rec.Header().Get("Location") != "/api/profiles/"+created.ID {
		t.Errorf("Location = %q", rec.Header().Get("Location"))
	}

	// The profile drives the export field selection.
	exp := do(t, s, http.MethodGet, "/api/export/csv?limit=1&profile="+created.ID, "")
	if !strings.HasPrefix(exp.Body.String(), `"Id","EANs"`+"\n") {
		t.Errorf("export body = %q", exp.Body.String())
	}

	if got := do(t, s, http.MethodGet, "/api/profiles/"+created.ID, ""); got.Code != http.StatusOK {
		t.Errorf("get status = %d", got.Code)
	}
	if got := do(t, s, http.MethodDelete, "/api/profiles/"+created.ID, ""); got.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", got.Code)
	}
	if got := do(t, s, http.MethodDelete, "/api/profiles/"+created.ID, ""); got.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", got.Code)
	}
}

func TestProfiles_Errors(t *testing.T) {
	s, svc := newTestServer(t, nil)
	preset := svc.Profiles()[0]

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"empty body", http.MethodPost, "/api/profiles", "", http.StatusBadRequest},
		{"blank name", http.MethodPost, "/api/profiles", `{"name":"  ","fields":["Id"]}`, http.StatusBadRequest},
		{"malformed", http.MethodPost, "/api/profiles", `{"name":`, http.StatusBadRequest},
		{"delete preset", http.MethodDelete, "/api/profiles/" + preset.ID, "", http.StatusConflict},
		{"get missing", http.MethodGet, "/api/profiles/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(t, s, tt.method, tt.target, tt.body); rec.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestPreviewAPI(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/api/preview?gender=Female&index=2&fields=Id,SetContent", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var p struct {
		Matched    int      `json:"matched"`
		Index      int      `json:"index"`
		ProductID  string   `json:"productId"`
		Fields     []string `json:"fields"`
		Validation struct {
			Valid   []string `json:"valid"`
			Missing []string `json:"missing"`
		} `json:"validation"`
		Samples []map[string]any `json:"samples"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Female products are i%4 == 1 -> 10 of 40.
	if p.Matched != 10 || p.Index != 2 || p.ProductID != "10009" {
		t.Errorf("preview = %+v", p)
	}
	if len(p.Validation.Missing) != 1 || p.Validation.Missing[0] != "SetContent" {
		t.Errorf("validation = %+v", p.Validation)
	}
	if len(p.Samples) != 10 {
		t.Errorf("samples = %d, want 10", len(p.Samples))
	}
}

func TestPreviewPage(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/preview?brand=L%27Oreal&limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<h1>Export preview</h1>",
		"L&#39;Oreal",
		`href="/api/export/json?brand=L%27Oreal&amp;limit=5"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, "/api/export/prestashop") {
		t.Error("disabled format linked")
	}
}

func TestPreviewPage_Empty(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/preview?brand=Nobody", "")
	if !strings.Contains(rec.Body.String(), "No products match") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestPreviewPage_ErrorIsHTML(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/preview?limit=x", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Code: REQ001") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestStatusAndRefresh(t *testing.T) {
	s, _ := newTestServer(t, nil)

	status := decodeBody[StatusResponse](t, do(t, s, http.MethodGet, "/api/status", ""))
	if !status.Catalog.Loaded || status.Catalog.Products != 40 || status.Catalog.Source != "fixture" {
		t.Errorf("catalog = %+v", status.Catalog)
	}
	if status.Exports.Capacity != 2 {
		t.Errorf("exports = %+v", status.Exports)
	}

	rec := do(t, s, http.MethodPost, "/api/catalog/refresh", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh status = %d", rec.Code)
	}
	if body := decodeBody[map[string]any](t, rec); body["products"] != float64(40) {
		t.Errorf("refresh body = %v", body)
	}
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, nil)
	if rec := do(t, s, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestAPIKeyRequired(t *testing.T) {
	s, _ := newTestServer(t, func(c *config.Config) {
		c.Security.RequireAPIKey = true
		c.Security.APIKeys = []string{"secret"}
	})

	if rec := do(t, s, http.MethodGet, "/api/fields", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("without key: status = %d, want 401", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/api/fields", "", "X-API-Key", "secret"); rec.Code != http.StatusOK {
		t.Errorf("with key: status = %d, want 200", rec.Code)
	}
	// Pages stay public.
	if rec := do(t, s, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("healthz: status = %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	s, _ := newTestServer(t, func(c *config.Config) {
		c.Rate = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 100, ExportLimit: 2}
	})

	for i := 0; i < 2; i++ {
		if rec := do(t, s, http.MethodGet, "/api/export/csv?limit=1", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
	rec := do(t, s, http.MethodGet, "/api/export/csv?limit=1", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if resp := decodeBody[ErrorResponse](t, rec); resp.Code != "RATE001" {
		t.Errorf("code = %q, want RATE001", resp.Code)
	}
	// Other API routes use the general budget.
	if rec := do(t, s, http.MethodGet, "/api/fields", ""); rec.Code != http.StatusOK {
		t.Errorf("fields status = %d", rec.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	s, _ := newTestServer(t, func(c *config.Config) { c.Security.EnableCSP = true })

	rec := do(t, s, http.MethodGet, "/api/fields", "")
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing nosniff")
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("missing CSP")
	}
}

func TestRateLimiterAllow(t *testing.T) {
	rl := newRateLimiter(2, time.Hour)
	defer rl.stop()

	if !rl.allow("a") || !rl.allow("a") {
		t.Fatal("first two requests should pass")
	}
	if rl.allow("a") {
		t.Error("third request should be limited")
	}
	if !rl.allow("b") {
		t.Error("other clients are independent")
	}
}
