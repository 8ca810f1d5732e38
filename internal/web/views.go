package web

// views.go holds the HTML components, written as templ.ComponentFunc values.

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/catalog-export/internal/core"
	"github.com/JonMunkholm/catalog-export/internal/logging"
	"github.com/a-h/templ"
)

const pageStyle = `body{font-family:system-ui,sans-serif;margin:2rem;color:#1e293b}
table{border-collapse:collapse;font-size:.8rem}th,td{border:1px solid #e2e8f0;padding:.3rem .5rem;text-align:left}
th{background:#f8fafc}.na{color:#94a3b8}.missing{color:#e11d48}.ok{color:#059669}
.alert{border:1px solid #fecdd3;background:#fff1f2;padding:1rem;border-radius:.5rem}
.formats a{margin-right:1rem}.muted{color:#64748b;font-size:.85rem}`

// html accumulates the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

// text writes s escaped.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) component(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

// layout wraps body in the page shell.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"><title>")
		h.text(title)
		h.raw("</title><style>", pageStyle, "</style></head><body>")
		h.component(ctx, body)
		h.raw("</body></html>")
		return h.err
	})
}

// ErrorAlert renders a user-facing error with its support code.
func ErrorAlert(msg core.UserMessage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div class="alert" role="alert"><strong>`)
		h.text(msg.Message)
		h.raw(`</strong>`)
		if msg.Action != "" {
			h.raw(`<p>`)
			h.text(msg.Action)
			h.raw(`</p>`)
		}
		h.raw(`<p class="muted">Code: `)
		h.text(msg.Code)
		h.raw(`</p></div>`)
		return h.err
	})
}

// ErrorPage renders ErrorAlert as a full page.
func ErrorPage(msg core.UserMessage) templ.Component {
	return layout("Error", ErrorAlert(msg))
}

// PreviewPage renders the export preview: match count, field validation
// for the inspected product, sample rows and download links.
func PreviewPage(v previewView) templ.Component {
	return layout("Export preview", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		p := v.Preview

		h.raw("<h1>Export preview</h1>")
		h.raw(`<p class="muted">Catalog: `)
		h.text(fmt.Sprintf("%s, %d products", v.Catalog.Source, v.Catalog.Products))
		h.raw(` · Matched: <strong>`, strconv.Itoa(p.Matched), `</strong>`)
		h.raw(` · Active filters: `, strconv.Itoa(v.Criteria.ActiveFilters()))
		if v.Criteria.Unlimited() {
			h.raw(` · No limit`)
		} else {
			h.raw(` · Limit: `, strconv.Itoa(v.Criteria.Limit))
		}
		h.raw(`</p>`)

		h.component(ctx, formatLinks(v.Formats, v.Query))

		if p.Matched == 0 {
			h.raw(`<p>No products match the current filters.</p>`)
			return h.err
		}

		h.raw(`<h2>Product `)
		h.text(p.ProductID)
		h.raw(fmt.Sprintf(` <span class="muted">(%d of %d)</span></h2>`, p.Index+1, p.Matched))
		h.component(ctx, validationList(p.Validation))

		h.raw("<h2>Sample</h2>")
		h.component(ctx, recordTable(p.Fields, p.Samples))
		return h.err
	}))
}

func formatLinks(formats []FormatInfo, query string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<p class="formats">`)
		for _, f := range formats {
			if !f.Enabled {
				continue
			}
			href := f.URL
			if query != "" {
				href += "?" + query
			}
			h.raw(`<a href="`)
			h.text(string(templ.URL(href)))
			h.raw(`">`)
			h.text(f.Label)
			h.raw(` (`)
			h.text(f.Filename)
			h.raw(`)</a>`)
		}
		h.raw(`</p>`)
		return h.err
	})
}

func validationList(v core.FieldValidation) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<p><span class="ok">Present: `)
		h.text(strings.Join(v.Valid, ", "))
		h.raw(`</span>`)
		if !v.AllValid() {
			h.raw(`<br><span class="missing">Missing: `)
			h.text(strings.Join(v.Missing, ", "))
			h.raw(`</span>`)
		}
		h.raw(`</p>`)
		return h.err
	})
}

func recordTable(fields []string, records []core.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw("<table><thead><tr>")
		for _, f := range fields {
			h.raw("<th>")
			h.text(f)
			h.raw("</th>")
		}
		h.raw("</tr></thead><tbody>")
		for _, rec := range records {
			h.raw("<tr>")
			for _, fv := range rec {
				cell := core.StringifyForCSV(fv.Value)
				if cell == core.NotAvailable {
					h.raw(`<td class="na">`)
				} else {
					h.raw("<td>")
				}
				h.text(cell)
				h.raw("</td>")
			}
			h.raw("</tr>")
		}
		h.raw("</tbody></table>")
		return h.err
	})
}

func logPageError(r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("render page", "path", r.URL.Path, "error", err)
}
