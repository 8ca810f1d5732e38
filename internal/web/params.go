package web

// params.go turns query strings and JSON bodies into filter criteria and
// export configuration, layered over the service defaults. Only options the
// request names are overridden; enable flags and filenames always come from
// the server configuration.

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JonMunkholm/catalog-export/internal/core"
)

// maxBodySize caps JSON request bodies.
const maxBodySize = 1 << 20

// exportOptions holds request overrides. Nil means "use the default".
type exportOptions struct {
	Brands        []string `json:"brands"`
	Categories    []string `json:"categories"`
	Genders       []string `json:"genders"`
	Subcategories []string `json:"subcategories"`
	MinStock      *int     `json:"minStock"`
	Limit         *int     `json:"limit"`
	IgnoreLimit   *bool    `json:"ignoreLimit"`
	Fields        []string `json:"fields"`
	Profile       string   `json:"profile"`
	Delimiter     *string  `json:"delimiter"`
	ShowHeaders   *bool    `json:"showHeaders"`
	Index         *int     `json:"index"`
}

// parseOptions reads options from a JSON body for POST requests and from
// the query string otherwise.
func parseOptions(r *http.Request) (exportOptions, error) {
	if r.Method == http.MethodPost {
		return decodeOptions(r)
	}
	return queryOptions(r.URL.Query())
}

func decodeOptions(r *http.Request) (exportOptions, error) {
	var opts exportOptions
	err := decodeJSON(r, &opts)
	if errors.Is(err, io.EOF) {
		return opts, nil // empty body: all defaults
	}
	return opts, err
}

// decodeJSON decodes a size-limited JSON body into v, rejecting unknown keys.
// An empty body returns io.EOF unwrapped.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return invalidRequest("decode body: %v", err)
	}
	return nil
}

// queryOptions parses query parameters. List parameters are repeatable
// and comma-separated; a present but empty list parameter clears the default.
func queryOptions(q url.Values) (exportOptions, error) {
	var opts exportOptions
	var err error

	opts.Brands = listParam(q, "brand")
	opts.Categories = listParam(q, "category")
	opts.Genders = listParam(q, "gender")
	opts.Subcategories = listParam(q, "subcategory")
	opts.Fields = core.SplitParams(q["fields"])
	opts.Profile = q.Get("profile")

	if opts.MinStock, err = intParam(q, "min_stock"); err != nil {
		return opts, err
	}
	if opts.Limit, err = intParam(q, "limit"); err != nil {
		return opts, err
	}
	if opts.Index, err = intParam(q, "index"); err != nil {
		return opts, err
	}
	if opts.IgnoreLimit, err = boolParam(q, "ignore_limit"); err != nil {
		return opts, err
	}
	if opts.ShowHeaders, err = boolParam(q, "headers"); err != nil {
		return opts, err
	}
	if _, ok := q["delimiter"]; ok {
		d := q.Get("delimiter")
		opts.Delimiter = &d
	}

	return opts, nil
}

func listParam(q url.Values, name string) []string {
	values, ok := q[name]
	if !ok {
		return nil
	}
	if list := core.SplitParams(values); list != nil {
		return list
	}
	return []string{}
}

func intParam(q url.Values, name string) (*int, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalidRequest("%s must be an integer", name)
	}
	return &i, nil
}

func boolParam(q url.Values, name string) (*bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, invalidRequest("%s must be true or false", name)
	}
	return &b, nil
}

// resolve layers opts over the service defaults.
func (s *Server) resolve(opts exportOptions) (core.FilterCriteria, core.ExportConfig, error) {
	criteria, cfg := s.service.Defaults()

	if opts.Brands != nil {
		criteria.Brands = opts.Brands
	}
	if opts.Categories != nil {
		criteria.Categories = opts.Categories
	}
	if opts.Genders != nil {
		criteria.Genders = opts.Genders
	}
	if opts.Subcategories != nil {
		criteria.Subcategories = opts.Subcategories
	}
	if opts.MinStock != nil {
		criteria.MinStock = *opts.MinStock
	}
	if opts.Limit != nil {
		criteria.Limit = *opts.Limit
	}
	if opts.IgnoreLimit != nil {
		criteria.IgnoreLimit = *opts.IgnoreLimit
	}

	if opts.Delimiter != nil {
		cfg.Delimiter = *opts.Delimiter
	}
	if opts.ShowHeaders != nil {
		cfg.ShowHeaders = *opts.ShowHeaders
	}

	fields, err := s.service.ResolveFields(opts.Profile, opts.Fields, cfg.SelectedFields)
	if err != nil {
		return criteria, cfg, err
	}
	cfg.SelectedFields = fields

	return criteria, cfg.WithDefaults(), nil
}
