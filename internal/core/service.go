package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// LoadTimeout is the maximum duration for one catalog load.
var LoadTimeout = 2 * time.Minute

// Source materializes a catalog snapshot.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Product, error)
}

// ServiceConfig holds the defaults and limits a Service runs with.
type ServiceConfig struct {
	Export               ExportConfig   // Default export configuration
	Filter               FilterCriteria // Default filter criteria
	MaxConcurrentExports int
	ExportWait           time.Duration
	HistorySize          int
}

// CatalogStatus describes the current catalog snapshot.
type CatalogStatus struct {
	Source   string    `json:"source"`
	Loaded   bool      `json:"loaded"`
	Products int       `json:"products"`
	LoadedAt time.Time `json:"loadedAt"`
}

// Service wires the pure export pipeline to a catalog source, saved
// profiles, export concurrency limits and history.
type Service struct {
	source   Source
	profiles *ProfileStore
	limiter  *ExportLimiter
	history  *ExportHistory

	exportDefaults ExportConfig
	filterDefaults FilterCriteria

	mu       sync.RWMutex
	catalog  []Product
	loaded   bool
	loadedAt time.Time
}

// NewService creates a Service. The catalog stays empty until Refresh succeeds.
func NewService(src Source, cfg ServiceConfig) *Service {
	return &Service{
		source:         src,
		profiles:       NewProfileStore(),
		limiter:        NewExportLimiter(cfg.MaxConcurrentExports, cfg.ExportWait),
		history:        NewExportHistory(cfg.HistorySize),
		exportDefaults: cfg.Export.WithDefaults(),
		filterDefaults: cfg.Filter,
	}
}

// Refresh loads a new catalog snapshot and swaps it in.
// On failure the previous snapshot is kept.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, LoadTimeout)
	defer cancel()

	start := time.Now()
	products, err := s.source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load catalog from %s: %w", s.source.Name(), err)
	}

	s.mu.Lock()
	s.catalog = products
	s.loaded = true
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	slog.Info("catalog refreshed",
		"source", s.source.Name(),
		"products", len(products),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return len(products), nil
}

// Snapshot returns the current catalog. Callers must not modify it.
func (s *Service) Snapshot() ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrCatalogNotLoaded
	}
	return s.catalog, nil
}

// CatalogStatus reports the source and size of the current snapshot.
func (s *Service) CatalogStatus() CatalogStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return CatalogStatus{
		Source:   s.source.Name(),
		Loaded:   s.loaded,
		Products: len(s.catalog),
		LoadedAt: s.loadedAt,
	}
}

// Defaults returns copies of the default filter criteria and export configuration.
func (s *Service) Defaults() (FilterCriteria, ExportConfig) {
	c := s.filterDefaults
	c.Brands = append([]string(nil), c.Brands...)
	c.Categories = append([]string(nil), c.Categories...)
	c.Genders = append([]string(nil), c.Genders...)
	c.Subcategories = append([]string(nil), c.Subcategories...)

	e := s.exportDefaults
	e.SelectedFields = append([]string(nil), e.SelectedFields...)
	return c, e
}

// Export produces one format from the current snapshot.
// Disabled formats are rejected with ErrFormatDisabled.
func (s *Service) Export(ctx context.Context, criteria FilterCriteria, cfg ExportConfig, format Format) (Payload, error) {
	if !format.Valid() {
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if !cfg.FormatEnabled(format) {
		return Payload{}, fmt.Errorf("export %s: %w", format, ErrFormatDisabled)
	}

	catalog, err := s.Snapshot()
	if err != nil {
		return Payload{}, err
	}
	return s.runExport(ctx, catalog, criteria, cfg, format)
}

// ExportEnabled produces every enabled format concurrently from one
// snapshot. Payloads come back in canonical format order.
func (s *Service) ExportEnabled(ctx context.Context, criteria FilterCriteria, cfg ExportConfig) ([]Payload, error) {
	formats := EnabledFormats(cfg)
	if len(formats) == 0 {
		return nil, fmt.Errorf("%w: no formats enabled", ErrFormatDisabled)
	}

	catalog, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	payloads := make([]Payload, len(formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		g.Go(func() error {
			p, err := s.runExport(gctx, catalog, criteria, cfg, f)
			if err != nil {
				return err
			}
			payloads[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return payloads, nil
}

// runExport holds a limiter slot around the pure pipeline and records history.
func (s *Service) runExport(ctx context.Context, catalog []Product, criteria FilterCriteria, cfg ExportConfig, format Format) (Payload, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return Payload{}, err
	}
	defer s.limiter.Release()

	start := time.Now()
	payload, err := Export(catalog, criteria, cfg, format)
	if err != nil {
		return Payload{}, err
	}

	s.history.Record(ctx, payload)
	slog.Info("export completed",
		"format", string(format),
		"filename", payload.Filename,
		"records", payload.Records,
		"bytes", len(payload.Data),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return payload, nil
}

// Preview builds a preview from the current snapshot.
func (s *Service) Preview(criteria FilterCriteria, fields []string, index int) (Preview, error) {
	catalog, err := s.Snapshot()
	if err != nil {
		return Preview{}, err
	}
	return BuildPreview(catalog, criteria, fields, index), nil
}

// Fields returns the canonical field registry.
func (s *Service) Fields() []FieldDescriptor {
	return Fields()
}

// Profiles returns presets followed by saved profiles.
func (s *Service) Profiles() []ExportProfile {
	return s.profiles.List()
}

// Profile returns one profile by id.
func (s *Service) Profile(id string) (ExportProfile, error) {
	return s.profiles.Get(id)
}

// SaveProfile stores the given field selection under name.
func (s *Service) SaveProfile(name string, fields []string) (ExportProfile, error) {
	p, err := s.profiles.Save(name, fields)
	if err != nil {
		return ExportProfile{}, err
	}
	slog.Info("profile saved", "id", p.ID, "name", p.Name, "fields", len(p.Fields))
	return p, nil
}

// DeleteProfile removes a saved profile.
func (s *Service) DeleteProfile(id string) error {
	if err := s.profiles.Delete(id); err != nil {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	slog.Info("profile deleted", "id", id)
	return nil
}

// RecentExports returns the latest completed exports, newest first.
func (s *Service) RecentExports() []ExportRecord {
	return s.history.Recent()
}

// LimiterStatus reports export concurrency.
func (s *Service) LimiterStatus() LimiterStatus {
	return s.limiter.Status()
}

// WaitForExports blocks until in-flight exports finish or ctx is done.
func (s *Service) WaitForExports(ctx context.Context) error {
	return s.limiter.Drain(ctx)
}
