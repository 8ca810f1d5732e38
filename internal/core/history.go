package core

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultHistorySize is how many completed exports are remembered.
const DefaultHistorySize = 6

// ExportHistory keeps the most recent completed exports, newest first.
type ExportHistory struct {
	mu      sync.Mutex
	size    int
	records []ExportRecord
}

// NewExportHistory remembers at most size exports (DefaultHistorySize if size <= 0).
func NewExportHistory(size int) *ExportHistory {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &ExportHistory{size: size}
}

// Record adds a completed export. The requester is read from ctx.
func (h *ExportHistory) Record(ctx context.Context, p Payload) ExportRecord {
	who := RequesterFrom(ctx)
	rec := ExportRecord{
		ID:        uuid.New().String(),
		Format:    p.Format,
		Filename:  p.Filename,
		Records:   p.Records,
		Bytes:     len(p.Data),
		CreatedAt: time.Now().UTC(),
		IPAddress: who.IP,
		UserAgent: who.UserAgent,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append([]ExportRecord{rec}, h.records...)
	if len(h.records) > h.size {
		h.records = h.records[:h.size]
	}
	return rec
}

// Recent returns a copy of the remembered exports, newest first.
func (h *ExportHistory) Recent() []ExportRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]ExportRecord{}, h.records...)
}
