package core

// export_limiter.go bounds the number of exports serialized at once.
//
// Each export holds one slot of a counting semaphore for the duration of its
// filter/project/serialize run. When every slot is taken, callers wait up to
// maxWait before failing with ErrTooManyExports. Shutdown waits on Drain so
// in-flight downloads finish.

import (
	"context"
	"sync/atomic"
	"time"
)

const (
	// DefaultMaxConcurrentExports is the default number of parallel exports.
	DefaultMaxConcurrentExports = 4

	// DefaultExportWait is how long to wait for a slot before rejecting.
	DefaultExportWait = 10 * time.Second
)

// ExportLimiter is a counting semaphore for export runs.
type ExportLimiter struct {
	slots   chan struct{}
	maxWait time.Duration
	active  atomic.Int64
	served  atomic.Int64
}

// NewExportLimiter allows at most maxConcurrent simultaneous exports.
// Non-positive arguments select the defaults.
func NewExportLimiter(maxConcurrent int, maxWait time.Duration) *ExportLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentExports
	}
	if maxWait <= 0 {
		maxWait = DefaultExportWait
	}
	return &ExportLimiter{
		slots:   make(chan struct{}, maxConcurrent),
		maxWait: maxWait,
	}
}

// Acquire takes a slot, waiting at most maxWait.
// The caller must Release the slot when the export completes.
func (l *ExportLimiter) Acquire(ctx context.Context) error {
	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case l.slots <- struct{}{}:
		l.active.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrTooManyExports
	}
}

// Release returns a slot taken by Acquire.
func (l *ExportLimiter) Release() {
	l.active.Add(-1)
	l.served.Add(1)
	<-l.slots
}

// Active returns the number of exports currently holding a slot.
func (l *ExportLimiter) Active() int {
	return int(l.active.Load())
}

// Capacity returns the maximum number of concurrent exports.
func (l *ExportLimiter) Capacity() int {
	return cap(l.slots)
}

// Drain blocks until no export holds a slot or ctx is done.
func (l *ExportLimiter) Drain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for l.Active() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// LimiterStatus is a point-in-time view of the limiter for /api/status.
type LimiterStatus struct {
	Active    int   `json:"active"`
	Available int   `json:"available"`
	Capacity  int   `json:"capacity"`
	Served    int64 `json:"served"`
}

// Status reports the limiter state.
func (l *ExportLimiter) Status() LimiterStatus {
	return LimiterStatus{
		Active:    l.Active(),
		Available: cap(l.slots) - len(l.slots),
		Capacity:  cap(l.slots),
		Served:    l.served.Load(),
	}
}
