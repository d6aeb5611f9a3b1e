package exchange

import (
	"time"

	"github.com/five82/gratail/internal/raster"
)

// Stats is a point-in-time view of engine counters.
type Stats struct {
	Applied   uint64 // in-range commands written by Apply
	Dropped   uint64 // commands Apply rejected as outside the surface
	Malformed uint64 // lines that failed to decode
	Batches   uint64
	Presents  uint64 // non-empty presentation copies
	Cursor    int64  // byte offset just past the last consumed line
	LastRect  raster.Rect
	LastBatch time.Duration
	Done      bool // Run has returned
}

// Stats returns the current counters. Individual fields are read
// atomically; the set as a whole may be slightly inconsistent while
// ingestion is running.
func (e *Engine) Stats() Stats {
	e.statsMu.Lock()
	last := e.lastRect
	e.statsMu.Unlock()

	return Stats{
		Applied:   e.applied.Load(),
		Dropped:   e.dropped.Load(),
		Malformed: e.malformed.Load(),
		Batches:   e.batches.Load(),
		Presents:  e.presents.Load(),
		Cursor:    e.cursor.Load(),
		LastRect:  last,
		LastBatch: time.Duration(e.lastBatch.Load()),
		Done:      e.done.Load(),
	}
}
