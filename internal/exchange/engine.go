package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/five82/gratail/internal/gra"
	"github.com/five82/gratail/internal/logtail"
	"github.com/five82/gratail/internal/raster"
)

const (
	defaultBatchBudget  = 250 * time.Millisecond
	defaultIdleInterval = 10 * time.Millisecond
)

// LineSource yields raw command lines in log order. *logtail.Tailer
// satisfies it.
type LineSource interface {
	Next() (string, error)
	Offset() int64
}

// Options tune the ingestion loop.
type Options struct {
	// BatchBudget caps how long one batch may run before it presents and
	// starts over. Zero uses 250ms.
	BatchBudget time.Duration

	// IdleInterval is the pause after a batch that applied nothing. Zero
	// uses 10ms.
	IdleInterval time.Duration

	// OnPresent, when set, is called after every non-empty presentation
	// copy with the rectangle that was copied. It runs outside all locks.
	OnPresent func(raster.Rect)

	// Now overrides the clock used for batch budgeting.
	Now func() time.Time
}

// Engine owns the back buffer, the front buffer and the dirty rectangle
// between them.
//
// Lock order is mu then frontMu. mu guards back and dirty; frontMu guards
// front and damage.
type Engine struct {
	header gra.Header
	opts   Options

	mu    sync.Mutex
	back  *raster.Surface
	dirty raster.Rect

	frontMu sync.Mutex
	front   *raster.Surface
	damage  raster.Rect

	updated chan struct{}

	applied   atomic.Uint64
	dropped   atomic.Uint64
	malformed atomic.Uint64
	batches   atomic.Uint64
	presents  atomic.Uint64
	cursor    atomic.Int64
	lastBatch atomic.Int64
	done      atomic.Bool

	statsMu  sync.Mutex
	lastRect raster.Rect
}

// Batch summarizes one pass of Ingest.
type Batch struct {
	Applied   int
	Dropped   int
	Malformed int
	Presented raster.Rect
	Idle      bool // the source had nothing complete to offer
	EOF       bool // the source is finished
	Elapsed   time.Duration
}

// New allocates independent back and front buffers sized from h.
func New(h gra.Header, opts Options) *Engine {
	if opts.BatchBudget <= 0 {
		opts.BatchBudget = defaultBatchBudget
	}
	if opts.IdleInterval <= 0 {
		opts.IdleInterval = defaultIdleInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{
		header:   h,
		opts:     opts,
		back:     raster.New(h.Width, h.Height),
		dirty:    raster.EmptyRect(),
		front:    raster.New(h.Width, h.Height),
		damage:   raster.FullRect(h.Width, h.Height),
		updated:  make(chan struct{}, 1),
		lastRect: raster.EmptyRect(),
	}
}

// Header returns the dimensions the engine was built with.
func (e *Engine) Header() gra.Header {
	return e.header
}

// Apply writes cmd into the back buffer and grows the dirty rectangle.
// Commands outside the surface are dropped and Apply returns false. Both
// outcomes are counted in Stats.
func (e *Engine) Apply(cmd gra.Command) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.back.Set(cmd.X, cmd.Y, cmd.Color) {
		e.dropped.Add(1)
		return false
	}
	e.dirty = e.dirty.Grow(cmd.X, cmd.Y)
	e.applied.Add(1)
	return true
}

// Present copies the dirty rectangle from back to front buffer and resets
// it. It returns the copied rectangle and false when there was nothing to
// copy, in which case neither buffer is touched.
func (e *Engine) Present() (raster.Rect, bool) {
	r, ok := e.present()
	if !ok {
		return r, false
	}

	e.presents.Add(1)
	e.statsMu.Lock()
	e.lastRect = r
	e.statsMu.Unlock()

	select {
	case e.updated <- struct{}{}:
	default:
	}
	if e.opts.OnPresent != nil {
		e.opts.OnPresent(r)
	}
	return r, true
}

func (e *Engine) present() (raster.Rect, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.dirty
	if r.Empty() {
		return r, false
	}

	e.frontMu.Lock()
	defer e.frontMu.Unlock()

	// Same dimensions by construction.
	_ = raster.CopyRect(e.front, e.back, r)
	e.damage = e.damage.Union(r)
	e.dirty = raster.EmptyRect()
	return r, true
}

// View gives fn exclusive access to the front buffer. damage is the union
// of every rectangle presented since the previous View; the first call
// reports the whole surface. fn must not retain front.
//
// View is meant for a single display reader.
func (e *Engine) View(fn func(front *raster.Surface, damage raster.Rect)) {
	e.frontMu.Lock()
	defer e.frontMu.Unlock()

	damage := e.damage
	e.damage = raster.EmptyRect()
	fn(e.front, damage)
}

// Front returns a copy of the front buffer. Pending display damage is left
// for the next View.
func (e *Engine) Front() *raster.Surface {
	e.frontMu.Lock()
	defer e.frontMu.Unlock()
	return e.front.Clone()
}

// Updated is signalled after each non-empty presentation. Signals coalesce.
func (e *Engine) Updated() <-chan struct{} {
	return e.updated
}

// Ingest runs one batch: it applies lines from src until the source has
// nothing complete left, the source ends, or the batch budget runs out. If
// anything was applied the batch ends with a presentation copy.
//
// Malformed lines are skipped and counted; they never stop ingestion.
func (e *Engine) Ingest(ctx context.Context, src LineSource) (b Batch, err error) {
	start := e.opts.Now()
	var lastBad error

	defer func() {
		b.Elapsed = e.opts.Now().Sub(start)
		e.batches.Add(1)
		e.cursor.Store(src.Offset())
		e.lastBatch.Store(int64(b.Elapsed))
		if b.Malformed > 0 {
			log.Printf("ingest: skipped %d malformed lines (last: %v)", b.Malformed, lastBad)
		}
	}()

	for e.opts.Now().Sub(start) < e.opts.BatchBudget {
		if ctx.Err() != nil {
			break
		}
		line, err := src.Next()
		if err != nil {
			if errors.Is(err, logtail.ErrNotReady) {
				b.Idle = true
				break
			}
			if errors.Is(err, io.EOF) {
				b.EOF = true
				break
			}
			if errors.Is(err, logtail.ErrLineTooLong) {
				b.Malformed++
				e.malformed.Add(1)
				lastBad = err
				continue
			}
			e.finishBatch(&b)
			return b, fmt.Errorf("read command: %w", err)
		}

		cmd, err := gra.ParseCommand(line)
		if err != nil {
			b.Malformed++
			e.malformed.Add(1)
			lastBad = err
			continue
		}
		if e.Apply(cmd) {
			b.Applied++
		} else {
			b.Dropped++
		}
	}

	e.finishBatch(&b)
	return b, nil
}

func (e *Engine) finishBatch(b *Batch) {
	b.Presented = raster.EmptyRect()
	if b.Applied > 0 {
		b.Presented, _ = e.Present()
	}
}

// Run ingests batches until ctx is cancelled or src reports io.EOF. A batch
// that applied nothing is followed by a pause of IdleInterval. Shutdown via
// ctx is not an error.
func (e *Engine) Run(ctx context.Context, src LineSource) error {
	defer e.done.Store(true)

	idle := time.NewTimer(e.opts.IdleInterval)
	defer idle.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}
		b, err := e.Ingest(ctx, src)
		if err != nil {
			return err
		}
		if b.EOF {
			e.Present()
			return nil
		}
		if b.Applied > 0 || !b.Idle {
			continue
		}

		idle.Reset(e.opts.IdleInterval)
		select {
		case <-ctx.Done():
			return nil
		case <-idle.C:
		}
	}
}
