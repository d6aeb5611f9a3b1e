package app

import (
	"context"
	"time"

	"github.com/five82/gratail/internal/exchange"
	"github.com/five82/gratail/internal/state"
)

const (
	defaultPresentInterval = 100 * time.Millisecond
	defaultWaitInterval    = 100 * time.Millisecond
	maxBackoff             = 30 * time.Second
)

// StartPresenter launches a background goroutine that presents pending
// writes and publishes engine stats at a fixed cadence. It returns
// immediately; the returned channel is closed once the goroutine exits.
func StartPresenter(ctx context.Context, eng *exchange.Engine, store *state.Store, interval time.Duration) <-chan struct{} {
	if interval <= 0 {
		interval = defaultPresentInterval
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			present(eng, store)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return done
}

func present(eng *exchange.Engine, store *state.Store) {
	eng.Present()
	store.Update(eng.Stats(), nil)
}

// calculateBackoff doubles base for each consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
