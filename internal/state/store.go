package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/gratail/internal/exchange"
	"github.com/five82/gratail/internal/gra"
)

// Snapshot represents the latest status available to the UI.
type Snapshot struct {
	Source      string
	Header      gra.Header
	HasHeader   bool
	Stats       exchange.Stats
	LastUpdated time.Time
	LastError   error
	Stalled     int // consecutive updates with no cursor movement
}

// IsStalled reports whether the producer has gone quiet for a while.
func (s Snapshot) IsStalled() bool {
	return s.Stalled >= 10
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetSource records the log being rendered once its header is known.
func (s *Store) SetSource(path string, h gra.Header) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Source = path
	s.snapshot.Header = h
	s.snapshot.HasHeader = true
}

// Update replaces the stored engine stats. When err is non-nil the previous
// stats are kept but the error is recorded for visibility.
func (s *Store) Update(stats exchange.Stats, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return
	}

	if stats.Cursor == s.snapshot.Stats.Cursor && !stats.Done {
		s.snapshot.Stalled++
	} else {
		s.snapshot.Stalled = 0
	}
	s.snapshot.Stats = stats
	s.snapshot.LastError = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
