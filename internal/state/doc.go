// Package state shares ingestion status between the background presenter
// and the UI.
//
// # Overview
//
// The presenter goroutine publishes exchange.Stats into a Store on every
// tick; the UI reads Snapshots on its own schedule. Pixels never pass
// through here: the front buffer is read through exchange.Engine.View.
//
//	Presenter:                       UI:
//	┌──────────────────┐            ┌──────────────────┐
//	│ eng.Present()    │            │                  │
//	│ eng.Stats()      │            │                  │
//	│      ↓           │            │                  │
//	│ store.Update()   │───────────→│ store.Snapshot() │
//	│      ↓           │  (mutex)   │      ↓           │
//	│  repeat...       │            │  render header   │
//	└──────────────────┘            └──────────────────┘
//
// # Update Semantics
//
//	store.Update(stats, nil)  → Stats replaced, LastError cleared
//	store.Update(_, err)      → Stats kept, LastError = err
//
// Stalled counts consecutive updates in which the stream cursor did not
// move, which the header uses to show that the producer has gone quiet.
//
// The zero Store is ready to use.
package state
