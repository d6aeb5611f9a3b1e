// Package exchange moves pixel commands from a growing log into a displayable
// front buffer.
//
// # Overview
//
// An Engine holds two surfaces of identical size:
//
//   - back: written by every decoded command, in log order
//   - front: what the display reads, updated only by Present
//
// Between them sits the dirty rectangle, the minimal box covering all back
// buffer writes since the last presentation.
//
// # Data Flow
//
//	log file ─> LineSource.Next ─> gra.ParseCommand ─> Apply ─┐
//	                                                         │ back + dirty
//	                                 (end of batch / tick) ─> Present
//	                                                         │ front + damage
//	                                        display ─> View <┘
//
// # Batches
//
// Ingest reads and applies lines until one of these happens:
//
//  1. the source reports logtail.ErrNotReady (nothing complete yet, or the
//     unread tail is inside the safety margin)
//  2. the source reports io.EOF (one-shot rendering of a finished log)
//  3. Options.BatchBudget has elapsed
//
// A batch that applied at least one write ends with a synchronous Present.
// The budget bounds how long a fast producer can delay a presentation.
//
// Run repeats Ingest until its context is cancelled, sleeping
// Options.IdleInterval after a batch that found nothing to apply.
//
// # Locking
//
// Two mutexes, always taken in this order:
//
//	mu       back buffer, dirty rectangle
//	frontMu  front buffer, display damage
//
// Apply holds mu for a single command. Present holds mu then frontMu for
// the copy, which is bounded by the dirty area rather than the log size.
// View holds frontMu only, so a display read never observes a copy in
// progress. Every acquisition is paired with a deferred unlock, so neither
// cancellation nor a panic leaves a lock held.
//
// # Error Policy
//
// Malformed lines (wrong field count, non-numeric fields, over-long lines)
// are skipped and counted in Stats.Malformed. Out-of-range coordinates are
// not errors; they are counted in Stats.Dropped and touch neither buffer
// nor the dirty rectangle. Only read failures of the source itself end Run
// with an error.
package exchange
