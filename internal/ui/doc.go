// Package ui renders the front buffer in the terminal with Bubble Tea.
//
// # Pixels
//
// Each terminal cell carries two pixels using the upper half block "▀":
// the upper pixel is the cell foreground and the lower pixel its
// background, both as 24-bit SGR colors. A 640x480 log therefore needs a
// 640x240 cell area; smaller terminals pan over it.
//
// # Redraw
//
// The canvas keeps one rendered string per cell row. The model waits on
// exchange.Engine.Updated and, on every signal, takes the accumulated
// damage through Engine.View and re-renders only the rows it touches.
// Horizontal panning or a resize changes the rendered column window and
// re-renders every row once.
//
// # Keys
//
//	h/j/k/l, arrows  pan
//	g                reset pan
//	s                save a BMP snapshot into the prefs snapshot_dir
//	r                toggle the recent-commands pane
//	T                cycle theme (saved to prefs)
//	?                full help
//	q, ctrl+c        quit
//
// Status counters come from state.Store and refresh on a ticker.
package ui
