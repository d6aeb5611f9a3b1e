// Package raster provides the RGB surfaces that back and front buffers are
// made of, plus the dirty rectangle used to bound presentation copies.
//
// # Layout
//
// A Surface stores 3 bytes per pixel (R, G, B) in row-major order. Rows may
// be padded: Stride is at least Width*3, and New rounds it up to a 4-byte
// boundary the way 24bpp device bitmaps do. Every byte address is computed
// by Offset:
//
//	offset = x*3 + y*stride
//
// Nothing else in the module repeats that formula.
//
// # Dirty rectangles
//
// Rect uses inclusive bounds. EmptyRect is the reset state; Grow widens it
// one point at a time, so after any sequence of writes it is the minimal box
// covering them.
//
// CopyRect moves exactly the pixels inside a Rect from one surface to
// another of the same dimensions, respecting each surface's own stride.
//
// Surfaces are not safe for concurrent use. Callers hold their own locks.
package raster
