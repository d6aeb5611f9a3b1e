package raster

import (
	"errors"
	"fmt"
	"image"
)

// BytesPerPixel is the size of one RGB pixel in a Surface.
const BytesPerPixel = 3

// ErrSizeMismatch is returned when two surfaces of different dimensions are
// combined.
var ErrSizeMismatch = errors.New("surface size mismatch")

// Surface is a fixed-size RGB raster. Pixels are stored row-major, three
// bytes each in R, G, B order, with Stride bytes between the starts of
// consecutive rows.
type Surface struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// New allocates a black surface whose stride is padded to a 4-byte
// boundary.
func New(width, height int) *Surface {
	stride := (width*BytesPerPixel + 3) &^ 3
	return NewWithStride(width, height, stride)
}

// NewWithStride allocates a black surface with an explicit row stride.
// It panics if the dimensions are not positive or the stride cannot hold a
// full row.
func NewWithStride(width, height, stride int) *Surface {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("raster: invalid dimensions %dx%d", width, height))
	}
	if stride < width*BytesPerPixel {
		panic(fmt.Sprintf("raster: stride %d too small for width %d", stride, width))
	}
	return &Surface{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]byte, stride*height),
	}
}

// Bounds returns the rectangle covering the whole surface.
func (s *Surface) Bounds() Rect {
	return FullRect(s.Width, s.Height)
}

// In reports whether (x, y) lies on the surface.
func (s *Surface) In(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Offset returns the index of the red byte of pixel (x, y) in Pix.
func (s *Surface) Offset(x, y int) int {
	return x*BytesPerPixel + y*s.Stride
}

// Set stores the low 24 bits of rgb (0xRRGGBB) at (x, y). Nothing is written
// and false is returned when the coordinate is off the surface.
func (s *Surface) Set(x, y int, rgb uint32) bool {
	if !s.In(x, y) {
		return false
	}
	i := s.Offset(x, y)
	s.Pix[i+0] = byte(rgb >> 16)
	s.Pix[i+1] = byte(rgb >> 8)
	s.Pix[i+2] = byte(rgb)
	return true
}

// At returns the packed 0xRRGGBB color at (x, y), or 0 off the surface.
func (s *Surface) At(x, y int) uint32 {
	if !s.In(x, y) {
		return 0
	}
	i := s.Offset(x, y)
	return uint32(s.Pix[i])<<16 | uint32(s.Pix[i+1])<<8 | uint32(s.Pix[i+2])
}

// Clone returns an independent copy with the same stride.
func (s *Surface) Clone() *Surface {
	dup := &Surface{Width: s.Width, Height: s.Height, Stride: s.Stride}
	dup.Pix = make([]byte, len(s.Pix))
	copy(dup.Pix, s.Pix)
	return dup
}

// CopyRect copies every pixel inside r from src to dst. The surfaces must
// have the same dimensions but may use different strides. An empty r is a
// no-op.
func CopyRect(dst, src *Surface, r Rect) error {
	if dst.Width != src.Width || dst.Height != src.Height {
		return fmt.Errorf("copy %dx%d to %dx%d: %w", src.Width, src.Height, dst.Width, dst.Height, ErrSizeMismatch)
	}
	r = r.Clip(src.Width, src.Height)
	if r.Empty() {
		return nil
	}
	n := r.Dx() * BytesPerPixel
	for y := r.Y0; y <= r.Y1; y++ {
		so := src.Offset(r.X0, y)
		do := dst.Offset(r.X0, y)
		copy(dst.Pix[do:do+n], src.Pix[so:so+n])
	}
	return nil
}

// FillRGBA writes the pixels inside r into dst, a tightly packed RGBA buffer
// of Width*Height*4 bytes. Alpha is always opaque.
func (s *Surface) FillRGBA(dst []byte, r Rect) {
	r = r.Clip(s.Width, s.Height)
	if r.Empty() {
		return
	}
	for y := r.Y0; y <= r.Y1; y++ {
		si := s.Offset(r.X0, y)
		di := (y*s.Width + r.X0) * 4
		for x := r.X0; x <= r.X1; x++ {
			dst[di+0] = s.Pix[si+0]
			dst[di+1] = s.Pix[si+1]
			dst[di+2] = s.Pix[si+2]
			dst[di+3] = 0xff
			si += BytesPerPixel
			di += 4
		}
	}
}

// RGBA converts the surface to an image.RGBA.
func (s *Surface) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	s.FillRGBA(img.Pix, s.Bounds())
	return img
}
