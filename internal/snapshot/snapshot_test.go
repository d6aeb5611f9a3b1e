package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"

	"github.com/five82/gratail/internal/raster"
)

func TestName_UsesTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	got := Name("/tmp/shots", now)
	want := filepath.Join("/tmp/shots", "gratail-20260304-050607.bmp")
	if got != want {
		t.Fatalf("Name = %q, want %q", got, want)
	}
}

func TestWriteBMP_DecodesToSamePixels(t *testing.T) {
	s := raster.New(5, 3)
	s.Set(0, 0, 0xFF0000)
	s.Set(4, 2, 0x00FF00)
	s.Set(2, 1, 0x0000FF)

	path := filepath.Join(t.TempDir(), "nested", "out.bmp")
	if err := WriteBMP(path, s); err != nil {
		t.Fatalf("WriteBMP returned error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()

	img, err := bmp.Decode(file)
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, want 5x3", b)
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			got := (r>>8)<<16 | (g>>8)<<8 | b>>8
			if want := s.At(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %#06x, want %#06x", x, y, got, want)
			}
		}
	}
}

func TestWriteBMP_NilSurfaceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nil.bmp")
	if err := WriteBMP(path, nil); err == nil {
		t.Fatalf("WriteBMP(nil) returned nil error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Stat after failed write = %v, want not exist", err)
	}
}
