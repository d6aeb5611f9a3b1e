// Package snapshot exports a rendered surface as a BMP file.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"

	"github.com/five82/gratail/internal/raster"
)

const timeLayout = "20060102-150405"

// Name returns a timestamped snapshot path inside dir.
func Name(dir string, now time.Time) string {
	return filepath.Join(dir, "gratail-"+now.Format(timeLayout)+".bmp")
}

// WriteBMP encodes s to path as a BMP image, creating parent directories
// as needed. A partially written file is removed on failure.
func WriteBMP(path string, s *raster.Surface) (err error) {
	if s == nil {
		return fmt.Errorf("write snapshot: no surface")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := bmp.Encode(file, s.RGBA()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
