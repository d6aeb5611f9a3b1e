package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// tailWindowPerLine bounds how far back from the end of file Read looks.
// Command lines are short, so a generous per-line allowance keeps Read cheap
// on logs that are many megabytes long.
const tailWindowPerLine = 64

// Read returns at most maxLines complete lines from the end of the file at
// path. Only the trailing maxLines*64 bytes are scanned.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}
	start := info.Size() - int64(maxLines*tailWindowPerLine)
	if start < 0 {
		start = 0
	}
	if _, err := file.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek log: %w", err)
	}

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	skipPartial := start > 0
	for scanner.Scan() {
		if skipPartial {
			skipPartial = false
			continue
		}
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
