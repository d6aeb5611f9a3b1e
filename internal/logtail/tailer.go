package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrNotReady means no complete line is available yet. It is not end of
	// stream; call Next again later.
	ErrNotReady = errors.New("no complete line available")

	// ErrLineTooLong means a line exceeded Options.MaxLineBytes. The line is
	// dropped through its terminating newline and reading continues.
	ErrLineTooLong = errors.New("line too long")
)

const (
	defaultMaxLineBytes = 4096
	readChunk           = 64 * 1024
)

// Options configure a Tailer.
type Options struct {
	// SafetyMargin is the number of bytes at the current end of file that
	// are left unread while following, so a line still being written is
	// never observed.
	SafetyMargin int64

	// Follow keeps the tailer waiting for more data at end of file. When
	// false the file is treated as finished: the margin is ignored, an
	// unterminated last line is returned, and Next then reports io.EOF.
	Follow bool

	// MaxLineBytes bounds a single line. Zero uses 4096.
	MaxLineBytes int
}

// Tailer reads newline-terminated lines from a file that may still be
// growing. It only ever reads forward and returns each line at most once.
// A Tailer is not safe for concurrent use.
type Tailer struct {
	file    *os.File
	opts    Options
	chunk   []byte
	pending []byte
	read    int64 // bytes pulled from the file so far
	discard bool  // dropping an over-long line up to its newline
	done    bool
}

// Open opens path for forward-only tailing from its first byte.
func Open(path string, opts Options) (*Tailer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = defaultMaxLineBytes
	}
	if opts.SafetyMargin < 0 {
		opts.SafetyMargin = 0
	}
	return &Tailer{
		file:  file,
		opts:  opts,
		chunk: make([]byte, readChunk),
	}, nil
}

// Offset returns the byte offset just past the last line returned by Next.
func (t *Tailer) Offset() int64 {
	return t.read - int64(len(t.pending))
}

// Next returns the next complete line without its line terminator.
func (t *Tailer) Next() (string, error) {
	for {
		line, ok, err := t.takeLine()
		if err != nil {
			return "", err
		}
		if ok {
			return line, nil
		}
		if !t.discard && len(t.pending) > t.opts.MaxLineBytes {
			t.pending = t.pending[:0]
			t.discard = true
			return "", fmt.Errorf("at offset %d: %w", t.read, ErrLineTooLong)
		}

		n, err := t.fill()
		if err != nil {
			return "", err
		}
		if n > 0 {
			continue
		}
		if t.opts.Follow {
			return "", ErrNotReady
		}
		if len(t.pending) > 0 && !t.discard && !t.done {
			line := string(dropCR(t.pending))
			t.pending = t.pending[:0]
			t.done = true
			return line, nil
		}
		return "", io.EOF
	}
}

// NextIgnoringMargin is Next with the safety margin lifted for this one
// call. Bytes read past the returned line are given back, so later calls to
// Next still stay SafetyMargin behind the end of file.
func (t *Tailer) NextIgnoringMargin() (string, error) {
	margin := t.opts.SafetyMargin
	t.opts.SafetyMargin = 0
	line, err := t.Next()
	t.opts.SafetyMargin = margin
	if err == nil {
		t.read = t.Offset()
		t.pending = t.pending[:0]
	}
	return line, err
}

// Close releases the file.
func (t *Tailer) Close() error {
	return t.file.Close()
}

func (t *Tailer) takeLine() (string, bool, error) {
	for {
		i := bytes.IndexByte(t.pending, '\n')
		if i < 0 {
			if t.discard {
				t.pending = t.pending[:0]
			}
			return "", false, nil
		}
		line := dropCR(t.pending[:i])
		t.pending = t.pending[i+1:]
		if t.discard {
			t.discard = false
			continue
		}
		if len(line) > t.opts.MaxLineBytes {
			return "", false, fmt.Errorf("at offset %d: %w", t.Offset(), ErrLineTooLong)
		}
		return string(line), true, nil
	}
}

// fill appends newly available bytes to pending and reports how many were
// read. While following, the last SafetyMargin bytes of the file are not
// considered available.
func (t *Tailer) fill() (int, error) {
	info, err := t.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat log: %w", err)
	}
	limit := info.Size()
	if t.opts.Follow {
		limit -= t.opts.SafetyMargin
	}
	avail := limit - t.read
	if avail <= 0 {
		return 0, nil
	}
	buf := t.chunk
	if avail < int64(len(buf)) {
		buf = buf[:avail]
	}
	n, err := t.file.ReadAt(buf, t.read)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("read log: %w", err)
	}
	t.pending = append(t.pending, buf[:n]...)
	t.read += int64(n)
	return n, nil
}

func dropCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}
