// Package logtail reads pixel command logs while another process is still
// appending to them.
//
// # Overview
//
// The package has two entry points:
//
//  1. Tailer: a forward-only reader that hands out each complete line once
//  2. Read: the last N lines of a file, for display
//
// # Tailing
//
// A Tailer keeps a byte cursor into the file and a small buffer of bytes it
// has read but not yet returned. Next returns a line only once its
// terminating newline has been read, so a half-written line is never seen.
//
// While following (Options.Follow), the last SafetyMargin bytes of the file
// are treated as not yet written. This mirrors writers that flush in
// pieces: the tail of the file may be mid-line even when it happens to
// contain a newline.
//
// Next distinguishes three outcomes:
//
//   - a line and nil: one command, in file order
//   - ErrNotReady: nothing complete is available right now; poll again
//   - io.EOF: only when not following, after the last line
//
// The cursor never rewinds. Offset reports the position just past the last
// returned line, which is where a new reader would resume.
//
// Example:
//
//	t, err := logtail.Open("vga_out.gra", logtail.Options{Follow: true, SafetyMargin: 100})
//	if err != nil {
//		return err
//	}
//	defer t.Close()
//	for {
//		line, err := t.Next()
//		if errors.Is(err, logtail.ErrNotReady) {
//			time.Sleep(10 * time.Millisecond)
//			continue
//		}
//		...
//	}
//
// # Reading recent lines
//
// Read scans only the trailing window of the file with a ring buffer of
// maxLines entries, so its cost does not grow with the log. Missing files
// return nil, nil.
//
// # Error Handling
//
// Open and read failures are wrapped ("open log: %w", "read log: %w").
// ErrLineTooLong is reported once per over-long line; the Tailer skips to
// the next newline and carries on.
package logtail
