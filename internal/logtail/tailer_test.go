package logtail

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vga_out.gra")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func appendLog(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
}

func openTailer(t *testing.T, path string, opts Options) *Tailer {
	t.Helper()
	tl, err := Open(path, opts)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = tl.Close() })
	return tl
}

func mustNext(t *testing.T, tl *Tailer, want string) {
	t.Helper()
	got, err := tl.Next()
	if err != nil {
		t.Fatalf("Next() error = %v, want line %q", err, want)
	}
	if got != want {
		t.Fatalf("Next() = %q, want %q", got, want)
	}
}

func TestTailer_FollowReadsCompleteLinesOnly(t *testing.T) {
	path := writeLog(t, "4#3\n16711680#0#0\n6528")
	tl := openTailer(t, path, Options{Follow: true})

	mustNext(t, tl, "4#3")
	mustNext(t, tl, "16711680#0#0")
	if _, err := tl.Next(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Next() on partial line error = %v, want ErrNotReady", err)
	}
	if got, want := tl.Offset(), int64(len("4#3\n16711680#0#0\n")); got != want {
		t.Fatalf("Offset() = %d, want %d", got, want)
	}

	appendLog(t, path, "0#1#1\n")
	mustNext(t, tl, "65280#1#1")
	if _, err := tl.Next(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Next() at end error = %v, want ErrNotReady", err)
	}
}

func TestTailer_SafetyMarginHoldsBackTail(t *testing.T) {
	path := writeLog(t, "255#0#0\n255#1#0\n")
	tl := openTailer(t, path, Options{Follow: true, SafetyMargin: 8})

	mustNext(t, tl, "255#0#0")
	if _, err := tl.Next(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Next() inside margin error = %v, want ErrNotReady", err)
	}

	appendLog(t, path, strings.Repeat(" ", 8))
	mustNext(t, tl, "255#1#0")
}

func TestTailer_NoFollowReturnsTrailingLineThenEOF(t *testing.T) {
	path := writeLog(t, "4#3\r\n255#3#2")
	tl := openTailer(t, path, Options{SafetyMargin: 100})

	mustNext(t, tl, "4#3")
	mustNext(t, tl, "255#3#2")
	for i := 0; i < 2; i++ {
		if _, err := tl.Next(); !errors.Is(err, io.EOF) {
			t.Fatalf("Next() after end error = %v, want io.EOF", err)
		}
	}
}

func TestTailer_LineTooLongIsSkipped(t *testing.T) {
	path := writeLog(t, "1#1#1\n"+strings.Repeat("9", 40)+"\n2#2#2\n")
	tl := openTailer(t, path, Options{Follow: true, MaxLineBytes: 16})

	mustNext(t, tl, "1#1#1")
	if _, err := tl.Next(); !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("Next() error = %v, want ErrLineTooLong", err)
	}
	mustNext(t, tl, "2#2#2")
}

func TestTailer_NeverReturnsLineTwice(t *testing.T) {
	path := writeLog(t, "")
	tl := openTailer(t, path, Options{Follow: true})

	var got []string
	for _, chunk := range []string{"1#0", "#0\n2#0#0\n", "", "3#0#0\n"} {
		appendLog(t, path, chunk)
		for {
			line, err := tl.Next()
			if errors.Is(err, ErrNotReady) {
				break
			}
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			got = append(got, line)
		}
	}
	want := []string{"1#0#0", "2#0#0", "3#0#0"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("lines = %v, want %v", got, want)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.gra"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open error = %v, want os.ErrNotExist", err)
	}
}

func TestTailer_NextIgnoringMarginKeepsMarginAfterwards(t *testing.T) {
	path := writeLog(t, "4#3\n16711680#0#0\n")
	tl := openTailer(t, path, Options{Follow: true, SafetyMargin: 100})

	got, err := tl.NextIgnoringMargin()
	if err != nil {
		t.Fatalf("NextIgnoringMargin() error = %v", err)
	}
	if got != "4#3" {
		t.Fatalf("NextIgnoringMargin() = %q, want %q", got, "4#3")
	}
	if got, want := tl.Offset(), int64(len("4#3\n")); got != want {
		t.Fatalf("Offset() = %d, want %d", got, want)
	}
	if _, err := tl.Next(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Next() inside margin error = %v, want ErrNotReady", err)
	}

	appendLog(t, path, strings.Repeat("0#0#0\n", 20))
	mustNext(t, tl, "16711680#0#0")
}
