package gra

import (
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Header
		wantErr bool
	}{
		{name: "basic", line: "4#3", want: Header{Width: 4, Height: 3}},
		{name: "crlf", line: "640#480\r\n", want: Header{Width: 640, Height: 480}},
		{name: "spaces", line: " 8 # 2 ", want: Header{Width: 8, Height: 2}},
		{name: "one field", line: "640", wantErr: true},
		{name: "three fields", line: "1#2#3", wantErr: true},
		{name: "non numeric", line: "a#3", wantErr: true},
		{name: "zero", line: "0#3", wantErr: true},
		{name: "negative", line: "4#-3", wantErr: true},
		{name: "empty", line: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeader(tt.line)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Fatalf("ParseHeader(%q) error = %v, want ErrMalformed", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHeader(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Fatalf("ParseHeader(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr bool
	}{
		{name: "red", line: "16711680#2#3", want: Command{Color: 0xFF0000, X: 2, Y: 3}},
		{name: "green", line: "65280#1#1", want: Command{Color: 0x00FF00, X: 1, Y: 1}},
		{name: "blue crlf", line: "255#3#2\r", want: Command{Color: 0x0000FF, X: 3, Y: 2}},
		{name: "negative color keeps low bits", line: "-1#0#0", want: Command{Color: 0xFFFFFF}},
		{name: "high bits dropped", line: "4278190335#0#0", want: Command{Color: 0x0000FF}},
		{name: "huge unsigned", line: "18446744073709551615#0#0", want: Command{Color: 0xFFFFFF}},
		{name: "negative coordinates parse", line: "0#-1#-5", want: Command{X: -1, Y: -5}},
		{name: "two fields", line: "255#0", wantErr: true},
		{name: "four fields", line: "255#0#0#0", wantErr: true},
		{name: "bad color", line: "red#0#0", wantErr: true},
		{name: "bad x", line: "255#x#0", wantErr: true},
		{name: "bad y", line: "255#0#", wantErr: true},
		{name: "empty", line: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Fatalf("ParseCommand(%q) error = %v, want ErrMalformed", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Fatalf("ParseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestCommandString_RoundTrip(t *testing.T) {
	for _, line := range []string{"16711680#2#3", "0#0#0", "65280#-1#7"} {
		cmd, err := ParseCommand(line)
		if err != nil {
			t.Fatalf("ParseCommand(%q): %v", line, err)
		}
		if got := cmd.String(); got != line {
			t.Fatalf("String() = %q, want %q", got, line)
		}
	}
	if got := (Header{Width: 4, Height: 3}).String(); got != "4#3" {
		t.Fatalf("Header.String() = %q, want 4#3", got)
	}
}
