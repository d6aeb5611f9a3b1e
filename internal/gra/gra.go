// Package gra decodes the line-oriented pixel command log.
//
// The first line of a log is a header, "width#height". Every following line
// is a command, "color#x#y", where color carries 0xRRGGBB in its low 24 bits.
package gra

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator delimits fields on a line.
const Separator = "#"

// ErrMalformed marks a line that cannot be decoded.
var ErrMalformed = errors.New("malformed line")

// Header describes the surface a log draws on.
type Header struct {
	Width  int
	Height int
}

func (h Header) String() string {
	return strconv.Itoa(h.Width) + Separator + strconv.Itoa(h.Height)
}

// Command writes one pixel.
type Command struct {
	Color uint32
	X     int
	Y     int
}

func (c Command) String() string {
	return strconv.FormatUint(uint64(c.Color), 10) + Separator + strconv.Itoa(c.X) + Separator + strconv.Itoa(c.Y)
}

// ParseHeader decodes a "width#height" line. Both values must be positive.
func ParseHeader(line string) (Header, error) {
	fields, err := split(line, 2)
	if err != nil {
		return Header{}, err
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return Header{}, fmt.Errorf("header width %q: %w", fields[0], ErrMalformed)
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return Header{}, fmt.Errorf("header height %q: %w", fields[1], ErrMalformed)
	}
	if w <= 0 || h <= 0 {
		return Header{}, fmt.Errorf("header size %dx%d: %w", w, h, ErrMalformed)
	}
	return Header{Width: w, Height: h}, nil
}

// ParseCommand decodes a "color#x#y" line. Coordinates are not range
// checked here.
func ParseCommand(line string) (Command, error) {
	fields, err := split(line, 3)
	if err != nil {
		return Command{}, err
	}
	color, err := parseColor(fields[0])
	if err != nil {
		return Command{}, err
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("x %q: %w", fields[1], ErrMalformed)
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, fmt.Errorf("y %q: %w", fields[2], ErrMalformed)
	}
	return Command{Color: color, X: x, Y: y}, nil
}

func split(line string, want int) ([]string, error) {
	line = strings.TrimSpace(line)
	fields := strings.Split(line, Separator)
	if len(fields) != want {
		return nil, fmt.Errorf("%d fields in %q, want %d: %w", len(fields), line, want, ErrMalformed)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}

// parseColor accepts any signed or unsigned 64-bit decimal and keeps its low
// 24 bits.
func parseColor(s string) (uint32, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return uint32(v) & 0xFFFFFF, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, ErrMalformed)
	}
	return uint32(v) & 0xFFFFFF, nil
}
