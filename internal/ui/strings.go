package ui

import "strings"

const ellipsis = "…"

// truncateMiddle shortens value to limit runes by cutting out its middle,
// so both the leading directory and the file name of a path stay visible.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	if limit == 1 {
		return ellipsis
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + ellipsis + string(runes[len(runes)-suffix:])
}
