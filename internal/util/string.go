// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the mindcare-tui application.
package util

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: Rune-aware truncation preserves multi-byte characters.
// These functions handle strings correctly regardless of character encoding,
// preventing mid-character truncation that would corrupt UTF-8 strings.

// TruncateRunes truncates a string to a maximum number of runes (characters).
// This is safe for UTF-8 strings as it counts characters, not bytes.
// If the string is truncated, "..." is appended.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// TruncateWidth truncates a string to a maximum display width, accounting
// for double-width characters (CJK) that take 2 columns.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads a string with spaces to the given display width.
// Strings already at or beyond the width are returned unchanged.
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// WrapText wraps text to the given display width, breaking on spaces where
// possible. Existing newlines are preserved.
func WrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

// wrapLine wraps a single line (no embedded newlines) to the given width.
func wrapLine(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	var wrapped []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range strings.Split(line, " ") {
		wordWidth := runewidth.StringWidth(word)

		// Word alone exceeds the width: hard-break it
		if wordWidth > width {
			if currentWidth > 0 {
				wrapped = append(wrapped, current.String())
				current.Reset()
				currentWidth = 0
			}
			for runewidth.StringWidth(word) > width {
				head := runewidth.Truncate(word, width, "")
				wrapped = append(wrapped, head)
				word = strings.TrimPrefix(word, head)
			}
			current.WriteString(word)
			currentWidth = runewidth.StringWidth(word)
			continue
		}

		sep := 0
		if currentWidth > 0 {
			sep = 1
		}
		if currentWidth+sep+wordWidth > width {
			wrapped = append(wrapped, current.String())
			current.Reset()
			currentWidth = 0
			sep = 0
		}
		if sep == 1 {
			current.WriteString(" ")
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += wordWidth
	}

	if current.Len() > 0 {
		wrapped = append(wrapped, current.String())
	}
	return wrapped
}

// IntToString converts an integer to its decimal string representation.
func IntToString(n int) string {
	return strconv.Itoa(n)
}
