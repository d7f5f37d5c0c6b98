package ansi

import (
	"strings"
	"unicode/utf8"
)

// isCSI reports whether a control sequence introducer (ESC [) starts at s[i].
func isCSI(s string, i int) bool {
	return s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '['
}

// csiEnd returns the index just past the CSI sequence starting at s[i].
// An unterminated sequence runs to the end of its parameter bytes.
func csiEnd(s string, i int) int {
	j := i + 2
	for j < len(s) && s[j] >= 0x20 && s[j] <= 0x3f {
		j++
	}
	if j < len(s) && s[j] >= 0x40 && s[j] <= 0x7e {
		j++ // Include terminator
	}
	return j
}

// isSGR reports whether a complete CSI sequence is a style directive (ESC [ ... m).
func isSGR(seq string) bool {
	return len(seq) >= 3 && seq[len(seq)-1] == 'm'
}

// VisibleLength returns the number of characters in s that would be visible
// on screen. Escape sequences are skipped entirely and never counted.
func VisibleLength(s string) int {
	visCount := 0
	i := 0

	for i < len(s) {
		if isCSI(s, i) {
			i = csiEnd(s, i)
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		visCount++
		i += size
	}

	return visCount
}

// Slice returns length visible characters of s starting at visible position
// offset. A negative offset is treated as zero; a non-positive length or an
// offset at or past the end of s yields "".
//
// Escape sequences inside the window are copied verbatim. When preserveStyle
// is set, the styles still open before the window are re-emitted ahead of the
// first character, and a reset is appended if a style is open when the
// window ends, so the fragment renders the same on its own as it did inside s.
func Slice(s string, offset, length int, preserveStyle bool) string {
	if length <= 0 {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + length

	var result strings.Builder
	var state styleState
	started := false
	pos := 0
	i := 0

	for i < len(s) {
		if isCSI(s, i) {
			j := csiEnd(s, i)
			seq := s[i:j]
			i = j
			if pos >= end {
				break
			}
			if started || (!preserveStyle && pos >= offset) {
				result.WriteString(seq)
			}
			if preserveStyle && isSGR(seq) {
				state.apply(seq)
			}
			continue
		}

		if pos >= end {
			break
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		if pos >= offset {
			if !started {
				started = true
				result.Grow(len(s) - i)
				if preserveStyle {
					result.WriteString(state.prefix())
				}
			}
			result.WriteString(s[i : i+size])
		}
		pos++
		i += size
	}

	if !started {
		return ""
	}
	if preserveStyle && state.open() {
		result.WriteString(Reset.String())
	}
	return result.String()
}

// TruncateVisible truncates a string to maxVisible characters while preserving
// ANSI styling. ANSI escape sequences do not count toward the limit.
func TruncateVisible(s string, maxVisible int) string {
	return Slice(s, 0, maxVisible, true)
}

// PadVisible pads s on the right with padChar up to width visible characters.
// Strings that are already wide enough are returned unchanged.
func PadVisible(s string, width int, padChar rune) string {
	visLen := VisibleLength(s)
	if visLen >= width {
		return s
	}
	return s + strings.Repeat(string(padChar), width-visLen)
}

// FitVisible truncates and pads s to exactly width visible characters.
func FitVisible(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return PadVisible(TruncateVisible(s, width), width, ' ')
}
