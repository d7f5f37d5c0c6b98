// Package terminal adapts a local or remote terminal to the screens: it
// reports viewport sizes and transcodes output for clients that expect
// CP437 instead of UTF-8.
package terminal

import "strings"

// OutputMode specifies how terminal output should be encoded.
type OutputMode int

const (
	OutputModeAuto  OutputMode = iota // Pick from the TERM value
	OutputModeUTF8                    // Write UTF-8 unchanged
	OutputModeCP437                   // Transcode text to CP437 for DOS-era clients
)

func (m OutputMode) String() string {
	switch m {
	case OutputModeUTF8:
		return "utf8"
	case OutputModeCP437:
		return "cp437"
	}
	return "auto"
}

// ParseOutputMode reads a mode name as written in the config file.
// Unknown names mean auto.
func ParseOutputMode(s string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "utf8", "utf-8":
		return OutputModeUTF8
	case "cp437", "ibm437":
		return OutputModeCP437
	}
	return OutputModeAuto
}

// ResolveOutputMode turns auto into a concrete mode for the given TERM value.
// Classic ANSI-BBS terminal types get CP437; everything else gets UTF-8.
func ResolveOutputMode(mode OutputMode, term string) OutputMode {
	if mode != OutputModeAuto {
		return mode
	}
	switch strings.ToLower(term) {
	case "ansi", "scoansi", "ansi-bbs", "pcansi", "syncterm":
		return OutputModeCP437
	}
	return OutputModeUTF8
}
