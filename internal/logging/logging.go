// Package logging gates debug output of the viewer. Everything else logs
// through the standard logger with an INFO:, WARN: or ERROR: prefix.
package logging

import "log"

// DebugEnabled controls whether Debug() produces output.
// Set via -debug flag, the debug config field or DEBUG=1.
var DebugEnabled bool

// Enable switches debug output on or off.
func Enable(on bool) {
	DebugEnabled = on
	if on {
		log.Printf("INFO: Debug logging enabled")
	}
}

// Debug logs a message only when DebugEnabled is true.
func Debug(format string, args ...any) {
	if DebugEnabled {
		log.Printf("DEBUG: "+format, args...)
	}
}
