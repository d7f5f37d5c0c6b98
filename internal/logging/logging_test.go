package logging

import (
	"bytes"
	"log"
	"os"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		DebugEnabled = false
	})
	return &buf
}

func TestDebugDisabled(t *testing.T) {
	buf := captureLog(t)
	DebugEnabled = false

	Debug("this should not appear")

	if buf.Len() > 0 {
		t.Errorf("Debug output when disabled: %s", buf.String())
	}
}

func TestDebugEnabled(t *testing.T) {
	buf := captureLog(t)
	DebugEnabled = true

	Debug("test message %d", 42)

	if !bytes.Contains(buf.Bytes(), []byte("DEBUG: test message 42")) {
		t.Errorf("Expected debug output, got: %s", buf.String())
	}
}

func TestEnable(t *testing.T) {
	buf := captureLog(t)

	Enable(true)
	if !DebugEnabled {
		t.Fatal("Enable(true) left debug off")
	}
	if !bytes.Contains(buf.Bytes(), []byte("INFO: Debug logging enabled")) {
		t.Errorf("Expected enable notice, got: %s", buf.String())
	}

	buf.Reset()
	Enable(false)
	Debug("hidden")
	if buf.Len() > 0 {
		t.Errorf("Debug output after Enable(false): %s", buf.String())
	}
}
