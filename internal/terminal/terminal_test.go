package terminal

import (
	"errors"
	"testing"
)

func TestParseOutputMode(t *testing.T) {
	tests := []struct {
		input string
		want  OutputMode
	}{
		{"utf8", OutputModeUTF8},
		{"UTF-8", OutputModeUTF8},
		{"cp437", OutputModeCP437},
		{" IBM437 ", OutputModeCP437},
		{"", OutputModeAuto},
		{"latin1", OutputModeAuto},
	}
	for _, tt := range tests {
		if got := ParseOutputMode(tt.input); got != tt.want {
			t.Errorf("ParseOutputMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolveOutputMode(t *testing.T) {
	tests := []struct {
		mode OutputMode
		term string
		want OutputMode
	}{
		{OutputModeAuto, "xterm-256color", OutputModeUTF8},
		{OutputModeAuto, "ansi", OutputModeCP437},
		{OutputModeAuto, "SyncTERM", OutputModeCP437},
		{OutputModeAuto, "", OutputModeUTF8},
		{OutputModeCP437, "xterm", OutputModeCP437},
		{OutputModeUTF8, "ansi", OutputModeUTF8},
	}
	for _, tt := range tests {
		if got := ResolveOutputMode(tt.mode, tt.term); got != tt.want {
			t.Errorf("ResolveOutputMode(%v, %q) = %v, want %v", tt.mode, tt.term, got, tt.want)
		}
	}
}

func TestSize(t *testing.T) {
	s := NewSize(100, 30)
	if s.Width() != 100 || s.Height() != 30 {
		t.Errorf("NewSize(100, 30) = %dx%d", s.Width(), s.Height())
	}
	s.Resize(0, -1)
	if s.Width() != DefaultWidth || s.Height() != DefaultHeight {
		t.Errorf("Resize(0, -1) = %dx%d, want defaults", s.Width(), s.Height())
	}
}

func TestFromFD(t *testing.T) {
	orig := getSize
	defer func() { getSize = orig }()

	getSize = func(int) (int, int, error) { return 132, 43, nil }
	if s := FromFD(1); s.Width() != 132 || s.Height() != 43 {
		t.Errorf("FromFD = %dx%d, want 132x43", s.Width(), s.Height())
	}

	getSize = func(int) (int, int, error) { return 0, 0, errors.New("not a tty") }
	if s := FromFD(1); s.Width() != DefaultWidth || s.Height() != DefaultHeight {
		t.Errorf("FromFD on error = %dx%d, want defaults", s.Width(), s.Height())
	}
}
