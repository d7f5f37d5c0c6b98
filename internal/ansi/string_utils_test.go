package ansi

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain text", "Hello", 5},
		{"red text", "\x1b[31mRed\x1b[0m", 3},
		{"green text with bold", "\x1b[1;32mGreen Text\x1b[0m", 10},
		{"empty string", "", 0},
		{"only ansi codes", "\x1b[31m\x1b[0m", 0},
		{"multiple colors", "\x1b[31mRed\x1b[0m \x1b[32mGreen\x1b[0m", 9}, // "Red Green"
		{"bright colors", "\x1b[1;31mBright Red\x1b[0m", 10},
		{"box drawing runes", "┌──┐", 4},
		{"extended colour", "\x1b[38;5;196mX\x1b[0m", 1},
		{"cursor sequence", "a\x1b[2Kb", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleLength(tt.input)
			if got != tt.want {
				t.Errorf("VisibleLength(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	white, yellow, reset := FgWhite.String(), FgYellow.String(), Reset.String()
	styled := white + "foo" + yellow + "bar"

	tests := []struct {
		name     string
		input    string
		offset   int
		length   int
		preserve bool
		want     string
	}{
		{"plain window", "Hello World", 6, 5, false, "World"},
		{"plain window preserving", "Hello World", 0, 5, true, "Hello"},
		{"offset at end", "abc", 3, 2, true, ""},
		{"offset past end", "abc", 10, 2, true, ""},
		{"zero length", "abc", 0, 0, true, ""},
		{"negative length", "abc", 0, -1, true, ""},
		{"negative offset", "abc", -2, 2, true, "ab"},
		{"length past end", "abc", 1, 99, true, "bc"},
		{"whole styled run", styled, 0, 6, true, white + "foo" + yellow + "bar" + reset},
		{"first half", styled, 0, 3, true, white + "foo" + reset},
		{"second half", styled, 3, 3, true, yellow + "bar" + reset},
		{"mid-run", "\x1b[31mRed Text\x1b[0m", 4, 4, true, "\x1b[31mText\x1b[0m"},
		{"superseded colour", "\x1b[1m\x1b[31mab\x1b[32mcd", 3, 1, true, "\x1b[1m\x1b[32md\x1b[0m"},
		{"reset before window", "\x1b[31mab\x1b[0mcd", 2, 2, true, "cd"},
		{"extended colours", "\x1b[38;5;196mab\x1b[48;5;21mcd", 3, 1, true, "\x1b[38;5;196m\x1b[48;5;21md\x1b[0m"},
		{"compound with reset", "\x1b[0;31mab", 1, 1, true, "\x1b[0;31mb\x1b[0m"},
		{"without preserving", "\x1b[31mRed\x1b[0m", 1, 1, false, "e"},
		{"without preserving keeps inner codes", "a\x1b[1mbc", 0, 3, false, "a\x1b[1mbc"},
		{"unicode runes", "┌──┬──┐", 2, 3, true, "─┬─"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(tt.input, tt.offset, tt.length, tt.preserve)
			if got != tt.want {
				t.Errorf("Slice(%q, %d, %d, %v) = %q, want %q", tt.input, tt.offset, tt.length, tt.preserve, got, tt.want)
			}
		})
	}
}

// Tiling a styled string with preserving slices and stripping the result
// must give back the plain text.
func TestSliceTilingPreservesContent(t *testing.T) {
	inputs := []string{
		"plain text without styles",
		FgWhite.String() + "foo" + FgYellow.String() + "bar" + Reset.String() + " baz",
		"\x1b[1;32m| id | name |\x1b[0m \x1b[36m2024-01-01 10:00:00\x1b[0m",
		"\x1b[41m┌────┐\x1b[0m\x1b[7m│x│\x1b[27m",
	}

	for _, input := range inputs {
		plain := xansi.Strip(input)
		total := VisibleLength(input)
		for width := 1; width <= total; width++ {
			var b strings.Builder
			for offset := 0; offset < total; offset += width {
				part := Slice(input, offset, width, true)
				if n := VisibleLength(part); n > width {
					t.Fatalf("Slice(%q, %d, %d) visible length %d exceeds width", input, offset, width, n)
				}
				b.WriteString(part)
			}
			if got := xansi.Strip(b.String()); got != plain {
				t.Errorf("tiling %q at width %d = %q, want %q", input, width, got, plain)
			}
		}
	}
}

func TestTruncateVisible(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		max        int
		wantVisLen int
	}{
		{"plain text under limit", "Hello", 10, 5},
		{"plain text exact limit", "Hello", 5, 5},
		{"plain text over limit", "Hello World", 5, 5},
		{"red text under limit", "\x1b[31mRed Text\x1b[0m", 10, 8},
		{"red text over limit", "\x1b[31mRed Text\x1b[0m", 3, 3},
		{"zero limit", "Hello", 0, 0},
		{"empty string", "", 5, 0},
		{"only ansi codes", "\x1b[31m\x1b[0m", 5, 0},
		{"colored text truncated", "\x1b[32mGreen World\x1b[0m", 5, 5}, // "Green"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateVisible(tt.input, tt.max)
			gotVis := VisibleLength(got)
			if gotVis != tt.wantVisLen {
				t.Errorf("TruncateVisible(%q, %d) visible length = %d, want %d", tt.input, tt.max, gotVis, tt.wantVisLen)
			}
		})
	}
}

func TestTruncateVisibleClosesStyle(t *testing.T) {
	got := TruncateVisible("\x1b[31mRed Text\x1b[0m", 3)
	if want := "\x1b[31mRed\x1b[0m"; got != want {
		t.Errorf("TruncateVisible = %q, want %q", got, want)
	}
}

func TestPadVisible(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		width      int
		padChar    rune
		wantVisLen int
	}{
		{"pad plain text", "Hello", 10, ' ', 10},
		{"no pad needed", "Hello", 5, ' ', 5},
		{"no pad under width", "Hello", 3, ' ', 5}, // Already longer
		{"pad red text", "\x1b[31mRed\x1b[0m", 10, ' ', 10},
		{"pad with dash", "Test", 8, '-', 8},
		{"empty string pad", "", 5, ' ', 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadVisible(tt.input, tt.width, tt.padChar)
			gotVis := VisibleLength(got)
			if gotVis != tt.wantVisLen {
				t.Errorf("PadVisible(%q, %d, %q) visible length = %d, want %d", tt.input, tt.width, tt.padChar, gotVis, tt.wantVisLen)
			}
		})
	}
}

func TestFitVisible(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"pads short text", "ab", 4, "ab  "},
		{"cuts long text", "abcdef", 3, "abc"},
		{"closes cut style", "\x1b[35mabcdef", 2, "\x1b[35mab\x1b[0m"},
		{"pads styled text", "\x1b[35mab\x1b[0m", 3, "\x1b[35mab\x1b[0m "},
		{"zero width", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitVisible(tt.input, tt.width); got != tt.want {
				t.Errorf("FitVisible(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}
