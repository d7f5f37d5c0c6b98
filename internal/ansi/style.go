package ansi

import (
	"strconv"
	"strings"
)

// Code is a single SGR parameter value.
type Code interface {
	SGR() int
}

// Foreground selects a text colour.
type Foreground int

const (
	FgBlack   Foreground = 30
	FgRed     Foreground = 31
	FgGreen   Foreground = 32
	FgYellow  Foreground = 33
	FgBlue    Foreground = 34
	FgMagenta Foreground = 35
	FgCyan    Foreground = 36
	FgWhite   Foreground = 37
	FgDefault Foreground = 39

	FgBrightBlack   Foreground = 90
	FgBrightRed     Foreground = 91
	FgBrightGreen   Foreground = 92
	FgBrightYellow  Foreground = 93
	FgBrightBlue    Foreground = 94
	FgBrightMagenta Foreground = 95
	FgBrightCyan    Foreground = 96
	FgBrightWhite   Foreground = 97
)

// Background selects a cell background colour.
type Background int

const (
	BgBlack   Background = 40
	BgRed     Background = 41
	BgGreen   Background = 42
	BgYellow  Background = 43
	BgBlue    Background = 44
	BgMagenta Background = 45
	BgCyan    Background = 46
	BgWhite   Background = 47
	BgDefault Background = 49

	BgBrightBlack   Background = 100
	BgBrightRed     Background = 101
	BgBrightGreen   Background = 102
	BgBrightYellow  Background = 103
	BgBrightBlue    Background = 104
	BgBrightMagenta Background = 105
	BgBrightCyan    Background = 106
	BgBrightWhite   Background = 107
)

// Effect is a text attribute. Reset closes every open style.
type Effect int

const (
	Reset     Effect = 0
	Bold      Effect = 1
	Dim       Effect = 2
	Italic    Effect = 3
	Underline Effect = 4
	Blink     Effect = 5
	Reverse   Effect = 7
	Hidden    Effect = 8
	Strike    Effect = 9
)

func (f Foreground) SGR() int { return int(f) }
func (b Background) SGR() int { return int(b) }
func (e Effect) SGR() int     { return int(e) }

func (f Foreground) String() string { return Sequence(f) }
func (b Background) String() string { return Sequence(b) }
func (e Effect) String() string     { return Sequence(e) }

// Sequence joins codes into one directive, e.g. Sequence(Bold, FgRed) is "\x1b[1;31m".
func Sequence(codes ...Code) string {
	if len(codes) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\x1b[")
	for i, c := range codes {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(c.SGR()))
	}
	b.WriteByte('m')
	return b.String()
}

// Wrap styles text with codes and closes it with a reset.
// Empty text stays empty.
func Wrap(text string, codes ...Code) string {
	if text == "" {
		return ""
	}
	return Sequence(codes...) + text + Reset.String()
}
