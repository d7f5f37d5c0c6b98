package ansi

import "strings"

// Attribute slots a style directive can set. A later directive touching the
// same slot supersedes the earlier one.
const (
	slotIntensity uint16 = 1 << iota
	slotItalic
	slotUnderline
	slotBlink
	slotReverse
	slotConceal
	slotStrike
	slotForeground
	slotBackground
	slotOther
)

// openStyle is a directive seen while scanning and the slots it still owns.
type openStyle struct {
	seq   string
	slots uint16
}

// styleState tracks the style directives that are open at the current scan
// position. It is rebuilt as a prefix when a slice starts mid-run.
type styleState struct {
	styles []openStyle
}

// apply folds a complete SGR sequence (ESC [ params m) into the state.
func (s *styleState) apply(seq string) {
	params := splitSGR(seq[2 : len(seq)-1])

	var mask uint16
	for i := 0; i < len(params); i++ {
		p := params[i]
		if p == 0 {
			s.styles = s.styles[:0]
			mask = 0
			continue
		}
		mask |= slotOf(p)
		if p == 38 || p == 48 || p == 58 {
			i += extendedColorArgs(params[i+1:])
		}
	}
	if mask == 0 {
		return
	}

	kept := s.styles[:0]
	for _, st := range s.styles {
		st.slots &^= mask
		if st.slots != 0 {
			kept = append(kept, st)
		}
	}
	s.styles = append(kept, openStyle{seq: seq, slots: mask})
}

// open reports whether any style is still in effect.
func (s *styleState) open() bool {
	return len(s.styles) > 0
}

// prefix returns the directives that reproduce the current style.
func (s *styleState) prefix() string {
	if len(s.styles) == 0 {
		return ""
	}
	var b strings.Builder
	for _, st := range s.styles {
		b.WriteString(st.seq)
	}
	return b.String()
}

func slotOf(p int) uint16 {
	switch {
	case p == 1 || p == 2 || p == 22:
		return slotIntensity
	case p == 3 || p == 23:
		return slotItalic
	case p == 4 || p == 21 || p == 24:
		return slotUnderline
	case p == 5 || p == 6 || p == 25:
		return slotBlink
	case p == 7 || p == 27:
		return slotReverse
	case p == 8 || p == 28:
		return slotConceal
	case p == 9 || p == 29:
		return slotStrike
	case (p >= 30 && p <= 39) || (p >= 90 && p <= 97):
		return slotForeground
	case (p >= 40 && p <= 49) || (p >= 100 && p <= 107):
		return slotBackground
	}
	return slotOther
}

// extendedColorArgs returns how many parameters follow a 38/48/58 selector:
// 5;n (256 colours) or 2;r;g;b (true colour).
func extendedColorArgs(rest []int) int {
	if len(rest) == 0 {
		return 0
	}
	switch rest[0] {
	case 5:
		return min(2, len(rest))
	case 2:
		return min(4, len(rest))
	}
	return 0
}

// splitSGR splits a semicolon-separated parameter string into ints.
// A missing parameter counts as 0, so "" is a reset.
func splitSGR(s string) []int {
	var result []int
	val := 0
	hasDigit := false
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			val = val*10 + int(s[i]-'0')
			hasDigit = true
		} else if s[i] == ';' {
			if hasDigit {
				result = append(result, val)
			} else {
				result = append(result, 0)
			}
			val = 0
			hasDigit = false
		}
	}
	if hasDigit {
		result = append(result, val)
	} else {
		result = append(result, 0)
	}
	return result
}
