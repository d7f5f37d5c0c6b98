package terminal

import (
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/stlalpha/ansitube/internal/logging"
)

type escState int

const (
	escGround escState = iota // plain text
	escEscape                 // saw ESC
	escCSI                    // saw ESC [
)

// CP437Writer encodes UTF-8 text to CP437 and passes escape sequences through
// unchanged. Runes and sequences split across writes are held back until
// they are complete. Runes with no CP437 form are replaced.
type CP437Writer struct {
	w       io.Writer
	encoder *encoding.Encoder
	state   escState
	seq     bytes.Buffer
	pending []byte
}

// NewCP437Writer wraps w.
func NewCP437Writer(w io.Writer) *CP437Writer {
	return &CP437Writer{
		w:       w,
		encoder: encoding.ReplaceUnsupported(charmap.CodePage437.NewEncoder()),
	}
}

// Write implements io.Writer. It reports len(p) on success even though the
// encoded output is usually shorter.
func (cw *CP437Writer) Write(p []byte) (int, error) {
	var out bytes.Buffer
	text := append([]byte(nil), cw.pending...)
	cw.pending = nil

	flushText := func() {
		if len(text) == 0 {
			return
		}
		encoded, err := cw.encoder.Bytes(text)
		if err != nil {
			logging.Debug("cp437: encoding %q: %v", text, err)
		}
		out.Write(encoded)
		text = text[:0]
	}

	for _, b := range p {
		switch cw.state {
		case escGround:
			if b == 0x1b {
				flushText()
				cw.seq.WriteByte(b)
				cw.state = escEscape
			} else {
				text = append(text, b)
			}
		case escEscape:
			cw.seq.WriteByte(b)
			if b == '[' {
				cw.state = escCSI
				continue
			}
			out.Write(cw.seq.Bytes())
			cw.seq.Reset()
			cw.state = escGround
		case escCSI:
			cw.seq.WriteByte(b)
			if b >= 0x40 && b <= 0x7e {
				out.Write(cw.seq.Bytes())
				cw.seq.Reset()
				cw.state = escGround
			}
		}
	}

	if n := incompleteTail(text); n > 0 {
		cw.pending = append(cw.pending, text[len(text)-n:]...)
		text = text[:len(text)-n]
	}
	flushText()

	if out.Len() > 0 {
		if _, err := cw.w.Write(out.Bytes()); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// incompleteTail returns how many bytes at the end of b belong to a rune that
// has not been fully written yet.
func incompleteTail(b []byte) int {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if utf8.FullRune(b[len(b)-i:]) {
				return 0
			}
			return i
		}
	}
	return 0
}

// NewWriter returns w itself for UTF-8 output and a CP437Writer around it
// for CP437 output. Auto must be resolved by the caller.
func NewWriter(w io.Writer, mode OutputMode) io.Writer {
	if mode == OutputModeCP437 {
		return NewCP437Writer(w)
	}
	return w
}
