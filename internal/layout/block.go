package layout

import (
	"fmt"
	"strings"

	"github.com/stlalpha/ansitube/internal/ansi"
)

// Block is multi-row text framed by a prefix and a postfix on every row.
// Long rows are wrapped at the inner width by visible character count.
// Fragments that are Renderers are rendered at the inner width, so a Block
// nested in a Block inherits the narrower width of its container.
type Block struct {
	fragments []any
	prefix    string
	postfix   string
	width     int
}

// BlockOption configures a Block.
type BlockOption func(*Block)

// Prefix sets the text written at the start of every row.
func Prefix(s string) BlockOption {
	return func(b *Block) { b.prefix = s }
}

// Postfix sets the text written at the end of every row.
func Postfix(s string) BlockOption {
	return func(b *Block) { b.postfix = s }
}

// BlockWidth sets the width used by String (default DefaultWidth).
func BlockWidth(width int) BlockOption {
	return func(b *Block) { b.width = width }
}

// NewBlock creates a Block. content is a string, a fmt.Stringer, a Renderer,
// or a []string / []any of those.
func NewBlock(content any, opts ...BlockOption) Block {
	b := Block{width: DefaultWidth}
	switch v := content.(type) {
	case nil:
	case []any:
		b.fragments = v
	case []string:
		b.fragments = make([]any, len(v))
		for i, s := range v {
			b.fragments[i] = s
		}
	default:
		b.fragments = []any{v}
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Render lays the fragments out in rows of at most width visible characters,
// prefix and postfix included. It returns "" when the frame leaves no room.
func (b Block) Render(width int) string {
	inner := width - ansi.VisibleLength(b.prefix) - ansi.VisibleLength(b.postfix)
	if inner <= 0 {
		return ""
	}

	source := b.sourceLines(inner)
	if len(source) == 0 {
		return ""
	}

	var rows []string
	for _, line := range source {
		length := ansi.VisibleLength(line)
		offset := 0
		for {
			rows = append(rows, ansi.Slice(line, offset, inner, true))
			offset += inner
			if length-offset <= 0 {
				break
			}
		}
	}

	return b.prefix + strings.Join(rows, b.postfix+"\n"+b.prefix) + b.postfix
}

var lineCleaner = strings.NewReplacer("\r", "", "\t", "  ")

// sourceLines flattens the fragments into single lines.
func (b Block) sourceLines(inner int) []string {
	var lines []string
	for _, fragment := range b.fragments {
		var text string
		switch f := fragment.(type) {
		case Renderer:
			text = f.Render(inner)
		case string:
			text = f
		case fmt.Stringer:
			text = f.String()
		default:
			text = fmt.Sprint(f)
		}
		for _, line := range strings.Split(text, "\n") {
			lines = append(lines, lineCleaner.Replace(line))
		}
	}
	return lines
}

// String renders the block at its configured width.
func (b Block) String() string {
	return b.Render(b.width)
}
