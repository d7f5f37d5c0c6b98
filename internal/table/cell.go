package table

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/stlalpha/ansitube/internal/ansi"
)

// Kind classifies a cell value for display.
type Kind int

const (
	KindText Kind = iota
	KindDateTime
	KindNull
	KindBool
	KindScalar
	KindEnum
	KindUnknown
)

var kindNames = [...]string{"text", "datetime", "null", "bool", "scalar", "enum", "unknown"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Enum is implemented by symbolic values. They are shown as Type::Member.
type Enum interface {
	EnumMember() string
}

// DateTimeLayout is the format used for time values.
const DateTimeLayout = "2006-01-02 15:04:05"

// KindOf returns the display kind of v. Every value maps to exactly one kind.
func KindOf(v any) Kind {
	if v == nil || isNil(v) {
		return KindNull
	}

	switch v.(type) {
	case Enum:
		return KindEnum
	case time.Time, *time.Time:
		return KindDateTime
	case string, []byte, fmt.Stringer:
		return KindText
	case bool:
		return KindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return KindScalar
	}

	// Named types over basic kinds, e.g. type Score int.
	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return KindText
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindScalar
	}
	return KindUnknown
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// FormatCell renders a value as styled cell text.
func FormatCell(v any) string {
	switch KindOf(v) {
	case KindText:
		switch t := v.(type) {
		case string:
			return t
		case []byte:
			return string(t)
		case fmt.Stringer:
			return t.String()
		}
		return reflect.ValueOf(v).String()
	case KindDateTime:
		if t, ok := v.(*time.Time); ok {
			return ansi.Wrap(t.Format(DateTimeLayout), ansi.FgCyan)
		}
		return ansi.Wrap(v.(time.Time).Format(DateTimeLayout), ansi.FgCyan)
	case KindNull:
		return ansi.Wrap("NULL", ansi.FgCyan)
	case KindBool:
		if reflect.ValueOf(v).Bool() {
			return ansi.Wrap("TRUE", ansi.FgGreen)
		}
		return ansi.Wrap("FALSE", ansi.FgRed)
	case KindScalar:
		return ansi.Wrap(fmt.Sprint(v), ansi.FgGreen)
	case KindEnum:
		return ansi.Wrap(shortTypeName(v)+"::"+v.(Enum).EnumMember(), ansi.FgMagenta)
	default:
		return ansi.Wrap(reflect.TypeOf(v).String(), ansi.FgBrightBlack)
	}
}

func shortTypeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
