package tag

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders a compact SNBT form, intended for error messages and
// debugging. The snbt package produces the pretty, colorable rendering.
func (t *Tag) String() string {
	var b strings.Builder
	t.writeTo(&b)
	return b.String()
}

func (t *Tag) writeTo(b *strings.Builder) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}
	switch t.kind {
	case EndKind:
		b.WriteString("End")
	case ByteKind:
		fmt.Fprintf(b, "%db", t.byteVal)
	case ShortKind:
		fmt.Fprintf(b, "%ds", t.shortVal)
	case IntKind:
		fmt.Fprintf(b, "%d", t.intVal)
	case LongKind:
		fmt.Fprintf(b, "%dL", t.longVal)
	case FloatKind:
		b.WriteString(formatFloat(float64(t.floatVal), 32) + "f")
	case DoubleKind:
		b.WriteString(formatFloat(t.doubleVal, 64) + "d")
	case StringKind:
		b.WriteString(QuoteString(t.strVal))
	case ByteArrayKind:
		b.WriteString("[B;")
		for i, v := range t.byteArr {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%db", int8(v))
		}
		b.WriteByte(']')
	case IntArrayKind:
		b.WriteString("[I;")
		for i, v := range t.intArr {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%d", v)
		}
		b.WriteByte(']')
	case LongArrayKind:
		b.WriteString("[L;")
		for i, v := range t.longArr {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%dL", v)
		}
		b.WriteByte(']')
	case ListKind:
		b.WriteByte('[')
		for i, e := range t.list {
			if i > 0 {
				b.WriteByte(',')
			}
			e.writeTo(b)
		}
		b.WriteByte(']')
	case CompoundKind:
		b.WriteByte('{')
		for i, e := range t.entries {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(QuoteName(e.name))
			b.WriteByte(':')
			e.val.writeTo(b)
		}
		b.WriteByte('}')
	default:
		fmt.Fprintf(b, "<kind %d>", byte(t.kind))
	}
}

func formatFloat(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'g', -1, bits)
	// make sure the suffix cannot be read as part of an integer literal
	if !strings.ContainsAny(s, ".eE") && !strings.ContainsAny(s, "nN") {
		s += ".0"
	}
	return s
}

// QuoteName renders a compound member name, quoting only when it contains
// characters outside the SNBT bare-name set.
func QuoteName(name string) string {
	if name != "" && isBareName(name) {
		return name
	}
	return QuoteString(name)
}

func isBareName(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.' || r == '+':
		default:
			return false
		}
	}
	return true
}

// QuoteString renders a double-quoted SNBT string.
func QuoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString("\\\"")
		case '\\':
			b.WriteString("\\\\")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
