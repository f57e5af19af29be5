// Package output renders document values in a stable textual form:
// single-line, compact, mapping keys sorted ascending, no escaping beyond
// the mandatory JSON escape set. The rendering is deterministic so it can
// double as the token form for multiset comparison.
package output

import (
	"bytes"
	"strconv"

	"semdiff/internal/value"
)

// Serialize renders v as a deterministic single-line string.
func Serialize(v *value.Value) string {
	var buf bytes.Buffer
	writeValue(&buf, v)
	return buf.String()
}

func writeValue(buf *bytes.Buffer, v *value.Value) {
	switch v.Kind() {
	case value.KindNull:
		buf.WriteString("null")
	case value.KindBool:
		if v.AsBool() {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.KindNumber:
		writeNumber(buf, v)
	case value.KindString:
		writeString(buf, v.AsString())
	case value.KindSequence:
		buf.WriteByte('[')
		for i, e := range v.Elems() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeValue(buf, e)
		}
		buf.WriteByte(']')
	case value.KindMapping:
		buf.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, k)
			buf.WriteByte(':')
			m, _ := v.Member(k)
			writeValue(buf, m)
		}
		buf.WriteByte('}')
	}
}

func writeNumber(buf *bytes.Buffer, v *value.Value) {
	if v.IsInt() {
		buf.WriteString(strconv.FormatInt(v.AsInt(), 10))
		return
	}
	buf.WriteString(FormatFloat(v.AsFloat()))
}

// writeString writes a JSON string literal escaping only the mandatory set:
// quote, backslash, and control characters below 0x20. Multi-byte text is
// emitted verbatim.
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		buf.WriteString(s[start:i])
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			const hex = "0123456789abcdef"
			buf.WriteString(`\u00`)
			buf.WriteByte(hex[c>>4])
			buf.WriteByte(hex[c&0xf])
		}
		start = i + 1
	}
	buf.WriteString(s[start:])
	buf.WriteByte('"')
}
