package fourcc

import (
	"fmt"
	"io"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// String returns the code as text. Codes that are not valid UTF-8 are
// rendered with escape sequences instead, so String never fails.
func (c FourCC) String() string {
	if utf8.Valid(c[:]) {
		return string(c[:])
	}
	return string(c.appendEscaped(make([]byte, 0, 4*Size)))
}

// GoString returns the debug form, FourCC{<String()>}.
func (c FourCC) GoString() string {
	return "FourCC{" + c.String() + "}"
}

// Format implements fmt.Formatter.
//
//	%s %v  String()
//	%#v    GoString()
//	%q     quoted String()
//	%x %X  hex of the four bytes
//	%d     Uint32()
func (c FourCC) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			_, _ = io.WriteString(f, c.GoString())
			return
		}
		fmt.Fprintf(f, fmt.FormatString(f, 's'), c.String())
	case 's', 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), c.String())
	case 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), c[:])
	case 'd':
		fmt.Fprintf(f, fmt.FormatString(f, verb), c.Uint32())
	default:
		fmt.Fprintf(f, "%%!%c(fourcc.FourCC=%s)", verb, c.String())
	}
}

// appendEscaped appends the escaped form of every byte to dst.
// It covers all 256 byte values.
func (c FourCC) appendEscaped(dst []byte) []byte {
	for _, b := range c {
		switch b {
		case '\t':
			dst = append(dst, '\\', 't')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\\', '\'', '"':
			dst = append(dst, '\\', b)
		default:
			if b >= 0x20 && b <= 0x7e {
				dst = append(dst, b)
			} else {
				dst = append(dst, '\\', 'x', hexDigits[b>>4], hexDigits[b&0x0f])
			}
		}
	}
	return dst
}
