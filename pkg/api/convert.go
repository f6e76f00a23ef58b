package api

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/ssargent/fourcc/pkg/fourcc"
)

// ParseUint32 parses an unsigned 32-bit integer in Go literal syntax
// (decimal, 0x hex, 0o octal or 0b binary) and returns its code.
func ParseUint32(s string) (fourcc.FourCC, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return fourcc.FourCC{}, fmt.Errorf("invalid uint32 %q: %w", s, err)
	}
	return fourcc.FromUint32(uint32(v)), nil
}

// ParseHex parses exactly four bytes written as eight hex digits, with an
// optional 0x prefix.
func ParseHex(s string) (fourcc.FourCC, error) {
	digits := s
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return fourcc.FourCC{}, fmt.Errorf("invalid hex %q: %w", s, err)
	}

	var c fourcc.FourCC
	if err := c.UnmarshalBinary(raw); err != nil {
		return fourcc.FourCC{}, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return c, nil
}
