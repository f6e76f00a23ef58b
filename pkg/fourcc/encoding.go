package fourcc

// Parse returns the FourCC whose bytes are the bytes of s. s must be exactly
// four bytes long (not four runes); otherwise Parse returns a *LengthError.
func Parse(s string) (FourCC, error) {
	if len(s) != Size {
		return FourCC{}, &LengthError{Len: len(s)}
	}
	return FourCC([]byte(s)), nil
}

// MustParse is like Parse but panics on error. It is meant for
// package-level code values.
func MustParse(s string) FourCC {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler. The text is String().
func (c FourCC) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *FourCC) UnmarshalText(text []byte) error {
	if len(text) != Size {
		return &LengthError{Len: len(text)}
	}
	*c = FourCC(text)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The result is the raw
// four bytes.
func (c FourCC) MarshalBinary() ([]byte, error) {
	return c.Bytes(), nil
}

// AppendBinary appends the raw four bytes to dst.
func (c FourCC) AppendBinary(dst []byte) ([]byte, error) {
	return append(dst, c[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must be
// exactly four bytes.
func (c *FourCC) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return &LengthError{Len: len(data)}
	}
	*c = FourCC(data)
	return nil
}
