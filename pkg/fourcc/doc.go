// Package fourcc provides the FourCC value type, a four-character code as
// used to tag boxes, atoms and chunks in binary container formats.
//
// Passing a FourCC in a public API instead of a bare uint32 or [4]byte makes
// the value's intended use explicit.
//
// # Representation
//
// A FourCC is a [4]byte array. It has value semantics, is comparable with ==,
// can be used as a map key and occupies exactly four bytes with no padding:
//
//	[b0][b1][b2][b3]
//
// The bytes are stored in the order they were given. Viewed as an integer the
// code is big-endian, b0 being the most significant byte:
//
//	FourCC{'A', 'B', 'C', 'D'}.Uint32() == 0x41424344
//
// Any byte value is allowed in any position, including zero and bytes that
// are not valid UTF-8. A FourCC carries no text-encoding guarantee.
//
// # Construction
//
// From a literal or a fixed-size array (always succeeds):
//
//	uuid := fourcc.FourCC{'u', 'u', 'i', 'd'}
//	moov := fourcc.MustParse("moov")
//
// From a longer buffer, taking the first four bytes:
//
//	code, err := fourcc.FromBytes(data)
//	if err != nil {
//	    return err // fewer than 4 bytes
//	}
//
// MustFromBytes panics instead of returning an error and is meant for input
// whose length the caller has already checked.
//
// From an integer:
//
//	code := fourcc.FromUint32(0x6d6f6f76) // "moov"
//
// # Matching
//
// Package-level values work as switch cases:
//
//	var (
//	    UUID = fourcc.MustParse("uuid")
//	    MOOV = fourcc.MustParse("moov")
//	)
//
//	switch code {
//	case MOOV:
//	    ...
//	case UUID:
//	    ...
//	}
//
// # Display
//
// String renders the bytes as text when they are valid UTF-8. Otherwise each
// byte is escaped: printable ASCII is kept, tab, newline, carriage return,
// backslash and quotes get their usual backslash escapes, and everything else
// becomes \xHH with lowercase hex digits. Rendering never fails.
//
//	fourcc.FourCC{'u', 0xFF, 'i', 0x00}.String() // u\xffi\x00
//
// GoString (and the %#v verb) wraps the same text as FourCC{...}:
//
//	fmt.Sprintf("%#v", fourcc.MustParse("uuid")) // FourCC{uuid}
//
// # Text and binary encodings
//
// FourCC implements encoding.TextMarshaler and encoding.TextUnmarshaler, so
// encoding/json and gopkg.in/yaml.v3 store it as a string. Unmarshaling
// requires exactly four bytes of text and returns a *LengthError otherwise.
// Codes that are not valid UTF-8 marshal to their escaped form, which is
// lossy and will not unmarshal; use MarshalBinary for those.
//
// # Errors
//
// Length failures are reported as *LengthError, which carries the offending
// length and wraps ErrInvalidLength:
//
//	var lerr *fourcc.LengthError
//	if errors.As(err, &lerr) {
//	    log.Printf("got %d bytes", lerr.Len)
//	}
//
// # Thread Safety
//
// A FourCC is an immutable value and is safe to copy and share between
// goroutines.
package fourcc
