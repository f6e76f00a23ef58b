package fourcc

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Size is the length of a FourCC in bytes.
const Size = 4

// FourCC is a four-character code.
type FourCC [Size]byte

// New returns the FourCC holding b.
func New(b [Size]byte) FourCC {
	return FourCC(b)
}

// FromBytes returns the FourCC made of the first four bytes of b.
// It returns a *LengthError if b is shorter than four bytes.
func FromBytes(b []byte) (FourCC, error) {
	if len(b) < Size {
		return FourCC{}, &LengthError{Len: len(b)}
	}
	return FourCC(b[:Size]), nil
}

// MustFromBytes is like FromBytes but panics if b is shorter than four bytes.
func MustFromBytes(b []byte) FourCC {
	c, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return c
}

// FromUint32 decomposes v big-endian: the most significant byte becomes c[0].
func FromUint32(v uint32) FourCC {
	var c FourCC
	binary.BigEndian.PutUint32(c[:], v)
	return c
}

// Uint32 returns the code as a big-endian integer.
func (c FourCC) Uint32() uint32 {
	return binary.BigEndian.Uint32(c[:])
}

// Bytes returns a copy of the four bytes.
func (c FourCC) Bytes() []byte {
	return []byte{c[0], c[1], c[2], c[3]}
}

// Equal reports whether c and o hold the same bytes. It is the same as c == o.
func (c FourCC) Equal(o FourCC) bool {
	return c == o
}

// Hash returns a 64-bit hash of the four bytes. Equal codes hash equally.
func (c FourCC) Hash() uint64 {
	return xxhash.Sum64(c[:])
}

// IsPrintable reports whether every byte is printable ASCII (0x20-0x7e).
func (c FourCC) IsPrintable() bool {
	for _, b := range c {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}
