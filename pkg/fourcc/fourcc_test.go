package fourcc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFourCC_Equality(t *testing.T) {
	uuid := FourCC{0x75, 0x75, 0x69, 0x64}

	assert.Equal(t, MustParse("uuid"), uuid)
	assert.True(t, uuid == FourCC{'u', 'u', 'i', 'd'})
	assert.True(t, uuid.Equal(MustFromBytes([]byte("uuid"))))
	assert.NotEqual(t, MustParse("diuu"), uuid)
	assert.False(t, uuid.Equal(MustParse("diuu")))
}

func TestFourCC_Hash(t *testing.T) {
	a := MustParse("moov")
	b := FromUint32(a.Uint32())

	assert.Equal(t, a.Hash(), b.Hash(), "equal values must hash equally")
	assert.NotEqual(t, a.Hash(), MustParse("voom").Hash())

	seen := map[FourCC]int{a: 1}
	seen[b]++
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[MustParse("moov")])
}

func TestFourCC_IntConversions(t *testing.T) {
	testCases := []struct {
		name  string
		code  FourCC
		value uint32
	}{
		{name: "ascii", code: FourCC{'A', 'B', 'C', 'D'}, value: 0x41424344},
		{name: "zero", code: FourCC{}, value: 0},
		{name: "all ones", code: FourCC{0xff, 0xff, 0xff, 0xff}, value: 0xffffffff},
		{name: "most significant first", code: FourCC{0x01, 0x00, 0x00, 0x00}, value: 0x01000000},
		{name: "least significant last", code: FourCC{0x00, 0x00, 0x00, 0x01}, value: 0x00000001},
		{name: "mixed", code: FourCC{'u', 0xff, 'i', 0x00}, value: 0x75ff6900},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.value, tc.code.Uint32())
			assert.Equal(t, tc.code, FromUint32(tc.value))
			assert.Equal(t, tc.code, FromUint32(tc.code.Uint32()))
			assert.Equal(t, tc.value, FromUint32(tc.value).Uint32())
		})
	}
}

func TestFromBytes(t *testing.T) {
	t.Run("exact length", func(t *testing.T) {
		c, err := FromBytes([]byte("moof"))
		require.NoError(t, err)
		assert.Equal(t, FourCC{'m', 'o', 'o', 'f'}, c)
	})

	t.Run("takes the first four bytes", func(t *testing.T) {
		data := []byte("moofftyp")
		c, err := FromBytes(data)
		require.NoError(t, err)
		assert.Equal(t, MustParse("moof"), c)
		assert.Equal(t, MustParse("ftyp"), MustFromBytes(data[4:]))
	})

	t.Run("copies the input", func(t *testing.T) {
		data := []byte("free")
		c, err := FromBytes(data)
		require.NoError(t, err)
		data[0] = 'X'
		assert.Equal(t, MustParse("free"), c)
	})

	for _, n := range []int{0, 1, 2, 3} {
		data := bytes.Repeat([]byte{'a'}, n)
		c, err := FromBytes(data)
		require.Error(t, err, "length %d", n)
		assert.Equal(t, FourCC{}, c)
		assert.ErrorIs(t, err, ErrInvalidLength)

		var lerr *LengthError
		require.True(t, errors.As(err, &lerr))
		assert.Equal(t, n, lerr.Len)
	}

	t.Run("nil input", func(t *testing.T) {
		_, err := FromBytes(nil)
		assert.ErrorIs(t, err, ErrInvalidLength)
	})
}

func TestMustFromBytes_PanicsOnShortInput(t *testing.T) {
	assert.PanicsWithError(t, "fourcc: invalid length: expected 4 bytes, got 3", func() {
		MustFromBytes([]byte("moo"))
	})
	assert.NotPanics(t, func() {
		MustFromBytes([]byte("moov"))
	})
}

func TestNew(t *testing.T) {
	arr := [4]byte{'t', 'r', 'u', 'n'}
	c := New(arr)
	arr[0] = 'X'
	assert.Equal(t, MustParse("trun"), c)
}

func TestFourCC_ValueSemantics(t *testing.T) {
	a := MustParse("mdat")
	b := a
	b[0] = 'x'
	assert.Equal(t, MustParse("mdat"), a)

	raw := a.Bytes()
	raw[0] = 'x'
	assert.Equal(t, MustParse("mdat"), a)
}

func TestFourCC_Layout(t *testing.T) {
	assert.Equal(t, uintptr(Size), unsafe.Sizeof(FourCC{}))
	assert.Equal(t, uintptr(1), unsafe.Alignof(FourCC{}))

	type boxHeader struct {
		Size uint32
		Type FourCC
	}

	raw := []byte{0x00, 0x00, 0x00, 0x10, 'f', 't', 'y', 'p'}
	var h boxHeader
	require.NoError(t, binary.Read(bytes.NewReader(raw), binary.BigEndian, &h))
	assert.Equal(t, uint32(16), h.Size)
	assert.Equal(t, MustParse("ftyp"), h.Type)

	var out bytes.Buffer
	require.NoError(t, binary.Write(&out, binary.BigEndian, h))
	assert.Equal(t, raw, out.Bytes())
	assert.Equal(t, 8, binary.Size(h))
}

func TestFourCC_Switch(t *testing.T) {
	var (
		uuid = MustParse("uuid")
		moov = MustParse("moov")
	)

	describe := func(c FourCC) string {
		switch c {
		case moov:
			return "movie"
		case uuid:
			return "unique identifier"
		default:
			return "other"
		}
	}

	assert.Equal(t, "movie", describe(FromUint32(0x6d6f6f76)))
	assert.Equal(t, "unique identifier", describe(FourCC{'u', 'u', 'i', 'd'}))
	assert.Equal(t, "other", describe(MustParse("trun")))
}

func TestFourCC_IsPrintable(t *testing.T) {
	assert.True(t, MustParse("uuid").IsPrintable())
	assert.True(t, MustParse("co64").IsPrintable())
	assert.True(t, MustParse("    ").IsPrintable())
	assert.False(t, FourCC{'u', 0xff, 'i', 0x00}.IsPrintable())
	assert.False(t, FourCC{'a', 'b', 'c', '\n'}.IsPrintable())
	assert.False(t, FourCC{'a', 'b', 'c', 0x7f}.IsPrintable())
}

func TestLengthError(t *testing.T) {
	err := &LengthError{Len: 7}
	assert.Equal(t, "fourcc: invalid length: expected 4 bytes, got 7", err.Error())
	assert.ErrorIs(t, err, ErrInvalidLength)
}
