package fourcc

import (
	"fmt"
	"testing"
	"unicode/utf8"
)

func TestFourCC_String(t *testing.T) {
	testCases := []struct {
		name  string
		code  FourCC
		want  string
		debug string
	}{
		{
			name:  "printable ascii",
			code:  FourCC{0x75, 0x75, 0x69, 0x64},
			want:  "uuid",
			debug: "FourCC{uuid}",
		},
		{
			name:  "invalid utf8 with nul",
			code:  FourCC{'u', 0xff, 'i', 0x00},
			want:  `u\xffi\x00`,
			debug: `FourCC{u\xffi\x00}`,
		},
		{
			name:  "valid utf8 control bytes are kept verbatim",
			code:  FourCC{0x00, 0x00, 0x00, 0x01},
			want:  "\x00\x00\x00\x01",
			debug: "FourCC{\x00\x00\x00\x01}",
		},
		{
			name:  "multi-byte utf8",
			code:  FourCC{0xc3, 0xa9, 't', 'e'},
			want:  "éte",
			debug: "FourCC{éte}",
		},
		{
			name:  "truncated utf8 sequence",
			code:  FourCC{'a', 'b', 'c', 0xc3},
			want:  `abc\xc3`,
			debug: `FourCC{abc\xc3}`,
		},
		{
			name:  "escapes in fallback",
			code:  FourCC{'\t', '"', '\\', 0x80},
			want:  `\t\"\\\x80`,
			debug: `FourCC{\t\"\\\x80}`,
		},
		{
			name:  "newline quote and delete in fallback",
			code:  FourCC{'\n', '\'', 0x7f, 0xfe},
			want:  `\n\'\x7f\xfe`,
			debug: `FourCC{\n\'\x7f\xfe}`,
		},
		{
			name:  "carriage return and space in fallback",
			code:  FourCC{'\r', ' ', 0xab, 'Z'},
			want:  `\r \xabZ`,
			debug: `FourCC{\r \xabZ}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.code.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
			if got := tc.code.GoString(); got != tc.debug {
				t.Errorf("GoString() = %q, want %q", got, tc.debug)
			}
			if got := fmt.Sprintf("%v", tc.code); got != tc.want {
				t.Errorf("%%v = %q, want %q", got, tc.want)
			}
			if got := fmt.Sprintf("%#v", tc.code); got != tc.debug {
				t.Errorf("%%#v = %q, want %q", got, tc.debug)
			}
		})
	}
}

func TestFourCC_StringNeverInvalid(t *testing.T) {
	// Every byte value in every position must render to valid UTF-8.
	for pos := 0; pos < Size; pos++ {
		for b := 0; b < 256; b++ {
			c := FourCC{'a', 'b', 'c', 'd'}
			c[pos] = byte(b)

			s := c.String()
			if !utf8.ValidString(s) {
				t.Fatalf("String() of % x is not valid UTF-8: %q", c[:], s)
			}
			if c.GoString() != "FourCC{"+s+"}" {
				t.Fatalf("GoString() of % x diverges from String(): %q", c[:], c.GoString())
			}
			if utf8.Valid(c[:]) && s != string(c[:]) {
				t.Fatalf("String() of valid UTF-8 % x = %q, want verbatim", c[:], s)
			}
		}
	}
}

func TestFourCC_Format(t *testing.T) {
	uuid := MustParse("uuid")
	bad := FourCC{'u', 0xff, 'i', 0x00}

	testCases := []struct {
		format string
		arg    any
		want   string
	}{
		{format: "%s", arg: uuid, want: "uuid"},
		{format: "%v", arg: uuid, want: "uuid"},
		{format: "%+v", arg: uuid, want: "uuid"},
		{format: "%#v", arg: uuid, want: "FourCC{uuid}"},
		{format: "%q", arg: uuid, want: `"uuid"`},
		{format: "%x", arg: uuid, want: "75756964"},
		{format: "%X", arg: uuid, want: "75756964"},
		{format: "%#x", arg: uuid, want: "0x75756964"},
		{format: "%d", arg: uuid, want: "1970628964"},
		{format: "%6s|", arg: uuid, want: "  uuid|"},
		{format: "%-6s|", arg: uuid, want: "uuid  |"},
		{format: "%s", arg: bad, want: `u\xffi\x00`},
		{format: "%x", arg: bad, want: "75ff6900"},
		{format: "%X", arg: bad, want: "75FF6900"},
		{format: "%s", arg: &uuid, want: "uuid"},
		{format: "%v", arg: []FourCC{uuid, bad}, want: `[uuid u\xffi\x00]`},
		{format: "%v", arg: struct{ Type FourCC }{uuid}, want: "{uuid}"},
		{format: "%t", arg: uuid, want: "%!t(fourcc.FourCC=uuid)"},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			if got := fmt.Sprintf(tc.format, tc.arg); got != tc.want {
				t.Errorf("Sprintf(%q) = %q, want %q", tc.format, got, tc.want)
			}
		})
	}
}
