package mutf8

import (
	"bytes"
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"hello",
		"héllo wörld",
		"日本語",
		"a\x00b",
		"emoji \U0001F600 pair",
		"\U00010000",
	} {
		enc := Encode(s)
		got, err := Decode(enc)
		if err != nil {
			t.Errorf("Decode(Encode(%q)): %v", s, err)
			continue
		}
		if got != s {
			t.Errorf("round trip %q: got %q", s, got)
		}
		if len(enc) != EncodedLen(s) {
			t.Errorf("EncodedLen(%q) = %d, encoded %d bytes", s, EncodedLen(s), len(enc))
		}
	}
}

func TestEncodeForms(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{in: "A", want: []byte{0x41}},
		// NUL becomes the two-byte form, never a zero byte
		{in: "\x00", want: []byte{0xC0, 0x80}},
		{in: "é", want: []byte{0xC3, 0xA9}},
		{in: "日", want: []byte{0xE6, 0x97, 0xA5}},
		// supplementary characters are a surrogate pair, two 3-byte units
		{in: "\U0001F600", want: []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}},
	}
	for _, tc := range tests {
		if got := Encode(tc.in); !bytes.Equal(got, tc.want) {
			t.Errorf("Encode(%q): got % x want % x", tc.in, got, tc.want)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{name: "bare zero", in: []byte{0x61, 0x00}},
		{name: "truncated 2-byte", in: []byte{0xC3}},
		{name: "truncated 3-byte", in: []byte{0xE6, 0x97}},
		{name: "bad continuation", in: []byte{0xC3, 0x41}},
		{name: "4-byte utf8", in: []byte{0xF0, 0x9F, 0x98, 0x80}},
		{name: "lone high surrogate", in: []byte{0xED, 0xA0, 0xBD}},
		{name: "lone low surrogate", in: []byte{0xED, 0xB8, 0x80}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.in); !errors.Is(err, ErrInvalid) {
				t.Errorf("Decode(% x): got %v", tc.in, err)
			}
		})
	}
}

func TestAppend(t *testing.T) {
	dst := []byte("prefix:")
	dst = Append(dst, "a\x00")
	want := append([]byte("prefix:"), 0x61, 0xC0, 0x80)
	if !bytes.Equal(dst, want) {
		t.Errorf("got % x want % x", dst, want)
	}
}
