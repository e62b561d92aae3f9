// Package mutf8 implements the modified UTF-8 encoding used for string
// payloads in Java-profile NBT. It differs from standard UTF-8 in two ways:
// U+0000 is written as the two-byte sequence C0 80 (so encoded strings never
// contain a zero byte), and characters outside the basic multilingual plane
// are written as a UTF-16 surrogate pair with each surrogate encoded as a
// three-byte sequence (CESU-8). No four-byte sequences appear.
package mutf8

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrInvalid reports a byte sequence that is not well-formed modified UTF-8.
var ErrInvalid = errors.New("invalid modified UTF-8")

// EncodedLen returns the number of bytes Encode produces for s.
func EncodedLen(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r == 0:
			n += 2
		case r < 0x80:
			n++
		case r < 0x800:
			n += 2
		case r < 0x10000:
			n += 3
		default:
			n += 6
		}
	}
	return n
}

// Encode converts s to modified UTF-8. Invalid UTF-8 in s is replaced with
// U+FFFD, matching the behavior of range over a Go string.
func Encode(s string) []byte {
	return Append(make([]byte, 0, EncodedLen(s)), s)
}

// Append appends the modified UTF-8 encoding of s to dst.
func Append(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r == 0:
			dst = append(dst, 0xC0, 0x80)
		case r < 0x80:
			dst = append(dst, byte(r))
		case r < 0x800:
			dst = append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			dst = append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
		default:
			hi, lo := utf16.EncodeRune(r)
			dst = append(dst, 0xE0|byte(hi>>12), 0x80|byte(hi>>6&0x3F), 0x80|byte(hi&0x3F))
			dst = append(dst, 0xE0|byte(lo>>12), 0x80|byte(lo>>6&0x3F), 0x80|byte(lo&0x3F))
		}
	}
	return dst
}

// Decode converts modified UTF-8 bytes to a string.
func Decode(b []byte) (string, error) {
	// fast path: pure ASCII without zero bytes is unchanged
	ascii := true
	for _, c := range b {
		if c == 0 || c >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b), nil
	}

	res := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == 0:
			return "", fmt.Errorf("%w: bare zero byte at %d", ErrInvalid, i)
		case c < 0x80:
			res = append(res, c)
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", fmt.Errorf("%w: truncated 2-byte sequence at %d", ErrInvalid, i)
			}
			r := rune(c&0x1F)<<6 | rune(b[i+1]&0x3F)
			res = utf8.AppendRune(res, r)
			i += 2
		case c&0xF0 == 0xE0:
			r, err := decode3(b, i)
			if err != nil {
				return "", err
			}
			i += 3
			if !utf16.IsSurrogate(r) {
				res = utf8.AppendRune(res, r)
				break
			}
			if r >= 0xDC00 {
				return "", fmt.Errorf("%w: unpaired low surrogate at %d", ErrInvalid, i-3)
			}
			lo, err := decode3(b, i)
			if err != nil || lo < 0xDC00 || lo > 0xDFFF {
				return "", fmt.Errorf("%w: unpaired high surrogate at %d", ErrInvalid, i-3)
			}
			i += 3
			res = utf8.AppendRune(res, utf16.DecodeRune(r, lo))
		default:
			return "", fmt.Errorf("%w: byte 0x%02x at %d", ErrInvalid, c, i)
		}
	}
	return string(res), nil
}

func decode3(b []byte, i int) (rune, error) {
	if i+2 >= len(b) || b[i]&0xF0 != 0xE0 || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
		return 0, fmt.Errorf("%w: truncated 3-byte sequence at %d", ErrInvalid, i)
	}
	return rune(b[i]&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F), nil
}
