// Package frame handles the optional compression wrapper around encoded NBT
// documents. On read the wrapper is auto-detected from the leading magic
// bytes (gzip, zlib, or raw); on write the caller chooses explicitly. A
// corrupt compressed body is reported as ErrCorrupt before any tag bytes are
// interpreted, keeping framing failures distinct from decode failures.
package frame

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// ErrCorrupt reports compressed data that does not inflate.
var ErrCorrupt = errors.New("corrupt compressed data")

// Compression identifies the outer wrapper of an encoded document.
type Compression int

const (
	None Compression = iota
	Gzip
	Zlib
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	}
	return fmt.Sprintf("<compression %d>", int(c))
}

// Parse resolves a CLI-friendly compression name.
func Parse(s string) (Compression, error) {
	switch s {
	case "none", "raw":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zlib", "z":
		return Zlib, nil
	}
	return None, fmt.Errorf("unrecognized compression %q (want none, gzip or zlib)", s)
}

// Detect inspects leading magic bytes. Gzip is 1f 8b; zlib is a deflate
// window byte 0x78 whose two-byte header passes the FCHECK test. Anything
// else is treated as a raw document.
func Detect(data []byte) Compression {
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		return Gzip
	}
	if len(data) >= 2 && data[0] == 0x78 && (uint16(data[0])<<8|uint16(data[1]))%31 == 0 {
		return Zlib
	}
	return None
}

// Decompress strips the detected wrapper and returns the raw document bytes
// together with the wrapper that was found.
func Decompress(data []byte) ([]byte, Compression, error) {
	c := Detect(data)
	switch c {
	case None:
		return data, None, nil
	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, Gzip, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		raw, err := io.ReadAll(zr)
		if err != nil {
			return nil, Gzip, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if err := zr.Close(); err != nil {
			return nil, Gzip, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		return raw, Gzip, nil
	default:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, Zlib, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		raw, err := io.ReadAll(zr)
		if err != nil {
			return nil, Zlib, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if err := zr.Close(); err != nil {
			return nil, Zlib, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		return raw, Zlib, nil
	}
}

// Compress applies the requested wrapper. None returns data unchanged.
func Compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case None:
		return data, nil
	case Gzip:
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case Zlib:
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unrecognized compression %d", int(c))
}
