package nbt

import (
	"io"
	"os"

	"github.com/nbt-format/go-nbt/decode"
	"github.com/nbt-format/go-nbt/frame"
	"github.com/nbt-format/go-nbt/tag"
)

// ReadBytes decodes one document from data, stripping a gzip or zlib
// wrapper when the magic bytes announce one.
func ReadBytes(data []byte, opts ...Option) (string, *tag.Tag, error) {
	cfg := newConfig(opts)
	raw, _, err := frame.Decompress(data)
	if err != nil {
		return "", nil, err
	}
	dopts := []decode.Option{decode.WithProfile(cfg.prof)}
	if cfg.maxDepth > 0 {
		dopts = append(dopts, decode.MaxDepth(cfg.maxDepth))
	}
	if cfg.maxBytes > 0 {
		dopts = append(dopts, decode.MaxBytes(cfg.maxBytes))
	}
	return decode.Decode(raw, dopts...)
}

// Read decodes one document from r.
func Read(r io.Reader, opts ...Option) (string, *tag.Tag, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, err
	}
	return ReadBytes(data, opts...)
}

// ReadFile decodes the document stored at path.
func ReadFile(path string, opts ...Option) (string, *tag.Tag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return ReadBytes(data, opts...)
}
