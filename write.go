package nbt

import (
	"io"
	"os"

	"github.com/nbt-format/go-nbt/encode"
	"github.com/nbt-format/go-nbt/frame"
	"github.com/nbt-format/go-nbt/tag"
)

// AppendBytes appends one encoded document to dst, wrapped in the
// configured compression.
func AppendBytes(dst []byte, name string, root *tag.Tag, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	raw, err := encode.Append(nil, name, root, encode.WithProfile(cfg.prof))
	if err != nil {
		return nil, err
	}
	wrapped, err := frame.Compress(raw, cfg.comp)
	if err != nil {
		return nil, err
	}
	return append(dst, wrapped...), nil
}

// Write encodes one document to w.
func Write(w io.Writer, name string, root *tag.Tag, opts ...Option) error {
	b, err := AppendBytes(nil, name, root, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// WriteFile encodes one document to path, replacing an existing file.
func WriteFile(path, name string, root *tag.Tag, opts ...Option) error {
	b, err := AppendBytes(nil, name, root, opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
