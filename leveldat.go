package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/nbt-format/go-nbt/decode"
	"github.com/nbt-format/go-nbt/encode"
	"github.com/nbt-format/go-nbt/profile"
	"github.com/nbt-format/go-nbt/tag"
)

// DefaultStorageVersion is the level.dat storage version written when the
// caller has no better value.
const DefaultStorageVersion int32 = 3

// ReadLevelDat decodes a Bedrock level.dat: an 8-byte little-endian header
// of (storage version, payload byte length) followed by one uncompressed
// BedrockDisk document.
func ReadLevelDat(r io.Reader) (version int32, name string, root *tag.Tag, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, "", nil, err
	}
	if len(data) < 8 {
		return 0, "", nil, fmt.Errorf("%w: level.dat header needs 8 bytes, have %d", decode.ErrTruncated, len(data))
	}
	version = int32(binary.LittleEndian.Uint32(data[0:4]))
	length := int64(int32(binary.LittleEndian.Uint32(data[4:8])))
	body := data[8:]
	if length < 0 || length > int64(len(body)) {
		return 0, "", nil, fmt.Errorf("%w: level.dat declares %d payload bytes, have %d", decode.ErrLength, length, len(body))
	}
	name, root, err = decode.Decode(body[:length], decode.WithProfile(profile.BedrockDisk))
	if err != nil {
		return 0, "", nil, err
	}
	return version, name, root, nil
}

// WriteLevelDat encodes a Bedrock level.dat with the given storage version.
func WriteLevelDat(w io.Writer, version int32, name string, root *tag.Tag) error {
	body, err := encode.Append(nil, name, root, encode.WithProfile(profile.BedrockDisk))
	if err != nil {
		return err
	}
	if int64(len(body)) > math.MaxInt32 {
		return fmt.Errorf("%w: level.dat payload length %d exceeds int32", encode.ErrOverflow, len(body))
	}
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(version))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(body)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}
