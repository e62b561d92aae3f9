package nbt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/nbt-format/go-nbt/decode"
	"github.com/nbt-format/go-nbt/tag"
)

func TestLevelDatRoundTrip(t *testing.T) {
	src := level()
	var buf bytes.Buffer
	if err := WriteLevelDat(&buf, 10, "", src); err != nil {
		t.Fatal(err)
	}
	version, name, root, err := ReadLevelDat(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if version != 10 {
		t.Errorf("version: %d", version)
	}
	if name != "" {
		t.Errorf("name: %q", name)
	}
	if !root.Equal(src) {
		t.Errorf("tree mismatch:\ngot  %s\nwant %s", root, src)
	}
}

func TestLevelDatHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLevelDat(&buf, DefaultStorageVersion, "", level()); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if got := int32(binary.LittleEndian.Uint32(b[0:4])); got != DefaultStorageVersion {
		t.Errorf("header version: %d", got)
	}
	if got := binary.LittleEndian.Uint32(b[4:8]); int(got) != len(b)-8 {
		t.Errorf("header length %d, body %d", got, len(b)-8)
	}
	// the body is an uncompressed little-endian document
	if b[8] != byte(tag.CompoundKind) {
		t.Errorf("body starts with 0x%02x", b[8])
	}
}

func TestLevelDatErrors(t *testing.T) {
	if _, _, _, err := ReadLevelDat(bytes.NewReader([]byte{1, 2, 3})); !errors.Is(err, decode.ErrTruncated) {
		t.Errorf("short header: %v", err)
	}
	// header declares more payload than present
	hdr := make([]byte, 8)
	binary.LittleEndian.PutUint32(hdr[0:4], 3)
	binary.LittleEndian.PutUint32(hdr[4:8], 100)
	if _, _, _, err := ReadLevelDat(bytes.NewReader(append(hdr, 0x0A, 0x00, 0x00))); !errors.Is(err, decode.ErrLength) {
		t.Errorf("overlong declared payload: %v", err)
	}
}
