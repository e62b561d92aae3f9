package decode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nbt-format/go-nbt/profile"
	"github.com/nbt-format/go-nbt/tag"
)

func cat(parts ...[]byte) []byte {
	var res []byte
	for _, p := range parts {
		res = append(res, p...)
	}
	return res
}

// javaDoc is a root compound named "hi" exercising every tag kind in the
// big-endian fixed-length layout.
var javaDoc = cat(
	[]byte{0x0A, 0x00, 0x02, 'h', 'i'},
	[]byte{0x01, 0x00, 0x01, 'b', 0xFF},                                     // byte b = -1
	[]byte{0x02, 0x00, 0x01, 's', 0x01, 0x02},                               // short s = 258
	[]byte{0x03, 0x00, 0x01, 'i', 0x00, 0x00, 0x00, 0x2A},                   // int i = 42
	[]byte{0x04, 0x00, 0x01, 'l', 0, 0, 0, 0, 0, 0, 0x04, 0x00},             // long l = 1024
	[]byte{0x05, 0x00, 0x01, 'f', 0x3F, 0x80, 0x00, 0x00},                   // float f = 1.0
	[]byte{0x06, 0x00, 0x01, 'd', 0x3F, 0xF0, 0, 0, 0, 0, 0, 0},             // double d = 1.0
	[]byte{0x08, 0x00, 0x01, 'n', 0x00, 0x05, 's', 't', 'e', 'v', 'e'},      // string n
	[]byte{0x07, 0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x03, 1, 2, 3},          // byte array
	[]byte{0x0B, 0x00, 0x01, 'I', 0x00, 0x00, 0x00, 0x01, 0, 0, 0, 7},       // int array [7]
	[]byte{0x0C, 0x00, 0x01, 'J', 0x00, 0x00, 0x00, 0x01, 0, 0, 0, 0, 0, 0, 0, 9}, // long array [9]
	[]byte{0x09, 0x00, 0x01, 'L', 0x02, 0x00, 0x00, 0x00, 0x02, 0x00, 0x01, 0x00, 0x02}, // list of short [1 2]
	[]byte{0x09, 0x00, 0x01, 'E', 0x00, 0x00, 0x00, 0x00, 0x00},             // empty list, End element kind
	[]byte{0x0A, 0x00, 0x01, 'c', 0x03, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x07, 0x00}, // compound c {x:7}
	[]byte{0x00},
)

func javaTree() *tag.Tag {
	c := tag.NewCompound()
	c.Set("b", tag.FromByte(-1))
	c.Set("s", tag.FromShort(258))
	c.Set("i", tag.FromInt(42))
	c.Set("l", tag.FromLong(1024))
	c.Set("f", tag.FromFloat(1))
	c.Set("d", tag.FromDouble(1))
	c.Set("n", tag.FromString("steve"))
	c.Set("a", tag.FromByteArray([]byte{1, 2, 3}))
	c.Set("I", tag.FromIntArray([]int32{7}))
	c.Set("J", tag.FromLongArray([]int64{9}))
	shorts := tag.NewList(tag.ShortKind)
	shorts.Append(tag.FromShort(1))
	shorts.Append(tag.FromShort(2))
	c.Set("L", shorts)
	c.Set("E", tag.NewList(tag.EndKind))
	inner := tag.NewCompound()
	inner.Set("x", tag.FromInt(7))
	c.Set("c", inner)
	return c
}

func TestDecodeJava(t *testing.T) {
	name, root, err := Decode(javaDoc)
	if err != nil {
		t.Fatal(err)
	}
	if name != "hi" {
		t.Errorf("root name: %q", name)
	}
	if want := javaTree(); !root.Equal(want) {
		t.Errorf("tree mismatch:\ngot  %s\nwant %s", root, want)
	}
}

// bedrockDoc is the little-endian varint layout: root "hi" with an int, a
// string and a long array member.
var bedrockDoc = cat(
	[]byte{0x0A, 0x02, 'h', 'i'},
	[]byte{0x03, 0x01, 'i', 0x2A, 0x00, 0x00, 0x00},
	[]byte{0x08, 0x01, 'n', 0x05, 's', 't', 'e', 'v', 'e'},
	[]byte{0x0C, 0x01, 'J', 0x02, 9, 0, 0, 0, 0, 0, 0, 0, 0xF6, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	[]byte{0x00},
)

func bedrockTree() *tag.Tag {
	c := tag.NewCompound()
	c.Set("i", tag.FromInt(42))
	c.Set("n", tag.FromString("steve"))
	c.Set("J", tag.FromLongArray([]int64{9, -10}))
	return c
}

func TestDecodeBedrock(t *testing.T) {
	name, root, err := Decode(bedrockDoc, WithProfile(profile.BedrockDisk))
	if err != nil {
		t.Fatal(err)
	}
	if name != "hi" {
		t.Errorf("root name: %q", name)
	}
	if want := bedrockTree(); !root.Equal(want) {
		t.Errorf("tree mismatch:\ngot  %s\nwant %s", root, want)
	}
}

func TestDecodeBedrockNetwork(t *testing.T) {
	// same document without the root name
	doc := cat([]byte{0x0A}, bedrockDoc[4:])
	name, root, err := Decode(doc, WithProfile(profile.BedrockNetwork))
	if err != nil {
		t.Fatal(err)
	}
	if name != "" {
		t.Errorf("network root name: %q", name)
	}
	if !root.Equal(bedrockTree()) {
		t.Error("tree mismatch")
	}
}

func TestDecodeVarintBoundary(t *testing.T) {
	// a 300-byte string needs a two-byte varint length
	payload := bytes.Repeat([]byte{'x'}, 300)
	doc := cat(
		[]byte{0x0A, 0x00},
		[]byte{0x08, 0x01, 'n', 0xAC, 0x02},
		payload,
		[]byte{0x00},
	)
	_, root, err := Decode(doc, WithProfile(profile.BedrockDisk))
	if err != nil {
		t.Fatal(err)
	}
	n, _ := root.GetPath("$.n")
	if s, _ := n.StringValue(); len(s) != 300 {
		t.Errorf("string length: %d", len(s))
	}
}

func TestDecodeDuplicateNames(t *testing.T) {
	doc := cat(
		[]byte{0x0A, 0x00, 0x00},
		[]byte{0x03, 0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x01},
		[]byte{0x03, 0x00, 0x01, 'b', 0x00, 0x00, 0x00, 0x02},
		[]byte{0x03, 0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x03},
		[]byte{0x00},
	)
	_, root, err := Decode(doc)
	if err != nil {
		t.Fatal(err)
	}
	names := root.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names: %v", names)
	}
	a, _ := root.Get("a")
	if v, _ := a.IntValue(); v != 3 {
		t.Errorf("duplicate member: got %d, want last value 3", v)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	doc := cat(javaDoc, []byte{0xDE, 0xAD})
	if _, _, err := Decode(doc); err != nil {
		t.Errorf("trailing bytes: %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  []byte
		opts []Option
		want error
	}{
		{
			name: "empty input",
			doc:  nil,
			want: ErrTruncated,
		},
		{
			name: "root not compound",
			doc:  []byte{0x01, 0x00, 0x00, 0x05},
			want: ErrRootKind,
		},
		{
			name: "unknown kind",
			doc:  []byte{0x0A, 0x00, 0x00, 0x0D},
			want: ErrTagKind,
		},
		{
			name: "truncated payload",
			doc:  []byte{0x0A, 0x00, 0x00, 0x03, 0x00, 0x01, 'i', 0x00},
			want: ErrTruncated,
		},
		{
			name: "missing terminator",
			doc:  []byte{0x0A, 0x00, 0x00},
			want: ErrTruncated,
		},
		{
			name: "negative string length",
			doc:  []byte{0x0A, 0x00, 0x00, 0x08, 0x00, 0x01, 'n', 0xFF, 0xFF, 0x00},
			want: ErrLength,
		},
		{
			name: "negative array length",
			doc:  []byte{0x0A, 0x00, 0x00, 0x07, 0x00, 0x01, 'a', 0xFF, 0xFF, 0xFF, 0xFF, 0x00},
			want: ErrLength,
		},
		{
			name: "forged huge array length",
			doc:  []byte{0x0A, 0x00, 0x00, 0x0B, 0x00, 0x01, 'I', 0x7F, 0xFF, 0xFF, 0xFF, 0x00},
			want: ErrTruncated,
		},
		{
			name: "list of End with nonzero length",
			doc:  []byte{0x0A, 0x00, 0x00, 0x09, 0x00, 0x01, 'L', 0x00, 0x00, 0x00, 0x00, 0x01, 0x00},
			want: ErrTagKind,
		},
		{
			name: "invalid modified utf-8",
			doc:  []byte{0x0A, 0x00, 0x00, 0x08, 0x00, 0x01, 'n', 0x00, 0x01, 0xFF, 0x00},
			want: ErrText,
		},
		{
			name: "varint too wide",
			doc:  []byte{0x0A, 0x00, 0x08, 0x01, 'n', 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00},
			opts: []Option{WithProfile(profile.BedrockDisk)},
			want: ErrLength,
		},
		{
			name: "invalid utf-8 in bedrock string",
			doc:  []byte{0x0A, 0x00, 0x08, 0x01, 'n', 0x01, 0xFF, 0x00},
			opts: []Option{WithProfile(profile.BedrockDisk)},
			want: ErrText,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Decode(tc.doc, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	doc := []byte{0x0A, 0x00, 0x00}
	for i := 0; i < 10; i++ {
		doc = append(doc, 0x0A, 0x00, 0x01, 'c')
	}
	for i := 0; i < 11; i++ {
		doc = append(doc, 0x00)
	}
	if _, _, err := Decode(doc, MaxDepth(4)); !errors.Is(err, ErrLimit) {
		t.Errorf("got %v, want %v", err, ErrLimit)
	}
	if _, _, err := Decode(doc); err != nil {
		t.Errorf("default depth rejected 10 levels: %v", err)
	}
}

func TestDecodeMaxBytes(t *testing.T) {
	if _, _, err := Decode(javaDoc, MaxBytes(4)); !errors.Is(err, ErrLimit) {
		t.Errorf("got %v, want %v", err, ErrLimit)
	}
	if _, _, err := Decode(javaDoc, MaxBytes(1 << 20)); err != nil {
		t.Errorf("generous budget rejected document: %v", err)
	}
}
