package snbt

import (
	"bytes"
	"testing"

	"github.com/nbt-format/go-nbt/tag"
)

func render(t *testing.T, tg *tag.Tag, opts ...Option) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(tg, &buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestScalars(t *testing.T) {
	tests := []struct {
		in   *tag.Tag
		want string
	}{
		{in: tag.FromByte(-1), want: "-1b\n"},
		{in: tag.FromShort(258), want: "258s\n"},
		{in: tag.FromInt(42), want: "42\n"},
		{in: tag.FromLong(-9), want: "-9L\n"},
		{in: tag.FromFloat(1.5), want: "1.5f\n"},
		{in: tag.FromFloat(2), want: "2.0f\n"},
		{in: tag.FromDouble(-2.25), want: "-2.25d\n"},
		{in: tag.FromString(`say "hi"`), want: "\"say \\\"hi\\\"\"\n"},
		{in: tag.FromByteArray([]byte{1, 0xFF}), want: "[B;1b,-1b]\n"},
		{in: tag.FromIntArray([]int32{3, -4}), want: "[I;3,-4]\n"},
		{in: tag.FromLongArray([]int64{5}), want: "[L;5L]\n"},
	}
	for _, tc := range tests {
		if got := render(t, tc.in); got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
	}
}

func TestCompact(t *testing.T) {
	c := tag.NewCompound()
	c.Set("id", tag.FromString("sword"))
	c.Set("Count", tag.FromByte(1))
	c.Set("a b", tag.FromInt(2))
	want := "{id: \"sword\",Count: 1b,\"a b\": 2}\n"
	if got := render(t, c); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestIndent(t *testing.T) {
	inner := tag.NewCompound()
	inner.Set("x", tag.FromInt(7))
	l := tag.NewList(tag.ShortKind)
	l.Append(tag.FromShort(1))
	l.Append(tag.FromShort(2))
	c := tag.NewCompound()
	c.Set("c", inner)
	c.Set("L", l)
	c.Set("E", tag.NewList(tag.EndKind))

	want := "{\n" +
		"  c: {\n" +
		"    x: 7\n" +
		"  },\n" +
		"  L: [\n" +
		"    1s,\n" +
		"    2s\n" +
		"  ],\n" +
		"  E: []\n" +
		"}\n"
	if got := render(t, c, Indent(2)); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestEmpty(t *testing.T) {
	if got := render(t, tag.NewCompound(), Indent(2)); got != "{}\n" {
		t.Errorf("empty compound: %q", got)
	}
	if got := render(t, tag.NewList(tag.IntKind)); got != "[]\n" {
		t.Errorf("empty list: %q", got)
	}
}

func TestColorsWrap(t *testing.T) {
	// colored output still contains the literal text
	got := render(t, tag.FromInt(42), EncodeColors(NewColors()))
	if !bytes.Contains([]byte(got), []byte("42")) {
		t.Errorf("colored output misses value: %q", got)
	}
}
