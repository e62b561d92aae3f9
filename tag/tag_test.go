package tag

import (
	"errors"
	"math"
	"testing"
)

func TestScalarAccessors(t *testing.T) {
	b := FromByte(-5)
	if v, ok := b.ByteValue(); !ok || v != -5 {
		t.Errorf("ByteValue: got %v %v", v, ok)
	}
	if _, ok := b.IntValue(); ok {
		t.Errorf("IntValue on a byte tag reported ok")
	}
	if b.Kind() != ByteKind {
		t.Errorf("Kind: got %v", b.Kind())
	}
	s := FromString("hello")
	if v, ok := s.StringValue(); !ok || v != "hello" {
		t.Errorf("StringValue: got %q %v", v, ok)
	}
	if v, ok := FromBool(true).ByteValue(); !ok || v != 1 {
		t.Errorf("FromBool(true): got %v %v", v, ok)
	}
	if v, ok := FromBool(false).ByteValue(); !ok || v != 0 {
		t.Errorf("FromBool(false): got %v %v", v, ok)
	}
}

func TestCompoundOrder(t *testing.T) {
	c := NewCompound()
	for _, name := range []string{"zed", "alpha", "mid"} {
		if err := c.Set(name, FromInt(1)); err != nil {
			t.Fatal(err)
		}
	}
	got := c.Names()
	want := []string{"zed", "alpha", "mid"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("insertion order: got %v want %v", got, want)
		}
	}
	// overwriting keeps the original position
	if err := c.Set("zed", FromString("new")); err != nil {
		t.Fatal(err)
	}
	if got := c.Names(); got[0] != "zed" {
		t.Errorf("overwrite moved zed: %v", got)
	}
	v, ok := c.Get("zed")
	if !ok {
		t.Fatal("zed missing after overwrite")
	}
	if s, _ := v.StringValue(); s != "new" {
		t.Errorf("overwrite value: got %q", s)
	}
}

func TestCompoundRemove(t *testing.T) {
	c := NewCompound()
	c.Set("a", FromInt(1))
	c.Set("b", FromInt(2))
	c.Set("c", FromInt(3))
	if !c.Remove("b") {
		t.Fatal("Remove(b) = false")
	}
	if c.Remove("b") {
		t.Fatal("second Remove(b) = true")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c unreachable after removing b")
	}
	if c.Len() != 2 {
		t.Errorf("Len: got %d", c.Len())
	}
}

func TestCompoundSetRejects(t *testing.T) {
	c := NewCompound()
	if err := c.Set("x", nil); err == nil {
		t.Error("Set(nil) accepted")
	}
	if err := FromInt(1).Set("x", FromInt(2)); !errors.Is(err, ErrWrongKind) {
		t.Errorf("Set on int tag: got %v", err)
	}
}

func TestListHomogeneity(t *testing.T) {
	l := NewList(EndKind)
	if err := l.Append(FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if l.ElemKind() != IntKind {
		t.Errorf("ElemKind after first append: %v", l.ElemKind())
	}
	if err := l.Append(FromString("no")); !errors.Is(err, ErrListKind) {
		t.Errorf("mixed append: got %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("Len after rejected append: %d", l.Len())
	}
}

func TestFromSlice(t *testing.T) {
	l, err := FromSlice([]*Tag{FromShort(1), FromShort(2)})
	if err != nil {
		t.Fatal(err)
	}
	if l.ElemKind() != ShortKind || l.Len() != 2 {
		t.Errorf("got elem %v len %d", l.ElemKind(), l.Len())
	}
	if _, err := FromSlice([]*Tag{FromShort(1), FromInt(2)}); !errors.Is(err, ErrListKind) {
		t.Errorf("mixed FromSlice: got %v", err)
	}
}

func TestEqual(t *testing.T) {
	mk := func() *Tag {
		c := NewCompound()
		c.Set("pos", mustList(FromDouble(1.5), FromDouble(-2)))
		c.Set("name", FromString("x"))
		c.Set("data", FromByteArray([]byte{1, 2, 3}))
		return c
	}
	a, b := mk(), mk()
	if !a.Equal(b) {
		t.Error("identical trees unequal")
	}
	b.Set("name", FromString("y"))
	if a.Equal(b) {
		t.Error("differing trees equal")
	}

	// NaN payloads compare by bits, so NaN == NaN
	if !FromDouble(math.NaN()).Equal(FromDouble(math.NaN())) {
		t.Error("NaN doubles unequal")
	}
	// empty lists are equal regardless of recorded element kind
	if !NewList(EndKind).Equal(NewList(IntKind)) {
		t.Error("empty lists unequal")
	}

	// member order matters
	c1, c2 := NewCompound(), NewCompound()
	c1.Set("a", FromInt(1))
	c1.Set("b", FromInt(2))
	c2.Set("b", FromInt(2))
	c2.Set("a", FromInt(1))
	if c1.Equal(c2) {
		t.Error("reordered compounds equal")
	}
}

func TestClone(t *testing.T) {
	c := NewCompound()
	c.Set("arr", FromIntArray([]int32{1, 2}))
	inner := NewCompound()
	inner.Set("v", FromLong(9))
	c.Set("inner", inner)

	cp := c.Clone()
	if !c.Equal(cp) {
		t.Fatal("clone differs")
	}
	got, _ := cp.Get("inner")
	got.Set("v", FromLong(10))
	orig, _ := c.Get("inner")
	if v, _ := mustGet(t, orig, "v").LongValue(); v != 9 {
		t.Errorf("clone shares inner compound: v = %d", v)
	}
	arr, _ := cp.Get("arr")
	av, _ := arr.IntArrayValue()
	av[0] = 99
	oa, _ := c.Get("arr")
	ov, _ := oa.IntArrayValue()
	if ov[0] != 1 {
		t.Error("clone shares int array backing")
	}
}

func TestFromMapSorted(t *testing.T) {
	c := FromMap(map[string]*Tag{
		"c": FromInt(3),
		"a": FromInt(1),
		"b": FromInt(2),
	})
	got := c.Names()
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestVisit(t *testing.T) {
	c := NewCompound()
	c.Set("a", FromInt(1))
	c.Set("l", mustList(FromString("x"), FromString("y")))
	n := 0
	err := c.Visit(func(tg *Tag, post bool) (bool, error) {
		if !post {
			n++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("visited %d tags, want 5", n)
	}
}

func mustList(elems ...*Tag) *Tag {
	l, err := FromSlice(elems)
	if err != nil {
		panic(err)
	}
	return l
}

func mustGet(t *testing.T, c *Tag, name string) *Tag {
	t.Helper()
	v, ok := c.Get(name)
	if !ok {
		t.Fatalf("missing member %q", name)
	}
	return v
}
