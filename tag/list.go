package tag

import "fmt"

// ElemKind returns the element kind of a list. An empty list built without a
// declared element kind reports EndKind until its first Append.
func (t *Tag) ElemKind() Kind {
	if t == nil || t.kind != ListKind {
		return EndKind
	}
	return t.elemKind
}

// Append adds v to a list. The first element of a kind-less list locks the
// element kind; thereafter mismatched kinds are rejected with ErrListKind.
func (t *Tag) Append(v *Tag) error {
	if t == nil || t.kind != ListKind {
		return fmt.Errorf("%w: Append on %s", ErrWrongKind, t.Kind())
	}
	if v == nil || v.kind == EndKind {
		return fmt.Errorf("%w: End is not a value", ErrWrongKind)
	}
	if t.elemKind == EndKind {
		t.elemKind = v.kind
	} else if v.kind != t.elemKind {
		return fmt.Errorf("%w: cannot insert %s into list of %s", ErrListKind, v.kind, t.elemKind)
	}
	t.list = append(t.list, v)
	return nil
}

// At returns the i-th list element.
func (t *Tag) At(i int) (*Tag, bool) {
	if t == nil || t.kind != ListKind || i < 0 || i >= len(t.list) {
		return nil, false
	}
	return t.list[i], true
}

// SetAt replaces the i-th list element, enforcing the element kind.
func (t *Tag) SetAt(i int, v *Tag) error {
	if t == nil || t.kind != ListKind {
		return fmt.Errorf("%w: SetAt on %s", ErrWrongKind, t.Kind())
	}
	if i < 0 || i >= len(t.list) {
		return fmt.Errorf("%w: index %d (len %d)", ErrPathNotFound, i, len(t.list))
	}
	if v == nil || v.kind == EndKind {
		return fmt.Errorf("%w: End is not a value", ErrWrongKind)
	}
	if v.kind != t.elemKind {
		return fmt.Errorf("%w: cannot insert %s into list of %s", ErrListKind, v.kind, t.elemKind)
	}
	t.list[i] = v
	return nil
}

// RemoveAt deletes the i-th list element and reports whether it was present.
func (t *Tag) RemoveAt(i int) bool {
	if t == nil || t.kind != ListKind || i < 0 || i >= len(t.list) {
		return false
	}
	t.list = append(t.list[:i], t.list[i+1:]...)
	return true
}

// Elems returns the list's elements. The slice aliases the list; treat it as
// read-only.
func (t *Tag) Elems() []*Tag {
	if t == nil || t.kind != ListKind {
		return nil
	}
	return t.list
}
