package tag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func errorsIsNotFound(err error) bool {
	return errors.Is(err, ErrPathNotFound)
}

// Path addresses a node in a tree as a sequence of compound-name and
// list-index steps. The textual form is "$" for the root followed by
// ".name" (or ".'quoted name'" when the name contains path syntax) and
// "[index]" steps, e.g. $.Data.Inventory[0].id.
type Path struct {
	Field *string
	Index *int
	Next  *Path
}

func (p *Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			b.WriteByte('.')
			b.WriteString(quoteField(*x.Field))
		}
		if x.Index != nil {
			fmt.Fprintf(&b, "[%d]", *x.Index)
		}
	}
	return b.String()
}

func quoteField(f string) string {
	if f != "" && strings.IndexAny(f, "'.$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// ParsePath parses the textual path form. The empty path "$" addresses the
// root itself.
func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	if len(p) == 1 {
		return &Path{}, nil
	}
	root := &Path{}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPath, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		u64, err := strconv.ParseUint(frag[1:i+1], 10, 31)
		if err != nil {
			return err
		}
		index := int(u64)
		parent.Index = &index
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath resolves path against t and returns the addressed node.
func (t *Tag) GetPath(path string) (*Tag, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := t
	for x := p; x != nil; x = x.Next {
		if x.Field == nil && x.Index == nil {
			break
		}
		if x.Field != nil {
			if res.Kind() != CompoundKind {
				return nil, fmt.Errorf("%w: expected compound, got %s at %q", ErrWrongKind, res.Kind(), path)
			}
			v, ok := res.Get(*x.Field)
			if !ok {
				return nil, fmt.Errorf("%w: no member %q in %q", ErrPathNotFound, *x.Field, path)
			}
			res = v
			continue
		}
		if res.Kind() != ListKind {
			return nil, fmt.Errorf("%w: expected list, got %s at %q", ErrWrongKind, res.Kind(), path)
		}
		v, ok := res.At(*x.Index)
		if !ok {
			return nil, fmt.Errorf("%w: index %d out of bounds (len %d) in %q", ErrPathNotFound, *x.Index, res.Len(), path)
		}
		res = v
	}
	return res, nil
}

// walkToLast resolves all but the final step and returns the parent node
// plus the final step.
func (t *Tag) walkToLast(path string) (*Tag, *Path, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, nil, err
	}
	if p.Field == nil && p.Index == nil {
		return nil, nil, fmt.Errorf("%w: %q does not address a member", ErrPath, path)
	}
	cur := t
	x := p
	for x.Next != nil {
		if x.Field != nil {
			if cur.Kind() != CompoundKind {
				return nil, nil, fmt.Errorf("%w: expected compound, got %s at %q", ErrWrongKind, cur.Kind(), path)
			}
			v, ok := cur.Get(*x.Field)
			if !ok {
				return nil, nil, fmt.Errorf("%w: no member %q in %q", ErrPathNotFound, *x.Field, path)
			}
			cur = v
		} else {
			if cur.Kind() != ListKind {
				return nil, nil, fmt.Errorf("%w: expected list, got %s at %q", ErrWrongKind, cur.Kind(), path)
			}
			v, ok := cur.At(*x.Index)
			if !ok {
				return nil, nil, fmt.Errorf("%w: index %d out of bounds (len %d) in %q", ErrPathNotFound, *x.Index, cur.Len(), path)
			}
			cur = v
		}
		x = x.Next
	}
	return cur, x, nil
}

// SetPath sets the node addressed by path to v. A compound step upserts,
// preserving the position of an overwritten member. A list step replaces the
// element at the index, or appends when the index equals the length; list
// homogeneity is enforced.
func (t *Tag) SetPath(path string, v *Tag) error {
	parent, last, err := t.walkToLast(path)
	if err != nil {
		return err
	}
	if last.Field != nil {
		if parent.Kind() != CompoundKind {
			return fmt.Errorf("%w: expected compound, got %s at %q", ErrWrongKind, parent.Kind(), path)
		}
		return parent.Set(*last.Field, v)
	}
	if parent.Kind() != ListKind {
		return fmt.Errorf("%w: expected list, got %s at %q", ErrWrongKind, parent.Kind(), path)
	}
	if *last.Index == parent.Len() {
		return parent.Append(v)
	}
	return parent.SetAt(*last.Index, v)
}

// InsertPath inserts v at the addressed position. On a compound it behaves
// like SetPath; on a list it shifts the element at the index (and everything
// after it) right, with index == length appending.
func (t *Tag) InsertPath(path string, v *Tag) error {
	parent, last, err := t.walkToLast(path)
	if err != nil {
		return err
	}
	if last.Field != nil {
		if parent.Kind() != CompoundKind {
			return fmt.Errorf("%w: expected compound, got %s at %q", ErrWrongKind, parent.Kind(), path)
		}
		return parent.Set(*last.Field, v)
	}
	if parent.Kind() != ListKind {
		return fmt.Errorf("%w: expected list, got %s at %q", ErrWrongKind, parent.Kind(), path)
	}
	i := *last.Index
	if i > parent.Len() {
		return fmt.Errorf("%w: index %d out of bounds (len %d) in %q", ErrPathNotFound, i, parent.Len(), path)
	}
	if err := parent.Append(v); err != nil {
		return err
	}
	copy(parent.list[i+1:], parent.list[i:])
	parent.list[i] = v
	return nil
}

// RemovePath removes the addressed node. A missing path is a no-op success
// unless strict is set, in which case it returns ErrPathNotFound.
func (t *Tag) RemovePath(path string, strict bool) error {
	parent, last, err := t.walkToLast(path)
	if err != nil {
		if !strict && errorsIsNotFound(err) {
			return nil
		}
		return err
	}
	if last.Field != nil {
		if parent.Kind() != CompoundKind {
			return fmt.Errorf("%w: expected compound, got %s at %q", ErrWrongKind, parent.Kind(), path)
		}
		if !parent.Remove(*last.Field) && strict {
			return fmt.Errorf("%w: no member %q in %q", ErrPathNotFound, *last.Field, path)
		}
		return nil
	}
	if parent.Kind() != ListKind {
		return fmt.Errorf("%w: expected list, got %s at %q", ErrWrongKind, parent.Kind(), path)
	}
	if !parent.RemoveAt(*last.Index) && strict {
		return fmt.Errorf("%w: index %d out of bounds (len %d) in %q", ErrPathNotFound, *last.Index, parent.Len(), path)
	}
	return nil
}
