package tag

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
)

func f32bits(v float32) uint32 { return math.Float32bits(v) }
func f64bits(v float64) uint64 { return math.Float64bits(v) }

// Get returns the member named name. ok is false when t is not a compound or
// has no such member.
func (t *Tag) Get(name string) (*Tag, bool) {
	if t == nil || t.kind != CompoundKind {
		return nil, false
	}
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.entries[i].val, true
}

// Set upserts a member. Overwriting an existing name keeps the member at its
// original position; a new name appends at the end. Setting a nil or EndKind
// value is rejected.
func (t *Tag) Set(name string, v *Tag) error {
	if t == nil || t.kind != CompoundKind {
		return fmt.Errorf("%w: Set on %s", ErrWrongKind, t.Kind())
	}
	if v == nil || v.kind == EndKind {
		return fmt.Errorf("%w: End is not a value", ErrWrongKind)
	}
	if i, ok := t.index[name]; ok {
		t.entries[i].val = v
		return nil
	}
	if t.index == nil {
		t.index = map[string]int{}
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, entry{name: name, val: v})
	return nil
}

// Remove deletes a member and reports whether it was present. Removing from
// a non-compound or a missing name is a no-op.
func (t *Tag) Remove(name string) bool {
	if t == nil || t.kind != CompoundKind {
		return false
	}
	i, ok := t.index[name]
	if !ok {
		return false
	}
	t.entries = append(t.entries[:i], t.entries[i+1:]...)
	delete(t.index, name)
	for j := i; j < len(t.entries); j++ {
		t.index[t.entries[j].name] = j
	}
	return true
}

// Names returns member names in insertion order.
func (t *Tag) Names() []string {
	if t == nil || t.kind != CompoundKind {
		return nil
	}
	res := make([]string, len(t.entries))
	for i, e := range t.entries {
		res[i] = e.name
	}
	return res
}

// All iterates members in insertion order.
func (t *Tag) All() iter.Seq2[string, *Tag] {
	return func(yield func(string, *Tag) bool) {
		if t == nil || t.kind != CompoundKind {
			return
		}
		for _, e := range t.entries {
			if !yield(e.name, e.val) {
				return
			}
		}
	}
}

// FromMap builds a compound from m. Iteration order of a Go map is not
// stable, so members are inserted in sorted-name order; use NewCompound and
// Set directly when a specific order matters.
func FromMap(m map[string]*Tag) *Tag {
	c := NewCompound()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		// values from a caller-built map are never End tags
		_ = c.Set(name, m[name])
	}
	return c
}
