// Package record converts between tag trees and strongly-typed application
// records without reflection.
//
// A record type declares its mapping by implementing the Record capability
// interface: TagFields returns an ordered list of field descriptors, each
// binding a wire name to a pair of conversion closures over the record's own
// fields. The typed constructors in this package (Byte, Int, String,
// Compound, CompoundList, ...) build those descriptors:
//
//	type Player struct {
//	    Name   string
//	    Health float32
//	    Pos    []float64
//	}
//
//	func (p *Player) TagFields() []record.Field {
//	    return []record.Field{
//	        record.String("Name", &p.Name),
//	        record.Float("Health", &p.Health,
//	            record.WithDefault(tag.FromFloat(20)), record.OmitDefault()),
//	        record.DoubleList("Pos", &p.Pos),
//	    }
//	}
//
// Marshal writes fields in declaration order, which becomes the compound's
// observable member order. Unmarshal reads every declared field, applying
// defaults for absent optional members and failing with path-carrying errors
// otherwise; errors for independent fields are collected rather than
// aborting at the first one.
package record

import (
	"errors"

	"github.com/nbt-format/go-nbt/tag"
)

// Record is the capability a type implements to cross the bridge.
type Record interface {
	TagFields() []Field
}

// Field binds one wire name to conversion closures over a record field.
// Build Fields with the typed constructors; the zero Field is not usable.
type Field struct {
	// Name is the member name on the wire.
	Name string

	// Default, when non-nil, is used on unmarshal when the member is
	// absent. Absent members without a default are an error.
	Default *tag.Tag

	// OmitDefault skips the member on marshal when its value equals
	// Default.
	OmitDefault bool

	encode func() (*tag.Tag, error)
	decode func(*tag.Tag) error
}

type FieldOption func(*Field)

// WithDefault declares the value used when the member is absent on
// unmarshal.
func WithDefault(d *tag.Tag) FieldOption {
	return func(f *Field) { f.Default = d }
}

// OmitDefault skips the member on marshal when it equals the declared
// default.
func OmitDefault() FieldOption {
	return func(f *Field) { f.OmitDefault = true }
}

// Marshal converts r to a compound. Member order equals field declaration
// order.
func Marshal(r Record) (*tag.Tag, error) {
	c := tag.NewCompound()
	var errs []error
	for _, f := range r.TagFields() {
		v, err := f.encode()
		if err != nil {
			errs = append(errs, prefixPath(err, f.Name, true))
			continue
		}
		if f.OmitDefault && f.Default != nil && v.Equal(f.Default) {
			continue
		}
		if err := c.Set(f.Name, v); err != nil {
			errs = append(errs, &MarshalError{FieldPath: f.Name, Message: err.Error(), Err: err})
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// Unmarshal fills r from compound t. Errors for independent fields are
// joined so one conversion reports every offending member.
func Unmarshal(t *tag.Tag, r Record) error {
	if t.Kind() != tag.CompoundKind {
		return &TypeError{Expected: tag.CompoundKind.String(), Actual: t.Kind().String()}
	}
	var errs []error
	for _, f := range r.TagFields() {
		v, ok := t.Get(f.Name)
		if !ok {
			if f.Default != nil {
				v = f.Default
			} else {
				errs = append(errs, &MissingFieldError{FieldPath: f.Name, Name: f.Name})
				continue
			}
		}
		if err := f.decode(v); err != nil {
			errs = append(errs, prefixPath(err, f.Name, false))
		}
	}
	return errors.Join(errs...)
}

// prefixPath extends the field path of bridge errors raised below a field,
// so nested failures surface as "Player.Inventory[2].id". Unknown errors
// are wrapped into a MarshalError or UnmarshalError at the field.
func prefixPath(err error, p string, marshal bool) error {
	switch e := err.(type) {
	case *MarshalError:
		return &MarshalError{FieldPath: joinPath(p, e.FieldPath), Message: e.Message, Err: e.Err}
	case *UnmarshalError:
		return &UnmarshalError{FieldPath: joinPath(p, e.FieldPath), Message: e.Message, Err: e.Err}
	case *TypeError:
		return &TypeError{FieldPath: joinPath(p, e.FieldPath), Expected: e.Expected, Actual: e.Actual}
	case *MissingFieldError:
		return &MissingFieldError{FieldPath: joinPath(p, e.FieldPath), Name: e.Name}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		sub := joined.Unwrap()
		res := make([]error, len(sub))
		for i, e := range sub {
			res[i] = prefixPath(e, p, marshal)
		}
		return errors.Join(res...)
	}
	if marshal {
		return &MarshalError{FieldPath: p, Message: err.Error(), Err: err}
	}
	return &UnmarshalError{FieldPath: p, Message: err.Error(), Err: err}
}

func joinPath(p, sub string) string {
	switch {
	case sub == "":
		return p
	case sub[0] == '[':
		return p + sub
	default:
		return p + "." + sub
	}
}
