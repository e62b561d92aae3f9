package record

import "fmt"

// MarshalError reports a failure converting a record field to a tag.
type MarshalError struct {
	FieldPath string // dotted field path, e.g. "Player.Inventory[2].id"
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError reports a failure converting a tag to a record field.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// TypeError reports a tag of an incompatible kind for a field's declared
// type.
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
}

func (e *TypeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: expected %s, got %s", e.FieldPath, e.Expected, e.Actual)
	}
	return fmt.Sprintf("type error: expected %s, got %s", e.Expected, e.Actual)
}

// MissingFieldError reports a required field absent from the source
// compound.
type MissingFieldError struct {
	FieldPath string
	Name      string // the field's wire name
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q at %s", e.Name, e.FieldPath)
}
