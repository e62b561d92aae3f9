package encode

import "errors"

var (
	// ErrOverflow reports a string, array or list longer than its length
	// field can represent under the selected profile.
	ErrOverflow = errors.New("length overflows length field")

	// ErrRootKind reports an encode of a tree whose root is not a compound.
	ErrRootKind = errors.New("root tag is not a compound")
)
