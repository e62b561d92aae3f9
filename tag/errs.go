package tag

import "errors"

var (
	// ErrWrongKind is returned when an operation targets a tag of the wrong
	// kind, e.g. Set on a list or Append on a compound.
	ErrWrongKind = errors.New("wrong tag kind")

	// ErrListKind is returned when an element of a different kind is
	// inserted into a kind-locked list.
	ErrListKind = errors.New("list element kind mismatch")

	// ErrPathNotFound is returned by path operations addressing a missing
	// member or an out-of-range index.
	ErrPathNotFound = errors.New("path not found")

	// ErrPath is returned for paths that do not parse.
	ErrPath = errors.New("bad path")
)
