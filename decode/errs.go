package decode

import "errors"

// Sentinel error kinds. Every error returned by Decode wraps exactly one of
// these and includes the byte offset at which decoding failed, so callers
// can dispatch with errors.Is and still report a precise location.
var (
	// ErrTruncated reports fewer bytes available than a field requires.
	ErrTruncated = errors.New("truncated input")

	// ErrLength reports a negative, oversized or malformed length field.
	ErrLength = errors.New("malformed length")

	// ErrTagKind reports a tag-kind byte outside the 0-12 enumeration.
	ErrTagKind = errors.New("unknown tag kind")

	// ErrText reports a string payload that does not decode under the
	// profile's text encoding.
	ErrText = errors.New("string decode error")

	// ErrLimit reports a document exceeding the depth or size budget.
	ErrLimit = errors.New("depth or size limit exceeded")

	// ErrRootKind reports a document whose root tag is not a compound.
	ErrRootKind = errors.New("root tag is not a compound")
)
