package decode

import "github.com/nbt-format/go-nbt/profile"

// DefaultMaxDepth bounds container nesting when no MaxDepth option is given.
const DefaultMaxDepth = 512

type decOpts struct {
	prof     profile.Profile
	maxDepth int
	maxBytes int64
}

type Option func(*decOpts)

// WithProfile selects the encoding profile. The default is profile.Java.
func WithProfile(p profile.Profile) Option {
	return func(o *decOpts) { o.prof = p }
}

// MaxDepth caps container nesting. Documents nesting deeper fail with
// ErrLimit before any recursion can exhaust the stack.
func MaxDepth(n int) Option {
	return func(o *decOpts) { o.maxDepth = n }
}

// MaxBytes caps the total string and array payload a document may declare.
// Zero means no budget beyond the input length itself.
func MaxBytes(n int64) Option {
	return func(o *decOpts) { o.maxBytes = n }
}
