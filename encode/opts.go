package encode

import "github.com/nbt-format/go-nbt/profile"

type encOpts struct {
	prof profile.Profile
}

type Option func(*encOpts)

// WithProfile selects the encoding profile. The default is profile.Java.
func WithProfile(p profile.Profile) Option {
	return func(o *encOpts) { o.prof = p }
}
