// Package nbt reads and writes whole NBT documents: the compression
// wrapper, the profile-parameterized binary codec and the tag tree in one
// call. The subpackages are the layers: tag holds the tree model and path
// mutation, decode and encode are the binary codec, frame the compression
// wrapper, record the typed-record bridge and snbt the textual rendering.
//
//	name, root, err := nbt.ReadFile("level.dat")               // Java, auto-detect compression
//	name, root, err := nbt.ReadFile("net.nbt",
//	    nbt.WithProfile(profile.BedrockNetwork))
//	err = nbt.WriteFile("level.dat", name, root,
//	    nbt.WithCompression(frame.Gzip))
package nbt

import (
	"github.com/nbt-format/go-nbt/frame"
	"github.com/nbt-format/go-nbt/profile"
)

type config struct {
	prof     profile.Profile
	comp     frame.Compression
	maxDepth int
	maxBytes int64
}

type Option func(*config)

// WithProfile selects the encoding profile for both reads and writes. The
// default is profile.Java.
func WithProfile(p profile.Profile) Option {
	return func(c *config) { c.prof = p }
}

// WithCompression selects the wrapper applied on write. Reads always
// auto-detect. The default is frame.None.
func WithCompression(comp frame.Compression) Option {
	return func(c *config) { c.comp = comp }
}

// WithMaxDepth caps container nesting on read; see decode.MaxDepth.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// WithMaxBytes caps declared payload size on read; see decode.MaxBytes.
func WithMaxBytes(n int64) Option {
	return func(c *config) { c.maxBytes = n }
}

func newConfig(opts []Option) config {
	c := config{prof: profile.Java}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
