// Package profile defines the binary-layout profiles shared by the decode
// and encode packages. A Profile selects byte order, length-field encoding,
// string text encoding, and whether the root tag carries a name on the wire.
// The tag-kind discriminators and the tree shape are profile-independent;
// everything that differs between the Java and Bedrock editions is captured
// here so the codecs themselves are written once.
package profile

import (
	"encoding/binary"
	"fmt"
)

type Profile struct {
	// ByteOrder of every fixed-width field.
	ByteOrder binary.ByteOrder

	// VarLength selects unsigned LEB128 varints for string, array and list
	// length fields instead of fixed-width integers.
	VarLength bool

	// ModifiedUTF8 selects Java's modified UTF-8 string payload encoding
	// instead of standard UTF-8.
	ModifiedUTF8 bool

	// NamedRoot indicates the root tag's name is present on the wire.
	NamedRoot bool

	name string
}

var (
	// Java is the big-endian disk and network layout of the Java edition.
	Java = Profile{
		ByteOrder:    binary.BigEndian,
		ModifiedUTF8: true,
		NamedRoot:    true,
		name:         "java",
	}

	// BedrockDisk is the little-endian persisted layout of the Bedrock
	// edition; the root name is present.
	BedrockDisk = Profile{
		ByteOrder: binary.LittleEndian,
		VarLength: true,
		NamedRoot: true,
		name:      "bedrock",
	}

	// BedrockNetwork is BedrockDisk with the root name elided; decoded
	// documents report an empty root name.
	BedrockNetwork = Profile{
		ByteOrder: binary.LittleEndian,
		VarLength: true,
		name:      "network",
	}
)

func (p Profile) String() string {
	if p.name != "" {
		return p.name
	}
	return "custom"
}

// Parse resolves a CLI-friendly profile name.
func Parse(s string) (Profile, error) {
	switch s {
	case "java", "j":
		return Java, nil
	case "bedrock", "b":
		return BedrockDisk, nil
	case "network", "n":
		return BedrockNetwork, nil
	}
	return Profile{}, fmt.Errorf("unrecognized profile %q (want java, bedrock or network)", s)
}
