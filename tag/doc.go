// Package tag provides the in-memory representation of NBT documents.
//
// # Overview
//
// An NBT document is a tree of tags. Every tag holds one of thirteen
// variants, discriminated by Kind: six fixed-width numerics, three
// fixed-width arrays, strings, homogeneous lists and ordered compounds.
// Whether a tree was decoded from bytes or built programmatically, it is
// represented the same way, so the decode, encode, record and snbt packages
// all operate on *tag.Tag.
//
// # Invariants
//
// Two invariants are enforced by construction and mutation:
//
//   - a List's element kind is fixed once set (by NewList or by the first
//     Append); mismatched inserts fail with ErrListKind
//   - a Compound's members keep their first-insertion order; overwriting a
//     name through Set keeps the member at its original position
//
// # Paths
//
// Nodes are addressed with $-rooted paths of compound-name and list-index
// steps:
//
//	t.GetPath("$.Data.Player.Inventory[0].id")
//	t.SetPath("$.Data.LevelName", tag.FromString("world"))
//	t.RemovePath("$.Data.Raining", false)
//
// A tree is exclusively owned by its caller for the duration of any
// mutating call; concurrent mutation of one tree requires external
// synchronization. Distinct trees are fully independent.
package tag
