// Package fsa implements readers for Morfologik's immutable finite-state
// automaton dictionary formats (FSA5 and CFSA2).
//
// An automaton is a byte-compact transition table loaded once from a `.dict`
// byte stream. States ("nodes") and transitions ("arcs") are identified by
// plain integer offsets into the arc byte array; there are no back-pointers
// from arcs to the automaton that owns them. Both readers are immutable after
// construction and safe for concurrent use.
//
// Basic usage:
//
//	a, err := fsa.New(dictBytes)
//	if err != nil {
//	    return err
//	}
//	arc, err := a.ArcForLabel(a.Root(), 'k')
package fsa

// Node identifies a state: the byte offset of its first outgoing arc
// in the arc byte array.
type Node int

// Arc identifies a single transition: the byte offset of its record
// in the arc byte array.
type Arc int

// Magic is the four-byte sequence every FSA dictionary starts with ("\fsa").
var Magic = [4]byte{'\\', 'f', 's', 'a'}

// Automaton format version bytes.
const (
	// VersionFSA5 identifies the FSA5 format.
	VersionFSA5 byte = 5

	// VersionCFSA2 identifies the CFSA2 format (as written by Morfologik's
	// CFSA2Serializer).
	VersionCFSA2 byte = 0xC6
)

// Flags is the automaton-level attribute bit set stored in the header.
type Flags uint16

const (
	// FlagFlexible marks automata built with the "flexible" layout.
	FlagFlexible Flags = 0x0001

	// FlagNumbers marks automata that store a root offset (and, in the
	// original builders, per-node entry counts) in the header.
	FlagNumbers Flags = 0x0002

	// Deprecated bits. Accepted on read, no semantics.
	flagNextBit Flags = 0x0004
	flagStopBit Flags = 0x0008
	flagTailBit Flags = 0x0010
)

// Contains reports whether all bits of other are set in f.
func (f Flags) Contains(other Flags) bool {
	return f&other == other
}

// Automaton is the uniform read interface over either on-disk format.
//
// All operations are pure reads over the loaded arc byte array; negative
// lookups are reported through typed errors (ArcNotFoundError, NoNextArcError,
// InvalidNodeOffsetError) that callers translate into control flow, while
// structural damage surfaces as *CorruptedError.
type Automaton interface {
	// Flags returns the automaton-level attribute bits.
	Flags() Flags

	// Root returns the root node.
	Root() Node

	// FirstArc returns the first outgoing arc of node.
	FirstArc(node Node) (Arc, error)

	// NextArc returns the next sibling of arc. It fails with
	// *NoNextArcError when arc is the last arc of its node.
	NextArc(arc Arc) (Arc, error)

	// ArcForLabel returns the outgoing arc of node carrying label, or
	// *ArcNotFoundError when node has no such arc.
	ArcForLabel(node Node, label byte) (Arc, error)

	// EndNode returns the node an arc points to.
	EndNode(arc Arc) (Node, error)

	// Label returns the arc's label byte.
	Label(arc Arc) (byte, error)

	// IsFinal reports whether traversing the arc terminates an accepted
	// sequence.
	IsFinal(arc Arc) (bool, error)

	// IsLast reports whether the arc is the last outgoing arc of its
	// source node.
	IsLast(arc Arc) (bool, error)
}
