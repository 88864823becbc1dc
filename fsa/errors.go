package fsa

import (
	"errors"
	"fmt"
)

// Common automaton errors.
var (
	// ErrInvalidMagic indicates the input does not start with the "\fsa"
	// magic sequence.
	ErrInvalidMagic = errors.New("invalid FSA magic sequence")

	// ErrUnexpectedEOF indicates the input ended in the middle of a record.
	ErrUnexpectedEOF = errors.New("unexpected end of FSA data")
)

// UnsupportedVersionError indicates a header version byte that is neither
// FSA5 nor CFSA2.
type UnsupportedVersionError struct {
	Version byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported FSA version: 0x%02X", e.Version)
}

// CorruptedError indicates structural damage: offset overflow, an
// out-of-bounds arc or target, gtl=0 with the NUMBERS flag, or an
// over-long varint. It always surfaces to the caller unchanged.
type CorruptedError struct {
	Msg string
}

func (e *CorruptedError) Error() string {
	return "corrupted FSA: " + e.Msg
}

func corruptedf(format string, args ...any) error {
	return &CorruptedError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidNodeOffsetError indicates a node offset outside the arc byte
// array. Traversal uses it to recognize terminal leaves: a target that
// points past the blob has no outgoing arcs.
type InvalidNodeOffsetError struct {
	Node Node
}

func (e *InvalidNodeOffsetError) Error() string {
	return fmt.Sprintf("invalid node offset: %d", e.Node)
}

// InvalidArcOffsetError indicates an arc offset outside the arc byte array.
type InvalidArcOffsetError struct {
	Arc Arc
}

func (e *InvalidArcOffsetError) Error() string {
	return fmt.Sprintf("invalid arc offset: %d", e.Arc)
}

// ArcNotFoundError is the ordinary negative-lookup signal: node has no
// outgoing arc labeled Label. Traversal catches it and turns it into
// control flow; it is not an indication of damage.
type ArcNotFoundError struct {
	Label byte
	Node  Node
}

func (e *ArcNotFoundError) Error() string {
	return fmt.Sprintf("no arc for label 0x%02X from node %d", e.Label, e.Node)
}

// NoNextArcError signals that NextArc was called on the last arc of a
// node. It is the loop terminator for sibling iteration.
type NoNextArcError struct {
	Arc Arc
}

func (e *NoNextArcError) Error() string {
	return fmt.Sprintf("no next arc after arc %d (last)", e.Arc)
}
