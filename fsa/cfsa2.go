package fsa

import (
	"github.com/coregx/morfologik/internal/conv"
)

// CFSA2 arc flag bits, packed into the low three bits of the first arc byte.
const (
	// CFSA2BitFinal marks an arc whose traversal terminates an accepted
	// sequence.
	CFSA2BitFinal byte = 0x01

	// CFSA2BitLast marks the last outgoing arc of a node.
	CFSA2BitLast byte = 0x02

	// CFSA2BitTargetIsNext marks an arc whose varint holds the literal
	// target address rather than a delta.
	CFSA2BitTargetIsNext byte = 0x04
)

// CFSA2LabelShift is the bit position of the label field in the first arc
// byte: the top five bits hold the label, the bottom three the flags.
const CFSA2LabelShift = 3

const (
	cfsa2LabelMask byte = 0xF8
	cfsa2FlagsMask byte = 0x07
)

// CFSA2 reads the compact version-2 automaton layout:
//
//	---- header ----
//	byte[4]  magic = "\fsa"
//	byte     version = 0xC6
//	uint16   little-endian; low byte = flags, high byte = goto length info
//	vint     root offset   // only when the NUMBERS flag is set
//	---- data ----
//	byte[]   arcs
//
// Each arc is one packed label/flags byte followed by a varint: the literal
// target when CFSA2BitTargetIsNext is set, otherwise a delta added to the
// position right past the varint.
//
// The label field holds five bits, limiting labels to 0..31; the reference
// Morfologik format recovers full bytes through a label mapping table in the
// header preamble, which this reader does not implement.
//
// Arc labels carry no ordering guarantee, so ArcForLabel scans each node to
// its last arc.
//
// A CFSA2 is immutable and safe for concurrent use.
type CFSA2 struct {
	flags          Flags
	gotoLengthInfo byte
	arcs           []byte
	root           Node
}

// NewCFSA2 parses a CFSA2 automaton from a full dictionary byte stream
// (magic and version included). The arc array aliases data; callers must
// not mutate it afterwards.
func NewCFSA2(data []byte) (*CFSA2, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	if h.Version != VersionCFSA2 {
		return nil, &UnsupportedVersionError{Version: h.Version}
	}

	rest := data[headerSize:]
	if len(rest) < 2 {
		return nil, ErrUnexpectedEOF
	}
	packed := uint16(rest[0]) | uint16(rest[1])<<8
	flags := Flags(packed & 0x00FF)
	gotoLengthInfo := byte(packed >> 8)
	rest = rest[2:]

	root := Node(0)
	if flags.Contains(FlagNumbers) {
		offset, n, err := readVInt(rest)
		if err != nil {
			return nil, err
		}
		root = Node(offset)
		rest = rest[n:]
	}

	return &CFSA2{
		flags:          flags,
		gotoLengthInfo: gotoLengthInfo,
		arcs:           rest,
		root:           root,
	}, nil
}

// readVIntAt decodes the varint starting at offset in the arc array.
func (c *CFSA2) readVIntAt(offset int) (int, int, error) {
	if offset < 0 || offset >= len(c.arcs) {
		return 0, 0, corruptedf("varint read offset %d out of bounds (len %d)",
			offset, len(c.arcs))
	}
	return readVInt(c.arcs[offset:])
}

// Flags returns the automaton-level attribute bits.
func (c *CFSA2) Flags() Flags { return c.flags }

// Root returns the root node.
func (c *CFSA2) Root() Node { return c.root }

// GotoLengthInfo returns the goto length info byte from the header.
func (c *CFSA2) GotoLengthInfo() byte { return c.gotoLengthInfo }

// FirstArc returns the first outgoing arc of node: the node offset itself,
// provided it lies within the arc array.
func (c *CFSA2) FirstArc(node Node) (Arc, error) {
	if node < 0 || int(node) >= len(c.arcs) {
		return 0, &InvalidNodeOffsetError{Node: node}
	}
	return Arc(node), nil
}

// NextArc returns the next sibling of arc: past the packed byte and the
// varint that follows it.
func (c *CFSA2) NextArc(arc Arc) (Arc, error) {
	if arc < 0 || int(arc) >= len(c.arcs) {
		return 0, &InvalidArcOffsetError{Arc: arc}
	}
	if c.arcs[arc]&cfsa2FlagsMask&CFSA2BitLast != 0 {
		return 0, &NoNextArcError{Arc: arc}
	}

	vintStart, ok := conv.AddOffset(int(arc), 1)
	if !ok {
		return 0, corruptedf("offset overflow for varint read at arc %d", arc)
	}
	_, n, err := c.readVIntAt(vintStart)
	if err != nil {
		return 0, err
	}
	next, ok := conv.AddOffsets(int(arc), 1, n)
	if !ok {
		return 0, corruptedf("offset overflow computing next arc for arc %d", arc)
	}
	if next >= len(c.arcs) {
		return 0, corruptedf("next arc offset %d points beyond arc data (len %d) for arc %d",
			next, len(c.arcs), arc)
	}
	return Arc(next), nil
}

// ArcForLabel scans the outgoing arcs of node for label. CFSA2 makes no
// ordering promise, so the scan always runs to the last arc.
func (c *CFSA2) ArcForLabel(node Node, label byte) (Arc, error) {
	if len(c.arcs) == 0 && node == 0 {
		return 0, &ArcNotFoundError{Label: label, Node: node}
	}
	if node < 0 || int(node) >= len(c.arcs) {
		return 0, &InvalidNodeOffsetError{Node: node}
	}

	arc := Arc(node)
	for {
		if int(arc) >= len(c.arcs) {
			return 0, corruptedf("arc offset %d out of bounds while searching for label 0x%02X",
				arc, label)
		}
		packed := c.arcs[arc]
		if (packed&cfsa2LabelMask)>>CFSA2LabelShift == label {
			return arc, nil
		}
		if packed&cfsa2FlagsMask&CFSA2BitLast != 0 {
			break
		}
		next, err := c.NextArc(arc)
		if err != nil {
			return 0, err
		}
		arc = next
	}
	return 0, &ArcNotFoundError{Label: label, Node: node}
}

// EndNode returns the target node of arc.
func (c *CFSA2) EndNode(arc Arc) (Node, error) {
	if arc < 0 || int(arc) >= len(c.arcs) {
		return 0, &InvalidArcOffsetError{Arc: arc}
	}
	packed := c.arcs[arc]

	target, n, err := c.readVIntAt(int(arc) + 1)
	if err != nil {
		return 0, err
	}
	if packed&cfsa2FlagsMask&CFSA2BitTargetIsNext != 0 {
		return Node(target), nil
	}
	node, ok := conv.AddOffsets(int(arc), 1, n, target)
	if !ok {
		return 0, corruptedf("end node offset overflow for arc %d", arc)
	}
	return Node(node), nil
}

// Label returns the arc's label: the top five bits of the packed byte.
func (c *CFSA2) Label(arc Arc) (byte, error) {
	if arc < 0 || int(arc) >= len(c.arcs) {
		return 0, &InvalidArcOffsetError{Arc: arc}
	}
	return (c.arcs[arc] & cfsa2LabelMask) >> CFSA2LabelShift, nil
}

// IsFinal reports whether the arc terminates an accepted sequence.
func (c *CFSA2) IsFinal(arc Arc) (bool, error) {
	if arc < 0 || int(arc) >= len(c.arcs) {
		return false, &InvalidArcOffsetError{Arc: arc}
	}
	return c.arcs[arc]&CFSA2BitFinal != 0, nil
}

// IsLast reports whether the arc is the last outgoing arc of its node.
func (c *CFSA2) IsLast(arc Arc) (bool, error) {
	if arc < 0 || int(arc) >= len(c.arcs) {
		return false, &InvalidArcOffsetError{Arc: arc}
	}
	return c.arcs[arc]&CFSA2BitLast != 0, nil
}
