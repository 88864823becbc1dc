package fsa

import (
	"github.com/coregx/morfologik/internal/conv"
)

// FSA5 arc flag bits, stored in the byte after the label.
const (
	// FSA5BitFinal marks an arc whose traversal terminates an accepted
	// sequence.
	FSA5BitFinal byte = 0x01

	// FSA5BitLast marks the last outgoing arc of a node.
	FSA5BitLast byte = 0x02

	// FSA5BitNext marks an arc that carries an explicit next-arc address
	// after its target address.
	FSA5BitNext byte = 0x04

	// FSA5BitTargetNext is written by some builders; addresses in this
	// reader are always absolute, matching FSA5.java.
	FSA5BitTargetNext byte = 0x08
)

// FSA5 reads the version-5 automaton layout:
//
//	---- header ----
//	byte[4]  magic = "\fsa"
//	byte     version = 5
//	byte     gtl      // target address width in bytes
//	byte     n_size   // next-arc address width in bytes
//	uint16   flags    // little-endian
//	byte[gtl] root    // only when the NUMBERS flag is set
//	---- data ----
//	byte[]   arcs
//
// Each arc record is label, flags, gtl-byte little-endian target address,
// and, when FSA5BitNext is set, an n_size-byte next-arc address.
//
// Labels inside a node are sorted ascending, which ArcForLabel exploits to
// break out of the scan early.
//
// An FSA5 is immutable and safe for concurrent use.
type FSA5 struct {
	flags          Flags
	gotoLength     byte
	nodeDataLength byte
	arcs           []byte
	root           Node
}

// NewFSA5 parses an FSA5 automaton from a full dictionary byte stream
// (magic and version included). The arc array aliases data; callers must
// not mutate it afterwards.
func NewFSA5(data []byte) (*FSA5, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	if h.Version != VersionFSA5 {
		return nil, &UnsupportedVersionError{Version: h.Version}
	}

	rest := data[headerSize:]
	if len(rest) < 4 {
		return nil, ErrUnexpectedEOF
	}
	gtl := rest[0]
	nSize := rest[1]
	flags := Flags(uint16(rest[2]) | uint16(rest[3])<<8)
	rest = rest[4:]

	root := Node(0)
	if flags.Contains(FlagNumbers) {
		if gtl == 0 {
			return nil, corruptedf("gtl is 0 with the NUMBERS flag, cannot read root offset")
		}
		if len(rest) < int(gtl) {
			return nil, ErrUnexpectedEOF
		}
		root = Node(readAddress(rest[:gtl]))
		rest = rest[gtl:]
	}

	return &FSA5{
		flags:          flags,
		gotoLength:     gtl,
		nodeDataLength: nSize,
		arcs:           rest,
		root:           root,
	}, nil
}

// readAddress decodes a little-endian address of len(buf) bytes.
func readAddress(buf []byte) int {
	addr := 0
	for i, b := range buf {
		addr |= int(b) << (i * 8)
	}
	return addr
}

// readAddressAt decodes a length-byte little-endian address at offset in
// the arc array, guarding both overflow and the array bounds.
func (f *FSA5) readAddressAt(offset int, length byte) (int, error) {
	if length == 0 {
		return 0, nil
	}
	end, ok := conv.AddOffset(offset, int(length))
	if !ok {
		return 0, corruptedf("address offset overflow: %d + %d", offset, length)
	}
	if end > len(f.arcs) {
		return 0, corruptedf("address read beyond arc data: offset %d, length %d, data %d",
			offset, length, len(f.arcs))
	}
	return readAddress(f.arcs[offset:end]), nil
}

// flagsAt returns the flag byte of the arc at the given offset.
func (f *FSA5) flagsAt(arc Arc) (byte, error) {
	off, ok := conv.AddOffset(int(arc), 1)
	if !ok || off >= len(f.arcs) {
		return 0, &InvalidArcOffsetError{Arc: arc}
	}
	return f.arcs[off], nil
}

// Flags returns the automaton-level attribute bits.
func (f *FSA5) Flags() Flags { return f.flags }

// Root returns the root node.
func (f *FSA5) Root() Node { return f.root }

// GotoLength returns the target-address width in bytes.
func (f *FSA5) GotoLength() byte { return f.gotoLength }

// NodeDataLength returns the next-arc-address width in bytes.
func (f *FSA5) NodeDataLength() byte { return f.nodeDataLength }

// FirstArc returns the first outgoing arc of node: the node offset itself,
// provided it lies within the arc array.
func (f *FSA5) FirstArc(node Node) (Arc, error) {
	if node < 0 || int(node) >= len(f.arcs) {
		return 0, &InvalidNodeOffsetError{Node: node}
	}
	return Arc(node), nil
}

// NextArc returns the next sibling of arc.
func (f *FSA5) NextArc(arc Arc) (Arc, error) {
	flags, err := f.flagsAt(arc)
	if err != nil {
		return 0, err
	}
	if flags&FSA5BitLast != 0 {
		return 0, &NoNextArcError{Arc: arc}
	}

	// Skip label, flags and the target address.
	after, ok := conv.AddOffsets(int(arc), 2, int(f.gotoLength))
	if !ok {
		return 0, &InvalidArcOffsetError{Arc: arc}
	}
	if flags&FSA5BitNext != 0 {
		addr, err := f.readAddressAt(after, f.nodeDataLength)
		if err != nil {
			return 0, err
		}
		return Arc(addr), nil
	}
	if after > len(f.arcs) {
		return 0, corruptedf("next arc offset %d out of bounds %d", after, len(f.arcs))
	}
	return Arc(after), nil
}

// ArcForLabel scans the outgoing arcs of node for label. Labels are sorted
// ascending, so the scan stops as soon as it passes the target.
func (f *FSA5) ArcForLabel(node Node, label byte) (Arc, error) {
	if len(f.arcs) == 0 && node == 0 {
		return 0, &ArcNotFoundError{Label: label, Node: node}
	}
	if node < 0 || int(node) >= len(f.arcs) {
		return 0, &InvalidNodeOffsetError{Node: node}
	}

	arc := Arc(node)
	for {
		if int(arc) >= len(f.arcs) {
			return 0, corruptedf("arc offset %d out of bounds while searching for label 0x%02X",
				arc, label)
		}
		arcLabel := f.arcs[arc]
		if arcLabel == label {
			return arc, nil
		}
		if arcLabel > label {
			break
		}
		flags, err := f.flagsAt(arc)
		if err != nil {
			return 0, corruptedf("arc flags offset out of bounds for arc %d", arc)
		}
		if flags&FSA5BitLast != 0 {
			break
		}
		next, err := f.NextArc(arc)
		if err != nil {
			return 0, err
		}
		arc = next
	}
	return 0, &ArcNotFoundError{Label: label, Node: node}
}

// EndNode returns the target node of arc: the gtl-byte address stored after
// the label and flag bytes.
func (f *FSA5) EndNode(arc Arc) (Node, error) {
	pos, ok := conv.AddOffset(int(arc), 2)
	if !ok {
		return 0, &InvalidArcOffsetError{Arc: arc}
	}
	addr, err := f.readAddressAt(pos, f.gotoLength)
	if err != nil {
		return 0, err
	}
	return Node(addr), nil
}

// Label returns the arc's label byte.
func (f *FSA5) Label(arc Arc) (byte, error) {
	if arc < 0 || int(arc) >= len(f.arcs) {
		return 0, &InvalidArcOffsetError{Arc: arc}
	}
	return f.arcs[arc], nil
}

// IsFinal reports whether the arc terminates an accepted sequence.
func (f *FSA5) IsFinal(arc Arc) (bool, error) {
	flags, err := f.flagsAt(arc)
	if err != nil {
		return false, err
	}
	return flags&FSA5BitFinal != 0, nil
}

// IsLast reports whether the arc is the last outgoing arc of its node.
func (f *FSA5) IsLast(arc Arc) (bool, error) {
	flags, err := f.flagsAt(arc)
	if err != nil {
		return false, err
	}
	return flags&FSA5BitLast != 0, nil
}
