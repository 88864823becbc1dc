package fsa

import (
	"errors"
	"fmt"
)

// MatchKind classifies the outcome of matching a byte sequence against an
// automaton.
type MatchKind uint8

const (
	// ExactMatch: the whole sequence was consumed and the last arc taken
	// is final.
	ExactMatch MatchKind = iota

	// NoMatch: some byte had no outgoing arc.
	NoMatch

	// SequenceIsAPrefix: the whole sequence was consumed but the last arc
	// taken is not final.
	SequenceIsAPrefix

	// AutomatonIsAPrefix: the automaton ran out of arcs before the input
	// did. Match never produces it; only extended matchers would.
	AutomatonIsAPrefix
)

// String returns a human-readable match kind name.
func (k MatchKind) String() string {
	switch k {
	case ExactMatch:
		return "ExactMatch"
	case NoMatch:
		return "NoMatch"
	case SequenceIsAPrefix:
		return "SequenceIsAPrefix"
	case AutomatonIsAPrefix:
		return "AutomatonIsAPrefix"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// MatchResult describes how far a sequence got into the automaton.
type MatchResult struct {
	// Kind is the outcome classification.
	Kind MatchKind

	// Index is the number of input bytes successfully consumed.
	Index int

	// Node is the last node reached.
	Node Node
}

// Match walks the automaton from the root, consuming sequence byte by byte.
//
// An empty sequence is an ExactMatch exactly when the root carries a final
// zero-labeled arc. A byte with no outgoing arc (including a walk that ends
// on a childless leaf) yields NoMatch with Index set to the number of bytes
// consumed and Node to the last node reached. Structural errors surface
// unchanged.
func Match(a Automaton, sequence []byte) (MatchResult, error) {
	node := a.Root()

	if len(sequence) == 0 {
		arc, err := a.ArcForLabel(node, 0)
		if err == nil {
			final, ferr := a.IsFinal(arc)
			if ferr != nil {
				return MatchResult{}, ferr
			}
			if final {
				return MatchResult{Kind: ExactMatch, Index: 0, Node: node}, nil
			}
			return MatchResult{Kind: NoMatch, Index: 0, Node: node}, nil
		}
		if isMissingArc(err) {
			return MatchResult{Kind: NoMatch, Index: 0, Node: node}, nil
		}
		return MatchResult{}, err
	}

	var lastArc Arc
	matched := 0
	for _, b := range sequence {
		arc, err := a.ArcForLabel(node, b)
		if err != nil {
			if isMissingArc(err) {
				return MatchResult{Kind: NoMatch, Index: matched, Node: node}, nil
			}
			return MatchResult{}, err
		}
		lastArc = arc
		node, err = a.EndNode(arc)
		if err != nil {
			return MatchResult{}, err
		}
		matched++
	}

	final, err := a.IsFinal(lastArc)
	if err != nil {
		return MatchResult{}, err
	}
	if final {
		return MatchResult{Kind: ExactMatch, Index: matched, Node: node}, nil
	}
	return MatchResult{Kind: SequenceIsAPrefix, Index: matched, Node: node}, nil
}

// isMissingArc reports whether err is an ordinary negative lookup: the node
// has no arc for the label, or the node is a childless leaf.
func isMissingArc(err error) bool {
	var notFound *ArcNotFoundError
	var invalidNode *InvalidNodeOffsetError
	return errors.As(err, &notFound) || errors.As(err, &invalidNode)
}

// Visitor receives depth-first traversal events from Walk.
type Visitor interface {
	// VisitState is invoked on node entry. Returning false prunes the
	// entire subtree rooted at the node.
	VisitState(a Automaton, node Node) bool

	// AcceptArc is invoked on each outgoing arc. Returning false prunes
	// the subtree below the arc only; siblings are still visited.
	AcceptArc(a Automaton, arc Arc) bool
}

// Walk traverses the automaton depth-first from start, invoking the visitor
// on every node and arc. Labels of descended arcs are appended to the
// caller-held path buffer and removed on return, so the visitor can read
// the current byte path at any point.
func Walk(a Automaton, start Node, path *[]byte, visitor Visitor) error {
	if !visitor.VisitState(a, start) {
		return nil
	}

	arc, err := a.FirstArc(start)
	if err != nil {
		var invalidNode *InvalidNodeOffsetError
		if errors.As(err, &invalidNode) {
			// Childless leaf.
			return nil
		}
		return err
	}

	for {
		label, err := a.Label(arc)
		if err != nil {
			return err
		}
		target, err := a.EndNode(arc)
		if err != nil {
			return err
		}
		last, err := a.IsLast(arc)
		if err != nil {
			return err
		}

		if visitor.AcceptArc(a, arc) {
			*path = append(*path, label)
			if err := Walk(a, target, path, visitor); err != nil {
				return err
			}
			*path = (*path)[:len(*path)-1]
		}

		if last {
			return nil
		}
		arc, err = a.NextArc(arc)
		if err != nil {
			var noNext *NoNextArcError
			if errors.As(err, &noNext) {
				return nil
			}
			return err
		}
	}
}
