package fsa

import "errors"

// Iterator enumerates all accepted byte sequences reachable from a start
// node, lazily and in depth-first order following the on-disk arc order.
// A sequence is produced whenever a final arc is reached; the start node
// itself never produces the empty sequence.
//
// Usage follows the scanner pattern:
//
//	it := fsa.NewIterator(a, node)
//	for it.Next() {
//	    seq := it.Sequence()
//	    ...
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// Iteration state is an explicit stack of (node, pending sibling) frames
// plus the current label path, so deep automata cannot exhaust the call
// stack and iteration can pause between Next calls.
type Iterator struct {
	a     Automaton
	stack []iterFrame
	seq   []byte
	cur   []byte
	err   error
}

// iterFrame records a node being expanded and, when hasNext is set, the
// next outgoing arc to try from it.
type iterFrame struct {
	node    Node
	next    Arc
	hasNext bool
}

// NewIterator returns an iterator over all accepted sequences reachable
// from start; typically the node reached after matching a prefix. A start
// node without outgoing arcs yields an empty iteration.
func NewIterator(a Automaton, start Node) *Iterator {
	it := &Iterator{a: a}
	if first, err := a.FirstArc(start); err == nil {
		it.stack = append(it.stack, iterFrame{node: start, next: first, hasNext: true})
	}
	return it
}

// Next advances to the next accepted sequence. It returns false when the
// iteration is exhausted or a traversal error occurred; Err distinguishes
// the two.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if !top.hasNext {
			// All siblings of this node are done; backtrack.
			it.stack = it.stack[:len(it.stack)-1]
			if len(it.seq) > 0 {
				it.seq = it.seq[:len(it.seq)-1]
			}
			continue
		}

		arc := top.next
		top.hasNext = false
		// Park the next sibling for when this arc's subtree is done.
		last, err := it.a.IsLast(arc)
		if err != nil {
			it.err = err
			return false
		}
		if !last {
			sibling, err := it.a.NextArc(arc)
			if err != nil {
				it.err = err
				return false
			}
			top.next = sibling
			top.hasNext = true
		}

		label, err := it.a.Label(arc)
		if err != nil {
			it.err = err
			return false
		}
		it.seq = append(it.seq, label)

		final, err := it.a.IsFinal(arc)
		if err != nil {
			it.seq = it.seq[:len(it.seq)-1]
			it.err = err
			return false
		}
		if final {
			it.cur = append(it.cur[:0], it.seq...)
		}

		pushed := false
		target, err := it.a.EndNode(arc)
		if err == nil {
			firstChild, cerr := it.a.FirstArc(target)
			switch {
			case cerr == nil:
				it.stack = append(it.stack, iterFrame{node: target, next: firstChild, hasNext: true})
				pushed = true
			case isLeaf(cerr):
				// Target past the arc array: a childless leaf.
			default:
				it.seq = it.seq[:len(it.seq)-1]
				if final {
					it.err = cerr
					return true
				}
				it.err = cerr
				return false
			}
		} else {
			it.seq = it.seq[:len(it.seq)-1]
			if final {
				it.err = err
				return true
			}
			it.err = err
			return false
		}

		if final {
			if !pushed {
				it.seq = it.seq[:len(it.seq)-1]
			}
			return true
		}
		if !pushed {
			// Non-final dead end for this path.
			it.seq = it.seq[:len(it.seq)-1]
		}
	}
	return false
}

// Sequence returns the sequence produced by the last successful Next call.
// The slice is only valid until the next call to Next.
func (it *Iterator) Sequence() []byte {
	return it.cur
}

// Err returns the traversal error that terminated the iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}

// isLeaf reports whether err marks a node offset past the arc array, which
// traversal treats as a childless leaf.
func isLeaf(err error) bool {
	var invalidNode *InvalidNodeOffsetError
	return errors.As(err, &invalidNode)
}
