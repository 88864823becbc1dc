package morfologik

import (
	"encoding/binary"
	"sort"
	"testing"

	"github.com/coregx/morfologik/fsa"
)

// trieNode is the scaffolding used by buildFSA5 to lay out test automata.
type trieNode struct {
	children map[byte]*trieNode
	final    map[byte]bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: map[byte]*trieNode{}, final: map[byte]bool{}}
}

// buildFSA5 serializes the given byte sequences into an FSA5 image with
// gtl=1 and contiguous sibling arcs. Labels inside each node are laid out
// ascending, as the format requires; childless targets point one past the
// arc data.
func buildFSA5(t *testing.T, seqs ...[]byte) []byte {
	t.Helper()

	root := newTrieNode()
	for _, seq := range seqs {
		if len(seq) == 0 {
			t.Fatal("buildFSA5: empty sequence")
		}
		node := root
		for i, b := range seq {
			child, ok := node.children[b]
			if !ok {
				child = newTrieNode()
				node.children[b] = child
			}
			if i == len(seq)-1 {
				node.final[b] = true
			}
			node = child
		}
	}

	// First pass: pre-order offsets for every node that has arcs.
	offsets := map[*trieNode]int{}
	cur := 0
	var assign func(*trieNode)
	assign = func(n *trieNode) {
		offsets[n] = cur
		cur += 3 * len(n.children)
		for _, label := range sortedLabels(n) {
			child := n.children[label]
			if len(child.children) > 0 {
				assign(child)
			}
		}
	}
	assign(root)
	leaf := cur
	if leaf > 255 {
		t.Fatalf("buildFSA5: arc data %d bytes too large for gtl=1", leaf)
	}

	// Second pass: emit the arcs.
	blob := make([]byte, 0, leaf)
	var emit func(*trieNode)
	emit = func(n *trieNode) {
		labels := sortedLabels(n)
		for i, label := range labels {
			child := n.children[label]
			var flags byte
			if n.final[label] {
				flags |= fsa.FSA5BitFinal
			}
			if i == len(labels)-1 {
				flags |= fsa.FSA5BitLast
			}
			target := leaf
			if len(child.children) > 0 {
				target = offsets[child]
			}
			blob = append(blob, label, flags, byte(target))
		}
		for _, label := range labels {
			child := n.children[label]
			if len(child.children) > 0 {
				emit(child)
			}
		}
	}
	emit(root)

	data := append(append([]byte{}, fsa.Magic[:]...), fsa.VersionFSA5, 1, 1)
	data = binary.LittleEndian.AppendUint16(data, 0)
	return append(data, blob...)
}

func sortedLabels(n *trieNode) []byte {
	labels := make([]byte, 0, len(n.children))
	for label := range n.children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
