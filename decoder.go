package huffman

import (
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Decoder implements a decoder for Payloads packed by an Encoder.
type Decoder struct {
	tree *Tree
}

// Init initializes this Decoder.  The Tree must have the same shape as the
// one used for encoding; weights are ignored.
func (d *Decoder) Init(t *Tree) {
	*d = Decoder{tree: t}
}

// Decode walks the Tree one bit at a time, starting from the root, emitting
// a Symbol and returning to the root whenever a leaf is reached.  Exactly
// p.NumBits bits are consumed.
//
// If Decode fails, the returned slice holds the Symbols that were completely
// decoded before the failure, and err is one of:
//
//   ErrTruncatedData → p.Words ran out before p.NumBits, or p.NumBits ended
//                      in the middle of a Code
//
//   ErrInvalidPath   → a bit asked to descend below a leaf, which can only
//                      happen with a single-leaf Tree and a mismatched
//                      Payload
//
func (d *Decoder) Decode(p Payload) ([]byte, error) {
	assert.Assertf(d.tree != nil, "Decoder.Decode called before Init")
	nodes := d.tree.nodes
	root := d.tree.root
	available := uint64(len(p.Words)) * wordBits

	capacity := p.NumBits
	if capacity > available {
		capacity = available
	}
	out := make([]byte, 0, capacity/2)

	cursor := root
	for pos := uint64(0); pos < p.NumBits; pos++ {
		if pos >= available {
			return out, errors.Wrapf(ErrTruncatedData, "need %d bits, got %d words", p.NumBits, len(p.Words))
		}
		bit := (p.Words[pos/wordBits] >> (pos % wordBits)) & 1

		node := nodes[cursor]
		if node.IsLeaf() {
			// Only a single-leaf Tree gets here: its root is its only
			// leaf, and its only Code is "0".
			if bit != 0 {
				return out, errors.Wrapf(ErrInvalidPath, "bit %d: cannot descend below leaf %d", pos, node.Symbol)
			}
			out = append(out, node.Symbol)
			continue
		}

		if bit == 0 {
			cursor = node.Left
		} else {
			cursor = node.Right
		}
		if next := nodes[cursor]; next.IsLeaf() {
			out = append(out, next.Symbol)
			cursor = root
		}
	}

	if cursor != root {
		return out, errors.Wrapf(ErrTruncatedData, "%d bits end in the middle of a code", p.NumBits)
	}
	return out, nil
}
