package huffman

import (
	"github.com/pkg/errors"
)

// Serialize returns the post-order token stream for this Tree: each leaf
// emits its Symbol, and each internal node emits -1 after both children.
func (t *Tree) Serialize() []int16 {
	tokens := make([]int16, 0, len(t.nodes))
	t.walk(func(index int32, _ Code) {
		tokens = append(tokens, int16(t.nodes[index].Symbol))
	}, func(int32) {
		tokens = append(tokens, internalToken)
	})
	return tokens
}

// DeserializeTree reconstructs a Tree from the token stream produced by
// Serialize.  Weights are not part of the stream, so every node of the
// result has Weight 0.
//
// The stream is rejected with ErrMalformedTree if it contains a token
// outside -1 .. 255, repeats a Symbol, applies -1 to fewer than two nodes,
// or leaves anything other than exactly one root.
//
func DeserializeTree(tokens []int16) (*Tree, error) {
	if len(tokens) > maxTokens {
		return nil, errors.Wrapf(ErrMalformedTree, "%d tokens, max %d", len(tokens), maxTokens)
	}

	t := &Tree{nodes: make([]Node, 0, len(tokens))}
	stack := make([]int32, 0, log2uint32(uint32(len(tokens)))+1)
	var seen [NumSymbols]bool

	for pos, token := range tokens {
		switch {
		case token == internalToken:
			if len(stack) < 2 {
				return nil, errors.Wrapf(ErrMalformedTree, "token %d: internal node with %d children", pos, len(stack))
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, t.push(Node{Kind: InternalNode, Left: left, Right: right}))

		case token >= 0 && token < NumSymbols:
			symbol := Symbol(token)
			if seen[symbol] {
				return nil, errors.Wrapf(ErrMalformedTree, "token %d: duplicate leaf for symbol %d", pos, symbol)
			}
			seen[symbol] = true
			t.numLeaves++
			stack = append(stack, t.push(Node{Kind: LeafNode, Symbol: symbol}))

		default:
			return nil, errors.Wrapf(ErrMalformedTree, "token %d: invalid value %d", pos, token)
		}
	}

	if len(stack) != 1 {
		return nil, errors.Wrapf(ErrMalformedTree, "%d nodes left after %d tokens, expected 1", len(stack), len(tokens))
	}
	t.root = stack[0]
	return t, nil
}
