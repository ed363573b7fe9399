package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// NodeKind discriminates the variants of Node.
type NodeKind byte

const (
	// LeafNode is a Node that stands for one Symbol.
	LeafNode NodeKind = iota + 1

	// InternalNode is a Node with exactly two children.
	InternalNode
)

// String returns the name of the NodeKind.
func (kind NodeKind) String() string {
	switch kind {
	case LeafNode:
		return "Leaf"
	case InternalNode:
		return "Internal"
	default:
		return fmt.Sprintf("NodeKind(%d)", byte(kind))
	}
}

// Node is one vertex of a Tree.  Symbol is meaningful only for a LeafNode;
// Left and Right are meaningful only for an InternalNode, and hold the
// indices of the children within the owning Tree.
type Node struct {
	Kind   NodeKind
	Symbol Symbol
	Weight uint64
	Left   int32
	Right  int32
}

// IsLeaf returns true iff this is a LeafNode.
func (n Node) IsLeaf() bool {
	return n.Kind == LeafNode
}

// Tree is a Huffman code tree.  All nodes are owned by the Tree and refer to
// each other by index.  A Tree is never modified after construction.
type Tree struct {
	nodes     []Node
	root      int32
	numLeaves int
}

// BuildTree builds the Huffman tree for the given Frequencies.
//
// Leaves are created in ascending Symbol order.  The two lightest nodes are
// merged repeatedly, the first one extracted becoming the left child.  Nodes
// of equal weight are extracted in creation order, so the result does not
// depend on the heap implementation.
//
func BuildTree(f *Frequencies) (*Tree, error) {
	if f == nil || f.total == 0 {
		return nil, errors.WithStack(ErrEmptyInput)
	}

	numLeaves := f.NumSymbols()
	t := &Tree{
		nodes:     make([]Node, 0, 2*numLeaves-1),
		numLeaves: numLeaves,
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]nodeAndWeight, 0, numLeaves)}
	for index := 0; index < NumSymbols; index++ {
		count := f.counts[index]
		if count == 0 {
			continue
		}
		h.list = append(h.list, nodeAndWeight{t.push(Node{Kind: LeafNode, Symbol: Symbol(index), Weight: count}), count})
	}
	h.Init()

	// Step 2: pop two nodes, combine them into a new internal node, and
	// push the new node back onto the minheap.  A single leaf is left
	// alone; it becomes the root.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndWeight)
		b := heap.Pop(&h).(nodeAndWeight)
		weight := a.weight + b.weight
		assert.Assertf(weight >= a.weight, "weight overflow: %d + %d", a.weight, b.weight)
		index := t.push(Node{Kind: InternalNode, Weight: weight, Left: a.node, Right: b.node})
		heap.Push(&h, nodeAndWeight{index, weight})
	}

	t.root = heap.Pop(&h).(nodeAndWeight).node
	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "%d nodes for %d leaves", len(t.nodes), numLeaves)
	return t, nil
}

// NumLeaves returns the number of leaves, i.e. of Symbols with a Code.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// NumInternal returns the number of internal nodes.
func (t *Tree) NumInternal() int {
	return len(t.nodes) - t.numLeaves
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the index of the root node.
func (t *Tree) Root() int32 {
	return t.root
}

// Node returns the node with the given index.
func (t *Tree) Node(index int32) Node {
	return t.nodes[index]
}

// Codes derives the CodeTable for this Tree.  A Tree with a single leaf
// assigns that leaf the one-bit Code "0".
func (t *Tree) Codes() (CodeTable, error) {
	var codes CodeTable
	var err error
	t.walk(func(index int32, hc Code) {
		if err != nil {
			return
		}
		node := t.nodes[index]
		if hc.Size == 0 {
			hc = MakeCode(1, 0)
		}
		if hc.Size > MaxCodeSize {
			err = errors.Wrapf(ErrCodeTooLong, "symbol %d needs %d bits, max %d", node.Symbol, hc.Size, MaxCodeSize)
			return
		}
		codes[node.Symbol] = hc
	}, nil)
	if err != nil {
		return CodeTable{}, err
	}
	return codes, nil
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, one node per line, children indented below their parent.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tNumInternal() = %d\n", t.NumInternal())
	t.dumpNode(&buf, t.root, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) dumpNode(buf *bytes.Buffer, index int32, depth int) {
	node := t.nodes[index]
	buf.WriteString(strings.Repeat("\t", depth))
	if node.IsLeaf() {
		fmt.Fprintf(buf, "Leaf(%d, %d)\n", node.Symbol, node.Weight)
		return
	}
	fmt.Fprintf(buf, "Internal(%d)\n", node.Weight)
	t.dumpNode(buf, node.Left, depth+1)
	t.dumpNode(buf, node.Right, depth+1)
}

func (t *Tree) push(node Node) int32 {
	index := int32(len(t.nodes))
	t.nodes = append(t.nodes, node)
	return index
}

// walk visits the Tree depth-first, left before right.  leaf is called with
// the path from the root to each leaf; internal, if not nil, is called for
// each internal node after both of its children.
//
// We use stackItem.x to keep track of where we are in the tree walk:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func (t *Tree) walk(leaf func(index int32, hc Code), internal func(index int32)) {
	type stackItem struct {
		index int32
		code  Code
		x     byte
	}

	if t.nodes[t.root].IsLeaf() {
		leaf(t.root, Code{})
		return
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.numLeaves))+1)
	processChild := func(index int32, hc Code) {
		if t.nodes[index].IsLeaf() {
			leaf(index, hc)
			return
		}
		stack = append(stack, stackItem{index: index, code: hc})
	}

	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		node := t.nodes[top.index]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(node.Left, top.code.with(0))
		case 1:
			processChild(node.Right, top.code.with(1))
		case 2:
			if internal != nil {
				internal(top.index)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// type nodeAndWeight + type nodeHeap {{{

type nodeAndWeight struct {
	node   int32
	weight uint64
}

type nodeHeap struct {
	list []nodeAndWeight
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

// Less orders by weight, then by creation order: leaves in Symbol order
// come first, followed by internal nodes in the order they were merged.
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.node < b.node
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndWeight))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
