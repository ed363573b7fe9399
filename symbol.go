package huffman

// Symbol represents a symbol in the byte alphabet.
type Symbol = byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxCodeSize is the longest Code, in bits, that a CodeTable can hold.
const MaxCodeSize = 64

// maxTokens is the length of the serialization of a Tree with one leaf per
// Symbol: NumSymbols leaves plus NumSymbols-1 internal nodes.
const maxTokens = 2*NumSymbols - 1

// internalToken is the serialized token for an internal node.
const internalToken = int16(-1)
