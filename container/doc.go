// Package container reads and writes the compressed file layout.
//
// # Layout
//
// All integers are little-endian.
//
//	[8]                         treeTokenCount (uint64)
//	[2*treeTokenCount]          tree tokens (int16; -1 = internal node, 0..255 = leaf)
//	[8]                         totalBitCount (uint64)
//	[4*ceil(totalBitCount/32)]  packed words (uint32, least significant bit first)
//
// The tree tokens are the post-order serialization produced by
// huffman.Tree.Serialize.  The bit count, not the word count, says how many
// bits of the packed words are real; the rest of the last word is padding.
//
// # Truncation
//
// A file that ends inside the header or the tree tokens is rejected with
// huffman.ErrTruncatedData.  A file that ends inside the packed words is
// accepted by ReadFrom, keeping every complete word, so that Decompress can
// report huffman.ErrTruncatedData together with every symbol decoded before
// the missing bits.
package container
