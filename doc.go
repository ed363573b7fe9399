// Package huffman implements static Huffman coding over the 256-symbol byte
// alphabet.  A Tree is built from the byte Frequencies of the whole input,
// serialized as a post-order token stream, and used to bit-pack the input
// into 32-bit words (Encoder) and to unpack it again (Decoder).
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Entropy_(information_theory)>
//
package huffman
