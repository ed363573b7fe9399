package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// wordBits is the width of one word of a Payload.
const wordBits = 32

// Payload is a bit-packed sequence of Codes.
type Payload struct {
	// Words holds the bits, least significant bit first within each word.
	// Bits of the last word beyond NumBits are padding.
	Words []uint32

	// NumBits holds the exact number of valid bits in Words.
	NumBits uint64
}

// Encoder implements a bit-packing encoder for a Huffman Tree.
type Encoder struct {
	codes CodeTable
}

// Init initializes this Encoder with the Codes of the given Tree.
func (e *Encoder) Init(t *Tree) error {
	codes, err := t.Codes()
	if err != nil {
		return errors.Wrap(err, "deriving Huffman codes")
	}
	*e = Encoder{codes: codes}
	return nil
}

// Codes returns the CodeTable used by this Encoder.
func (e *Encoder) Codes() CodeTable {
	return e.codes
}

// Encode packs the Code of each byte of data, in order, into a Payload.
// Every byte of data must have a Code, i.e. data must be covered by the
// Frequencies the Tree was built from.
func (e *Encoder) Encode(data []byte) Payload {
	words := make([]uint32, 0, len(data)/4+1)
	var numBits uint64
	var word uint32
	var used byte

	for _, symbol := range data {
		hc := e.codes[symbol]
		assert.Assertf(hc.Size != 0, "no Huffman code for symbol %d", symbol)
		numBits += uint64(hc.Size)

		bits, size := hc.Bits, hc.Size
		for size != 0 {
			n := wordBits - used
			if n > size {
				n = size
			}
			mask := uint64(1)<<n - 1
			word |= uint32(bits&mask) << used
			bits >>= n
			size -= n
			used += n
			if used == wordBits {
				words = append(words, word)
				word, used = 0, 0
			}
		}
	}
	if used != 0 {
		words = append(words, word)
	}

	assert.Assertf(uint64(len(words)) == wordsForBits(numBits), "%d words for %d bits", len(words), numBits)
	return Payload{Words: words, NumBits: numBits}
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.codes.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.codes.MaxSize())
	for index := 0; index < NumSymbols; index++ {
		hc := e.codes[index]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", index, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
