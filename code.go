package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit, i.e. the branch taken at the root.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Bit returns the i'th bit of the Code, counting from the root.
func (hc Code) Bit(i byte) uint64 {
	return (hc.Bits >> i) & 1
}

// HasPrefix returns true iff the first other.Size bits of this Code are
// exactly the bits of other.
func (hc Code) HasPrefix(other Code) bool {
	if other.Size > hc.Size {
		return false
	}
	if other.Size == 0 {
		return true
	}
	mask := ^uint64(0) >> (64 - other.Size)
	return hc.Bits&mask == other.Bits
}

// String returns the string representation of this Code, first bit first.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size) + 2)
	sb.WriteByte('"')
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	sb.WriteByte('"')
	return sb.String()
}

var _ fmt.Stringer = Code{}

// with returns the Code extended by one more bit.
func (hc Code) with(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits | (bit << hc.Size)}
}

// CodeTable maps each Symbol to its Code.  A Code with Size 0 means that the
// Symbol has no leaf in the Tree and cannot be encoded.
type CodeTable [NumSymbols]Code

// Lookup returns the Code for the given Symbol.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc := ct[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of Symbols that have a Code.
func (ct *CodeTable) Len() int {
	var n int
	for _, hc := range ct {
		if hc.Size != 0 {
			n++
		}
	}
	return n
}

// MinSize is the bit length of the shortest legal code.
func (ct *CodeTable) MinSize() byte {
	var lo byte
	for _, hc := range ct {
		if hc.Size != 0 && (lo == 0 || hc.Size < lo) {
			lo = hc.Size
		}
	}
	return lo
}

// MaxSize is the bit length of the longest legal code.
func (ct *CodeTable) MaxSize() byte {
	var hi byte
	for _, hc := range ct {
		if hc.Size > hi {
			hi = hc.Size
		}
	}
	return hi
}

// EncodedSize returns the number of bits needed to encode the input that
// the given Frequencies were counted from.
func (ct *CodeTable) EncodedSize(f *Frequencies) uint64 {
	var sum uint64
	for index := 0; index < NumSymbols; index++ {
		sum += uint64(ct[index].Size) * f.Count(Symbol(index))
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.MaxSize())
	for index := 0; index < NumSymbols; index++ {
		hc := ct[index]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", index, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
