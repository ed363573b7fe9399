package container

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/bytehuff"
)

const (
	countSize = 8
	tokenSize = 2
	wordSize  = 4
	wordBits  = 8 * wordSize

	// MaxTokens is the largest legal tree token count: one leaf per byte
	// value plus one internal node per merge.
	MaxTokens = 2*huffman.NumSymbols - 1
)

// File is the in-memory form of a compressed file.
type File struct {
	Tokens  []int16
	Payload huffman.Payload
}

// Size returns the length of the encoded File, in bytes.
func (f *File) Size() int {
	return 2*countSize + tokenSize*len(f.Tokens) + wordSize*len(f.Payload.Words)
}

// MarshalBinary encodes the File.
func (f *File) MarshalBinary() ([]byte, error) {
	if expect := wordsForBits(f.Payload.NumBits); uint64(len(f.Payload.Words)) != expect {
		return nil, errors.Errorf("payload has %d words for %d bits, expected %d", len(f.Payload.Words), f.Payload.NumBits, expect)
	}

	buf := make([]byte, 0, f.Size())
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(f.Tokens)))
	for _, token := range f.Tokens {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(token))
	}
	buf = binary.LittleEndian.AppendUint64(buf, f.Payload.NumBits)
	for _, word := range f.Payload.Words {
		buf = binary.LittleEndian.AppendUint32(buf, word)
	}
	return buf, nil
}

// UnmarshalBinary decodes data into the File.  See ReadFrom.
func (f *File) UnmarshalBinary(data []byte) error {
	_, err := f.ReadFrom(bytes.NewReader(data))
	return err
}

// WriteTo writes the encoded File to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	buf, err := f.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), errors.Wrap(err, "writing compressed file")
	}
	return int64(n), nil
}

// ReadFrom reads an encoded File from r.
func (f *File) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	var header [countSize]byte

	n, err := io.ReadFull(r, header[:])
	total += int64(n)
	if err != nil {
		return total, truncated(err, "reading tree token count")
	}
	numTokens := binary.LittleEndian.Uint64(header[:])
	if numTokens > MaxTokens {
		return total, errors.Wrapf(huffman.ErrMalformedTree, "%d tree tokens, max %d", numTokens, MaxTokens)
	}

	raw := make([]byte, tokenSize*numTokens)
	n, err = io.ReadFull(r, raw)
	total += int64(n)
	if err != nil {
		return total, truncated(err, "reading tree tokens")
	}
	tokens := make([]int16, numTokens)
	for index := range tokens {
		tokens[index] = int16(binary.LittleEndian.Uint16(raw[tokenSize*index:]))
	}

	n, err = io.ReadFull(r, header[:])
	total += int64(n)
	if err != nil {
		return total, truncated(err, "reading bit count")
	}
	numBits := binary.LittleEndian.Uint64(header[:])

	// The words are read through a LimitReader rather than preallocated,
	// so a corrupt bit count cannot force a huge allocation.
	limit := int64(math.MaxInt64)
	if numWords := wordsForBits(numBits); numWords < math.MaxInt64/wordSize {
		limit = int64(numWords * wordSize)
	}
	var body bytes.Buffer
	m, err := body.ReadFrom(io.LimitReader(r, limit))
	total += m
	if err != nil {
		return total, errors.Wrap(err, "reading packed words")
	}
	raw = body.Bytes()
	words := make([]uint32, len(raw)/wordSize)
	for index := range words {
		words[index] = binary.LittleEndian.Uint32(raw[wordSize*index:])
	}

	*f = File{
		Tokens:  tokens,
		Payload: huffman.Payload{Words: words, NumBits: numBits},
	}
	return total, nil
}

func truncated(err error, stage string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrap(huffman.ErrTruncatedData, stage)
	}
	return errors.Wrap(err, stage)
}

func wordsForBits(numBits uint64) uint64 {
	numWords := numBits / wordBits
	if numBits%wordBits != 0 {
		numWords++
	}
	return numWords
}

var (
	_ encoding.BinaryMarshaler   = (*File)(nil)
	_ encoding.BinaryUnmarshaler = (*File)(nil)
	_ io.WriterTo                = (*File)(nil)
	_ io.ReaderFrom              = (*File)(nil)
)
