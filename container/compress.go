package container

import (
	"context"

	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/bytehuff"
)

// Stats describes one compression run.
type Stats struct {
	InputSize   uint64
	NumSymbols  int
	Entropy     float64
	MinCodeSize byte
	MaxCodeSize byte
	PayloadBits uint64
	FileSize    int
}

// AverageCodeSize returns the achieved number of bits per input byte.
func (s Stats) AverageCodeSize() float64 {
	if s.InputSize == 0 {
		return 0
	}
	return float64(s.PayloadBits) / float64(s.InputSize)
}

// EstimatedRatio returns the compression ratio that an ideal entropy coder
// would achieve, ignoring the tree.
func (s Stats) EstimatedRatio() float64 {
	if s.Entropy == 0 {
		return 0
	}
	return 8 / s.Entropy
}

// EstimatedSize returns the payload size, in bytes, of an ideal entropy
// coder.
func (s Stats) EstimatedSize() float64 {
	return float64(s.InputSize) * s.Entropy / 8
}

// Ratio returns the achieved compression ratio, tree and headers included.
func (s Stats) Ratio() float64 {
	if s.FileSize == 0 {
		return 0
	}
	return float64(s.InputSize) / float64(s.FileSize)
}

// Compress runs the whole compression pipeline on data: frequency count,
// tree construction, code derivation and bit packing.  Byte frequencies are
// counted by up to workers goroutines.
func Compress(ctx context.Context, data []byte, workers int) (*File, Stats, error) {
	f, err := huffman.CountFrequenciesParallel(ctx, data, workers)
	if err != nil {
		return nil, Stats{}, errors.Wrap(err, "compress: counting frequencies")
	}

	tree, err := huffman.BuildTree(f)
	if err != nil {
		return nil, Stats{}, errors.Wrap(err, "compress: building tree")
	}

	var e huffman.Encoder
	if err := e.Init(tree); err != nil {
		return nil, Stats{}, errors.Wrap(err, "compress: deriving codes")
	}

	file := &File{
		Tokens:  tree.Serialize(),
		Payload: e.Encode(data),
	}

	codes := e.Codes()
	stats := Stats{
		InputSize:   f.Total(),
		NumSymbols:  f.NumSymbols(),
		Entropy:     f.Entropy(),
		MinCodeSize: codes.MinSize(),
		MaxCodeSize: codes.MaxSize(),
		PayloadBits: file.Payload.NumBits,
		FileSize:    file.Size(),
	}
	return file, stats, nil
}

// Decompress rebuilds the tree of file and decodes its payload.  On error,
// the returned slice holds only the bytes decoded before the failure.
func Decompress(file *File) ([]byte, error) {
	tree, err := huffman.DeserializeTree(file.Tokens)
	if err != nil {
		return nil, errors.Wrap(err, "decompress: rebuilding tree")
	}

	var d huffman.Decoder
	d.Init(tree)
	out, err := d.Decode(file.Payload)
	if err != nil {
		return out, errors.Wrap(err, "decompress: decoding payload")
	}
	return out, nil
}
