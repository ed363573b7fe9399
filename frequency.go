package huffman

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// parallelChunkSize is the smallest chunk worth handing to its own goroutine.
const parallelChunkSize = 1 << 16

// Frequencies holds the number of occurrences of each Symbol in an input.
// The zero value is not useful; construct with CountFrequencies.
type Frequencies struct {
	counts [NumSymbols]uint64
	total  uint64
}

// CountFrequencies counts the occurrences of each byte in data.
func CountFrequencies(data []byte) (*Frequencies, error) {
	if len(data) == 0 {
		return nil, errors.WithStack(ErrEmptyInput)
	}
	f := &Frequencies{total: uint64(len(data))}
	for _, b := range data {
		f.counts[b]++
	}
	return f, nil
}

// CountFrequenciesParallel is like CountFrequencies, but splits data into
// up to workers chunks which are counted concurrently and then summed.
func CountFrequenciesParallel(ctx context.Context, data []byte, workers int) (*Frequencies, error) {
	if len(data) == 0 {
		return nil, errors.WithStack(ErrEmptyInput)
	}
	if limit := (len(data) + parallelChunkSize - 1) / parallelChunkSize; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		return CountFrequencies(data)
	}

	partials := make([][NumSymbols]uint64, workers)
	chunkSize := (len(data) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for index := 0; index < workers; index++ {
		index := index
		start := index * chunkSize
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[start:end]
		g.Go(func() error {
			counts := &partials[index]
			for len(chunk) != 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
				n := len(chunk)
				if n > parallelChunkSize {
					n = parallelChunkSize
				}
				for _, b := range chunk[:n] {
					counts[b]++
				}
				chunk = chunk[n:]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "counting byte frequencies")
	}

	f := &Frequencies{total: uint64(len(data))}
	for index := range partials {
		for symbol, count := range partials[index] {
			f.counts[symbol] += count
		}
	}
	return f, nil
}

// Count returns the number of occurrences of symbol.
func (f *Frequencies) Count(symbol Symbol) uint64 {
	return f.counts[symbol]
}

// Total returns the length of the input.
func (f *Frequencies) Total() uint64 {
	return f.total
}

// Frequency returns the relative frequency of symbol, in the range [0, 1].
func (f *Frequencies) Frequency(symbol Symbol) float64 {
	if f.total == 0 {
		return 0
	}
	return float64(f.counts[symbol]) / float64(f.total)
}

// NumSymbols returns the number of distinct Symbols present in the input.
func (f *Frequencies) NumSymbols() int {
	var n int
	for _, count := range f.counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// Entropy returns the Shannon entropy of the input, in bits per Symbol.
func (f *Frequencies) Entropy() float64 {
	var h float64
	for index := 0; index < NumSymbols; index++ {
		if p := f.Frequency(Symbol(index)); p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// Dump writes a programmer-readable debugging dump of the Frequencies to the
// given writer.  Symbols that do not occur are omitted.
func (f *Frequencies) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", f.total)
	for index := 0; index < NumSymbols; index++ {
		count := f.counts[index]
		if count == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tCount(%d) = %d (%f)\n", index, count, f.Frequency(Symbol(index)))
	}
	fmt.Fprintf(&buf, "\tEntropy() = %f\n", f.Entropy())
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
