package main

import (
	"cmp"
	"context"
	"os"

	"github.com/klauspost/compress/huff0"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	huffman "github.com/chronos-tachyon/bytehuff"
	"github.com/chronos-tachyon/bytehuff/container"
	"github.com/chronos-tachyon/bytehuff/internal/config"
)

type symbolStat struct {
	symbol huffman.Symbol
	count  uint64
	code   huffman.Code
}

func runStat(ctx context.Context, cfg *config.Config, log *logrus.Entry) error {
	args := cfg.CLI.Stat
	llog := log.WithField("input", args.Input)

	data, err := os.ReadFile(args.Input)
	if err != nil {
		return errors.Wrap(err, "unable to read input file")
	}

	_, stats, err := container.Compress(ctx, data, cfg.CLI.NumWorkers)
	if err != nil {
		return err
	}
	logStats(llog, stats)
	llog.Infof("final compressed size (whole file) = %d bytes, ratio %f", stats.FileSize, stats.Ratio())

	top, err := topSymbols(data, args.Top)
	if err != nil {
		return err
	}
	for _, item := range top {
		llog.Infof("byte %3d: %d occurrences, code %s", item.symbol, item.count, item.code)
	}

	baseline, err := huff0Size(data)
	if err != nil {
		return errors.Wrap(err, "unable to compute huff0 baseline")
	}
	llog.Infof("huff0 baseline = %d bytes", baseline)
	return nil
}

// topSymbols returns the n most frequent bytes of data, most frequent
// first, ties broken by byte value.
func topSymbols(data []byte, n int) ([]symbolStat, error) {
	f, err := huffman.CountFrequencies(data)
	if err != nil {
		return nil, err
	}

	tree, err := huffman.BuildTree(f)
	if err != nil {
		return nil, err
	}

	codes, err := tree.Codes()
	if err != nil {
		return nil, err
	}

	list := make([]symbolStat, 0, f.NumSymbols())
	for index := 0; index < huffman.NumSymbols; index++ {
		symbol := huffman.Symbol(index)
		if hc, ok := codes.Lookup(symbol); ok {
			list = append(list, symbolStat{symbol, f.Count(symbol), hc})
		}
	}

	slices.SortFunc(list, func(a, b symbolStat) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.symbol, b.symbol)
	})

	if len(list) > n {
		list = list[:n]
	}
	return list, nil
}

// huff0Size returns the size of data compressed block by block with huff0,
// as a point of comparison.
func huff0Size(data []byte) (int, error) {
	var s huff0.Scratch
	s.Reuse = huff0.ReusePolicyNone

	var total int
	for len(data) != 0 {
		n := len(data)
		if n > huff0.BlockSizeMax {
			n = huff0.BlockSizeMax
		}

		out, _, err := huff0.Compress1X(data[:n], &s)
		switch {
		case err == nil:
			total += len(out)
		case errors.Is(err, huff0.ErrIncompressible):
			total += n
		case errors.Is(err, huff0.ErrUseRLE):
			total++
		default:
			return 0, err
		}

		data = data[n:]
	}
	return total, nil
}
