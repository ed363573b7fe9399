package main

import (
	"context"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/chronos-tachyon/bytehuff/container"
	"github.com/chronos-tachyon/bytehuff/internal/config"
)

func runCompress(ctx context.Context, cfg *config.Config, log *logrus.Entry) error {
	args := cfg.CLI.Compress
	llog := log.WithFields(logrus.Fields{
		"input":  args.Input,
		"output": args.Output,
	})

	data, err := os.ReadFile(args.Input)
	if err != nil {
		return errors.Wrap(err, "unable to read input file")
	}

	file, stats, err := container.Compress(ctx, data, cfg.CLI.NumWorkers)
	if err != nil {
		return err
	}

	logStats(llog, stats)
	llog.Debugf("input xxhash64: %016x", xxhash.Sum64(data))

	err = writeFileAtomic(args.Output, args.Force, func(w io.Writer) error {
		_, err := file.WriteTo(w)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "unable to write compressed file")
	}

	llog.Infof("compressed %d bytes into %d bytes", stats.InputSize, stats.FileSize)
	return nil
}

func logStats(log *logrus.Entry, stats container.Stats) {
	log.Infof("input entropy = %f bits", stats.Entropy)
	log.Infof("estimated compression ratio = %f", stats.EstimatedRatio())
	log.Infof("estimated data compressed size = %f bytes", stats.EstimatedSize())
	log.Infof("final compressed size (data section only) = %d bits = %f bytes", stats.PayloadBits, float64(stats.PayloadBits)/8)
	log.Debugf("distinct bytes: %d, code lengths %d .. %d bits, %f bits/byte",
		stats.NumSymbols, stats.MinCodeSize, stats.MaxCodeSize, stats.AverageCodeSize())
}
