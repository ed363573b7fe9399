package main

import (
	"bytes"
	"context"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/chronos-tachyon/bytehuff/container"
	"github.com/chronos-tachyon/bytehuff/internal/config"
)

func runVerify(ctx context.Context, cfg *config.Config, log *logrus.Entry) error {
	args := cfg.CLI.Verify
	llog := log.WithField("input", args.Input)

	data, err := os.ReadFile(args.Input)
	if err != nil {
		return errors.Wrap(err, "unable to read input file")
	}

	return verify(ctx, data, cfg.CLI.NumWorkers, llog)
}

// verify compresses data, encodes and re-parses the compressed file, and
// checks that decompressing it yields data again.
func verify(ctx context.Context, data []byte, workers int, log *logrus.Entry) error {
	file, stats, err := container.Compress(ctx, data, workers)
	if err != nil {
		return err
	}

	raw, err := file.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "unable to encode compressed file")
	}

	var parsed container.File
	if err := parsed.UnmarshalBinary(raw); err != nil {
		return errors.Wrap(err, "unable to parse compressed file")
	}

	out, err := container.Decompress(&parsed)
	if err != nil {
		return err
	}

	expect, actual := xxhash.Sum64(data), xxhash.Sum64(out)
	log.WithFields(logrus.Fields{
		"expect": expect,
		"actual": actual,
	}).Debug("xxhash64 digests")

	if expect != actual || !bytes.Equal(data, out) {
		return errors.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(data), len(out))
	}

	log.Infof("round trip OK: %d bytes -> %d bytes (ratio %f)", stats.InputSize, stats.FileSize, stats.Ratio())
	return nil
}
