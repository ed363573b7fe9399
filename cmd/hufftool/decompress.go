package main

import (
	"bufio"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/chronos-tachyon/bytehuff/container"
	"github.com/chronos-tachyon/bytehuff/internal/config"
)

func runDecompress(cfg *config.Config, log *logrus.Entry) error {
	args := cfg.CLI.Decompress
	llog := log.WithFields(logrus.Fields{
		"input":  args.Input,
		"output": args.Output,
	})

	f, err := os.Open(args.Input)
	if err != nil {
		return errors.Wrap(err, "unable to open input file")
	}
	defer f.Close()

	var file container.File
	if _, err := file.ReadFrom(bufio.NewReader(f)); err != nil {
		return errors.Wrap(err, "unable to read compressed file")
	}

	llog.Debugf("tree tokens: %d, payload bits: %d, payload words: %d",
		len(file.Tokens), file.Payload.NumBits, len(file.Payload.Words))

	data, err := container.Decompress(&file)
	if err != nil {
		// Nothing is written for a damaged file.
		llog.Warnf("decoded %d bytes before the error; discarding them", len(data))
		return err
	}

	err = writeFileAtomic(args.Output, args.Force, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "unable to write decompressed file")
	}

	llog.Debugf("output xxhash64: %016x", xxhash.Sum64(data))
	llog.Infof("decompressed %d bytes", len(data))
	return nil
}
