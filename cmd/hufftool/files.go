package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// writeFileAtomic writes the output of write to a temporary file next to
// path and renames it into place, so that a failed run leaves no partial
// output behind.
func writeFileAtomic(path string, force bool, write func(io.Writer) error) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Errorf("output %s already exists (use --force to overwrite)", path)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "unable to create temporary output file")
	}

	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "unable to close temporary output file")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		tmp = nil
		return errors.Wrapf(err, "unable to rename output into %s", path)
	}

	tmp = nil
	return nil
}
