package huffman

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyInput is returned when there are no bytes to model.
	ErrEmptyInput = errors.New("empty input")

	// ErrMalformedTree is returned when a serialized tree does not reduce
	// to exactly one root.
	ErrMalformedTree = errors.New("malformed Huffman tree")

	// ErrTruncatedData is returned when the packed words end before the
	// declared bit count is satisfied.
	ErrTruncatedData = errors.New("truncated data")

	// ErrInvalidPath is returned when decoding would walk past a leaf.
	ErrInvalidPath = errors.New("invalid Huffman code path")

	// ErrCodeTooLong is returned when a Tree is deeper than MaxCodeSize.
	ErrCodeTooLong = errors.New("Huffman code too long")
)
