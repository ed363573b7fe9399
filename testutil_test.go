package huffman

import (
	"math/rand"
	"testing"
)

const scenarioInput = "AAAABBBCCD"

func makeTestTree(t *testing.T, data []byte) *Tree {
	t.Helper()
	f, err := CountFrequencies(data)
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}
	tree, err := BuildTree(f)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	return tree
}

func makeTestEncoder(t *testing.T, tree *Tree) *Encoder {
	t.Helper()
	var e Encoder
	if err := e.Init(tree); err != nil {
		t.Fatalf("Encoder.Init failed: %v", err)
	}
	return &e
}

// makeSkewedInput returns size pseudo-random bytes drawn from the first
// alphabetSize byte values with a roughly geometric distribution.
func makeSkewedInput(seed int64, size int, alphabetSize int) []byte {
	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, size)
	for i := range out {
		v := 0
		for v < alphabetSize-1 && rng.Intn(3) != 0 {
			v++
		}
		out[i] = byte(v)
	}
	return out
}
