package huffman

import (
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

func TestTree_Serialize(t *testing.T) {
	type testRow struct {
		name   string
		data   string
		expect []int16
	}

	testData := [...]testRow{
		{"scenario", scenarioInput, []int16{65, 66, 68, 67, -1, -1, -1}},
		{"single", "qqq", []int16{113}},
		{"pair", "ab", []int16{97, 98, -1}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := makeTestTree(t, []byte(row.data)).Serialize()
			if !slices.Equal(row.expect, actual) {
				t.Errorf("wrong tokens:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
		})
	}
}

func TestDeserializeTree_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte(scenarioInput),
		[]byte("x"),
		[]byte("mississippi river"),
		makeSkewedInput(5, 50000, 256),
	}
	for _, data := range inputs {
		tree := makeTestTree(t, data)
		tokens := tree.Serialize()
		if len(tokens) != tree.Len() {
			t.Errorf("expected %d tokens, got %d", tree.Len(), len(tokens))
		}

		rebuilt, err := DeserializeTree(tokens)
		if err != nil {
			t.Fatalf("DeserializeTree failed: %v", err)
		}
		if rebuilt.NumLeaves() != tree.NumLeaves() || rebuilt.NumInternal() != tree.NumInternal() {
			t.Errorf("shape mismatch: %d/%d vs %d/%d", rebuilt.NumLeaves(), rebuilt.NumInternal(), tree.NumLeaves(), tree.NumInternal())
		}

		expect, err := tree.Codes()
		if err != nil {
			t.Fatalf("Codes failed: %v", err)
		}
		actual, err := rebuilt.Codes()
		if err != nil {
			t.Fatalf("Codes failed: %v", err)
		}
		if expect != actual {
			t.Errorf("code tables differ after round trip")
		}
		if again := rebuilt.Serialize(); !slices.Equal(tokens, again) {
			t.Errorf("wrong tokens:\n\texpect: %v\n\tactual: %v", tokens, again)
		}
	}
}

func TestDeserializeTree_Malformed(t *testing.T) {
	tooMany := make([]int16, maxTokens+1)
	for index := range tooMany {
		tooMany[index] = internalToken
	}

	type testRow struct {
		name   string
		tokens []int16
	}

	testData := [...]testRow{
		{"empty", nil},
		{"lone-sentinel", []int16{-1}},
		{"one-operand", []int16{1, -1}},
		{"two-roots", []int16{1, 2}},
		{"three-roots", []int16{1, 2, -1, 3, 4, -1}},
		{"out-of-range", []int16{1, 256, -1}},
		{"negative", []int16{1, -2, -1}},
		{"duplicate", []int16{7, 7, -1}},
		{"too-many", tooMany},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree, err := DeserializeTree(row.tokens)
			if !errors.Is(err, ErrMalformedTree) {
				t.Errorf("expected ErrMalformedTree, got %v", err)
			}
			if tree != nil {
				t.Errorf("expected nil Tree")
			}
		})
	}
}
