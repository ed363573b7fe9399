package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{MakeCode(0, 0), `""`},
		{MakeCode(1, 0), `"0"`},
		{MakeCode(1, 1), `"1"`},
		{MakeCode(3, 0x1), `"100"`},
		{MakeCode(3, 0x3), `"110"`},
		{MakeCode(4, 0xe), `"0111"`},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			actual := row.hc.String()
			if actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		hc     Code
		prefix Code
		expect bool
	}

	testData := [...]testRow{
		{MakeCode(3, 0x3), MakeCode(0, 0), true},
		{MakeCode(3, 0x3), MakeCode(1, 0x1), true},
		{MakeCode(3, 0x3), MakeCode(2, 0x3), true},
		{MakeCode(3, 0x3), MakeCode(3, 0x3), true},
		{MakeCode(3, 0x3), MakeCode(2, 0x1), false},
		{MakeCode(3, 0x3), MakeCode(1, 0x0), false},
		{MakeCode(1, 0x1), MakeCode(2, 0x1), false},
		{MakeCode(64, ^uint64(0)), MakeCode(64, ^uint64(0)), true},
	}
	for _, row := range testData {
		t.Run(row.hc.String()+"/"+row.prefix.String(), func(t *testing.T) {
			actual := row.hc.HasPrefix(row.prefix)
			if actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestCodeTable_PrefixFree(t *testing.T) {
	for _, data := range [][]byte{
		[]byte(scenarioInput),
		[]byte("the quick brown fox jumps over the lazy dog"),
		makeSkewedInput(1, 4096, 40),
	} {
		tree := makeTestTree(t, data)
		codes, err := tree.Codes()
		if err != nil {
			t.Fatalf("Codes failed: %v", err)
		}
		for i := 0; i < NumSymbols; i++ {
			a, ok := codes.Lookup(Symbol(i))
			if !ok {
				continue
			}
			for j := 0; j < NumSymbols; j++ {
				b, ok := codes.Lookup(Symbol(j))
				if !ok || i == j {
					continue
				}
				if a.HasPrefix(b) {
					t.Errorf("code %s for %d has prefix %s for %d", a, i, b, j)
				}
			}
		}
		if codes.Len() != tree.NumLeaves() {
			t.Errorf("expected %d codes, got %d", tree.NumLeaves(), codes.Len())
		}
	}
}
