package huffman

import (
	"strings"
	"testing"
)

func TestEncoder(t *testing.T) {
	e := makeTestEncoder(t, makeTestTree(t, []byte(scenarioInput)))

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 3\n",
		"\tEncode(65) = \"0\"\n",
		"\tEncode(66) = \"10\"\n",
		"\tEncode(67) = \"111\"\n",
		"\tEncode(68) = \"110\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestEncoder_Encode(t *testing.T) {
	e := makeTestEncoder(t, makeTestTree(t, []byte(scenarioInput)))

	// AAAA BBB CC D → 0000 101010 111111 110
	p := e.Encode([]byte(scenarioInput))
	if p.NumBits != 19 {
		t.Errorf("expected 19 bits, got %d", p.NumBits)
	}
	if len(p.Words) != 1 || p.Words[0] != 0x3fd50 {
		t.Errorf("wrong words: %#x", p.Words)
	}
}

func TestEncoder_Encode_WordBoundaries(t *testing.T) {
	e := makeTestEncoder(t, makeTestTree(t, []byte(scenarioInput)))

	// 11 × "110" = 33 bits: one full word plus one bit.
	p := e.Encode([]byte(strings.Repeat("D", 11)))
	if p.NumBits != 33 {
		t.Errorf("expected 33 bits, got %d", p.NumBits)
	}
	if len(p.Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(p.Words))
	}
	if p.Words[0] != 0xdb6db6db || p.Words[1] != 0x0 {
		t.Errorf("wrong words: %#x", p.Words)
	}

	// 32 × "0" fills exactly one word.
	p = e.Encode([]byte(strings.Repeat("A", 32)))
	if p.NumBits != 32 || len(p.Words) != 1 {
		t.Errorf("expected 32 bits in 1 word, got %d bits in %d words", p.NumBits, len(p.Words))
	}

	p = e.Encode(nil)
	if p.NumBits != 0 || len(p.Words) != 0 {
		t.Errorf("expected empty payload, got %d bits in %d words", p.NumBits, len(p.Words))
	}
}

func TestEncoder_Encode_NumBits(t *testing.T) {
	data := makeSkewedInput(13, 30000, 90)
	f, _ := CountFrequencies(data)
	tree, _ := BuildTree(f)
	e := makeTestEncoder(t, tree)
	codes := e.Codes()

	p := e.Encode(data)
	if expect := codes.EncodedSize(f); p.NumBits != expect {
		t.Errorf("expected %d bits, got %d", expect, p.NumBits)
	}
	if expect := (p.NumBits + 31) / 32; uint64(len(p.Words)) != expect {
		t.Errorf("expected %d words, got %d", expect, len(p.Words))
	}

	// Shannon: H <= average code length < H + 1.
	h := f.Entropy()
	avg := float64(p.NumBits) / float64(len(data))
	if avg < h || avg >= h+1 {
		t.Errorf("average code length %f outside [%f, %f)", avg, h, h+1)
	}
}
