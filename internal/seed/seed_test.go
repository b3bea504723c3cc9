package seed

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"keyphrase/internal/crypto"
	"keyphrase/internal/phrase"
	"keyphrase/internal/wordlist"
)

func testKeyphrase(t *testing.T) *phrase.Keyphrase {
	t.Helper()
	kp, err := phrase.FromPhrase(
		"park remain person kitchen mule spell knee armed position rail grid ankle",
		wordlist.English,
	)
	if err != nil {
		t.Fatalf("FromPhrase: %v", err)
	}
	return kp
}

func TestSeedLength(t *testing.T) {
	s := New(testKeyphrase(t), "")
	if len(s.Bytes()) != crypto.SeedBytes {
		t.Fatalf("seed is %d bytes, want %d", len(s.Bytes()), crypto.SeedBytes)
	}
}

func TestSeedDeterministic(t *testing.T) {
	kp := testKeyphrase(t)
	a := New(kp, "hunter2")
	b := New(kp, "hunter2")
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("same keyphrase and password derived different seeds")
	}
}

func TestPasswordChangesSeed(t *testing.T) {
	kp := testKeyphrase(t)
	plain := New(kp, "")
	withPw := New(kp, "hunter2")
	if bytes.Equal(plain.Bytes(), withPw.Bytes()) {
		t.Fatal("password did not affect the seed")
	}
}

func TestEntropyChangesSeed(t *testing.T) {
	a, err := phrase.Generate(phrase.Words12, wordlist.English)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := phrase.Generate(phrase.Words12, wordlist.English)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if bytes.Equal(New(a, "").Bytes(), New(b, "").Bytes()) {
		t.Fatal("different keyphrases derived the same seed")
	}
}

func TestBytesReturnsCopy(t *testing.T) {
	s := New(testKeyphrase(t), "")
	b := s.Bytes()
	b[0] ^= 0xFF
	if bytes.Equal(b, s.Bytes()) {
		t.Fatal("mutating the returned slice changed the stored seed")
	}
}

func TestSeedHexFormatting(t *testing.T) {
	s := New(testKeyphrase(t), "")

	lower := fmt.Sprintf("%x", s)
	if len(lower) != crypto.SeedBytes*2 {
		t.Fatalf("hex seed is %d chars, want %d", len(lower), crypto.SeedBytes*2)
	}
	if lower != strings.ToLower(lower) {
		t.Fatalf("%%x produced uppercase output: %q", lower)
	}

	upper := fmt.Sprintf("%#X", s)
	if upper != "0x"+strings.ToUpper(lower) {
		t.Fatalf("%%#X = %q, want 0x prefix plus uppercase of %q", upper, lower)
	}
}
