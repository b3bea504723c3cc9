package phrase

import "fmt"

// Length is a valid keyphrase length, measured in words. The five
// variants form a closed table: entropy widths 128 through 256 bits in
// 32-bit steps, each with entropy/32 checksum bits, and a total width
// that is always an exact multiple of 11.
type Length int

const (
	Words12 Length = 12
	Words15 Length = 15
	Words18 Length = 18
	Words21 Length = 21
	Words24 Length = 24
)

// Lengths lists every valid phrase length, shortest first.
var Lengths = []Length{Words12, Words15, Words18, Words21, Words24}

var entropyBits = map[Length]int{
	Words12: 128,
	Words15: 160,
	Words18: 192,
	Words21: 224,
	Words24: 256,
}

// ForEntropyBits returns the phrase length encoding exactly bits bits of
// entropy.
func ForEntropyBits(bits int) (Length, error) {
	for _, l := range Lengths {
		if entropyBits[l] == bits {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %d bits", ErrInvalidKeysize, bits)
}

// ForWordCount returns the phrase length for a phrase of n words.
func ForWordCount(n int) (Length, error) {
	switch l := Length(n); l {
	case Words12, Words15, Words18, Words21, Words24:
		return l, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidWordLength, n)
}

// Words returns the number of words in a phrase of this length.
func (l Length) Words() int { return int(l) }

// EntropyBits returns the number of entropy bits encoded by a phrase of
// this length.
func (l Length) EntropyBits() int { return entropyBits[l] }

// ChecksumBits returns the number of embedded checksum bits.
func (l Length) ChecksumBits() int { return entropyBits[l] / 32 }

// TotalBits returns entropy plus checksum bits; always Words()*11.
func (l Length) TotalBits() int { return l.EntropyBits() + l.ChecksumBits() }

// CheckEntropy reports whether ent carries exactly the entropy this
// length encodes.
func (l Length) CheckEntropy(ent []byte) error {
	if len(ent)*8 != l.EntropyBits() {
		return fmt.Errorf("%w: %d bits for %d words", ErrInvalidEntropyLength, len(ent)*8, l.Words())
	}
	return nil
}

// String returns the length as "N words".
func (l Length) String() string { return fmt.Sprintf("%d words", int(l)) }
