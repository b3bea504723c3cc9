package phrase

import (
	"fmt"
	"strings"

	"keyphrase/internal/crypto"
	"keyphrase/internal/wordlist"
)

// Keyphrase is a checksum-protected word encoding of an entropy value.
//
// A Keyphrase can only be obtained through Generate, FromEntropy or
// FromPhrase, so holding one is proof that phrase and entropy agree under
// the language's catalog. It is immutable after construction.
type Keyphrase struct {
	phrase  string
	lang    wordlist.Language
	entropy []byte
}

// Generate creates a Keyphrase of the given length from fresh entropy.
// It fails only if the system random source does.
func Generate(length Length, lang wordlist.Language) (*Keyphrase, error) {
	ent, err := crypto.RandomBytes(length.EntropyBits() / 8)
	if err != nil {
		return nil, err
	}
	if err := length.CheckEntropy(ent); err != nil {
		return nil, err
	}
	return fromEntropy(ent, lang), nil
}

// FromEntropy creates a Keyphrase from caller-supplied entropy. The
// entropy length must match one of the five phrase lengths; otherwise
// FromEntropy fails with ErrInvalidKeysize.
func FromEntropy(entropy []byte, lang wordlist.Language) (*Keyphrase, error) {
	if _, err := ForEntropyBits(len(entropy) * 8); err != nil {
		return nil, err
	}
	ent := make([]byte, len(entropy))
	copy(ent, entropy)
	return fromEntropy(ent, lang), nil
}

// fromEntropy encodes entropy of a known-valid length. It takes ownership
// of ent.
func fromEntropy(ent []byte, lang wordlist.Language) *Keyphrase {
	list := wordlist.For(lang)

	// Append the checksum byte, then regroup into 11-bit indices. The
	// pack drops the unused low bits of the checksum byte.
	data := make([]byte, 0, len(ent)+1)
	data = append(data, ent...)
	data = append(data, crypto.ChecksumByte(ent))

	groups := packGroups(data)
	words := make([]string, len(groups))
	for i, g := range groups {
		words[i] = list.Word(g)
	}

	return &Keyphrase{
		phrase:  strings.Join(words, " "),
		lang:    lang,
		entropy: ent,
	}
}

// FromPhrase parses and validates phrase text. The text must be words of
// the language's catalog joined by single ASCII spaces; word matching is
// case-sensitive and exact. The embedded checksum is verified against the
// decoded entropy before a Keyphrase is returned.
func FromPhrase(text string, lang wordlist.Language) (*Keyphrase, error) {
	ent, err := phraseToEntropy(text, lang)
	if err != nil {
		return nil, err
	}
	return &Keyphrase{
		phrase:  text,
		lang:    lang,
		entropy: ent,
	}, nil
}

// Validate checks phrase text without constructing a Keyphrase, for
// callers that only need a verdict and must not see the entropy.
func Validate(text string, lang wordlist.Language) error {
	_, err := phraseToEntropy(text, lang)
	return err
}

// phraseToEntropy decodes untrusted phrase text, verifies the checksum
// and returns the entropy. Kept internal: a bare byte slice that decodes
// from a phrase is too easy to mistake for a seed.
func phraseToEntropy(text string, lang wordlist.Language) ([]byte, error) {
	list := wordlist.For(lang)

	split := strings.Split(text, " ")
	groups := make([]uint16, len(split))
	for i, w := range split {
		g, ok := list.Index(w)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		groups[i] = g
	}

	length, err := ForWordCount(len(groups))
	if err != nil {
		return nil, err
	}

	decoded, total := unpackGroups(groups)
	// Total bit count is a function of the untrusted word count, so a
	// mismatch is a typed failure rather than a programmer assertion.
	if total != length.TotalBits() {
		return nil, fmt.Errorf("%w: decoded %d bits, want %d", ErrInvalidWordLength, total, length.TotalBits())
	}

	entLen := length.EntropyBits() / 8
	ent := decoded[:entLen]

	actual := checksum(decoded[entLen], length.ChecksumBits())
	expected := checksum(crypto.ChecksumByte(ent), length.ChecksumBits())
	if actual != expected {
		return nil, ErrInvalidChecksum
	}
	return ent, nil
}

// Phrase returns the phrase text.
func (kp *Keyphrase) Phrase() string { return kp.phrase }

// Language returns the language the phrase was encoded under.
func (kp *Keyphrase) Language() wordlist.Language { return kp.lang }

// Entropy returns a copy of the entropy bytes. The copy keeps the stored
// value immutable; the entropy is not a seed and must not be used as one.
func (kp *Keyphrase) Entropy() []byte {
	ent := make([]byte, len(kp.entropy))
	copy(ent, kp.entropy)
	return ent
}

// Length returns the phrase length.
func (kp *Keyphrase) Length() Length {
	l, _ := ForEntropyBits(len(kp.entropy) * 8)
	return l
}

// String returns the phrase text.
func (kp *Keyphrase) String() string { return kp.phrase }
