package seed

import (
	"fmt"
	"io"

	"keyphrase/internal/crypto"
	"keyphrase/internal/phrase"
)

// saltPrefix is fixed by the encoding: the KDF salt is this literal
// followed by the caller's password.
const saltPrefix = "keyphrase"

// Seed is the derived secret handed to downstream systems. It carries no
// validity of its own: it can only be built from a Keyphrase, and only
// valid Keyphrases exist.
type Seed struct {
	bytes []byte
}

// New derives the seed for kp under password. The password may be empty.
func New(kp *phrase.Keyphrase, password string) *Seed {
	salt := []byte(saltPrefix + password)
	return &Seed{bytes: crypto.DeriveSeed(kp.Entropy(), salt)}
}

// Bytes returns a copy of the seed bytes.
func (s *Seed) Bytes() []byte {
	b := make([]byte, len(s.bytes))
	copy(b, s.bytes)
	return b
}

// Format implements fmt.Formatter. %x and %X print the seed as lower- or
// uppercase hex; the alternate flag adds a "0x" prefix.
func (s *Seed) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		io.WriteString(f, phrase.HexString(s.bytes, verb == 'X', f.Flag('#')))
	case 's', 'v':
		io.WriteString(f, phrase.HexString(s.bytes, false, false))
	default:
		fmt.Fprintf(f, "%%!%c(seed.Seed)", verb)
	}
}
