package phrase

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// HexString renders b as two hex digits per byte, so a byte below 0x10
// keeps its leading zero. The prefix flag prepends "0x".
func HexString(b []byte, upper, prefix bool) string {
	s := hex.EncodeToString(b)
	if upper {
		s = strings.ToUpper(s)
	}
	if prefix {
		s = "0x" + s
	}
	return s
}

// Format implements fmt.Formatter. %s and %v print the phrase text; %x
// and %X print the entropy as lower- or uppercase hex, with the alternate
// flag (%#x, %#X) adding a "0x" prefix.
func (kp *Keyphrase) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		io.WriteString(f, kp.phrase)
	case 'x', 'X':
		io.WriteString(f, HexString(kp.entropy, verb == 'X', f.Flag('#')))
	default:
		fmt.Fprintf(f, "%%!%c(phrase.Keyphrase)", verb)
	}
}
