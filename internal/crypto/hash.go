package crypto

import "crypto/sha256"

// ChecksumByte returns the first byte of SHA-256(data).
//
// A keyphrase embeds at most 8 checksum bits, so one digest byte covers
// every phrase length.
func ChecksumByte(data []byte) byte {
	sum := sha256.Sum256(data)
	return sum[0]
}
