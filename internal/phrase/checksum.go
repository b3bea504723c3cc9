package phrase

// checksum extracts the top n bits of b, right-aligned. n must be between
// 0 and 8; the codec only ever passes a ChecksumBits value.
func checksum(b byte, n int) byte {
	return b >> (8 - n)
}
