package phrase

// groupBits is the width of one packed group: a word index.
const groupBits = 11

// packGroups regroups data into 11-bit values in big-endian bit order:
// the most significant bit of data[0] becomes the most significant bit of
// the first group. Trailing bits that cannot fill a whole group are
// dropped; the length catalog guarantees the inputs used by the codec
// divide exactly.
func packGroups(data []byte) []uint16 {
	groups := make([]uint16, 0, len(data)*8/groupBits)
	var acc uint32
	n := 0
	for _, b := range data {
		acc = acc<<8 | uint32(b)
		n += 8
		for n >= groupBits {
			groups = append(groups, uint16(acc>>(n-groupBits))&(1<<groupBits-1))
			n -= groupBits
		}
	}
	return groups
}

// unpackGroups is the inverse of packGroups: it accumulates 11-bit values
// into bytes in the same big-endian bit order and returns the buffer
// together with the exact number of bits written. If the final byte is
// only partially filled its unused low-order bits are zero; the caller
// knows from the bit count how many trailing bits are meaningful.
func unpackGroups(groups []uint16) ([]byte, int) {
	total := len(groups) * groupBits
	buf := make([]byte, 0, (total+7)/8)
	var acc uint32
	n := 0
	for _, g := range groups {
		acc = acc<<groupBits | uint32(g&(1<<groupBits-1))
		n += groupBits
		for n >= 8 {
			buf = append(buf, byte(acc>>(n-8)))
			n -= 8
		}
	}
	if n > 0 {
		buf = append(buf, byte(acc<<(8-n)))
	}
	return buf, total
}
