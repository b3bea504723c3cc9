package phrase

import (
	"bytes"
	"testing"
)

func TestPackGroupsBitOrder(t *testing.T) {
	// 0xFF 0x00 0x00 is 24 bits: the first group takes the leading 11
	// (eight ones, three zeros), the second the next 11 (all zeros), and
	// the trailing 2 bits are dropped.
	got := packGroups([]byte{0xFF, 0x00, 0x00})
	want := []uint16{0x7F8, 0x000}
	if len(got) != len(want) {
		t.Fatalf("got %d groups, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("group %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestPackGroupsSaturated(t *testing.T) {
	// 17 bytes of ones regroup into twelve full groups of eleven ones.
	got := packGroups(bytes.Repeat([]byte{0xFF}, 17))
	if len(got) != 12 {
		t.Fatalf("got %d groups, want 12", len(got))
	}
	for i, g := range got {
		if g != 0x7FF {
			t.Errorf("group %d = %#x, want 0x7ff", i, g)
		}
	}
}

func TestUnpackGroupsPadding(t *testing.T) {
	// A single group is 11 bits: one full byte plus 3 bits left-aligned
	// in a zero-padded trailing byte.
	buf, total := unpackGroups([]uint16{0x7FF})
	if total != 11 {
		t.Fatalf("total = %d bits, want 11", total)
	}
	if !bytes.Equal(buf, []byte{0xFF, 0xE0}) {
		t.Fatalf("buf = %x, want ffe0", buf)
	}
}

func TestUnpackInvertsPack(t *testing.T) {
	// 33 bytes is 264 bits, an exact multiple of both 8 and 11, so the
	// round trip must reproduce the input bit for bit.
	data := make([]byte, 33)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}

	groups := packGroups(data)
	if len(groups) != 24 {
		t.Fatalf("got %d groups, want 24", len(groups))
	}

	buf, total := unpackGroups(groups)
	if total != 264 {
		t.Fatalf("total = %d bits, want 264", total)
	}
	if !bytes.Equal(buf, data) {
		t.Fatalf("round trip mismatch:\n got %x\nwant %x", buf, data)
	}
}

func TestPackInvertsUnpack(t *testing.T) {
	// Twelve groups unpack to 132 bits; packing the padded buffer must
	// recover the same twelve groups.
	groups := make([]uint16, 12)
	for i := range groups {
		groups[i] = uint16(i*173+291) & 0x7FF
	}

	buf, total := unpackGroups(groups)
	if total != 132 {
		t.Fatalf("total = %d bits, want 132", total)
	}

	back := packGroups(buf)
	if len(back) != 12 {
		t.Fatalf("got %d groups back, want 12", len(back))
	}
	for i := range groups {
		if back[i] != groups[i] {
			t.Errorf("group %d = %#x, want %#x", i, back[i], groups[i])
		}
	}
}

func TestChecksumExtraction(t *testing.T) {
	cases := []struct {
		b    byte
		n    int
		want byte
	}{
		{0xFF, 4, 0x0F},
		{0xFF, 8, 0xFF},
		{0xA5, 4, 0x0A},
		{0xA5, 5, 0x14},
		{0x80, 1, 0x01},
		{0x7F, 1, 0x00},
		{0xFF, 0, 0x00},
	}
	for _, c := range cases {
		if got := checksum(c.b, c.n); got != c.want {
			t.Errorf("checksum(%#x, %d) = %#x, want %#x", c.b, c.n, got, c.want)
		}
	}
}
