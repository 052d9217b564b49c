package anvil

import (
	"encoding/binary"
	"testing"

	"github.com/samcharles93/stratum/pkg/nbt"
)

const (
	// Representative schema versions on each side of the packing change.
	straddledVersion int32 = 2230 // 1.15.2
	paddedVersion    int32 = 2566 // 1.16
)

func wordsToView(words []int64) nbt.LongArrayView {
	raw := make([]byte, len(words)*8)
	for i, w := range words {
		binary.BigEndian.PutUint64(raw[i*8:], uint64(w))
	}
	return nbt.NewLongArrayView(raw)
}

func TestBitsPerBlock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		paletteLen int
		want       int
	}{
		{1, 4}, {2, 4}, {15, 4}, {16, 4}, {17, 5}, {255, 8}, {256, 8}, {257, 9},
	}
	for _, c := range cases {
		if got := bitsPerBlock(c.paletteLen); got != c.want {
			t.Errorf("bitsPerBlock(%d): got %d want %d", c.paletteLen, got, c.want)
		}
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	t.Parallel()

	// Palette sizes crossing the width floor (1, 2, 16), a straddling width
	// (17 -> 5 bits) and a word-aligned width (256 -> 8 bits).
	for _, paletteLen := range []int{1, 2, 16, 17, 256} {
		for _, version := range []int32{straddledVersion, paddedVersion} {
			fieldBits := bitsPerBlock(paletteLen)

			values := make([]uint16, 16*16*16)
			for i := range values {
				values[i] = uint16((i*7 + 3) % paletteLen)
			}

			packed := NewPackedBits(wordsToView(PackBits(values, fieldBits, version)))
			got := make([]uint16, len(values))
			packed.Unpack(fieldBits, version, got)

			for i := range values {
				if got[i] != values[i] {
					t.Fatalf("palette=%d version=%d: index %d got %d want %d",
						paletteLen, version, i, got[i], values[i])
				}
			}
		}
	}
}

func TestUnpackConventionsDisagree(t *testing.T) {
	t.Parallel()

	// 5-bit fields do not divide 64, so the two conventions lay the same
	// values out differently. Version selection must be explicit.
	values := make([]uint16, 256)
	for i := range values {
		values[i] = uint16(i % 17)
	}
	straddled := PackBits(values, 5, straddledVersion)
	padded := PackBits(values, 5, paddedVersion)
	if len(straddled) == len(padded) {
		same := true
		for i := range straddled {
			if straddled[i] != padded[i] {
				same = false
				break
			}
		}
		if same {
			t.Fatalf("straddled and padded packings produced identical words")
		}
	}

	got := make([]uint16, len(values))
	NewPackedBits(wordsToView(straddled)).Unpack(5, paddedVersion, got)
	mismatch := false
	for i := range values {
		if got[i] != values[i] {
			mismatch = true
			break
		}
	}
	if !mismatch {
		t.Fatalf("unpacking with the wrong convention happened to round trip")
	}
}

func TestUnpackShortInputLeavesZeroes(t *testing.T) {
	t.Parallel()

	values := make([]uint16, 64)
	for i := range values {
		values[i] = uint16(i % 16)
	}
	words := PackBits(values, 4, paddedVersion)

	// Drop the last word; the tail of out must stay zero, with no panic.
	packed := NewPackedBits(wordsToView(words[:len(words)-1]))
	out := make([]uint16, 64)
	packed.Unpack(4, paddedVersion, out)

	for i := 0; i < 48; i++ {
		if out[i] != values[i] {
			t.Fatalf("index %d: got %d want %d", i, out[i], values[i])
		}
	}
	for i := 48; i < 64; i++ {
		if out[i] != 0 {
			t.Fatalf("index %d: got %d want 0 after short input", i, out[i])
		}
	}
}
