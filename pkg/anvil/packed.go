package anvil

import (
	"math/bits"

	"github.com/samcharles93/stratum/pkg/nbt"
)

// The game packs palette indices and height map entries as B-bit fields
// inside big-endian 64-bit words. Two incompatible packings exist:
//
//   - straddling: fields run back to back, spilling across word boundaries
//     when B does not divide 64 (schema versions before 2529);
//   - padded: each word holds only whole fields, with the leftover high bits
//     unused (schema version 2529, snapshot 20w17a, and later).
//
// The chunk's declared DataVersion selects the packing. It is never guessed
// from the data length: a straddled and a padded array of the same field
// count can be the same number of words.

// dataVersionPaddedPacking is the first schema version using the padded
// convention.
const dataVersionPaddedPacking = 2529

// minBitsPerBlock is the wire floor for block state field width: even a
// one-entry palette is indexed with 4-bit fields.
const minBitsPerBlock = 4

// heightBits is the field width of packed height map entries for the
// 0..256 world span these chunk formats cover.
const heightBits = 9

// bitsPerBlock returns the field width for a palette of the given length:
// the smallest B with 2^B >= paletteLen, floored at minBitsPerBlock.
func bitsPerBlock(paletteLen int) int {
	if paletteLen <= 1<<minBitsPerBlock {
		return minBitsPerBlock
	}
	return bits.Len(uint(paletteLen - 1))
}

// PackedBits reads B-bit fields out of a packed word array without copying
// it. Unpacking is the per-block hot path, so callers cache the unpacked
// form; see Section and Chunk.
type PackedBits struct {
	words nbt.LongArrayView
}

// NewPackedBits wraps a decoded LongArray view. The view's buffer must stay
// alive for the life of the PackedBits.
func NewPackedBits(words nbt.LongArrayView) *PackedBits {
	return &PackedBits{words: words}
}

// testHookUnpack, when set, observes every Unpack call. Tests use it to
// prove caches keep unpacking from repeating.
var testHookUnpack func()

// Unpack expands len(out) fields of the given width into out under the
// packing convention dataVersion selects. If the word array runs short the
// remaining entries are left zero.
func (p *PackedBits) Unpack(fieldBits int, dataVersion int32, out []uint16) {
	if testHookUnpack != nil {
		testHookUnpack()
	}
	if dataVersion >= dataVersionPaddedPacking {
		p.unpackPadded(fieldBits, out)
	} else {
		p.unpackStraddled(fieldBits, out)
	}
}

func (p *PackedBits) unpackStraddled(fieldBits int, out []uint16) {
	mask := uint64(1)<<fieldBits - 1
	words := p.words.Len()
	bitPos := 0
	for i := range out {
		word := bitPos / 64
		if word >= words {
			return
		}
		shift := bitPos % 64
		v := uint64(p.words.At(word)) >> shift
		if rest := shift + fieldBits - 64; rest > 0 {
			if word+1 >= words {
				return
			}
			v |= uint64(p.words.At(word+1)) << (fieldBits - rest)
		}
		out[i] = uint16(v & mask)
		bitPos += fieldBits
	}
}

func (p *PackedBits) unpackPadded(fieldBits int, out []uint16) {
	mask := uint64(1)<<fieldBits - 1
	perWord := 64 / fieldBits
	words := p.words.Len()
	for i := range out {
		word := i / perWord
		if word >= words {
			return
		}
		shift := (i % perWord) * fieldBits
		out[i] = uint16((uint64(p.words.At(word)) >> shift) & mask)
	}
}

// PackBits packs values at the given field width into 64-bit words under the
// convention dataVersion selects. Inverse of Unpack for values that fit the
// width.
func PackBits(values []uint16, fieldBits int, dataVersion int32) []int64 {
	if dataVersion >= dataVersionPaddedPacking {
		return packPadded(values, fieldBits)
	}
	return packStraddled(values, fieldBits)
}

func packStraddled(values []uint16, fieldBits int) []int64 {
	mask := uint64(1)<<fieldBits - 1
	out := make([]int64, (len(values)*fieldBits+63)/64)
	bitPos := 0
	for _, v := range values {
		word := bitPos / 64
		shift := bitPos % 64
		out[word] |= int64((uint64(v) & mask) << shift)
		if rest := shift + fieldBits - 64; rest > 0 {
			out[word+1] |= int64((uint64(v) & mask) >> (fieldBits - rest))
		}
		bitPos += fieldBits
	}
	return out
}

func packPadded(values []uint16, fieldBits int) []int64 {
	mask := uint64(1)<<fieldBits - 1
	perWord := 64 / fieldBits
	out := make([]int64, (len(values)+perWord-1)/perWord)
	for i, v := range values {
		shift := (i % perWord) * fieldBits
		out[i/perWord] |= int64((uint64(v) & mask) << shift)
	}
	return out
}
