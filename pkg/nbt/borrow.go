package nbt

import (
	"encoding/binary"
	"iter"
)

// The array views below alias the decoded input buffer instead of copying it.
// Block states and biome arrays dominate a chunk payload, so avoiding the
// copy matters on the decode path. A view stays valid for as long as the
// buffer it was decoded from; holding a view keeps the buffer reachable.
//
// Iteration trusts the declared element count: a short trailing read ends the
// sequence instead of failing, which keeps iteration infallible.

// ByteArrayView is a zero-copy view over a ByteArray payload.
type ByteArrayView struct {
	data []byte
}

// NewByteArrayView wraps raw ByteArray payload bytes.
func NewByteArrayView(data []byte) ByteArrayView {
	return ByteArrayView{data: data}
}

// Len reports the number of whole elements available.
func (v ByteArrayView) Len() int { return len(v.data) }

// Bytes exposes the underlying range. The returned slice aliases the source
// buffer and must not be modified.
func (v ByteArrayView) Bytes() []byte { return v.data }

// At reads the i'th element. The caller keeps i within Len.
func (v ByteArrayView) At(i int) int8 { return int8(v.data[i]) }

// Iter yields each element in order. Every call restarts from the start of
// the view.
func (v ByteArrayView) Iter() iter.Seq[int8] {
	return func(yield func(int8) bool) {
		for _, b := range v.data {
			if !yield(int8(b)) {
				return
			}
		}
	}
}

// IntArrayView is a zero-copy view over an IntArray payload of big-endian
// 32-bit elements.
type IntArrayView struct {
	data []byte
}

// NewIntArrayView wraps raw IntArray payload bytes.
func NewIntArrayView(data []byte) IntArrayView {
	return IntArrayView{data: data}
}

func (v IntArrayView) Len() int { return len(v.data) / 4 }

// At reads the i'th element. The caller keeps i within Len.
func (v IntArrayView) At(i int) int32 {
	return int32(binary.BigEndian.Uint32(v.data[i*4:]))
}

func (v IntArrayView) Iter() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for rest := v.data; len(rest) >= 4; rest = rest[4:] {
			if !yield(int32(binary.BigEndian.Uint32(rest))) {
				return
			}
		}
	}
}

// LongArrayView is a zero-copy view over a LongArray payload of big-endian
// 64-bit elements.
type LongArrayView struct {
	data []byte
}

// NewLongArrayView wraps raw LongArray payload bytes.
func NewLongArrayView(data []byte) LongArrayView {
	return LongArrayView{data: data}
}

func (v LongArrayView) Len() int { return len(v.data) / 8 }

// At reads the i'th element. The caller keeps i within Len.
func (v LongArrayView) At(i int) int64 {
	return int64(binary.BigEndian.Uint64(v.data[i*8:]))
}

func (v LongArrayView) Iter() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for rest := v.data; len(rest) >= 8; rest = rest[8:] {
			if !yield(int64(binary.BigEndian.Uint64(rest))) {
				return
			}
		}
	}
}
