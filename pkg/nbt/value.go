// Package nbt decodes Minecraft's Named Binary Tag format.
//
// NBT is a self-describing tagged binary encoding: every value carries a
// 1-byte type tag, compounds map names to nested values, and the whole
// document is rooted in a single compound. The package keeps wire numeric
// widths exact — a Short decoded from the stream never compares equal to an
// Int of the same magnitude — and offers both an owning value model and a
// zero-copy one whose strings and arrays alias the input buffer.
package nbt

// Value is a complete decoded NBT value that owns its payload. The dynamic
// type of Value.Value depends on Tag:
//
//	TagByte       int8
//	TagShort      int16
//	TagInt        int32
//	TagLong       int64
//	TagFloat      float32
//	TagDouble     float64
//	TagString     string
//	TagByteArray  []byte
//	TagIntArray   []int32
//	TagLongArray  []int64
//	TagList       []Value
//	TagCompound   map[string]Value
type Value struct {
	Tag   Tag
	Value any
}

// ValueView is a decoded NBT value whose strings and arrays are views into
// the input buffer; it must not outlive that buffer. The dynamic type of
// ValueView.Value depends on Tag as for Value, except:
//
//	TagString     []byte (aliases the input)
//	TagByteArray  ByteArrayView
//	TagIntArray   IntArrayView
//	TagLongArray  LongArrayView
//	TagList       []ValueView
//	TagCompound   map[string]ValueView
type ValueView struct {
	Tag   Tag
	Value any
}

// Compound returns the mapping payload, or nil if the value is not a
// compound.
func (v Value) Compound() map[string]Value {
	m, _ := v.Value.(map[string]Value)
	return m
}

// List returns the list payload, or nil if the value is not a list.
func (v Value) List() []Value {
	l, _ := v.Value.([]Value)
	return l
}

// Compound returns the mapping payload, or nil if the value is not a
// compound.
func (v ValueView) Compound() map[string]ValueView {
	m, _ := v.Value.(map[string]ValueView)
	return m
}

// List returns the list payload, or nil if the value is not a list.
func (v ValueView) List() []ValueView {
	l, _ := v.Value.([]ValueView)
	return l
}
