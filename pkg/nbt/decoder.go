package nbt

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Decode parses one uncompressed NBT document and returns the root compound
// as an owning Value. The result holds no references to data.
func Decode(data []byte) (Value, error) {
	d := &decoder{buf: data}
	if err := d.readRootHeader(); err != nil {
		return Value{}, err
	}
	return d.decodeValue(TagCompound)
}

// DecodeView parses one uncompressed NBT document and returns the root
// compound as a ValueView. Strings and arrays in the result alias data and
// must not outlive it.
func DecodeView(data []byte) (ValueView, error) {
	d := &decoder{buf: data}
	if err := d.readRootHeader(); err != nil {
		return ValueView{}, err
	}
	return d.decodeView(TagCompound)
}

// maxNestingDepth bounds list/compound recursion. Real chunk documents are a
// handful of levels deep; past this the input is hostile, not data.
const maxNestingDepth = 512

// decoder is an offset cursor over a fully buffered payload. It never copies
// out of buf; the owning decode path materializes at the value level instead.
type decoder struct {
	buf   []byte
	off   int
	depth int
}

func (d *decoder) readN(n int) ([]byte, error) {
	if n < 0 || n > len(d.buf)-d.off {
		return nil, ErrUnexpectedEOF
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) readByte() (byte, error) {
	if d.off >= len(d.buf) {
		return 0, ErrUnexpectedEOF
	}
	b := d.buf[d.off]
	d.off++
	return b, nil
}

func (d *decoder) readU16() (uint16, error) {
	b, err := d.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (d *decoder) readU32() (uint32, error) {
	b, err := d.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *decoder) readU64() (uint64, error) {
	b, err := d.readN(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// readTag reads and validates a tag byte.
func (d *decoder) readTag() (Tag, error) {
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	if Tag(b) > maxTag {
		return 0, &InvalidTagError{Tag: b}
	}
	return Tag(b), nil
}

// readString reads a u16-length-prefixed UTF-8 string and returns a view
// into the input. Callers on the owning path copy the result.
func (d *decoder) readString() ([]byte, error) {
	n, err := d.readU16()
	if err != nil {
		return nil, err
	}
	b, err := d.readN(int(n))
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, &NonUnicodeStringError{Raw: b}
	}
	return b, nil
}

// readArray reads an i32-count-prefixed array of elemSize-byte elements and
// returns the raw element range.
func (d *decoder) readArray(elemSize int) ([]byte, error) {
	n, err := d.readU32()
	if err != nil {
		return nil, err
	}
	count := int32(n)
	if count < 0 || int(count) > (len(d.buf)-d.off)/elemSize {
		return nil, &InvalidSizeError{Size: count}
	}
	return d.readN(int(count) * elemSize)
}

// readRootHeader consumes the root tag and name, requiring a compound root.
func (d *decoder) readRootHeader() error {
	tag, err := d.readTag()
	if err != nil {
		return err
	}
	if tag != TagCompound {
		return ErrNoRootCompound
	}
	_, err = d.readString() // root name, almost always empty
	return err
}

// readListHeader reads and validates the element tag and count of a list.
func (d *decoder) readListHeader() (Tag, int32, error) {
	elem, err := d.readTag()
	if err != nil {
		return 0, 0, err
	}
	n, err := d.readU32()
	if err != nil {
		return 0, 0, err
	}
	count := int32(n)
	if count < 0 {
		return 0, 0, &InvalidSizeError{Size: count}
	}
	// A non-empty End-tagged list has no decodable elements.
	if elem == TagEnd && count > 0 {
		return 0, 0, &InvalidSizeError{Size: count}
	}
	// Every element takes at least one byte, so a count past the remaining
	// input can never decode. Rejecting it here also keeps the declared
	// count safe to preallocate from.
	if int(count) > len(d.buf)-d.off {
		return 0, 0, &InvalidSizeError{Size: count}
	}
	return elem, count, nil
}

// enter tracks recursion into a list or compound payload. Callers pair it
// with leave.
func (d *decoder) enter() error {
	if d.depth >= maxNestingDepth {
		return ErrNestingTooDeep
	}
	d.depth++
	return nil
}

func (d *decoder) leave() { d.depth-- }

// decodeValue decodes the payload of the given tag into an owning Value.
// Dispatch is keyed on the tag byte, one case per exact wire width, so a
// Short can never come back widened into an Int.
func (d *decoder) decodeValue(tag Tag) (Value, error) {
	switch tag {
	case TagByte:
		b, err := d.readByte()
		if err != nil {
			return Value{}, err
		}
		return Value{Tag: tag, Value: int8(b)}, nil
	case TagShort:
		v, err := d.readU16()
		if err != nil {
			return Value{}, err
		}
		return Value{Tag: tag, Value: int16(v)}, nil
	case TagInt:
		v, err := d.readU32()
		if err != nil {
			return Value{}, err
		}
		return Value{Tag: tag, Value: int32(v)}, nil
	case TagLong:
		v, err := d.readU64()
		if err != nil {
			return Value{}, err
		}
		return Value{Tag: tag, Value: int64(v)}, nil
	case TagFloat:
		v, err := d.readU32()
		if err != nil {
			return Value{}, err
		}
		return Value{Tag: tag, Value: math.Float32frombits(v)}, nil
	case TagDouble:
		v, err := d.readU64()
		if err != nil {
			return Value{}, err
		}
		return Value{Tag: tag, Value: math.Float64frombits(v)}, nil
	case TagString:
		b, err := d.readString()
		if err != nil {
			return Value{}, err
		}
		return Value{Tag: tag, Value: string(b)}, nil
	case TagByteArray:
		b, err := d.readArray(1)
		if err != nil {
			return Value{}, err
		}
		out := make([]byte, len(b))
		copy(out, b)
		return Value{Tag: tag, Value: out}, nil
	case TagIntArray:
		b, err := d.readArray(4)
		if err != nil {
			return Value{}, err
		}
		view := NewIntArrayView(b)
		out := make([]int32, 0, view.Len())
		for v := range view.Iter() {
			out = append(out, v)
		}
		return Value{Tag: tag, Value: out}, nil
	case TagLongArray:
		b, err := d.readArray(8)
		if err != nil {
			return Value{}, err
		}
		view := NewLongArrayView(b)
		out := make([]int64, 0, view.Len())
		for v := range view.Iter() {
			out = append(out, v)
		}
		return Value{Tag: tag, Value: out}, nil
	case TagList:
		elem, count, err := d.readListHeader()
		if err != nil {
			return Value{}, err
		}
		if err := d.enter(); err != nil {
			return Value{}, err
		}
		list := make([]Value, 0, count)
		for range count {
			v, err := d.decodeValue(elem)
			if err != nil {
				return Value{}, err
			}
			list = append(list, v)
		}
		d.leave()
		return Value{Tag: tag, Value: list}, nil
	case TagCompound:
		if err := d.enter(); err != nil {
			return Value{}, err
		}
		m := make(map[string]Value)
		for {
			entry, err := d.readTag()
			if err != nil {
				return Value{}, err
			}
			if entry == TagEnd {
				d.leave()
				return Value{Tag: tag, Value: m}, nil
			}
			name, err := d.readString()
			if err != nil {
				return Value{}, err
			}
			v, err := d.decodeValue(entry)
			if err != nil {
				return Value{}, err
			}
			m[string(name)] = v // duplicate names: last wins
		}
	default:
		return Value{}, &InvalidTagError{Tag: byte(tag)}
	}
}

// decodeView mirrors decodeValue but keeps strings and arrays as views into
// the input buffer.
func (d *decoder) decodeView(tag Tag) (ValueView, error) {
	switch tag {
	case TagByte, TagShort, TagInt, TagLong, TagFloat, TagDouble:
		v, err := d.decodeValue(tag)
		if err != nil {
			return ValueView{}, err
		}
		return ValueView{Tag: v.Tag, Value: v.Value}, nil
	case TagString:
		b, err := d.readString()
		if err != nil {
			return ValueView{}, err
		}
		return ValueView{Tag: tag, Value: b}, nil
	case TagByteArray:
		b, err := d.readArray(1)
		if err != nil {
			return ValueView{}, err
		}
		return ValueView{Tag: tag, Value: NewByteArrayView(b)}, nil
	case TagIntArray:
		b, err := d.readArray(4)
		if err != nil {
			return ValueView{}, err
		}
		return ValueView{Tag: tag, Value: NewIntArrayView(b)}, nil
	case TagLongArray:
		b, err := d.readArray(8)
		if err != nil {
			return ValueView{}, err
		}
		return ValueView{Tag: tag, Value: NewLongArrayView(b)}, nil
	case TagList:
		elem, count, err := d.readListHeader()
		if err != nil {
			return ValueView{}, err
		}
		if err := d.enter(); err != nil {
			return ValueView{}, err
		}
		list := make([]ValueView, 0, count)
		for range count {
			v, err := d.decodeView(elem)
			if err != nil {
				return ValueView{}, err
			}
			list = append(list, v)
		}
		d.leave()
		return ValueView{Tag: tag, Value: list}, nil
	case TagCompound:
		if err := d.enter(); err != nil {
			return ValueView{}, err
		}
		m := make(map[string]ValueView)
		for {
			entry, err := d.readTag()
			if err != nil {
				return ValueView{}, err
			}
			if entry == TagEnd {
				d.leave()
				return ValueView{Tag: tag, Value: m}, nil
			}
			name, err := d.readString()
			if err != nil {
				return ValueView{}, err
			}
			v, err := d.decodeView(entry)
			if err != nil {
				return ValueView{}, err
			}
			m[string(name)] = v // duplicate names: last wins
		}
	default:
		return ValueView{}, &InvalidTagError{Tag: byte(tag)}
	}
}
