package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Marshal writes v to w as a complete NBT document with an unnamed root.
// The root must be a compound.
func Marshal(w io.Writer, v Value) error {
	return NewEncoder(w).Encode(v)
}

// Encoder writes owning Values back to the wire format.
type Encoder struct {
	w       io.Writer
	scratch [8]byte
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes one document: root tag, empty root name, then the compound
// payload.
func (e *Encoder) Encode(v Value) error {
	if v.Tag != TagCompound {
		return &UnexpectedTagError{Tag: v.Tag, Expected: "compound root"}
	}
	if err := e.writeByte(byte(TagCompound)); err != nil {
		return err
	}
	if err := e.writeString(""); err != nil {
		return err
	}
	return e.writePayload(v)
}

func (e *Encoder) writeByte(b byte) error {
	e.scratch[0] = b
	return e.write(e.scratch[:1])
}

func (e *Encoder) writeU16(v uint16) error {
	binary.BigEndian.PutUint16(e.scratch[:2], v)
	return e.write(e.scratch[:2])
}

func (e *Encoder) writeU32(v uint32) error {
	binary.BigEndian.PutUint32(e.scratch[:4], v)
	return e.write(e.scratch[:4])
}

func (e *Encoder) writeU64(v uint64) error {
	binary.BigEndian.PutUint64(e.scratch[:8], v)
	return e.write(e.scratch[:8])
}

func (e *Encoder) write(b []byte) error {
	if _, err := e.w.Write(b); err != nil {
		return fmt.Errorf("nbt: write: %w", err)
	}
	return nil
}

func (e *Encoder) writeString(s string) error {
	if len(s) > math.MaxUint16 {
		return &InvalidSizeError{Size: int32(len(s))}
	}
	if err := e.writeU16(uint16(len(s))); err != nil {
		return err
	}
	return e.write([]byte(s))
}

// writePayload writes the payload of v. The tag itself is the caller's
// responsibility, matching the wire layout where list elements carry no
// per-element tags.
func (e *Encoder) writePayload(v Value) error {
	switch p := v.Value.(type) {
	case int8:
		return e.writeByte(byte(p))
	case int16:
		return e.writeU16(uint16(p))
	case int32:
		return e.writeU32(uint32(p))
	case int64:
		return e.writeU64(uint64(p))
	case float32:
		return e.writeU32(math.Float32bits(p))
	case float64:
		return e.writeU64(math.Float64bits(p))
	case string:
		return e.writeString(p)
	case []byte:
		if err := e.writeU32(uint32(len(p))); err != nil {
			return err
		}
		return e.write(p)
	case []int32:
		if err := e.writeU32(uint32(len(p))); err != nil {
			return err
		}
		for _, x := range p {
			if err := e.writeU32(uint32(x)); err != nil {
				return err
			}
		}
		return nil
	case []int64:
		if err := e.writeU32(uint32(len(p))); err != nil {
			return err
		}
		for _, x := range p {
			if err := e.writeU64(uint64(x)); err != nil {
				return err
			}
		}
		return nil
	case []Value:
		elem := TagEnd
		if len(p) > 0 {
			elem = p[0].Tag
		}
		if err := e.writeByte(byte(elem)); err != nil {
			return err
		}
		if err := e.writeU32(uint32(len(p))); err != nil {
			return err
		}
		for _, x := range p {
			if x.Tag != elem {
				return &UnexpectedTagError{Tag: x.Tag, Expected: "uniform list of " + elem.String()}
			}
			if err := e.writePayload(x); err != nil {
				return err
			}
		}
		return nil
	case map[string]Value:
		for name, x := range p {
			if err := e.writeByte(byte(x.Tag)); err != nil {
				return err
			}
			if err := e.writeString(name); err != nil {
				return err
			}
			if err := e.writePayload(x); err != nil {
				return err
			}
		}
		return e.writeByte(byte(TagEnd))
	default:
		return &UnexpectedTagError{Tag: v.Tag, Expected: fmt.Sprintf("payload for %s", v.Tag)}
	}
}
