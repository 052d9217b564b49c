package nbt

import "fmt"

// Tag identifies the wire type of an NBT value. Every value in the stream is
// preceded by one of these bytes.
type Tag byte

const (
	TagEnd       Tag = 0
	TagByte      Tag = 1
	TagShort     Tag = 2
	TagInt       Tag = 3
	TagLong      Tag = 4
	TagFloat     Tag = 5
	TagDouble    Tag = 6
	TagByteArray Tag = 7
	TagString    Tag = 8
	TagList      Tag = 9
	TagCompound  Tag = 10
	TagIntArray  Tag = 11
	TagLongArray Tag = 12
)

// maxTag is the highest tag value the format defines.
const maxTag = TagLongArray

func (t Tag) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	case TagIntArray:
		return "IntArray"
	case TagLongArray:
		return "LongArray"
	default:
		return fmt.Sprintf("Tag(%d)", byte(t))
	}
}
