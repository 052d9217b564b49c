package nbt

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRootCompound is returned when a payload does not start with a
	// compound tag. Every well-formed NBT document has a compound root.
	ErrNoRootCompound = errors.New("nbt: no root compound")

	// ErrUnexpectedEOF is returned when the input ends in the middle of a
	// value.
	ErrUnexpectedEOF = errors.New("nbt: unexpectedly ran out of input")

	// ErrNestingTooDeep is returned when lists and compounds nest past the
	// decoder's depth limit. Documents that deep are not produced by the
	// game and would otherwise exhaust the stack.
	ErrNestingTooDeep = errors.New("nbt: nesting too deep")
)

// InvalidTagError reports a tag byte outside the defined tag set.
type InvalidTagError struct {
	Tag byte
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("nbt: invalid tag value: %d", e.Tag)
}

// InvalidSizeError reports a list or array whose declared element count is
// negative or cannot fit in the remaining input.
type InvalidSizeError struct {
	Size int32
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("nbt: invalid list/array size: %d", e.Size)
}

// NonUnicodeStringError reports a string payload that is not valid UTF-8.
// Raw holds the offending bytes.
type NonUnicodeStringError struct {
	Raw []byte
}

func (e *NonUnicodeStringError) Error() string {
	return fmt.Sprintf("nbt: invalid string: non-unicode: %q", e.Raw)
}

// UnexpectedTagError reports a value whose tag does not match what the caller
// required, for example a Short where a LongArray was needed.
type UnexpectedTagError struct {
	Tag      Tag
	Expected string
}

func (e *UnexpectedTagError) Error() string {
	return fmt.Sprintf("nbt: expected %s, found %s", e.Expected, e.Tag)
}

// UnexpectedListError reports a list whose element tag or size does not match
// what the caller required.
type UnexpectedListError struct {
	ElemTag  Tag
	Size     int32
	Expected string
}

func (e *UnexpectedListError) Error() string {
	return fmt.Sprintf("nbt: expected %s, found [%s; %d]", e.Expected, e.ElemTag, e.Size)
}
