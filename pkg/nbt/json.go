package nbt

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON renders the value as plain JSON: compounds become objects,
// lists and arrays become arrays, byte array elements are emitted as signed
// numbers. Numeric width tags are not representable in JSON, so this is a
// one-way debug and interop surface; there is no unmarshal path back.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.jsonable())
}

func (v Value) jsonable() any {
	switch p := v.Value.(type) {
	case []byte:
		out := make([]int8, len(p))
		for i, b := range p {
			out[i] = int8(b)
		}
		return out
	case []Value:
		out := make([]any, len(p))
		for i, x := range p {
			out[i] = x.jsonable()
		}
		return out
	case map[string]Value:
		out := make(map[string]any, len(p))
		for name, x := range p {
			out[name] = x.jsonable()
		}
		return out
	default:
		return p
	}
}
