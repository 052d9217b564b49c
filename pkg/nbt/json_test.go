package nbt

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestValueMarshalJSON(t *testing.T) {
	t.Parallel()

	v := Value{Tag: TagCompound, Value: map[string]Value{
		"name":  {Tag: TagString, Value: "minecraft:stone"},
		"count": {Tag: TagInt, Value: int32(3)},
		"bytes": {Tag: TagByteArray, Value: []byte{0x01, 0xff}},
		"list":  {Tag: TagList, Value: []Value{{Tag: TagShort, Value: int16(2)}}},
	}}

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["name"] != "minecraft:stone" {
		t.Fatalf("name: got %v", got["name"])
	}
	if got["count"] != float64(3) {
		t.Fatalf("count: got %v", got["count"])
	}
	bytesArr, ok := got["bytes"].([]any)
	if !ok || len(bytesArr) != 2 || bytesArr[1] != float64(-1) {
		t.Fatalf("bytes: got %v; byte array elements must be signed numbers", got["bytes"])
	}
}
