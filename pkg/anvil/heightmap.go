package anvil

// expandHeightmap unpacks a stored 256-entry height map and rebases each
// entry against the chunk's lowest stored y, producing absolute world
// heights addressed z*16+x.
func expandHeightmap(packed *PackedBits, yMin int, dataVersion int32, out *[columnsPerChunk]int16) {
	var raw [columnsPerChunk]uint16
	packed.Unpack(heightBits, dataVersion, raw[:])
	for i, v := range raw {
		out[i] = int16(int(v) + yMin)
	}
}
