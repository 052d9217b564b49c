package anvil

import (
	"bytes"
	"testing"

	"github.com/samcharles93/stratum/pkg/nbt"
)

func comp(m map[string]nbt.Value) nbt.Value {
	return nbt.Value{Tag: nbt.TagCompound, Value: m}
}

func blockValue(name string, props map[string]string) nbt.Value {
	m := map[string]nbt.Value{
		"Name": {Tag: nbt.TagString, Value: name},
	}
	if len(props) > 0 {
		pm := make(map[string]nbt.Value, len(props))
		for k, v := range props {
			pm[k] = nbt.Value{Tag: nbt.TagString, Value: v}
		}
		m["Properties"] = comp(pm)
	}
	return comp(m)
}

// airStoneSection builds a section whose palette is [air, stone], every cell
// stone except column (0,0) which is all air.
func airStoneSection(y int8, dataVersion int32) nbt.Value {
	values := make([]uint16, 16*16*16)
	for i := range values {
		values[i] = 1
	}
	for secY := range 16 {
		values[(secY*16+0)*16+0] = 0
	}
	return comp(map[string]nbt.Value{
		"Y": {Tag: nbt.TagByte, Value: y},
		"Palette": {Tag: nbt.TagList, Value: []nbt.Value{
			blockValue("minecraft:air", nil),
			blockValue("minecraft:stone", nil),
		}},
		"BlockStates": {Tag: nbt.TagLongArray, Value: PackBits(values, 4, dataVersion)},
	})
}

func chunkDoc(t *testing.T, dataVersion int32, level map[string]nbt.Value) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := nbt.Marshal(&buf, comp(map[string]nbt.Value{
		"DataVersion": {Tag: nbt.TagInt, Value: dataVersion},
		"Level":       comp(level),
	}))
	if err != nil {
		t.Fatalf("marshal chunk: %v", err)
	}
	return buf.Bytes()
}

func TestChunkEndToEnd(t *testing.T) {
	t.Parallel()

	for _, version := range []int32{straddledVersion, paddedVersion} {
		doc := chunkDoc(t, version, map[string]nbt.Value{
			"xPos":   {Tag: nbt.TagInt, Value: int32(3)},
			"zPos":   {Tag: nbt.TagInt, Value: int32(-2)},
			"Status": {Tag: nbt.TagString, Value: "full"},
			"Sections": {Tag: nbt.TagList, Value: []nbt.Value{
				airStoneSection(0, version),
			}},
		})

		c, err := LoadChunk(doc)
		if err != nil {
			t.Fatalf("version=%d: load: %v", version, err)
		}
		if c.Status() != "full" || c.XPos != 3 || c.ZPos != -2 {
			t.Fatalf("version=%d: header fields wrong: %+v", version, c)
		}
		if minY, maxY := c.YRange(); minY != 0 || maxY != 16 {
			t.Fatalf("version=%d: y range [%d,%d), want [0,16)", version, minY, maxY)
		}

		// Column (0,0) is all air, everything else stone.
		if b := c.Block(0, 15, 0); b == nil || b.Name != "minecraft:air" {
			t.Fatalf("version=%d: top of air column: got %v", version, b)
		}
		for y := range 16 {
			if b := c.Block(1, y, 1); b == nil || b.Name != "minecraft:stone" {
				t.Fatalf("version=%d: block(1,%d,1): got %v, want stone", version, y, b)
			}
		}

		if h := c.SurfaceHeight(0, 0, HeightCalculate); h >= 16 {
			t.Fatalf("version=%d: air column height %d, want below section top", version, h)
		}
		if h := c.SurfaceHeight(1, 1, HeightCalculate); h != 16 {
			t.Fatalf("version=%d: stone column height %d, want 16", version, h)
		}

		// Outside the stored span and outside the column grid: misses.
		if b := c.Block(0, 100, 0); b != nil {
			t.Fatalf("version=%d: block above stored span: got %v", version, b)
		}
		if b := c.Block(16, 5, 0); b != nil {
			t.Fatalf("version=%d: block outside column grid: got %v", version, b)
		}
	}
}

func TestChunkQueriesIdempotentAndCached(t *testing.T) {
	// Uses the package unpack hook; must not run alongside parallel users.
	unpacks := 0
	testHookUnpack = func() { unpacks++ }
	defer func() { testHookUnpack = nil }()

	heights := make([]uint16, 256)
	for i := range heights {
		heights[i] = 16
	}
	doc := chunkDoc(t, paddedVersion, map[string]nbt.Value{
		"Status": {Tag: nbt.TagString, Value: "full"},
		"Sections": {Tag: nbt.TagList, Value: []nbt.Value{
			airStoneSection(0, paddedVersion),
		}},
		"Heightmaps": comp(map[string]nbt.Value{
			"MOTION_BLOCKING": {Tag: nbt.TagLongArray, Value: PackBits(heights, heightBits, paddedVersion)},
		}),
	})

	c, err := LoadChunk(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if unpacks != 0 {
		t.Fatalf("load alone unpacked %d times", unpacks)
	}

	first := c.Block(5, 3, 7)
	if got := unpacks; got != 1 {
		t.Fatalf("first block query: %d unpacks, want 1", got)
	}
	second := c.Block(5, 3, 7)
	if unpacks != 1 {
		t.Fatalf("second block query unpacked again: %d", unpacks)
	}
	if first != second || first.Name != "minecraft:stone" {
		t.Fatalf("repeated query changed answer: %v vs %v", first, second)
	}

	h1 := c.SurfaceHeight(4, 4, HeightTrust)
	if unpacks != 2 {
		t.Fatalf("first height query: %d unpacks, want 2", unpacks)
	}
	h2 := c.SurfaceHeight(4, 4, HeightTrust)
	if unpacks != 2 {
		t.Fatalf("second height query unpacked again: %d", unpacks)
	}
	if h1 != 16 || h1 != h2 {
		t.Fatalf("height answers: %d then %d, want 16 twice", h1, h2)
	}
}

func TestSurfaceHeightLegacyMap(t *testing.T) {
	t.Parallel()

	stored := make([]int32, 256)
	for i := range stored {
		stored[i] = int32(60 + i%4)
	}
	doc := chunkDoc(t, straddledVersion, map[string]nbt.Value{
		"HeightMap": {Tag: nbt.TagIntArray, Value: stored},
	})

	c, err := LoadChunk(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if h := c.SurfaceHeight(2, 1, HeightTrust); h != int(stored[1*16+2]) {
		t.Fatalf("got %d want %d", h, stored[1*16+2])
	}
}

func TestBiomeLegacyByteColumns(t *testing.T) {
	t.Parallel()

	codes := make([]byte, 256)
	for i := range codes {
		codes[i] = 1 // plains
	}
	codes[3*16+2] = 6 // swamp at (x=2, z=3)
	doc := chunkDoc(t, straddledVersion, map[string]nbt.Value{
		"Biomes": {Tag: nbt.TagByteArray, Value: codes},
	})

	c, err := LoadChunk(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b, ok := c.Biome(2, 64, 3); !ok || b != BiomeSwamp {
		t.Fatalf("got %v, %v; want swamp", b, ok)
	}
	if b, ok := c.Biome(0, 64, 0); !ok || b != BiomePlains {
		t.Fatalf("got %v, %v; want plains", b, ok)
	}
}

func TestBiomeIntColumns(t *testing.T) {
	t.Parallel()

	codes := make([]int32, 256)
	for i := range codes {
		codes[i] = int32(BiomeDesert)
	}
	doc := chunkDoc(t, straddledVersion, map[string]nbt.Value{
		"Biomes": {Tag: nbt.TagIntArray, Value: codes},
	})

	c, err := LoadChunk(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b, ok := c.Biome(9, 0, 12); !ok || b != BiomeDesert {
		t.Fatalf("got %v, %v; want desert", b, ok)
	}
}

func TestBiomeCubes(t *testing.T) {
	t.Parallel()

	// One 16-block section gives four addressable 4-high cube layers.
	// Everything is taiga except the bottom-layer cube over
	// (x=12..15, z=0..3), which is jungle.
	codes := make([]int32, 1024)
	for i := range codes {
		codes[i] = int32(BiomeTaiga)
	}
	codes[3] = int32(BiomeJungle) // (z/4)=0, (x/4)=3, layer 0
	doc := chunkDoc(t, straddledVersion, map[string]nbt.Value{
		"Biomes": {Tag: nbt.TagIntArray, Value: codes},
		"Sections": {Tag: nbt.TagList, Value: []nbt.Value{
			airStoneSection(0, straddledVersion),
		}},
	})

	c, err := LoadChunk(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b, ok := c.Biome(13, 1, 1); !ok || b != BiomeJungle {
		t.Fatalf("got %v, %v; want jungle", b, ok)
	}
	if b, ok := c.Biome(0, 1, 0); !ok || b != BiomeTaiga {
		t.Fatalf("got %v, %v; want taiga", b, ok)
	}
	// y=8 sits in the third cube layer, which is taiga everywhere.
	if b, ok := c.Biome(13, 8, 1); !ok || b != BiomeTaiga {
		t.Fatalf("higher layer: got %v, %v; want taiga", b, ok)
	}

	// y far outside the span clamps into it rather than missing.
	if b, ok := c.Biome(0, -1000, 0); !ok || b != BiomeTaiga {
		t.Fatalf("clamped low y: got %v, %v; want taiga", b, ok)
	}
	if b, ok := c.Biome(0, 1000, 0); !ok || b != BiomeTaiga {
		t.Fatalf("clamped high y: got %v, %v; want taiga", b, ok)
	}
}

func TestBiomeUnknownCodeIsMiss(t *testing.T) {
	t.Parallel()

	codes := make([]int32, 256)
	for i := range codes {
		codes[i] = 9999
	}
	doc := chunkDoc(t, straddledVersion, map[string]nbt.Value{
		"Biomes": {Tag: nbt.TagIntArray, Value: codes},
	})

	c, err := LoadChunk(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := c.Biome(0, 0, 0); ok {
		t.Fatalf("unknown biome code resolved")
	}
}

func TestChunkWithoutLevelWrapper(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := nbt.Marshal(&buf, comp(map[string]nbt.Value{
		"DataVersion": {Tag: nbt.TagInt, Value: paddedVersion},
		"Status":      {Tag: nbt.TagString, Value: "full"},
		"Sections": {Tag: nbt.TagList, Value: []nbt.Value{
			airStoneSection(0, paddedVersion),
		}},
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	c, err := LoadChunk(buf.Bytes())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b := c.Block(1, 0, 1); b == nil || b.Name != "minecraft:stone" {
		t.Fatalf("flattened chunk block: got %v", b)
	}
}

func TestChunkDegradesToMisses(t *testing.T) {
	t.Parallel()

	doc := chunkDoc(t, straddledVersion, map[string]nbt.Value{})
	c, err := LoadChunk(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b := c.Block(0, 0, 0); b != nil {
		t.Fatalf("block on empty chunk: %v", b)
	}
	if _, ok := c.Biome(0, 0, 0); ok {
		t.Fatalf("biome on empty chunk resolved")
	}
	if h := c.SurfaceHeight(0, 0, HeightCalculate); h != 0 {
		t.Fatalf("height on empty chunk: %d", h)
	}
	if minY, maxY := c.YRange(); minY != 0 || maxY != 0 {
		t.Fatalf("y range on empty chunk: [%d,%d)", minY, maxY)
	}

	if _, err := LoadChunk([]byte{0x02, 0x00}); err == nil {
		t.Fatalf("garbage input loaded")
	}
}

func TestChunkAirOnlySectionWithoutStates(t *testing.T) {
	t.Parallel()

	// Palette present, no BlockStates: the whole section is air and must
	// come back without a palette lookup.
	section := comp(map[string]nbt.Value{
		"Y": {Tag: nbt.TagByte, Value: int8(2)},
		"Palette": {Tag: nbt.TagList, Value: []nbt.Value{
			blockValue("minecraft:air", nil),
		}},
	})
	doc := chunkDoc(t, paddedVersion, map[string]nbt.Value{
		"Sections": {Tag: nbt.TagList, Value: []nbt.Value{section}},
	})

	c, err := LoadChunk(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b := c.Block(7, 40, 7); b != &Air {
		t.Fatalf("got %v, want the shared air block", b)
	}
}
