package anvil

import (
	"sync"

	"github.com/samcharles93/stratum/pkg/nbt"
)

// HeightMode selects how SurfaceHeight answers.
type HeightMode int

const (
	// HeightTrust reads the height map the game maintains, falling back to
	// a scan when the chunk has none.
	HeightTrust HeightMode = iota

	// HeightCalculate always scans columns top-down for the first block
	// that is not air-like. Slower, but right even for chunks whose stored
	// maps are stale.
	HeightCalculate
)

// biomeLayout is the on-disk biome convention, resolved once per chunk at
// load rather than on every query.
type biomeLayout int

const (
	biomeLayoutNone biomeLayout = iota

	// biomeLayoutLegacyBytes: 256 one-byte codes, one per column, z*16+x.
	biomeLayoutLegacyBytes

	// biomeLayoutColumns: 256 int codes, one per column, z*16+x.
	biomeLayoutColumns

	// biomeLayoutCubes: 4x4x4 cubes of int codes across the chunk's
	// vertical span, (z/4)*4 + (x/4) + (y/4)*16 after rebasing y.
	biomeLayoutCubes
)

const columnsPerChunk = 16 * 16

// Chunk is the root decode unit: a 16x16 column slice of the world. Build
// one with LoadChunk; queries are cheap and a chunk may be shared across
// concurrent readers.
type Chunk struct {
	DataVersion int32
	XPos        int32
	ZPos        int32

	status string

	sections *SectionTower

	// Height sources; the stored packed map is preferred in trust mode,
	// the legacy per-column int array serves older chunks.
	motionBlocking *PackedBits
	legacyHeights  nbt.IntArrayView
	hasLegacy      bool

	biomeShape biomeLayout
	biomeBytes nbt.ByteArrayView
	biomeInts  nbt.IntArrayView

	heightOnce sync.Once
	heights    [columnsPerChunk]int16

	// data keeps the decoded buffer reachable: every view above aliases it.
	data []byte
}

// LoadChunk decodes one uncompressed chunk payload. The chunk and everything
// reached through it alias data; data must not be modified afterwards.
//
// Field extraction is tolerant: a missing or mistyped field leaves that
// query answering "absent" instead of failing the whole chunk, since
// partially generated chunks are normal at a world's edge.
func LoadChunk(data []byte) (*Chunk, error) {
	root, err := nbt.DecodeView(data)
	if err != nil {
		return nil, err
	}
	m := root.Compound()

	c := &Chunk{data: data}
	c.DataVersion, _ = nbt.GetInt(m, "DataVersion")

	// Most saves of this era nest the chunk under Level; some tools write
	// the same fields at the root.
	level, ok := nbt.GetCompound(m, "Level")
	if !ok {
		level = m
	}

	c.XPos, _ = nbt.GetInt(level, "xPos")
	c.ZPos, _ = nbt.GetInt(level, "zPos")
	c.status, _ = nbt.GetString(level, "Status")

	if list, ok := nbt.GetList(level, "Sections"); ok {
		sections := make([]*Section, 0, len(list))
		for _, entry := range list {
			em := entry.Compound()
			if em == nil {
				continue
			}
			if sec, ok := decodeSection(em); ok {
				sections = append(sections, sec)
			}
		}
		c.sections = newSectionTower(sections)
	}

	if maps, ok := nbt.GetCompound(level, "Heightmaps"); ok {
		if words, ok := nbt.GetLongArray(maps, "MOTION_BLOCKING"); ok {
			c.motionBlocking = NewPackedBits(words)
		}
	}
	if heights, ok := nbt.GetIntArray(level, "HeightMap"); ok && heights.Len() == columnsPerChunk {
		c.legacyHeights = heights
		c.hasLegacy = true
	}

	c.resolveBiomes(level)
	return c, nil
}

// resolveBiomes picks the biome layout once, from the shape of the stored
// data. This is the only shape-driven branch in the package; the wire gives
// no version marker for it.
func (c *Chunk) resolveBiomes(level map[string]nbt.ValueView) {
	if raw, ok := nbt.GetByteArray(level, "Biomes"); ok {
		if raw.Len() == columnsPerChunk {
			c.biomeShape = biomeLayoutLegacyBytes
			c.biomeBytes = raw
		}
		return
	}
	ints, ok := nbt.GetIntArray(level, "Biomes")
	if !ok {
		return
	}
	switch ints.Len() {
	case columnsPerChunk:
		c.biomeShape = biomeLayoutColumns
		c.biomeInts = ints
	case 1024:
		c.biomeShape = biomeLayoutCubes
		c.biomeInts = ints
	}
}

// Status reports the generation stage the chunk had reached when saved,
// for example "full" or "features". Empty when the chunk does not record
// one.
func (c *Chunk) Status() string { return c.status }

// Block returns the block at world coordinates, or nil when the position is
// not stored. Ungenerated neighbours and y outside the stored span are
// normal misses, not errors.
func (c *Chunk) Block(x, y, z int) *Block {
	if x < 0 || x > 15 || z < 0 || z > 15 || c.sections == nil {
		return nil
	}
	sec := c.sections.SectionFor(y)
	if sec == nil {
		return nil
	}
	if sec.states == nil {
		// The whole section is air; there is no palette to consult.
		return &Air
	}
	secY := y - int(sec.Y)*16
	idx := sec.stateAt(x, secY, z, c.DataVersion)
	if idx >= len(sec.Palette) {
		return nil
	}
	return &sec.Palette[idx]
}

// Biome returns the biome at world coordinates. Chunks without biome data
// and codes outside the known table report false.
func (c *Chunk) Biome(x, y, z int) (Biome, bool) {
	if x < 0 || x > 15 || z < 0 || z > 15 {
		return 0, false
	}
	switch c.biomeShape {
	case biomeLayoutLegacyBytes:
		return BiomeFromCode(int32(uint8(c.biomeBytes.At(z*16 + x))))
	case biomeLayoutColumns:
		return BiomeFromCode(c.biomeInts.At(z*16 + x))
	case biomeLayoutCubes:
		yMin, yMax := c.YRange()
		if yMin == yMax {
			return 0, false
		}
		shifted := clamp(y, yMin, yMax-1) - yMin
		i := (z/4)*4 + x/4 + (shifted/4)*16
		if i >= c.biomeInts.Len() {
			return 0, false
		}
		return BiomeFromCode(c.biomeInts.At(i))
	default:
		return 0, false
	}
}

// SurfaceHeight returns the world y just above the highest surface block of
// the column. The answer is computed once per chunk, on the first call, and
// cached; mode only matters for that first call.
func (c *Chunk) SurfaceHeight(x, z int, mode HeightMode) int {
	if x < 0 || x > 15 || z < 0 || z > 15 {
		return 0
	}
	c.heightOnce.Do(func() { c.computeHeights(mode) })
	return int(c.heights[z*16+x])
}

func (c *Chunk) computeHeights(mode HeightMode) {
	if mode == HeightTrust {
		if c.motionBlocking != nil && c.sections != nil {
			expandHeightmap(c.motionBlocking, c.sections.YMin(), c.DataVersion, &c.heights)
			return
		}
		if c.hasLegacy {
			for i := range columnsPerChunk {
				c.heights[i] = int16(c.legacyHeights.At(i))
			}
			return
		}
		// Nothing stored; fall through to a scan.
	}

	yMin, yMax := c.YRange()
	for z := range 16 {
		for x := range 16 {
			for y := yMax; y > yMin; y-- {
				b := c.Block(x, y-1, z)
				if b == nil {
					continue
				}
				if _, air := airLike[b.Name]; !air {
					c.heights[z*16+x] = int16(y)
					break
				}
			}
		}
	}
}

// YRange returns the half-open world-y interval the chunk stores.
func (c *Chunk) YRange() (min, max int) {
	if c.sections == nil {
		return 0, 0
	}
	return c.sections.YMin(), c.sections.YMax()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
