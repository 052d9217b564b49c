package anvil

import (
	"sync"

	"github.com/samcharles93/stratum/pkg/nbt"
)

// Section is one 16x16x16 sub-volume of a chunk at a signed vertical index.
// A section with no block states is entirely air; the game drops the array
// to save space. A section with neither palette nor states is a terminator
// sentinel and never enters a tower.
type Section struct {
	Y       int8
	Palette []Block

	states *PackedBits

	unpackOnce sync.Once
	unpacked   *[16 * 16 * 16]uint16
}

// decodeSection maps one section compound. ok is false for compounds missing
// the vertical index, which no query could ever address.
func decodeSection(m map[string]nbt.ValueView) (*Section, bool) {
	y, ok := nbt.GetByte(m, "Y")
	if !ok {
		return nil, false
	}
	sec := &Section{Y: y}
	if words, ok := nbt.GetLongArray(m, "BlockStates"); ok {
		sec.states = NewPackedBits(words)
	}
	if list, ok := nbt.GetList(m, "Palette"); ok {
		sec.Palette = make([]Block, 0, len(list))
		for _, entry := range list {
			em := entry.Compound()
			if em == nil {
				continue
			}
			sec.Palette = append(sec.Palette, decodeBlock(em))
		}
	}
	return sec, true
}

func decodeBlock(m map[string]nbt.ValueView) Block {
	b := Block{}
	b.Name, _ = nbt.GetString(m, "Name")
	if props, ok := nbt.GetCompound(m, "Properties"); ok {
		b.Properties = make(map[string]string, len(props))
		for k := range props {
			if v, ok := nbt.GetString(props, k); ok {
				b.Properties[k] = v
			}
		}
	}
	return b
}

// isTerminator reports the sentinel the game appends below the world: no
// palette and no states. Terminators are skipped, not treated as air.
func (s *Section) isTerminator() bool {
	return len(s.Palette) == 0 && s.states == nil
}

// stateAt returns the palette index at section-local coordinates, unpacking
// the packed array on first use. The unpacked form is cached for the life of
// the section; the sync.Once makes first use safe under concurrent readers.
func (s *Section) stateAt(x, secY, z int, dataVersion int32) int {
	s.unpackOnce.Do(func() {
		buf := new([16 * 16 * 16]uint16)
		s.states.Unpack(bitsPerBlock(len(s.Palette)), dataVersion, buf[:])
		s.unpacked = buf
	})
	return int(s.unpacked[(secY*16+z)*16+x])
}

// SectionTower holds the non-terminator sections of one chunk, addressable
// by the section index a world y falls in.
type SectionTower struct {
	sections []*Section
	byIndex  map[int8]int
	minIdx   int
	maxIdx   int
}

func newSectionTower(sections []*Section) *SectionTower {
	t := &SectionTower{byIndex: make(map[int8]int, len(sections))}
	for _, sec := range sections {
		if sec.isTerminator() {
			continue
		}
		if len(t.sections) == 0 || int(sec.Y) < t.minIdx {
			t.minIdx = int(sec.Y)
		}
		if len(t.sections) == 0 || int(sec.Y) > t.maxIdx {
			t.maxIdx = int(sec.Y)
		}
		t.byIndex[sec.Y] = len(t.sections)
		t.sections = append(t.sections, sec)
	}
	return t
}

// SectionFor returns the section containing world y, or nil. A miss carries
// no meaning beyond "not stored": whether that means air is Chunk.Block's
// call, not the tower's.
func (t *SectionTower) SectionFor(y int) *Section {
	idx := y >> 4 // floor division, negative y included
	if idx < t.minIdx || idx > t.maxIdx {
		return nil
	}
	i, ok := t.byIndex[int8(idx)]
	if !ok {
		return nil
	}
	return t.sections[i]
}

// Len reports the number of stored sections.
func (t *SectionTower) Len() int { return len(t.sections) }

// YMin returns the lowest world y the tower spans.
func (t *SectionTower) YMin() int {
	if len(t.sections) == 0 {
		return 0
	}
	return t.minIdx * 16
}

// YMax returns one past the highest world y the tower spans.
func (t *SectionTower) YMax() int {
	if len(t.sections) == 0 {
		return 0
	}
	return (t.maxIdx + 1) * 16
}
