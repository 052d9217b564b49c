package anvil

import "testing"

func towerOf(indices ...int8) *SectionTower {
	sections := make([]*Section, 0, len(indices))
	for _, y := range indices {
		sections = append(sections, &Section{
			Y:       y,
			Palette: []Block{{Name: "minecraft:stone"}},
		})
	}
	return newSectionTower(sections)
}

func TestTowerResolvesSectionSpans(t *testing.T) {
	t.Parallel()

	tower := towerOf(-4, 0, 3)

	for _, idx := range []int{-4, 0, 3} {
		base := idx * 16
		for y := base; y < base+16; y++ {
			sec := tower.SectionFor(y)
			if sec == nil {
				t.Fatalf("y=%d: no section, want index %d", y, idx)
			}
			if int(sec.Y) != idx {
				t.Fatalf("y=%d: got section %d want %d", y, sec.Y, idx)
			}
		}
	}

	for _, y := range []int{-65, -1, 16, 47, 64, 1000} {
		if sec := tower.SectionFor(y); sec != nil {
			t.Fatalf("y=%d: got section %d, want miss", y, sec.Y)
		}
	}
}

func TestTowerYRangeHalfOpen(t *testing.T) {
	t.Parallel()

	tower := towerOf(-4, 0, 3)
	if got := tower.YMin(); got != -64 {
		t.Fatalf("YMin: got %d want -64", got)
	}
	if got := tower.YMax(); got != 64 {
		t.Fatalf("YMax: got %d want 64", got)
	}

	empty := newSectionTower(nil)
	if empty.YMin() != 0 || empty.YMax() != 0 {
		t.Fatalf("empty tower span: got [%d,%d) want [0,0)", empty.YMin(), empty.YMax())
	}
}

func TestTowerSkipsTerminatorSections(t *testing.T) {
	t.Parallel()

	terminator := &Section{Y: -1}
	stone := &Section{Y: 0, Palette: []Block{{Name: "minecraft:stone"}}}
	tower := newSectionTower([]*Section{terminator, stone})

	if tower.Len() != 1 {
		t.Fatalf("tower kept %d sections, want 1", tower.Len())
	}
	if sec := tower.SectionFor(-1); sec != nil {
		t.Fatalf("terminator section resolved at y=-1")
	}
	if sec := tower.SectionFor(0); sec != stone {
		t.Fatalf("real section not resolved at y=0")
	}
	if tower.YMin() != 0 {
		t.Fatalf("terminator dragged YMin to %d", tower.YMin())
	}
}
