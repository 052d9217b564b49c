// Package anvil decodes the per-chunk storage schema Minecraft layers on top
// of NBT: block palettes, bit-packed block state volumes, height maps and
// biome codes, across the on-disk format revisions the game has shipped.
//
// The package is a pure decode/query layer. It takes one already-decompressed
// chunk payload and answers block, biome and surface height queries; region
// files, compression and writing worlds back are the caller's business.
package anvil

import (
	"sort"
	"strings"
)

// Block describes one palette entry: a namespaced identifier plus its block
// state properties.
type Block struct {
	Name       string
	Properties map[string]string
}

// Air is the block served for sections that store no block states at all.
var Air = Block{Name: "minecraft:air"}

// airLike names the blocks a surface scan treats as empty.
var airLike = map[string]struct{}{
	"minecraft:air":      {},
	"minecraft:cave_air": {},
}

// EncodedDescription renders the block as "name|prop1=val1,prop2=val2" with
// properties in lexicographic key order. The waterlogged property is left
// out so that a flooded and a dry variant of the same block share one key;
// palette deduplication wants that.
func (b *Block) EncodedDescription() string {
	props := make([]string, 0, len(b.Properties))
	for k, v := range b.Properties {
		if k == "waterlogged" {
			continue
		}
		props = append(props, k+"="+v)
	}
	sort.Strings(props)

	var sb strings.Builder
	sb.WriteString(b.Name)
	sb.WriteByte('|')
	sb.WriteString(strings.Join(props, ","))
	return sb.String()
}
