package anvil

// Biome is a legacy numeric biome code. Chunks before the 1.18 format store
// biomes as these integers; the names below are the matching namespaced
// identifiers.
type Biome int32

const (
	BiomeOcean                         Biome = 0
	BiomePlains                        Biome = 1
	BiomeDesert                        Biome = 2
	BiomeMountains                     Biome = 3
	BiomeForest                        Biome = 4
	BiomeTaiga                         Biome = 5
	BiomeSwamp                         Biome = 6
	BiomeRiver                         Biome = 7
	BiomeNether                        Biome = 8
	BiomeTheEnd                        Biome = 9
	BiomeFrozenOcean                   Biome = 10
	BiomeFrozenRiver                   Biome = 11
	BiomeSnowyTundra                   Biome = 12
	BiomeSnowyMountains                Biome = 13
	BiomeMushroomFields                Biome = 14
	BiomeMushroomFieldShore            Biome = 15
	BiomeBeach                         Biome = 16
	BiomeDesertHills                   Biome = 17
	BiomeWoodedHills                   Biome = 18
	BiomeTaigaHills                    Biome = 19
	BiomeMountainEdge                  Biome = 20
	BiomeJungle                        Biome = 21
	BiomeJungleHills                   Biome = 22
	BiomeJungleEdge                    Biome = 23
	BiomeDeepOcean                     Biome = 24
	BiomeStoneShore                    Biome = 25
	BiomeSnowyBeach                    Biome = 26
	BiomeBirchForest                   Biome = 27
	BiomeBirchForestHills              Biome = 28
	BiomeDarkForest                    Biome = 29
	BiomeSnowyTaiga                    Biome = 30
	BiomeSnowyTaigaHills               Biome = 31
	BiomeGiantTreeTaiga                Biome = 32
	BiomeGiantTreeTaigaHills           Biome = 33
	BiomeWoodedMountains               Biome = 34
	BiomeSavanna                       Biome = 35
	BiomeSavannaPlateau                Biome = 36
	BiomeBadlands                      Biome = 37
	BiomeWoodedBadlandsPlateau         Biome = 38
	BiomeBadlandsPlateau               Biome = 39
	BiomeSmallEndIslands               Biome = 40
	BiomeEndMidlands                   Biome = 41
	BiomeEndHighlands                  Biome = 42
	BiomeEndBarrens                    Biome = 43
	BiomeWarmOcean                     Biome = 44
	BiomeLukewarmOcean                 Biome = 45
	BiomeColdOcean                     Biome = 46
	BiomeDeepWarmOcean                 Biome = 47
	BiomeDeepLukewarmOcean             Biome = 48
	BiomeDeepColdOcean                 Biome = 49
	BiomeDeepFrozenOcean               Biome = 50
	BiomeTheVoid                       Biome = 127
	BiomeSunflowerPlains               Biome = 129
	BiomeDesertLakes                   Biome = 130
	BiomeGravellyMountains             Biome = 131
	BiomeFlowerForest                  Biome = 132
	BiomeTaigaMountains                Biome = 133
	BiomeSwampHills                    Biome = 134
	BiomeIceSpikes                     Biome = 140
	BiomeModifiedJungle                Biome = 149
	BiomeModifiedJungleEdge            Biome = 151
	BiomeTallBirchForest               Biome = 155
	BiomeTallBirchHills                Biome = 156
	BiomeDarkForestHills               Biome = 157
	BiomeSnowyTaigaMountains           Biome = 158
	BiomeGiantSpruceTaiga              Biome = 160
	BiomeGiantSpruceTaigaHills         Biome = 161
	BiomeModifiedGravellyMountains     Biome = 162
	BiomeShatteredSavanna              Biome = 163
	BiomeShatteredSavannaPlateau       Biome = 164
	BiomeErodedBadlands                Biome = 165
	BiomeModifiedWoodedBadlandsPlateau Biome = 166
	BiomeModifiedBadlandsPlateau       Biome = 167
	BiomeBambooJungle                  Biome = 168
	BiomeBambooJungleHills             Biome = 169
	BiomeSoulSandValley                Biome = 170
	BiomeCrimsonForest                 Biome = 171
	BiomeWarpedForest                  Biome = 172
	BiomeBasaltDeltas                  Biome = 173
)

var biomeNames = map[Biome]string{
	BiomeOcean:                         "minecraft:ocean",
	BiomePlains:                        "minecraft:plains",
	BiomeDesert:                        "minecraft:desert",
	BiomeMountains:                     "minecraft:mountains",
	BiomeForest:                        "minecraft:forest",
	BiomeTaiga:                         "minecraft:taiga",
	BiomeSwamp:                         "minecraft:swamp",
	BiomeRiver:                         "minecraft:river",
	BiomeNether:                        "minecraft:nether_wastes",
	BiomeTheEnd:                        "minecraft:the_end",
	BiomeFrozenOcean:                   "minecraft:frozen_ocean",
	BiomeFrozenRiver:                   "minecraft:frozen_river",
	BiomeSnowyTundra:                   "minecraft:snowy_tundra",
	BiomeSnowyMountains:                "minecraft:snowy_mountains",
	BiomeMushroomFields:                "minecraft:mushroom_fields",
	BiomeMushroomFieldShore:            "minecraft:mushroom_field_shore",
	BiomeBeach:                         "minecraft:beach",
	BiomeDesertHills:                   "minecraft:desert_hills",
	BiomeWoodedHills:                   "minecraft:wooded_hills",
	BiomeTaigaHills:                    "minecraft:taiga_hills",
	BiomeMountainEdge:                  "minecraft:mountain_edge",
	BiomeJungle:                        "minecraft:jungle",
	BiomeJungleHills:                   "minecraft:jungle_hills",
	BiomeJungleEdge:                    "minecraft:jungle_edge",
	BiomeDeepOcean:                     "minecraft:deep_ocean",
	BiomeStoneShore:                    "minecraft:stone_shore",
	BiomeSnowyBeach:                    "minecraft:snowy_beach",
	BiomeBirchForest:                   "minecraft:birch_forest",
	BiomeBirchForestHills:              "minecraft:birch_forest_hills",
	BiomeDarkForest:                    "minecraft:dark_forest",
	BiomeSnowyTaiga:                    "minecraft:snowy_taiga",
	BiomeSnowyTaigaHills:               "minecraft:snowy_taiga_hills",
	BiomeGiantTreeTaiga:                "minecraft:giant_tree_taiga",
	BiomeGiantTreeTaigaHills:           "minecraft:giant_tree_taiga_hills",
	BiomeWoodedMountains:               "minecraft:wooded_mountains",
	BiomeSavanna:                       "minecraft:savanna",
	BiomeSavannaPlateau:                "minecraft:savanna_plateau",
	BiomeBadlands:                      "minecraft:badlands",
	BiomeWoodedBadlandsPlateau:         "minecraft:wooded_badlands_plateau",
	BiomeBadlandsPlateau:               "minecraft:badlands_plateau",
	BiomeSmallEndIslands:               "minecraft:small_end_islands",
	BiomeEndMidlands:                   "minecraft:end_midlands",
	BiomeEndHighlands:                  "minecraft:end_highlands",
	BiomeEndBarrens:                    "minecraft:end_barrens",
	BiomeWarmOcean:                     "minecraft:warm_ocean",
	BiomeLukewarmOcean:                 "minecraft:lukewarm_ocean",
	BiomeColdOcean:                     "minecraft:cold_ocean",
	BiomeDeepWarmOcean:                 "minecraft:deep_warm_ocean",
	BiomeDeepLukewarmOcean:             "minecraft:deep_lukewarm_ocean",
	BiomeDeepColdOcean:                 "minecraft:deep_cold_ocean",
	BiomeDeepFrozenOcean:               "minecraft:deep_frozen_ocean",
	BiomeTheVoid:                       "minecraft:the_void",
	BiomeSunflowerPlains:               "minecraft:sunflower_plains",
	BiomeDesertLakes:                   "minecraft:desert_lakes",
	BiomeGravellyMountains:             "minecraft:gravelly_mountains",
	BiomeFlowerForest:                  "minecraft:flower_forest",
	BiomeTaigaMountains:                "minecraft:taiga_mountains",
	BiomeSwampHills:                    "minecraft:swamp_hills",
	BiomeIceSpikes:                     "minecraft:ice_spikes",
	BiomeModifiedJungle:                "minecraft:modified_jungle",
	BiomeModifiedJungleEdge:            "minecraft:modified_jungle_edge",
	BiomeTallBirchForest:               "minecraft:tall_birch_forest",
	BiomeTallBirchHills:                "minecraft:tall_birch_hills",
	BiomeDarkForestHills:               "minecraft:dark_forest_hills",
	BiomeSnowyTaigaMountains:           "minecraft:snowy_taiga_mountains",
	BiomeGiantSpruceTaiga:              "minecraft:giant_spruce_taiga",
	BiomeGiantSpruceTaigaHills:         "minecraft:giant_spruce_taiga_hills",
	BiomeModifiedGravellyMountains:     "minecraft:modified_gravelly_mountains",
	BiomeShatteredSavanna:              "minecraft:shattered_savanna",
	BiomeShatteredSavannaPlateau:       "minecraft:shattered_savanna_plateau",
	BiomeErodedBadlands:                "minecraft:eroded_badlands",
	BiomeModifiedWoodedBadlandsPlateau: "minecraft:modified_wooded_badlands_plateau",
	BiomeModifiedBadlandsPlateau:       "minecraft:modified_badlands_plateau",
	BiomeBambooJungle:                  "minecraft:bamboo_jungle",
	BiomeBambooJungleHills:             "minecraft:bamboo_jungle_hills",
	BiomeSoulSandValley:                "minecraft:soul_sand_valley",
	BiomeCrimsonForest:                 "minecraft:crimson_forest",
	BiomeWarpedForest:                  "minecraft:warped_forest",
	BiomeBasaltDeltas:                  "minecraft:basalt_deltas",
}

// BiomeFromCode resolves a raw biome code. Unknown codes report false; worlds
// touched by mods or newer game versions contain codes this table has never
// heard of, and that is not an error.
func BiomeFromCode(code int32) (Biome, bool) {
	b := Biome(code)
	_, ok := biomeNames[b]
	return b, ok
}

// String returns the namespaced identifier for the biome, or "" for codes
// outside the table.
func (b Biome) String() string {
	return biomeNames[b]
}
