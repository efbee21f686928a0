package game

import "github.com/kanquest/performator/pkg/entity"

// RandFunc supplies a draw in [0, 1). Injected so callers own the random
// source and tests can pin rolls.
type RandFunc func() float64

type dropChance struct {
	rarity   entity.Rarity
	chance   float64
	minLevel int
}

// dropTable order matters: the cumulative bucket walk below visits entries
// top to bottom, starting after the flat no-drop bucket.
var dropTable = []dropChance{
	{entity.RarityCommon, 47, 1},
	{entity.RarityUncommon, 25, 1},
	{entity.RarityRare, 8, 1},
	{entity.RarityEpic, 4, 15},
	{entity.RarityLegendary, 1, 25},
}

// ResolveDrop decides whether a reward roll yields an item and of what
// rarity. roll is a percentage in [0, 100); the first NoDropChance percent
// yield nothing, then each rarity the user's level unlocks claims its chance
// band in table order. A roll past every band yields nothing.
func ResolveDrop(level int, roll float64) (entity.Rarity, bool) {
	cumulative := float64(NoDropChance)
	if roll <= cumulative {
		return "", false
	}
	for _, drop := range dropTable {
		if level < drop.minLevel {
			continue
		}
		cumulative += drop.chance
		if roll <= cumulative {
			return drop.rarity, true
		}
	}
	return "", false
}

// RollDrop draws from rand and resolves it against the drop table.
func RollDrop(level int, rand RandFunc) (entity.Rarity, bool) {
	return ResolveDrop(level, rand()*100)
}
