package agari

import (
	"mahjongcore/internal/mahjong/hand"
	"mahjongcore/internal/mahjong/tile"
)

// WaitingKinds enumerates every tile kind that would complete concealed+
// melds into a winning hand, the brute-force "try every kind, check win"
// technique the other_examples go-mahjong-server helper (IsTing/TingTiles)
// uses, generalized to the three recognized shapes.
func WaitingKinds(concealed tile.Counts, melds []hand.Meld) []tile.Kind {
	var waits []tile.Kind
	for k := 0; k < tile.NumKinds; k++ {
		trial := concealed
		trial[k]++
		if ok, _ := IsWinning(trial, melds); ok {
			waits = append(waits, tile.Kind(k))
		}
	}
	return waits
}

// IsTenpai reports whether concealed+melds is one tile away from winning.
func IsTenpai(concealed tile.Counts, melds []hand.Meld) bool {
	return len(WaitingKinds(concealed, melds)) > 0
}
