package yaku

import (
	"mahjongcore/internal/mahjong/agari"
	"mahjongcore/internal/mahjong/tile"
)

// WaitType classifies how the winning tile completed the parse, needed by
// both pinfu (ryanmen only) and fu (wait-shape bonus) per spec §4.2.
type WaitType int

const (
	WaitNone WaitType = iota
	WaitRyanmen
	WaitKanchan
	WaitPenchan
	WaitTanki
	WaitShanpon
)

// ClassifyWait inspects which set/pair the winning tile belongs to and
// returns how it completed that set. When the tile fits more than one
// reading (e.g. 4p waiting on 3p-4p-5p ryanmen vs landing as part of a
// triplet elsewhere) the caller is expected to have already chosen the
// parse that produces the interpretation being scored — AllStandardParses
// enumerates every such reading.
func ClassifyWait(p agari.Parse, winTile tile.Kind) WaitType {
	if p.Pair == winTile {
		// Could be tanki (pair itself is the wait) or shanpon (pair plus a
		// matching triplet both wait on the same kind); shanpon takes
		// precedence when a triplet of the same kind also exists and is
		// completed by this tile.
		for _, s := range p.Sets {
			if s.Kind == agari.SetTriplet && s.Base == winTile {
				return WaitShanpon
			}
		}
		return WaitTanki
	}
	for _, s := range p.Sets {
		if s.Kind != agari.SetRun {
			continue
		}
		if winTile < s.Base || winTile > s.Base+2 {
			continue
		}
		offset := int(winTile - s.Base)
		num := s.Base.Number()
		switch offset {
		case 1:
			return WaitKanchan
		case 0:
			if num == 7 {
				return WaitPenchan
			}
			return WaitRyanmen
		case 2:
			if num == 1 {
				return WaitPenchan
			}
			return WaitRyanmen
		}
	}
	for _, s := range p.Sets {
		if s.Kind == agari.SetTriplet && s.Base == winTile {
			return WaitShanpon
		}
	}
	return WaitNone
}
