package yaku

import (
	"mahjongcore/internal/mahjong/agari"
	"mahjongcore/internal/mahjong/hand"
	"mahjongcore/internal/mahjong/tile"
)

// evalYakuman checks the standard-shape yakuman set (kokushi and
// chiitoitsu-shape yakuman, i.e. tsuuiisou-as-seven-pairs, are handled by
// their own shape branches in Evaluate). Returns nil if none apply.
func evalYakuman(h Hand, ctx Context) []Hit {
	var hits []Hit

	if n, tanki := suuankouInfo(h, ctx); n == 4 {
		if tanki {
			hits = append(hits, Hit{SuuankouTanki, 26})
		} else {
			hits = append(hits, Hit{Suuankou, 13})
		}
	}
	if hasDaisangen(h.Parse) {
		hits = append(hits, Hit{Daisangen, 13})
	}
	if w, ok := windYakumanInfo(h.Parse); ok {
		if w == 4 {
			hits = append(hits, Hit{Daisuushii, 26})
		} else if w == 3 {
			hits = append(hits, Hit{Shousuushii, 13})
		}
	}
	if isTsuuiisou(h.Counts) {
		hits = append(hits, Hit{Tsuuiisou, 13})
	}
	if isRyuuiisou(h.Counts) {
		hits = append(hits, Hit{Ryuuiisou, 13})
	}
	if isChinroutou(h.Counts) {
		hits = append(hits, Hit{Chinroutou, 13})
	}
	if ok, double := chuurenInfo(h.Counts, len(h.Melds), ctx.WinTile); ok {
		if double {
			hits = append(hits, Hit{JunseiChuurenpoutou, 26})
		} else {
			hits = append(hits, Hit{Chuurenpoutou, 13})
		}
	}
	if countQuadMelds(h.Melds) == 4 {
		hits = append(hits, Hit{Suukantsu, 13})
	}
	if ctx.FirstTurn && ctx.Tsumo && ctx.NoCallsYet {
		if ctx.IsDealer {
			hits = append(hits, Hit{Tenhou, 13})
		} else {
			hits = append(hits, Hit{Chiihou, 13})
		}
	}
	return hits
}

func suuankouInfo(h Hand, ctx Context) (count int, tanki bool) {
	wait := ClassifyWait(h.Parse, ctx.WinTile)
	n := concealedTripletCount(h, ctx, wait)
	return n, n == 4 && wait == WaitTanki
}

func hasDaisangen(p agari.Parse) bool {
	n := 0
	for _, s := range tripletsOf(p) {
		if s.Base.IsDragon() {
			n++
		}
	}
	return n == 3
}

// windYakumanInfo returns how many of the four wind triplets are present.
// Three wind triplets only qualify as shousuushii when the pair is the
// fourth wind; four wind triplets (daisuushii) need no such check since
// every wind is already a triplet.
func windYakumanInfo(p agari.Parse) (int, bool) {
	n := 0
	for _, s := range tripletsOf(p) {
		if s.Base.IsWind() {
			n++
		}
	}
	if n == 3 {
		return n, p.Pair.IsWind()
	}
	return n, n == 4
}

func isRyuuiisou(c tile.Counts) bool {
	allowed := map[tile.Kind]bool{
		tile.Kind(19): true, tile.Kind(20): true, tile.Kind(21): true,
		tile.Kind(23): true, tile.Kind(25): true, tile.Green: true,
	}
	for k, v := range c {
		if v > 0 && !allowed[tile.Kind(k)] {
			return false
		}
	}
	return true
}

func isChinroutou(c tile.Counts) bool {
	any := false
	for k, v := range c {
		if v == 0 {
			continue
		}
		kk := tile.Kind(k)
		if kk.IsHonor() || !kk.IsTerminalOrHonor() {
			return false
		}
		any = true
	}
	return any
}

func chuurenInfo(c tile.Counts, numMelds int, winTile tile.Kind) (ok bool, double bool) {
	if numMelds != 0 {
		return false, false
	}
	man, pin, sou := suitsPresent(c)
	n := 0
	if man {
		n++
	}
	if pin {
		n++
	}
	if sou {
		n++
	}
	if n != 1 || honorsPresent(c) {
		return false, false
	}
	base := tile.ManMin
	if pin {
		base = tile.PinMin
	} else if sou {
		base = tile.SouMin
	}
	required := [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}
	extraPos := -1
	for i := 0; i < 9; i++ {
		actual := c[base+i]
		diff := actual - required[i]
		if diff < 0 {
			return false, false
		}
		if diff > 1 {
			return false, false
		}
		if diff == 1 {
			if extraPos != -1 {
				return false, false
			}
			extraPos = i
		}
	}
	if extraPos == -1 {
		return false, false
	}
	return true, tile.Kind(base+extraPos) == winTile
}

func countQuadMelds(melds []hand.Meld) int {
	n := 0
	for _, m := range melds {
		if m.IsQuad() {
			n++
		}
	}
	return n
}
