package yaku

import (
	"errors"
	"sort"

	"mahjongcore/internal/mahjong/agari"
	"mahjongcore/internal/mahjong/hand"
	"mahjongcore/internal/mahjong/tile"
)

// ErrNoYaku is returned when a shape-winning hand scores no yaku at all
// (dora cannot carry a hand to eligibility per spec §4.2).
var ErrNoYaku = errors.New("yaku: winning shape has no yaku")

// Result is the (han, fu, yaku-ids, limit-flag) tuple spec §4.2 specifies.
type Result struct {
	Han       int
	Fu        int
	Hits      []Hit
	IsYakuman bool
	// YakumanUnits is the sum of yakuman multiples (1 per yakuman, 2 per
	// double yakuman); the point calculator multiplies the yakuman base by
	// this.
	YakumanUnits int
	DoraHan      int
}

func isYakumanID(id ID) bool { return id >= Kokushi && id <= Chiihou }

func sumHan(hits []Hit) int {
	t := 0
	for _, h := range hits {
		t += h.Han
	}
	return t
}

func isYakumanHits(hits []Hit) bool {
	for _, h := range hits {
		if isYakumanID(h.ID) {
			return true
		}
	}
	return false
}

func yakumanUnits(hits []Hit) int {
	units := 0
	for _, h := range hits {
		switch h.ID {
		case Kokushi:
			if h.Han >= 26 {
				units += 2
			} else {
				units++
			}
		case Suuankou:
			units++
		case SuuankouTanki, Daisuushii, JunseiChuurenpoutou:
			units += 2
		case Daisangen, Shousuushii, Tsuuiisou, Ryuuiisou, Chinroutou, Chuurenpoutou, Suukantsu, Tenhou, Chiihou:
			units++
		}
	}
	return units
}

// Evaluate scores a winning hand. concealedWithWin already includes the
// winning tile (tsumo draw or hypothetical ron addition); melds are the
// seat's already-called sets; closed reports whether the hand holds no
// open (non-ankan) meld.
func Evaluate(concealedWithWin tile.Counts, melds []hand.Meld, closed bool, ctx Context) (Result, error) {
	type candidate struct {
		hits      []Hit
		fu        int
		isYakuman bool
	}
	var candidates []candidate

	all := concealedWithWin
	for _, m := range melds {
		for _, k := range m.Tiles {
			all[k]++
		}
	}

	if len(melds) == 0 {
		if agari.IsKokushi(concealedWithWin) {
			dup := findKokushiDup(concealedWithWin)
			han := 13
			if dup == ctx.WinTile {
				han = 26
			}
			return Result{Han: han, Fu: 0, Hits: []Hit{{Kokushi, han}}, IsYakuman: true, YakumanUnits: han / 13}, nil
		}
		if agari.IsChiitoitsu(concealedWithWin) {
			hits := evalChiitoitsu(concealedWithWin, ctx)
			if isYakumanHits(hits) {
				candidates = append(candidates, candidate{hits, 0, true})
			} else {
				candidates = append(candidates, candidate{hits, 25, false})
			}
		}
	}

	for _, p := range agari.AllStandardParses(concealedWithWin, melds) {
		hh := Hand{Parse: p, Melds: melds, Counts: all, Closed: closed}
		hits := evalStandard(hh, ctx)
		if len(hits) == 0 {
			continue
		}
		isYakuman := isYakumanHits(hits)
		fu := 0
		if !isYakuman {
			fu = Fu(p, ctx, closed)
		}
		candidates = append(candidates, candidate{hits, fu, isYakuman})
	}

	if len(candidates) == 0 {
		return Result{}, ErrNoYaku
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		hi, hj := sumHan(candidates[i].hits), sumHan(candidates[j].hits)
		if candidates[i].isYakuman != candidates[j].isYakuman {
			return candidates[i].isYakuman
		}
		if hi != hj {
			return hi > hj
		}
		return candidates[i].fu > candidates[j].fu
	})
	best := candidates[0]

	if best.isYakuman {
		return Result{
			Han: sumHan(best.hits), Fu: 0, Hits: best.hits,
			IsYakuman: true, YakumanUnits: yakumanUnits(best.hits),
		}, nil
	}

	han := sumHan(best.hits)
	doraHan := CountDora(all, ctx.DoraIndicators)
	if ctx.Riichi {
		doraHan += CountDora(all, ctx.UraDoraIndicators)
	}
	return Result{
		Han: han + doraHan, Fu: best.fu, Hits: best.hits, DoraHan: doraHan,
	}, nil
}

func findKokushiDup(c tile.Counts) tile.Kind {
	for _, k := range kokushiKindsExported() {
		if c[k] == 2 {
			return k
		}
	}
	return tile.NoneKind
}

func kokushiKindsExported() []tile.Kind {
	return []tile.Kind{0, 8, 9, 17, 18, 26, tile.East, tile.South, tile.West, tile.North, tile.White, tile.Green, tile.Red}
}

// CountDora sums dora hits: one han per matching tile per indicator.
func CountDora(c tile.Counts, indicators []tile.Kind) int {
	total := 0
	for _, ind := range indicators {
		total += c[ind.NextDora()]
	}
	return total
}
