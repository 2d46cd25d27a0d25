package yaku

import (
	"mahjongcore/internal/mahjong/agari"
	"mahjongcore/internal/mahjong/hand"
	"mahjongcore/internal/mahjong/tile"
)

// ID enumerates every scoring pattern, ids 1-25 for the regular set (one
// yakuhai id per tile kind) and 30-43 for the yakuman set, with double
// riichi at 44 and seven pairs at 100; the numbering is this package's own
// and does not follow the table's ids (kept sparse and named rather
// than packed, matching the teacher's Yaku enum style in
// runtime/game/engines/mahjong/yaku.go).
type ID int

const (
	Riichi ID = iota + 1
	Ippatsu
	MenzenTsumo
	Pinfu
	Tanyao
	Iipeikou
	YakuhaiEast
	YakuhaiSouth
	YakuhaiWest
	YakuhaiNorth
	YakuhaiWhite
	YakuhaiGreen
	YakuhaiRed
	SanshokuDoujun
	Ittsuu
	Chanta
	Toitoi
	Sanankou
	SanshokuDoukou
	Sankantsu
	Honitsu
	Junchan
	Ryanpeikou
	Shousangen
	Chinitsu
)

const (
	Kokushi ID = iota + 30
	Daisangen
	Suuankou
	SuuankouTanki
	Shousuushii
	Daisuushii
	Tsuuiisou
	Ryuuiisou
	Chinroutou
	Chuurenpoutou
	JunseiChuurenpoutou
	Suukantsu
	Tenhou
	Chiihou
	DoubleRiichiID
)

var names = map[ID]string{
	Riichi: "riichi", Ippatsu: "ippatsu", MenzenTsumo: "menzen_tsumo", Pinfu: "pinfu",
	Tanyao: "tanyao", Iipeikou: "iipeikou",
	YakuhaiEast: "yakuhai_east", YakuhaiSouth: "yakuhai_south", YakuhaiWest: "yakuhai_west", YakuhaiNorth: "yakuhai_north",
	YakuhaiWhite: "yakuhai_haku", YakuhaiGreen: "yakuhai_hatsu", YakuhaiRed: "yakuhai_chun",
	SanshokuDoujun: "sanshoku_doujun", Ittsuu: "ittsuu", Chanta: "chanta", Toitoi: "toitoi",
	Sanankou: "sanankou", SanshokuDoukou: "sanshoku_doukou", Sankantsu: "sankantsu",
	Honitsu: "honitsu", Junchan: "junchan", Ryanpeikou: "ryanpeikou", Shousangen: "shousangen",
	Chinitsu: "chinitsu",
	Kokushi: "kokushi", Daisangen: "daisangen", Suuankou: "suuankou", SuuankouTanki: "suuankou_tanki",
	Shousuushii: "shousuushii", Daisuushii: "daisuushii", Tsuuiisou: "tsuuiisou", Ryuuiisou: "ryuuiisou",
	Chinroutou: "chinroutou", Chuurenpoutou: "chuurenpoutou", JunseiChuurenpoutou: "junsei_chuurenpoutou",
	Suukantsu: "suukantsu", Tenhou: "tenhou", Chiihou: "chiihou", DoubleRiichiID: "double_riichi",
}

func (id ID) String() string { return names[id] }

// Hit is one scored yaku: its id and the han it contributes (already
// doubled for wind-pair/yakuman-multiplier cases).
type Hit struct {
	ID  ID
	Han int
}

// Hand bundles everything a checker needs: the chosen parse, the melds, the
// full 34-count tile multiset, and whether the hand is closed.
type Hand struct {
	Parse  agari.Parse
	Melds  []hand.Meld
	Counts tile.Counts
	Closed bool
}

func yakuhaiHan(k tile.Kind, ctx Context) (ID, int, bool) {
	switch {
	case k.IsDragon():
		var id ID
		switch k {
		case tile.White:
			id = YakuhaiWhite
		case tile.Green:
			id = YakuhaiGreen
		case tile.Red:
			id = YakuhaiRed
		}
		return id, 1, true
	case k == tile.East && k == ctx.SeatWind && k == ctx.RoundWind:
		return YakuhaiEast, 2, true
	case k == tile.South && k == ctx.SeatWind && k == ctx.RoundWind:
		return YakuhaiSouth, 2, true
	case k == tile.West && k == ctx.SeatWind && k == ctx.RoundWind:
		return YakuhaiWest, 2, true
	case k == tile.North && k == ctx.SeatWind && k == ctx.RoundWind:
		return YakuhaiNorth, 2, true
	case k == ctx.SeatWind && k.IsWind():
		id := map[tile.Kind]ID{tile.East: YakuhaiEast, tile.South: YakuhaiSouth, tile.West: YakuhaiWest, tile.North: YakuhaiNorth}[k]
		return id, 1, true
	case k == ctx.RoundWind && k.IsWind():
		id := map[tile.Kind]ID{tile.East: YakuhaiEast, tile.South: YakuhaiSouth, tile.West: YakuhaiWest, tile.North: YakuhaiNorth}[k]
		return id, 1, true
	default:
		return 0, 0, false
	}
}

func runsOf(p agari.Parse) []tile.Kind {
	var bases []tile.Kind
	for _, s := range p.Sets {
		if s.Kind == agari.SetRun {
			bases = append(bases, s.Base)
		}
	}
	return bases
}

func tripletsOf(p agari.Parse) []agari.CompletedSet {
	var out []agari.CompletedSet
	for _, s := range p.Sets {
		if s.Kind == agari.SetTriplet || s.Kind == agari.SetQuad {
			out = append(out, s)
		}
	}
	return out
}

// evalStandard scores one standard-shape parse. It returns every regular
// (non-yakuman) yaku hit, unless any yakuman applies, in which case the
// hits instead carry only the yakuman ids and the regular table is
// ignored entirely (yakuman never stacks with regular han per this engine).
func evalStandard(h Hand, ctx Context) []Hit {
	if ym := evalYakuman(h, ctx); len(ym) > 0 {
		return ym
	}

	var hits []Hit
	wait := ClassifyWait(h.Parse, ctx.WinTile)
	pinfu := h.Closed && isPinfuShape(h.Parse, ctx, wait)

	if ctx.Riichi && h.Closed {
		if ctx.DoubleRiichi {
			hits = append(hits, Hit{DoubleRiichiID, 2})
		} else {
			hits = append(hits, Hit{Riichi, 1})
		}
	}
	if ctx.Ippatsu && h.Closed {
		hits = append(hits, Hit{Ippatsu, 1})
	}
	if ctx.Tsumo && h.Closed {
		hits = append(hits, Hit{MenzenTsumo, 1})
	}
	if pinfu {
		hits = append(hits, Hit{Pinfu, 1})
	}
	if isTanyao(h.Counts) {
		hits = append(hits, Hit{Tanyao, 1})
	}
	if h.Closed {
		if n := iipeikouCount(h.Parse); n == 1 {
			hits = append(hits, Hit{Iipeikou, 1})
		} else if n >= 2 {
			hits = append(hits, Hit{Ryanpeikou, 3})
		}
	}
	for _, s := range tripletsOf(h.Parse) {
		if id, han, ok := yakuhaiHan(s.Base, ctx); ok {
			hits = append(hits, Hit{id, han})
		}
	}
	if hasSanshokuDoujun(h.Parse) {
		han := 2
		if !h.Closed {
			han = 1
		}
		hits = append(hits, Hit{SanshokuDoujun, han})
	}
	if hasIttsuu(h.Parse) {
		han := 2
		if !h.Closed {
			han = 1
		}
		hits = append(hits, Hit{Ittsuu, han})
	}
	if chantaAll(h.Parse) {
		if !honorsPresent(h.Counts) {
			han := 3
			if !h.Closed {
				han = 2
			}
			hits = append(hits, Hit{Junchan, han})
		} else {
			han := 2
			if !h.Closed {
				han = 1
			}
			hits = append(hits, Hit{Chanta, han})
		}
	}
	if allTripletsOrQuads(h.Parse) {
		hits = append(hits, Hit{Toitoi, 2})
	}
	if n := concealedTripletCount(h, ctx, wait); n == 3 {
		hits = append(hits, Hit{Sanankou, 2})
	}
	if hasSanshokuDoukou(h.Parse) {
		hits = append(hits, Hit{SanshokuDoukou, 2})
	}
	if quadCount(h.Parse) == 3 {
		hits = append(hits, Hit{Sankantsu, 2})
	}
	if isHonitsu(h.Counts) {
		han := 3
		if !h.Closed {
			han = 2
		}
		hits = append(hits, Hit{Honitsu, han})
	}
	if isChinitsu(h.Counts) {
		han := 6
		if !h.Closed {
			han = 5
		}
		hits = append(hits, Hit{Chinitsu, han})
	}
	if hasShousangen(h.Parse) {
		hits = append(hits, Hit{Shousangen, 2})
	}
	return hits
}

// Chiitoitsu is the seven-pairs id. evalChiitoitsu scores a seven-pairs
// hand (Evaluate gives it a fixed 25 fu): 2 han base plus
// tanyao/honitsu/chinitsu/tsumo/riichi as applicable; chiitoitsu itself is
// not separately listed in spec's table (it is folded into the "closed"
// column implicitly) but it must contribute its own base han.
const Chiitoitsu ID = 100

func evalChiitoitsu(counts tile.Counts, ctx Context) []Hit {
	hits := []Hit{{Chiitoitsu, 2}}
	if ctx.Riichi {
		if ctx.DoubleRiichi {
			hits = append(hits, Hit{DoubleRiichiID, 2})
		} else {
			hits = append(hits, Hit{Riichi, 1})
		}
	}
	if ctx.Ippatsu {
		hits = append(hits, Hit{Ippatsu, 1})
	}
	if ctx.Tsumo {
		hits = append(hits, Hit{MenzenTsumo, 1})
	}
	if isTanyao(counts) {
		hits = append(hits, Hit{Tanyao, 1})
	}
	if isHonitsu(counts) {
		hits = append(hits, Hit{Honitsu, 3})
	}
	if isChinitsu(counts) {
		hits = append(hits, Hit{Chinitsu, 6})
	}
	if isTsuuiisou(counts) {
		hits = append(hits, Hit{Tsuuiisou, 13})
	}
	return hits
}

func isTanyao(c tile.Counts) bool {
	for k, v := range c {
		if v > 0 && tile.Kind(k).IsTerminalOrHonor() {
			return false
		}
	}
	return true
}

func honorsPresent(c tile.Counts) bool {
	for k := int(tile.East); k <= int(tile.Red); k++ {
		if c[k] > 0 {
			return true
		}
	}
	return false
}

func suitsPresent(c tile.Counts) (man, pin, sou bool) {
	for k, v := range c {
		if v == 0 {
			continue
		}
		kk := tile.Kind(k)
		man = man || kk.IsMan()
		pin = pin || kk.IsPin()
		sou = sou || kk.IsSou()
	}
	return
}

func isHonitsu(c tile.Counts) bool {
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
	return n == 1 && honorsPresent(c)
}

func isChinitsu(c tile.Counts) bool {
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
	return n == 1 && !honorsPresent(c)
}

func isTsuuiisou(c tile.Counts) bool {
	for k, v := range c {
		if v > 0 && !tile.Kind(k).IsHonor() {
			return false
		}
	}
	return true
}

func iipeikouCount(p agari.Parse) int {
	seen := map[tile.Kind]int{}
	for _, s := range p.Sets {
		if s.Kind == agari.SetRun {
			seen[s.Base]++
		}
	}
	pairs := 0
	for _, v := range seen {
		pairs += v / 2
	}
	return pairs
}

func hasSanshokuDoujun(p agari.Parse) bool {
	runs := runsOf(p)
	set := map[tile.Kind]bool{}
	for _, r := range runs {
		set[r] = true
	}
	for off := 0; off < 7; off++ {
		if set[tile.Kind(tile.ManMin+off)] && set[tile.Kind(tile.PinMin+off)] && set[tile.Kind(tile.SouMin+off)] {
			return true
		}
	}
	return false
}

func hasIttsuu(p agari.Parse) bool {
	runs := runsOf(p)
	set := map[tile.Kind]bool{}
	for _, r := range runs {
		set[r] = true
	}
	for _, base := range []int{tile.ManMin, tile.PinMin, tile.SouMin} {
		if set[tile.Kind(base)] && set[tile.Kind(base+3)] && set[tile.Kind(base+6)] {
			return true
		}
	}
	return false
}

func hasSanshokuDoukou(p agari.Parse) bool {
	trips := tripletsOf(p)
	set := map[tile.Kind]bool{}
	for _, s := range trips {
		if s.Kind == agari.SetTriplet {
			set[s.Base] = true
		}
	}
	for off := 0; off < 9; off++ {
		if set[tile.Kind(tile.ManMin+off)] && set[tile.Kind(tile.PinMin+off)] && set[tile.Kind(tile.SouMin+off)] {
			return true
		}
	}
	return false
}

func chantaAll(p agari.Parse) bool {
	if !p.Pair.IsTerminalOrHonor() {
		return false
	}
	for _, s := range p.Sets {
		switch s.Kind {
		case agari.SetRun:
			if s.Base.Number() != 1 && s.Base.Number() != 7 {
				return false
			}
		default:
			if !s.Base.IsTerminalOrHonor() {
				return false
			}
		}
	}
	return true
}

func allTripletsOrQuads(p agari.Parse) bool {
	for _, s := range p.Sets {
		if s.Kind == agari.SetRun {
			return false
		}
	}
	return true
}

func quadCount(p agari.Parse) int {
	n := 0
	for _, s := range p.Sets {
		if s.Kind == agari.SetQuad {
			n++
		}
	}
	return n
}

func concealedTripletCount(h Hand, ctx Context, wait WaitType) int {
	n := 0
	for _, s := range h.Parse.Sets {
		if s.Kind != agari.SetTriplet && s.Kind != agari.SetQuad {
			continue
		}
		concealed := s.Concealed
		if !ctx.Tsumo && wait == WaitShanpon && s.Base == ctx.WinTile && s.Kind == agari.SetTriplet {
			concealed = false
		}
		if concealed {
			n++
		}
	}
	return n
}

func hasShousangen(p agari.Parse) bool {
	dragonTriplets := 0
	for _, s := range tripletsOf(p) {
		if s.Base.IsDragon() {
			dragonTriplets++
		}
	}
	return dragonTriplets == 2 && p.Pair.IsDragon()
}
