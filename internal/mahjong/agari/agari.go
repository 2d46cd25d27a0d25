// Package agari implements win-shape detection for the three recognized
// hand shapes (standard, chiitoitsu, kokushi), replacing the teacher's
// stubbed canHu/canChi in runtime/game/engines/mahjong/checker.go with the
// pair-first recursive search spec §4.1 and §9 describe. Suit-local
// decomposition is memoized with a ristretto cache per the §9 design note.
package agari

import (
	"mahjongcore/internal/cache"
	"mahjongcore/internal/mahjong/hand"
	"mahjongcore/internal/mahjong/tile"
)

// Shape identifies which of the three recognized hand shapes a winning hand
// matched.
type Shape int

const (
	NoShape Shape = iota
	Standard
	Chiitoitsu
	Kokushi
)

var suitMemo = cache.NewBoolMemo()

// Kokushi13 terminal/honor kinds.
var kokushiKinds = []tile.Kind{0, 8, 9, 17, 18, 26, tile.East, tile.South, tile.West, tile.North, tile.White, tile.Green, tile.Red}

// IsKokushi reports thirteen-orphans: all 13 terminal/honor kinds present at
// least once, with exactly one duplicated; no other kind present at all.
func IsKokushi(concealed tile.Counts) bool {
	dup := false
	for _, k := range kokushiKinds {
		switch concealed[k] {
		case 0:
			return false
		case 1:
		case 2:
			if dup {
				return false
			}
			dup = true
		default:
			return false
		}
	}
	for k := 0; k < tile.NumKinds; k++ {
		if isKokushiKind(tile.Kind(k)) {
			continue
		}
		if concealed[k] != 0 {
			return false
		}
	}
	return dup
}

func isKokushiKind(k tile.Kind) bool {
	for _, kk := range kokushiKinds {
		if kk == k {
			return true
		}
	}
	return false
}

// IsChiitoitsu reports seven-pairs: exactly seven distinct kinds, each with
// count exactly 2 (a count of 4 is four-of-a-kind, not two pairs, per
// standard riichi rules and is rejected here).
func IsChiitoitsu(concealed tile.Counts) bool {
	pairs := 0
	for _, v := range concealed {
		switch v {
		case 0:
			continue
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 7
}

// IsWinning decides whether concealed (the hand's own tiles, including the
// tile being tested) plus melds forms a winning shape. melds must already be
// valid (caller-formed) sets; only the concealed portion is searched.
func IsWinning(concealed tile.Counts, melds []hand.Meld) (bool, Shape) {
	if len(melds) == 0 {
		if IsKokushi(concealed) {
			return true, Kokushi
		}
		if IsChiitoitsu(concealed) {
			return true, Chiitoitsu
		}
	}
	needed := 4 - len(melds)
	if standardWinning(concealed, needed) {
		return true, Standard
	}
	return false, NoShape
}

func standardWinning(concealed tile.Counts, setsNeeded int) bool {
	if setsNeeded < 0 {
		return false
	}
	expected := 3*setsNeeded + 2
	if concealed.Total() != expected {
		return false
	}
	for k := 0; k < tile.NumKinds; k++ {
		if concealed[k] < 2 {
			continue
		}
		rest := concealed
		rest[k] -= 2
		if decomposableAll(rest) {
			return true
		}
	}
	return false
}

func decomposableAll(c tile.Counts) bool {
	if !decomposableHonors(c) {
		return false
	}
	return decomposableSuitMemo(c, tile.ManMin) &&
		decomposableSuitMemo(c, tile.PinMin) &&
		decomposableSuitMemo(c, tile.SouMin)
}

func decomposableHonors(c tile.Counts) bool {
	for k := int(tile.East); k <= int(tile.Red); k++ {
		if c[k]%3 != 0 {
			return false
		}
	}
	return true
}

func decomposableSuitMemo(c tile.Counts, base int) bool {
	var local [9]int
	for i := 0; i < 9; i++ {
		local[i] = c[base+i]
	}
	key := encodeSuit(local)
	if v, ok := suitMemo.Get(key); ok {
		return v
	}
	result := canDecomposeSuit(local)
	suitMemo.Put(key, result)
	return result
}

func encodeSuit(local [9]int) int64 {
	var key int64
	for _, v := range local {
		key = key*5 + int64(v)
	}
	return key
}

// canDecomposeSuit tests whether a 9-length suit-local count vector
// decomposes entirely into runs and/or triplets.
func canDecomposeSuit(c [9]int) bool {
	idx := -1
	for i, v := range c {
		if v > 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return true
	}
	if c[idx] >= 3 {
		c2 := c
		c2[idx] -= 3
		if canDecomposeSuit(c2) {
			return true
		}
	}
	if idx <= 6 && c[idx+1] > 0 && c[idx+2] > 0 {
		c2 := c
		c2[idx]--
		c2[idx+1]--
		c2[idx+2]--
		if canDecomposeSuit(c2) {
			return true
		}
	}
	return false
}

// SetKind distinguishes the completed-set shapes a fu/yaku evaluation needs
// to tell apart.
type SetKind int

const (
	SetRun SetKind = iota
	SetTriplet
	SetQuad
)

// CompletedSet is one of the four (or more, counting kan bonus) sets or the
// pair forming a standard winning parse.
type CompletedSet struct {
	Kind SetKind
	// Base is the run's lowest kind, or the triplet/quad's kind.
	Base tile.Kind
	// Concealed is true for ankou/ankan, false for runs formed from a chi
	// call, minkou and minkan/kakan.
	Concealed bool
	// MeldKind carries the original meld shape for quads so fu can tell
	// ankan/minkan/kakan apart even though all three are SetQuad.
	MeldKind hand.MeldKind
	// FromMeld is true when this set came from an already-called meld
	// rather than the concealed decomposition (pinfu/sanankou care).
	FromMeld bool
}

// Parse is one successful standard-shape decomposition: the pair plus every
// completed set (concealed decomposition sets first, then called melds).
type Parse struct {
	Pair tile.Kind
	Sets []CompletedSet
}

// FirstStandardParse returns the first successful standard-shape
// decomposition of concealed plus melds, for yaku/fu evaluation. Per spec
// §4.1, only the first successful parse is retrieved; riichi mahjong scoring
// conventionally picks the highest-scoring parse among ties, which the yaku
// package does by trying every pair candidate and keeping the best.
func FirstStandardParse(concealed tile.Counts, melds []hand.Meld) (Parse, bool) {
	needed := 4 - len(melds)
	if needed < 0 {
		return Parse{}, false
	}
	expected := 3*needed + 2
	if concealed.Total() != expected {
		return Parse{}, false
	}
	for k := 0; k < tile.NumKinds; k++ {
		if concealed[k] < 2 {
			continue
		}
		rest := concealed
		rest[k] -= 2
		var sets []CompletedSet
		if ok := collectAll(rest, &sets); ok {
			for _, m := range melds {
				sets = append(sets, meldToSet(m))
			}
			return Parse{Pair: tile.Kind(k), Sets: sets}, true
		}
	}
	return Parse{}, false
}

// AllStandardParses returns every successful pair-choice decomposition,
// used by the yaku evaluator to pick the highest-scoring interpretation
// (e.g. choosing pinfu's ryanmen reading over an equally valid shanpon
// reading of the same tiles).
func AllStandardParses(concealed tile.Counts, melds []hand.Meld) []Parse {
	needed := 4 - len(melds)
	if needed < 0 {
		return nil
	}
	expected := 3*needed + 2
	if concealed.Total() != expected {
		return nil
	}
	var out []Parse
	for k := 0; k < tile.NumKinds; k++ {
		if concealed[k] < 2 {
			continue
		}
		rest := concealed
		rest[k] -= 2
		var allSets [][]CompletedSet
		collectAllVariants(rest, nil, &allSets)
		for _, sets := range allSets {
			full := append([]CompletedSet(nil), sets...)
			for _, m := range melds {
				full = append(full, meldToSet(m))
			}
			out = append(out, Parse{Pair: tile.Kind(k), Sets: full})
		}
	}
	return out
}

func meldToSet(m hand.Meld) CompletedSet {
	switch m.Kind {
	case hand.Chi:
		return CompletedSet{Kind: SetRun, Base: m.Tiles[0], Concealed: false, FromMeld: true}
	case hand.Pon:
		return CompletedSet{Kind: SetTriplet, Base: m.Tiles[0], Concealed: false, MeldKind: hand.Pon, FromMeld: true}
	case hand.Minkan:
		return CompletedSet{Kind: SetQuad, Base: m.Tiles[0], Concealed: false, MeldKind: hand.Minkan, FromMeld: true}
	case hand.Ankan:
		return CompletedSet{Kind: SetQuad, Base: m.Tiles[0], Concealed: true, MeldKind: hand.Ankan, FromMeld: true}
	case hand.Kakan:
		return CompletedSet{Kind: SetQuad, Base: m.Tiles[0], Concealed: false, MeldKind: hand.Kakan, FromMeld: true}
	default:
		return CompletedSet{}
	}
}

// collectAll finds one decomposition of c into triplets/runs, appending the
// sets found into out, honors handled separately from suits.
func collectAll(c tile.Counts, out *[]CompletedSet) bool {
	if !decomposableHonors(c) {
		return false
	}
	for k := int(tile.East); k <= int(tile.Red); k++ {
		for i := 0; i < c[k]/3; i++ {
			*out = append(*out, CompletedSet{Kind: SetTriplet, Base: tile.Kind(k), Concealed: true})
		}
	}
	for _, base := range []int{tile.ManMin, tile.PinMin, tile.SouMin} {
		var local [9]int
		for i := 0; i < 9; i++ {
			local[i] = c[base+i]
		}
		sets, ok := collectSuit(local, base)
		if !ok {
			return false
		}
		*out = append(*out, sets...)
	}
	return true
}

func collectSuit(c [9]int, base int) ([]CompletedSet, bool) {
	idx := -1
	for i, v := range c {
		if v > 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, true
	}
	if c[idx] >= 3 {
		c2 := c
		c2[idx] -= 3
		if rest, ok := collectSuit(c2, base); ok {
			return append([]CompletedSet{{Kind: SetTriplet, Base: tile.Kind(base + idx), Concealed: true}}, rest...), true
		}
	}
	if idx <= 6 && c[idx+1] > 0 && c[idx+2] > 0 {
		c2 := c
		c2[idx]--
		c2[idx+1]--
		c2[idx+2]--
		if rest, ok := collectSuit(c2, base); ok {
			return append([]CompletedSet{{Kind: SetRun, Base: tile.Kind(base + idx), Concealed: true}}, rest...), true
		}
	}
	return nil, false
}

// collectAllVariants enumerates every decomposition of c (honors are fixed
// so only the three suits branch), appending each full concealed-set list
// to out.
func collectAllVariants(c tile.Counts, prefix []CompletedSet, out *[][]CompletedSet) {
	if !decomposableHonors(c) {
		return
	}
	base := append([]CompletedSet(nil), prefix...)
	for k := int(tile.East); k <= int(tile.Red); k++ {
		for i := 0; i < c[k]/3; i++ {
			base = append(base, CompletedSet{Kind: SetTriplet, Base: tile.Kind(k), Concealed: true})
		}
	}
	var manOpts, pinOpts, souOpts [][]CompletedSet
	manOpts = suitVariants(c, tile.ManMin)
	pinOpts = suitVariants(c, tile.PinMin)
	souOpts = suitVariants(c, tile.SouMin)
	if len(manOpts) == 0 || len(pinOpts) == 0 || len(souOpts) == 0 {
		return
	}
	for _, mo := range manOpts {
		for _, po := range pinOpts {
			for _, so := range souOpts {
				full := append([]CompletedSet(nil), base...)
				full = append(full, mo...)
				full = append(full, po...)
				full = append(full, so...)
				*out = append(*out, full)
			}
		}
	}
}

func suitVariants(c tile.Counts, base int) [][]CompletedSet {
	var local [9]int
	for i := 0; i < 9; i++ {
		local[i] = c[base+i]
	}
	var out [][]CompletedSet
	var walk func(c [9]int, acc []CompletedSet)
	walk = func(c [9]int, acc []CompletedSet) {
		idx := -1
		for i, v := range c {
			if v > 0 {
				idx = i
				break
			}
		}
		if idx == -1 {
			cp := append([]CompletedSet(nil), acc...)
			out = append(out, cp)
			return
		}
		if c[idx] >= 3 {
			c2 := c
			c2[idx] -= 3
			next := make([]CompletedSet, len(acc), len(acc)+1)
			copy(next, acc)
			next = append(next, CompletedSet{Kind: SetTriplet, Base: tile.Kind(base + idx), Concealed: true})
			walk(c2, next)
		}
		if idx <= 6 && c[idx+1] > 0 && c[idx+2] > 0 {
			c2 := c
			c2[idx]--
			c2[idx+1]--
			c2[idx+2]--
			next := make([]CompletedSet, len(acc), len(acc)+1)
			copy(next, acc)
			next = append(next, CompletedSet{Kind: SetRun, Base: tile.Kind(base + idx), Concealed: true})
			walk(c2, next)
		}
	}
	walk(local, nil)
	return out
}
