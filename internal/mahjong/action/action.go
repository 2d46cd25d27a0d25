// Package action implements the legal-action generator of spec §4.4,
// generalizing the teacher's opt_selector.go (calculateAvailableOperations,
// getPengOptions, getGangOptions) to the full action set and replacing its
// stubbed findChiCombinations with real left-neighbor run enumeration.
package action

import (
	"sort"

	"mahjongcore/internal/mahjong/agari"
	"mahjongcore/internal/mahjong/hand"
	"mahjongcore/internal/mahjong/tile"
	"mahjongcore/internal/mahjong/yaku"
)

// Kind mirrors the eleven action kinds of spec §4.4, using the same ordinal
// ordering as the original_source tensor-encoder schema (ACT_DISCARD..
// ACT_KYUSHU_KYUHAI) so the encoder package can reuse these values directly.
type Kind int

const (
	Discard Kind = iota
	Chi
	Pon
	Daiminkan
	Ankan
	Kakan
	Riichi
	Ron
	Tsumo
	Pass
	KyushuKyuhai
)

// Action is one candidate legal action, carrying the declared tile (if any)
// and the concealed tiles consumed to form a meld.
type Action struct {
	Kind    Kind
	Tile    tile.Kind   // discard kind, win tile, or kan tile; NoneKind for riichi/pass
	From    int         // seat the claimed tile came from; -1 if not a claim
	Consume []tile.Kind // concealed tiles consumed (chi: 2, pon: 2, daiminkan: 3)
}

// RiverTile is one discarded tile plus its flags, mirroring spec §3's
// river entry.
type RiverTile struct {
	Kind       tile.Kind
	Tsumogiri  bool
	RiichiTile bool
}

// SeatView is the read-only slice of one seat's state the generator needs.
type SeatView struct {
	Hand           *hand.Hand
	River          []RiverTile
	Score          int
	RiichiDeclared bool
	SeatWind       tile.Kind
}

// Snapshot is the read-only state slice shared by every generator call.
type Snapshot struct {
	Seats          [4]SeatView
	RoundWind      tile.Kind
	DealerSeat     int
	WallRemaining  int
	DoraIndicators []tile.Kind
}

func (s Snapshot) yakuCtx(seat int, tsumo, riichi, ippatsu, haitei, houtei, rinshan, chankan, firstTurn, noCalls bool, winTile tile.Kind, ura []tile.Kind) yaku.Context {
	return yaku.Context{
		IsDealer: seat == s.DealerSeat, RoundWind: s.RoundWind, SeatWind: s.Seats[seat].SeatWind,
		Tsumo: tsumo, Riichi: riichi, Ippatsu: ippatsu, Haitei: haitei, Houtei: houtei,
		Rinshan: rinshan, Chankan: chankan, FirstTurn: firstTurn, NoCallsYet: noCalls,
		DoraIndicators: s.DoraIndicators, UraDoraIndicators: ura, WinTile: winTile,
	}
}

// GenerateWaitAct enumerates every action available to the current actor
// immediately after a draw (or right after a call, for kakan/ankan),
// per spec §4.4's first bullet.
func GenerateWaitAct(snap Snapshot, seat int, drawn tile.Kind, forbidden map[tile.Kind]bool, ippatsu, haitei, rinshan, firstTurnUninterrupted, noCallsYet bool) []Action {
	sv := snap.Seats[seat]
	h := sv.Hand
	var out []Action

	for k := 0; k < tile.NumKinds; k++ {
		if h.Counts[k] == 0 {
			continue
		}
		if sv.RiichiDeclared && forbidden[tile.Kind(k)] {
			continue
		}
		out = append(out, Action{Kind: Discard, Tile: tile.Kind(k), From: -1})
	}

	if h.Closed() {
		for k := 0; k < tile.NumKinds; k++ {
			if h.Counts[k] == 4 {
				if sv.RiichiDeclared {
					// Ankan after riichi is only permitted when it does not
					// change the wait: compare the tenpai wait set held
					// just before drawing the fourth tile (concealed count
					// with only 3 copies of k) against the wait set after
					// committing the ankan (the fourth copy moved out of
					// the concealed count and into a new meld).
					before := h.Counts
					before[k] = 3
					beforeWaits := agari.WaitingKinds(before, h.Melds)

					after := h.Counts
					after[k] = 0
					afterMelds := append(append([]hand.Meld(nil), h.Melds...), hand.Meld{
						Kind: hand.Ankan, From: -1,
						Tiles: []tile.Kind{tile.Kind(k), tile.Kind(k), tile.Kind(k), tile.Kind(k)},
					})
					afterWaits := agari.WaitingKinds(after, afterMelds)

					if !sameWaitSet(beforeWaits, afterWaits) {
						continue
					}
				}
				out = append(out, Action{Kind: Ankan, Tile: tile.Kind(k), From: -1, Consume: []tile.Kind{tile.Kind(k), tile.Kind(k), tile.Kind(k), tile.Kind(k)}})
			}
		}
	}
	for _, m := range h.Melds {
		if m.Kind == hand.Pon && h.Counts[m.TripletKind()] > 0 {
			out = append(out, Action{Kind: Kakan, Tile: m.TripletKind(), From: -1})
		}
	}

	if ok, _ := agari.IsWinning(h.Counts, h.Melds); ok {
		ctx := snap.yakuCtx(seat, true, sv.RiichiDeclared, ippatsu, haitei, false, rinshan, false, firstTurnUninterrupted, noCallsYet, drawn, nil)
		if res, err := yaku.Evaluate(h.Counts, h.Melds, h.Closed(), ctx); err == nil && (res.Han > 0 || res.IsYakuman) {
			out = append(out, Action{Kind: Tsumo, Tile: drawn, From: -1})
		}
	}

	if h.Closed() && sv.Score >= 1000 && snap.WallRemaining >= 4 && !sv.RiichiDeclared {
		for k := 0; k < tile.NumKinds; k++ {
			if h.Counts[k] == 0 {
				continue
			}
			trial := h.Counts
			trial[k]--
			if agari.IsTenpai(trial, h.Melds) {
				out = append(out, Action{Kind: Riichi, Tile: tile.NoneKind, From: -1})
				break
			}
		}
	}

	if firstTurnUninterrupted {
		yaochuu := 0
		seen := map[tile.Kind]bool{}
		for k := 0; k < tile.NumKinds; k++ {
			if h.Counts[k] > 0 && tile.Kind(k).IsTerminalOrHonor() && !seen[tile.Kind(k)] {
				yaochuu++
				seen[tile.Kind(k)] = true
			}
		}
		if yaochuu >= 9 {
			out = append(out, Action{Kind: KyushuKyuhai, From: -1})
		}
	}

	return out
}

// sameWaitSet reports whether two wait-kind lists from agari.WaitingKinds
// describe the same wait. WaitingKinds always walks kinds in ascending
// order, so the results are already sorted and can be compared directly.
func sameWaitSet(a, b []tile.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// GenerateWaitClaim enumerates rival reactions to an open discard, per
// spec §4.4's second bullet. discarder is the seat who just discarded;
// seat is the rival seat being asked.
func GenerateWaitClaim(snap Snapshot, discarder, seat int, discardTile tile.Kind, furiten bool, houtei bool, ura []tile.Kind) []Action {
	if seat == discarder {
		return nil
	}
	sv := snap.Seats[seat]
	h := sv.Hand
	out := []Action{{Kind: Pass, Tile: tile.NoneKind, From: -1}}

	if h.Counts[discardTile] >= 2 {
		out = append(out, Action{Kind: Pon, From: discarder, Tile: discardTile, Consume: []tile.Kind{discardTile, discardTile}})
	}
	if h.Counts[discardTile] >= 3 {
		out = append(out, Action{Kind: Daiminkan, From: discarder, Tile: discardTile, Consume: []tile.Kind{discardTile, discardTile, discardTile}})
	}
	if (seat-discarder+4)%4 == 1 {
		for _, combo := range chiCombinations(h.Counts, discardTile) {
			out = append(out, Action{Kind: Chi, From: discarder, Tile: discardTile, Consume: combo})
		}
	}

	if !furiten {
		trial := h.Counts
		trial[discardTile]++
		if ok, _ := agari.IsWinning(trial, h.Melds); ok {
			ctx := snap.yakuCtx(seat, false, sv.RiichiDeclared, false, false, houtei, false, false, false, false, discardTile, ura)
			if res, err := yaku.Evaluate(trial, h.Melds, h.Closed(), ctx); err == nil && (res.Han > 0 || res.IsYakuman) {
				out = append(out, Action{Kind: Ron, From: discarder, Tile: discardTile})
			}
		}
	}

	return out
}

// chiCombinations enumerates the concealed-tile pairs that can form a run
// with discardTile, replacing the teacher's stubbed findChiCombinations.
func chiCombinations(counts tile.Counts, discard tile.Kind) [][]tile.Kind {
	if !discard.IsNumbered() {
		return nil
	}
	base := discard.SuitBase()
	n := discard.Number()
	var combos [][]tile.Kind
	try := func(a, b int) {
		if a < 1 || b < 1 || a > 9 || b > 9 {
			return
		}
		ak, bk := tile.Kind(base+a-1), tile.Kind(base+b-1)
		if ak == discard || bk == discard {
			return
		}
		need := map[tile.Kind]int{ak: 0, bk: 0}
		need[ak]++
		need[bk]++
		ok := true
		for k, c := range need {
			if counts[k] < c {
				ok = false
			}
		}
		if ok {
			pair := []tile.Kind{ak, bk}
			sort.Slice(pair, func(i, j int) bool { return pair[i] < pair[j] })
			combos = append(combos, pair)
		}
	}
	try(n-2, n-1) // discard completes the top of the run
	try(n-1, n+1) // discard is the middle (kanchan shape pre-call)
	try(n+1, n+2) // discard completes the bottom of the run
	return combos
}
