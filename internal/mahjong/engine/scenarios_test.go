package engine

import (
	"testing"

	"mahjongcore/internal/mahjong/agari"
	"mahjongcore/internal/mahjong/score"
	"mahjongcore/internal/mahjong/tile"
	"mahjongcore/internal/mahjong/yaku"
)

// TestScenarioPinfuTsumoBaseline is seed scenario 1: a pinfu hand won by
// tsumo, closed, non-dealer. Expected han >= 2 (pinfu + tsumo), fu = 20,
// oya pays 700, ko pays 400.
func TestScenarioPinfuTsumoBaseline(t *testing.T) {
	// 234m (ryanmen 23 completed by the 4m win tile), 567m, 789p, 123s, 11p
	// pair (not a yakuhai tile): a clean pinfu shape.
	kinds := []tile.Kind{
		1, 2, 3, // 234m, win tile is 4m (kind 3)
		4, 5, 6, // 567m
		15, 16, 17, // 789p
		18, 19, 20, // 123s
		9, 9, // 11p pair
	}
	c := tile.CountsFromKinds(kinds)
	ctx := yaku.Context{
		Tsumo: true, RoundWind: tile.East, SeatWind: tile.East, WinTile: 3,
	}
	res, err := yaku.Evaluate(c, nil, true, ctx)
	if err != nil {
		t.Fatalf("Evaluate returned an error: %v", err)
	}
	if res.Han < 2 {
		t.Fatalf("Han = %d, want >= 2", res.Han)
	}
	if res.Fu != 20 {
		t.Fatalf("Fu = %d, want 20 (pinfu tsumo)", res.Fu)
	}
	payout := score.Calculate(res.Han, res.Fu, false, true)
	if payout.DealerPays != 700 || payout.KoPays != 400 {
		t.Fatalf("payout = %+v, want DealerPays=700 KoPays=400", payout)
	}
}

// TestScenarioTsuuiisouYakuman is seed scenario 2: all-honors hand, ko tsumo
// total 32000.
func TestScenarioTsuuiisouYakuman(t *testing.T) {
	// Two dragon triplets and two wind triplets plus a dragon pair: honors
	// only (tsuuiisou) without also forming daisangen (needs 3 dragons) or
	// shousuushii/daisuushii (need 3-4 wind triplets), so this is a clean
	// single-yakuman reading for the total check below.
	kinds := []tile.Kind{
		tile.White, tile.White, tile.White,
		tile.Green, tile.Green, tile.Green,
		tile.East, tile.East, tile.East,
		tile.South, tile.South, tile.South,
		tile.Red, tile.Red,
	}
	c := tile.CountsFromKinds(kinds)
	res, err := yaku.Evaluate(c, nil, true, yaku.Context{WinTile: tile.Red})
	if err != nil {
		t.Fatalf("Evaluate returned an error: %v", err)
	}
	if res.Han < 13 || !res.IsYakuman {
		t.Fatalf("expected a yakuman with han >= 13, got %+v", res)
	}
	payout := score.YakumanPayout(res.YakumanUnits, false, true)
	if payout.Total != 32000 {
		t.Fatalf("YakumanPayout total = %d, want 32000", payout.Total)
	}
}

// TestScenarioDaisuushiiDoubleYakuman is seed scenario 3: EEE SSS WWW NNN +
// pair, expected han >= 26 (double yakuman).
func TestScenarioDaisuushiiDoubleYakuman(t *testing.T) {
	kinds := []tile.Kind{
		tile.East, tile.East, tile.East,
		tile.South, tile.South, tile.South,
		tile.West, tile.West, tile.West,
		tile.North, tile.North, tile.North,
		tile.White, tile.White,
	}
	c := tile.CountsFromKinds(kinds)
	res, err := yaku.Evaluate(c, nil, true, yaku.Context{WinTile: tile.North})
	if err != nil {
		t.Fatalf("Evaluate returned an error: %v", err)
	}
	if res.Han < 26 {
		t.Fatalf("Han = %d, want >= 26 for daisuushii", res.Han)
	}
}

// TestScenarioScoreRounding is seed scenario 4: calculate(4, 30, false, true)
// -> oya pays 3900, ko pays 2000 each, total 7900.
func TestScenarioScoreRounding(t *testing.T) {
	payout := score.Calculate(4, 30, false, true)
	if payout.DealerPays != 3900 {
		t.Errorf("DealerPays = %d, want 3900", payout.DealerPays)
	}
	if payout.KoPays != 2000 {
		t.Errorf("KoPays = %d, want 2000", payout.KoPays)
	}
	if payout.Total != 7900 {
		t.Errorf("Total = %d, want 7900", payout.Total)
	}
}

// TestScenarioSuddenDeathTransition is seed scenario 5: game type
// EastSouthSuddenDeath; South 4 exhaustive draw at all-25000 advances to
// West 1 without ending, but the following West 1 draw with a seat at
// 31000 ends the game.
func TestScenarioSuddenDeathTransition(t *testing.T) {
	e := New(EastSouthSuddenDeath, 1)
	e.RoundWind = tile.South
	e.KyokuIdx = 3 // South 4
	e.DealerSeat = 3
	for i := range e.Seats {
		e.Seats[i].Score = 25000
	}

	e.advanceKyoku(false)

	if e.Ended {
		t.Fatal("all seats tied at 25000 should not end a sudden-death match at West 1")
	}
	if e.RoundWind != tile.West || e.KyokuIdx != 0 {
		t.Fatalf("expected West 1, got RoundWind=%v KyokuIdx=%d", e.RoundWind, e.KyokuIdx)
	}
	if e.DealerSeat != 0 {
		t.Fatalf("DealerSeat = %d, want 0", e.DealerSeat)
	}

	e.Seats[0].Score, e.Seats[1].Score, e.Seats[2].Score, e.Seats[3].Score = 31000, 25000, 24000, 20000
	e.advanceKyoku(false)

	if !e.Ended {
		t.Fatal("a seat crossing 30000 at/after the configured last kyoku should end a sudden-death match")
	}
}

// TestScenarioKokushiOnWait is seed scenario 6: thirteen distinct
// terminal/honor kinds plus one duplicate is a winning kokushi shape.
func TestScenarioKokushiOnWait(t *testing.T) {
	kinds := []tile.Kind{
		0, 8, 9, 17, 18, 26,
		tile.East, tile.South, tile.West, tile.North,
		tile.White, tile.Green, tile.Red, 0,
	}
	c := tile.CountsFromKinds(kinds)
	ok, shape := agari.IsWinning(c, nil)
	if !ok || shape != agari.Kokushi {
		t.Fatalf("IsWinning = %v, %v; want true, Kokushi", ok, shape)
	}
	res, err := yaku.Evaluate(c, nil, true, yaku.Context{WinTile: tile.East})
	if err != nil {
		t.Fatalf("Evaluate returned an error: %v", err)
	}
	if res.Han != 13 {
		t.Fatalf("Han = %d, want 13", res.Han)
	}
}
