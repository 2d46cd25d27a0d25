package agari

import (
	"testing"

	"mahjongcore/internal/mahjong/hand"
	"mahjongcore/internal/mahjong/tile"
)

func TestIsWinningStandardShape(t *testing.T) {
	// 123m 456p 789s 11z(EE) 22z(SS)... actually build a clean standard hand:
	// 123456789m 123p 22s
	kinds := []tile.Kind{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 18, 18}
	c := tile.CountsFromKinds(kinds)
	ok, shape := IsWinning(c, nil)
	if !ok || shape != Standard {
		t.Fatalf("IsWinning = %v, %v; want true, Standard", ok, shape)
	}
}

func TestIsWinningWithMelds(t *testing.T) {
	melds := []hand.Meld{
		{Kind: hand.Pon, Tiles: []tile.Kind{0, 0, 0}, From: 1},
		{Kind: hand.Chi, Tiles: []tile.Kind{9, 10, 11}, From: 3},
		{Kind: hand.Minkan, Tiles: []tile.Kind{tile.East, tile.East, tile.East, tile.East}, From: 2},
	}
	// one concealed set (123s) + pair (99p)
	concealed := tile.CountsFromKinds([]tile.Kind{18, 19, 20, 17, 17})
	ok, shape := IsWinning(concealed, melds)
	if !ok || shape != Standard {
		t.Fatalf("IsWinning with melds = %v, %v; want true, Standard", ok, shape)
	}
}

func TestIsChiitoitsuSevenDistinctPairs(t *testing.T) {
	kinds := []tile.Kind{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6}
	c := tile.CountsFromKinds(kinds)
	if !IsChiitoitsu(c) {
		t.Fatal("expected seven pairs to be recognized")
	}
	ok, shape := IsWinning(c, nil)
	if !ok || shape != Chiitoitsu {
		t.Fatalf("IsWinning = %v, %v; want true, Chiitoitsu", ok, shape)
	}
}

func TestIsChiitoitsuRejectsFourOfAKind(t *testing.T) {
	kinds := []tile.Kind{0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5}
	c := tile.CountsFromKinds(kinds)
	if IsChiitoitsu(c) {
		t.Fatal("four-of-a-kind must not count as two pairs")
	}
}

func TestIsKokushiThirteenOrphans(t *testing.T) {
	kinds := []tile.Kind{0, 8, 9, 17, 18, 26, tile.East, tile.South, tile.West, tile.North, tile.White, tile.Green, tile.Red, 0}
	c := tile.CountsFromKinds(kinds)
	if !IsKokushi(c) {
		t.Fatal("expected thirteen-orphans to be recognized")
	}
	ok, shape := IsWinning(c, nil)
	if !ok || shape != Kokushi {
		t.Fatalf("IsWinning = %v, %v; want true, Kokushi", ok, shape)
	}
}

func TestIsKokushiRejectsNonYaochuuTile(t *testing.T) {
	kinds := []tile.Kind{0, 8, 9, 17, 18, 26, tile.East, tile.South, tile.West, tile.North, tile.White, tile.Green, 1, 0}
	c := tile.CountsFromKinds(kinds)
	if IsKokushi(c) {
		t.Fatal("a non-yaochuu tile must reject kokushi")
	}
}

func TestWaitingKindsFindsSingleWait(t *testing.T) {
	// 123456789m 123p 2s waiting on 2s for the pair
	kinds := []tile.Kind{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 18}
	c := tile.CountsFromKinds(kinds)
	waits := WaitingKinds(c, nil)
	if len(waits) != 1 || waits[0] != 18 {
		t.Fatalf("WaitingKinds = %v, want [18]", waits)
	}
	if !IsTenpai(c, nil) {
		t.Fatal("expected tenpai")
	}
}

func TestFirstStandardParseFindsPairAndSets(t *testing.T) {
	kinds := []tile.Kind{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 18, 18}
	c := tile.CountsFromKinds(kinds)
	parse, ok := FirstStandardParse(c, nil)
	if !ok {
		t.Fatal("expected a successful parse")
	}
	if parse.Pair != 18 {
		t.Fatalf("parse.Pair = %v, want 18", parse.Pair)
	}
	if len(parse.Sets) != 4 {
		t.Fatalf("len(parse.Sets) = %d, want 4", len(parse.Sets))
	}
}

func TestAllStandardParsesFindsBothRunAndTripletReadings(t *testing.T) {
	// 111222333m (decomposes as three runs OR three triplets) + 44p pair + 456s
	kinds := []tile.Kind{
		0, 0, 0, 1, 1, 1, 2, 2, 2,
		12, 12,
		18, 19, 20,
	}
	c := tile.CountsFromKinds(kinds)
	parses := AllStandardParses(c, nil)
	if len(parses) < 2 {
		t.Fatalf("expected both the run and triplet readings of 111222333m, got %d parse(s)", len(parses))
	}
}
