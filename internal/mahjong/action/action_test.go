package action

import (
	"sort"
	"testing"

	"mahjongcore/internal/mahjong/hand"
	"mahjongcore/internal/mahjong/tile"
)

func kindsEqual(a, b []tile.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestChiCombinationsMiddleAndEdges(t *testing.T) {
	// hand holds 1m,2m,3m,4m; discard is 3m.
	counts := tile.CountsFromKinds([]tile.Kind{0, 1, 2, 3})
	combos := chiCombinations(counts, 2) // 3m
	var flat [][]tile.Kind
	for _, c := range combos {
		flat = append(flat, c)
	}
	want := [][]tile.Kind{{0, 1}, {1, 3}}
	if len(flat) != len(want) {
		t.Fatalf("got %d combos, want %d: %v", len(flat), len(want), flat)
	}
	for _, w := range want {
		found := false
		for _, f := range flat {
			if kindsEqual(append([]tile.Kind{}, f...), append([]tile.Kind{}, w...)) {
				found = true
			}
		}
		if !found {
			t.Errorf("expected combo %v not found in %v", w, flat)
		}
	}
}

func TestChiCombinationsHonorNeverChis(t *testing.T) {
	counts := tile.CountsFromKinds([]tile.Kind{tile.East, tile.East})
	if combos := chiCombinations(counts, tile.East); combos != nil {
		t.Fatalf("honor tiles must never form a chi, got %v", combos)
	}
}

func TestGenerateWaitClaimExcludesDiscarder(t *testing.T) {
	var snap Snapshot
	for i := range snap.Seats {
		snap.Seats[i].Hand = hand.New()
	}
	out := GenerateWaitClaim(snap, 0, 0, tile.Kind(0), false, false, nil)
	if out != nil {
		t.Fatalf("the discarder's own seat should never get a claim action set, got %v", out)
	}
}
