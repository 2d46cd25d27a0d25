package hand

import (
	"testing"

	"mahjongcore/internal/mahjong/tile"
)

func TestAddAndRemoveTileKeepsCountsInSync(t *testing.T) {
	h := New()
	h.AddTile(tile.ID(0)) // 1m
	h.AddTile(tile.ID(4)) // 2m
	if h.Counts[0] != 1 || h.Counts[1] != 1 {
		t.Fatalf("unexpected counts after AddTile: %v", h.Counts)
	}
	if ok := h.RemoveTile(tile.ID(0)); !ok {
		t.Fatal("RemoveTile should find the tile it just added")
	}
	if h.Counts[0] != 0 {
		t.Fatalf("Counts not decremented: %v", h.Counts)
	}
	if ok := h.RemoveTile(tile.ID(99)); ok {
		t.Fatal("RemoveTile should fail for an absent id")
	}
}

func TestRemoveKindPicksAnyMatchingCopy(t *testing.T) {
	h := New()
	h.AddTile(tile.ID(0))
	h.AddTile(tile.ID(1))
	id, ok := h.RemoveKind(0)
	if !ok {
		t.Fatal("RemoveKind should find kind 0")
	}
	if tile.KindOf(id) != 0 {
		t.Fatalf("removed the wrong kind: %v", id)
	}
	if h.Counts[0] != 1 {
		t.Fatalf("Counts not decremented: %v", h.Counts)
	}
	if _, ok := h.RemoveKind(5); ok {
		t.Fatal("RemoveKind should fail for an absent kind")
	}
}

func TestClosedIsFalseWithAnyOpenMeld(t *testing.T) {
	h := New()
	if !h.Closed() {
		t.Fatal("a fresh hand should be closed")
	}
	h.Melds = append(h.Melds, Meld{Kind: Ankan, Tiles: []tile.Kind{0, 0, 0, 0}, From: -1})
	if !h.Closed() {
		t.Fatal("ankan alone must not open the hand")
	}
	h.Melds = append(h.Melds, Meld{Kind: Pon, Tiles: []tile.Kind{1, 1, 1}, From: 2})
	if h.Closed() {
		t.Fatal("a pon should open the hand")
	}
}

func TestTotalTileCountCountsMeldsAsThree(t *testing.T) {
	h := New()
	for i := 0; i < 10; i++ {
		h.AddTile(tile.ID(i))
	}
	h.Melds = append(h.Melds, Meld{Kind: Minkan, Tiles: []tile.Kind{5, 5, 5, 5}, From: 1})
	if got := h.TotalTileCount(); got != 13 {
		t.Fatalf("TotalTileCount() = %d, want 13 (10 concealed + 3 for the kan slot)", got)
	}
}

func TestFullCountsIncludesMeldTiles(t *testing.T) {
	h := New()
	h.AddTile(tile.ID(0))
	h.Melds = append(h.Melds, Meld{Kind: Pon, Tiles: []tile.Kind{3, 3, 3}, From: 1})
	full := h.FullCounts()
	if full[0] != 1 {
		t.Fatalf("concealed tile missing from FullCounts: %v", full)
	}
	if full[3] != 3 {
		t.Fatalf("meld tiles missing from FullCounts: %v", full)
	}
	if h.Counts[3] != 0 {
		t.Fatal("FullCounts must not mutate the concealed Counts")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	h := New()
	h.AddTile(tile.ID(0))
	h.Melds = append(h.Melds, Meld{Kind: Chi, Tiles: []tile.Kind{0, 1, 2}, From: 3})

	cp := h.Clone()
	cp.AddTile(tile.ID(4))
	cp.Melds[0].Tiles[0] = 9

	if len(h.Tiles) != 1 {
		t.Fatalf("mutating the clone changed the original's tiles: %v", h.Tiles)
	}
	if h.Melds[0].Tiles[0] != 0 {
		t.Fatalf("mutating the clone's meld tiles changed the original: %v", h.Melds[0].Tiles)
	}
}
