// Package hand holds the concealed-hand, meld and seat containers, adapted
// from the teacher's runtime/game/engines/mahjong/material.go (Tile, Meld)
// and player_image.go (PlayerImage) into a host-agnostic, network-free shape.
package hand

import "mahjongcore/internal/mahjong/tile"

// MeldKind enumerates the five meld shapes spec §3 recognizes.
type MeldKind int

const (
	Chi MeldKind = iota
	Pon
	Minkan // open quad, called from a discard
	Ankan  // concealed quad
	Kakan  // added quad (pon upgraded with the fourth tile)
)

func (k MeldKind) String() string {
	switch k {
	case Chi:
		return "chi"
	case Pon:
		return "pon"
	case Minkan:
		return "minkan"
	case Ankan:
		return "ankan"
	case Kakan:
		return "kakan"
	default:
		return "?"
	}
}

// Meld is a called or concealed set of three or four tiles.
type Meld struct {
	Kind  MeldKind
	Tiles []tile.Kind // 3 tiles for chi/pon, 4 for the kan variants
	// From is the seat the called tile came from; -1 for ankan. A kakan keeps
	// the From of the pon it upgrades (the seat that discarded the pon's
	// called tile), not the seat adding the fourth tile.
	From int
	// CalledTile is the kind that was claimed from another seat (chi/pon/
	// minkan); zero value for ankan; for kakan it is the original pon's
	// called tile, not the added tile.
	CalledTile tile.Kind
}

// Opened reports whether the meld counts as an open meld for closed-only
// yaku and riichi-eligibility checks. Ankan is concealed.
func (m Meld) Opened() bool { return m.Kind != Ankan }

// TripletKind returns the triplet/quad kind for Pon/Minkan/Ankan/Kakan melds.
func (m Meld) TripletKind() tile.Kind {
	if len(m.Tiles) == 0 {
		return tile.NoneKind
	}
	return m.Tiles[0]
}

// IsQuad reports a four-tile meld (any kan variant).
func (m Meld) IsQuad() bool { return m.Kind == Minkan || m.Kind == Ankan || m.Kind == Kakan }

// Hand is one seat's concealed tiles plus its open/closed melds.
type Hand struct {
	Counts tile.Counts // concealed kind multiset
	Tiles  []tile.ID   // concealed physical tiles, for exact red-five tracking
	Melds  []Meld
}

// New builds an empty hand.
func New() *Hand {
	return &Hand{}
}

// Closed reports whether the hand has no open melds (ankan does not open a
// hand, per spec §9 "closed-only yaku check |melds|==0 OR all melds are
// ankan").
func (h *Hand) Closed() bool {
	for _, m := range h.Melds {
		if m.Opened() {
			return false
		}
	}
	return true
}

// AddTile adds a drawn or dealt physical tile to the concealed hand.
func (h *Hand) AddTile(id tile.ID) {
	h.Tiles = append(h.Tiles, id)
	h.Counts[tile.KindOf(id)]++
}

// RemoveTile removes one physical tile by id; returns false if absent.
func (h *Hand) RemoveTile(id tile.ID) bool {
	for i, t := range h.Tiles {
		if t == id {
			h.Tiles = append(h.Tiles[:i], h.Tiles[i+1:]...)
			h.Counts[tile.KindOf(id)]--
			return true
		}
	}
	return false
}

// RemoveKind removes one physical tile of the given kind (the first held
// copy when several are held), used when the exact id does not matter
// (e.g. forming a meld from claimed tiles).
func (h *Hand) RemoveKind(k tile.Kind) (tile.ID, bool) {
	for i, t := range h.Tiles {
		if tile.KindOf(t) == k {
			h.Tiles = append(h.Tiles[:i], h.Tiles[i+1:]...)
			h.Counts[k]--
			return t, true
		}
	}
	return 0, false
}

// TotalTileCount returns concealed tiles plus 3 per meld, the invariant
// spec §3 requires to equal 13 (between turns) or 14 (mid-turn), counting
// each kan as occupying 3 "slots" (the 4th tile is a bonus replacement
// drawn from the dead wall and does not inflate the hand-size invariant).
func (h *Hand) TotalTileCount() int {
	n := len(h.Tiles)
	for range h.Melds {
		n += 3
	}
	return n
}

// FullCounts returns the 34-vector of concealed counts plus every meld tile
// (each kan contributes all 4 of its tiles). The agari detector and the yaku
// evaluator do not take this vector: they take Counts plus Melds.
func (h *Hand) FullCounts() tile.Counts {
	c := h.Counts
	for _, m := range h.Melds {
		for _, k := range m.Tiles {
			c[k]++
		}
	}
	return c
}

// Clone returns a deep copy.
func (h *Hand) Clone() *Hand {
	cp := &Hand{Counts: h.Counts}
	cp.Tiles = append([]tile.ID(nil), h.Tiles...)
	cp.Melds = make([]Meld, len(h.Melds))
	for i, m := range h.Melds {
		cp.Melds[i] = Meld{Kind: m.Kind, From: m.From, CalledTile: m.CalledTile}
		cp.Melds[i].Tiles = append([]tile.Kind(nil), m.Tiles...)
	}
	return cp
}
