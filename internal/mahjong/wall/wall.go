// Package wall generates the deterministic 136-tile wall and dead wall,
// grounded on the teacher's DeckManager/Wang types in
// runtime/game/engines/mahjong/material.go, generalized from that struct's
// server-room lifecycle into a pure seed -> wall function per spec §5
// ("the wall digest + salt expose the wall as a deterministic sequence
// given a seed").
package wall

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math/rand"

	"mahjongcore/internal/mahjong/tile"
)

const (
	liveWallSize = 122 // 136 - 14 dead wall tiles
	deadWallSize = 14
	maxKanTiles  = 4
	maxDora      = 5
)

// Wall is the deterministic tile sequence for one kyoku.
type Wall struct {
	seed   int64
	salt   string
	tiles  []tile.ID // full 136, shuffled
	drawn  int       // live-wall tiles drawn so far
	kanIdx int       // rinshan tiles drawn from the dead wall
	doraRevealed    int
	uraDoraRevealed int
}

// New builds a fresh, shuffled wall for the given seed. salt additionally
// perturbs the shuffle so the same seed can produce distinct kyoku walls
// across a match (kyoku index is a natural salt value).
func New(seed int64, salt string) *Wall {
	ids := make([]tile.ID, 136)
	for i := range ids {
		ids[i] = tile.ID(i)
	}
	r := rand.New(rand.NewSource(seed ^ saltToInt64(salt)))
	r.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return &Wall{seed: seed, salt: salt, tiles: ids}
}

func saltToInt64(salt string) int64 {
	h := sha256.Sum256([]byte(salt))
	return int64(binary.LittleEndian.Uint64(h[:8]))
}

// Digest returns a hex digest of the realized wall order, so offline MJAI
// log replay can verify the stream without re-seeding (spec §9).
func (w *Wall) Digest() string {
	h := sha256.New()
	buf := make([]byte, 2)
	for _, id := range w.tiles {
		binary.LittleEndian.PutUint16(buf, uint16(id))
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (w *Wall) Salt() string { return w.salt }
func (w *Wall) Seed() int64  { return w.seed }

// Remaining returns the number of undrawn live-wall tiles.
func (w *Wall) Remaining() int {
	return liveWallSize - w.drawn
}

// Draw takes the next live-wall tile. Returns false if the live wall is
// exhausted (exhaustive draw condition).
func (w *Wall) Draw() (tile.ID, bool) {
	if w.drawn >= liveWallSize {
		return 0, false
	}
	id := w.tiles[w.drawn]
	w.drawn++
	return id, true
}

// Deal returns the initial 13-tile hand for one of the four seats,
// interleaved the conventional way (4-4-4-1 in real play; simplified here
// to a direct contiguous slice per seat since shuffle already randomizes
// order and the engine only needs the resulting multiset).
func (w *Wall) Deal(seat int) []tile.ID {
	start := seat * 13
	return append([]tile.ID(nil), w.tiles[start:start+13]...)
}

func (w *Wall) dealEnd() int { return 4 * 13 }

// StartLiveDraws must be called once after all four Deal calls, advancing
// the live-wall cursor past the dealt tiles.
func (w *Wall) StartLiveDraws() { w.drawn = w.dealEnd() }

// deadWallBase is the first index of the 14-tile dead wall.
func (w *Wall) deadWallBase() int { return 136 - deadWallSize }

// DrawRinshan draws a replacement tile from the dead wall after a kan.
func (w *Wall) DrawRinshan() (tile.ID, bool) {
	if w.kanIdx >= maxKanTiles {
		return 0, false
	}
	id := w.tiles[w.deadWallBase()+w.kanIdx]
	w.kanIdx++
	return id, true
}

// RevealDoraIndicator reveals the next dora indicator tile, returning its
// kind. Up to 5 (one base + up to 4 kan-dora).
func (w *Wall) RevealDoraIndicator() (tile.Kind, bool) {
	if w.doraRevealed >= maxDora {
		return 0, false
	}
	id := w.tiles[w.deadWallBase()+maxKanTiles+w.doraRevealed]
	w.doraRevealed++
	return tile.KindOf(id), true
}

// RevealUraDoraIndicator reveals the next ura-dora indicator (riichi wins
// only).
func (w *Wall) RevealUraDoraIndicator() (tile.Kind, bool) {
	if w.uraDoraRevealed >= maxDora {
		return 0, false
	}
	id := w.tiles[w.deadWallBase()+maxKanTiles+maxDora+w.uraDoraRevealed]
	w.uraDoraRevealed++
	return tile.KindOf(id), true
}

// RevealedDora returns every dora indicator kind revealed so far.
func (w *Wall) RevealedDora() []tile.Kind {
	base := w.deadWallBase() + maxKanTiles
	out := make([]tile.Kind, w.doraRevealed)
	for i := 0; i < w.doraRevealed; i++ {
		out[i] = tile.KindOf(w.tiles[base+i])
	}
	return out
}

// RevealedUraDora returns every ura-dora indicator kind revealed so far.
func (w *Wall) RevealedUraDora() []tile.Kind {
	base := w.deadWallBase() + maxKanTiles + maxDora
	out := make([]tile.Kind, w.uraDoraRevealed)
	for i := 0; i < w.uraDoraRevealed; i++ {
		out[i] = tile.KindOf(w.tiles[base+i])
	}
	return out
}

// CanKan reports whether another kan is still possible this kyoku (the dead
// wall always keeps 14 tiles by drawing one more from the live wall's tail
// per kan in full table rules; this engine instead fixes the dead wall and
// simply caps total kans at four, matching spec §4.5's CheckFourKanDraw
// abortive-draw condition in the state machine layer).
func (w *Wall) CanKan() bool { return w.kanIdx < maxKanTiles }
