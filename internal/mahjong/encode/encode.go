// Package encode implements the tensor encoder of spec §4.6, ported
// algorithmically (not line-by-line) from original_source's
// y47_encode.rs/y47_schema.rs: a read-only snapshot of one viewpoint seat
// is flattened into seven fixed-shape arrays consumable by a neural policy.
//
// Melds and river entries are tracked by this module at tile.Kind
// granularity rather than the original's per-physical-tile-id granularity
// (see DESIGN.md); each Kind is encoded using its canonical non-red
// representative id (kind*4). Only the concealed hand, which the engine
// already tracks by physical tile.ID, preserves true red-five identity.
package encode

import (
	"fmt"
	"sort"

	"mahjongcore/internal/mahjong/action"
	"mahjongcore/internal/mahjong/engine"
	"mahjongcore/internal/mahjong/tile"
)

// Dimensions mirror y47_schema.rs's MAX_STATE_TOKENS/MAX_ACTIONS/etc.
const (
	MaxStateTokens  = 256
	MaxActions      = 128
	MaxConsumeTiles = 4
	TokenMainDim    = 7
	MaxHandTiles    = 14
	MaxRiver        = 30
	MaxMelds        = 4
	MaxMeldTiles    = 4
	MaxDora         = 5

	TIDNone = int64(136)
)

// Token type codes, matching TOK_CLS..TOK_RIVER.
const (
	TokCLS = iota
	TokRound
	TokScore
	TokDora
	TokDrawn
	TokHand
	TokMeldTile
	TokRiver
)

// Token-main column indices.
const (
	ColType = iota
	ColSeat
	ColPos
	ColPos2
	ColTile
	ColAux1
	ColAux2
)

// Action-main column indices.
const (
	ActColKind = iota
	ActColTile
	ActColFrom
	ActColConsumeLen
	ActColHasTile
	ActColHasFrom
)

// Turn is the fixed-shape encoded snapshot spec §4.6 defines.
type Turn struct {
	TokenMain         [MaxStateTokens][TokenMainDim]int64
	TokenScalar       [MaxStateTokens][3]float32
	TokenMask         [MaxStateTokens]bool
	ActionMain        [MaxActions][6]int64
	ActionConsume     [MaxActions][MaxConsumeTiles]int64
	ActionConsumeMask [MaxActions][MaxConsumeTiles]bool
	LegalActionMask   [MaxActions]bool
}

// OverflowError reports an encoder capacity breach, spec §7's KindOverflow
// class: it must fail loudly, never silently truncate.
type OverflowError struct{ Msg string }

func (e *OverflowError) Error() string { return e.Msg }

func overflow(format string, a ...any) error {
	return &OverflowError{fmt.Sprintf(format, a...)}
}

// absToRel computes (seat - me) mod 4, spec §9's "always compute relative
// seats at the encoder boundary" rule.
func absToRel(seatAbs, me int) int64 {
	return int64(((seatAbs-me)%4 + 4) % 4)
}

func kindTID(k tile.Kind) int64 {
	if k == tile.NoneKind {
		return TIDNone
	}
	return int64(k) * 4
}

type tokenCursor struct {
	turn *Turn
	cur  int
}

func (c *tokenCursor) push() (int, error) {
	if c.cur >= MaxStateTokens {
		return 0, overflow("too many state tokens: %d > MAX_STATE_TOKENS=%d", c.cur+1, MaxStateTokens)
	}
	idx := c.cur
	c.turn.TokenMask[idx] = true
	c.cur++
	return idx, nil
}

// Encode builds the seven-array Turn for viewpoint seat me, from the
// engine's current state and its legal actions.
func Encode(e *engine.Env, me int, actions []action.Action) (Turn, error) {
	var turn Turn
	if err := encodeObservation(e, me, &turn); err != nil {
		return Turn{}, err
	}
	if err := encodeActions(e, me, actions, &turn); err != nil {
		return Turn{}, err
	}
	return turn, nil
}

func encodeObservation(e *engine.Env, me int, turn *Turn) error {
	c := &tokenCursor{turn: turn}

	i, err := c.push()
	if err != nil {
		return err
	}
	turn.TokenMain[i][ColType] = TokCLS
	turn.TokenMain[i][ColTile] = TIDNone

	i, err = c.push()
	if err != nil {
		return err
	}
	turn.TokenMain[i][ColType] = TokRound
	turn.TokenMain[i][ColTile] = TIDNone
	turn.TokenMain[i][ColAux1] = int64(e.RoundWind)
	turn.TokenMain[i][ColAux2] = absToRel(e.DealerSeat, me)
	turn.TokenScalar[i][0] = float32(e.Honba) / 20.0
	turn.TokenScalar[i][1] = float32(e.Kyotaku) / 20.0
	turn.TokenScalar[i][2] = float32(e.KyokuIdx) / 16.0

	scores := e.Scores()
	for p := 0; p < 4; p++ {
		i, err = c.push()
		if err != nil {
			return err
		}
		turn.TokenMain[i][ColType] = TokScore
		turn.TokenMain[i][ColSeat] = absToRel(p, me)
		turn.TokenMain[i][ColTile] = TIDNone
		var flags int64
		if e.Seats[p].RiichiDeclared {
			flags |= 1
		}
		turn.TokenMain[i][ColAux1] = flags
		turn.TokenMain[i][ColAux2] = int64(len(e.Seats[p].Hand.Melds))
		turn.TokenScalar[i][0] = (float32(scores[p]) - 25000.0) / 100000.0
	}

	dora := e.Wall.RevealedDora()
	if len(dora) > MaxDora {
		return overflow("too many dora indicators: %d > MAX_DORA=%d", len(dora), MaxDora)
	}
	for d, k := range dora {
		i, err = c.push()
		if err != nil {
			return err
		}
		turn.TokenMain[i][ColType] = TokDora
		turn.TokenMain[i][ColTile] = kindTID(k)
		turn.TokenMain[i][ColAux1] = int64(d)
	}

	var drawnTile int64 = TIDNone
	if me == e.ActiveSeat && e.Phase == engine.WaitAct {
		hand := e.Seats[me].Hand
		if len(hand.Tiles) > 0 {
			drawnTile = int64(hand.Tiles[len(hand.Tiles)-1])
		}
	}
	i, err = c.push()
	if err != nil {
		return err
	}
	turn.TokenMain[i][ColType] = TokDrawn
	turn.TokenMain[i][ColTile] = drawnTile

	handIDs := append([]int{}, intIDs(e.Seats[me].Hand.Tiles)...)
	if len(handIDs) > MaxHandTiles {
		return overflow("hand too long: %d > MAX_HAND_TIDS=%d", len(handIDs), MaxHandTiles)
	}
	sort.Ints(handIDs)
	for _, id := range handIDs {
		i, err = c.push()
		if err != nil {
			return err
		}
		turn.TokenMain[i][ColType] = TokHand
		turn.TokenMain[i][ColTile] = int64(id)
	}

	for p := 0; p < 4; p++ {
		melds := e.Seats[p].Hand.Melds
		if len(melds) > MaxMelds {
			return overflow("melds[%d] too long: %d > MAX_MELDS=%d", p, len(melds), MaxMelds)
		}
		pRel := absToRel(p, me)
		for mi, m := range melds {
			if len(m.Tiles) > MaxMeldTiles {
				return overflow("meld.tiles too long: %d > MAX_MELD_TILES=%d", len(m.Tiles), MaxMeldTiles)
			}
			kind := meldKindCode(m.Kind)
			opened := int64(0)
			if m.Opened() {
				opened = 1
			}
			for slot, t := range m.Tiles {
				i, err = c.push()
				if err != nil {
					return err
				}
				turn.TokenMain[i][ColType] = TokMeldTile
				turn.TokenMain[i][ColSeat] = pRel
				turn.TokenMain[i][ColPos] = int64(mi)
				turn.TokenMain[i][ColPos2] = int64(slot)
				turn.TokenMain[i][ColTile] = kindTID(t)
				turn.TokenMain[i][ColAux1] = kind
				turn.TokenMain[i][ColAux2] = opened
			}
		}
	}

	for p := 0; p < 4; p++ {
		river := e.Seats[p].River
		if len(river) > MaxRiver {
			return overflow("river too long: %d > MAX_RIVER=%d", len(river), MaxRiver)
		}
		pRel := absToRel(p, me)
		for ridx, r := range river {
			i, err = c.push()
			if err != nil {
				return err
			}
			turn.TokenMain[i][ColType] = TokRiver
			turn.TokenMain[i][ColSeat] = pRel
			turn.TokenMain[i][ColPos] = int64(ridx)
			turn.TokenMain[i][ColTile] = kindTID(r.Kind)
			turn.TokenMain[i][ColAux1] = riverFlags(r)
		}
	}

	return nil
}

func intIDs(ids []tile.ID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

func meldKindCode(k interface{ String() string }) int64 {
	switch k.String() {
	case "chi":
		return 1
	case "pon":
		return 2
	case "minkan":
		return 3
	case "ankan":
		return 4
	case "kakan":
		return 5
	default:
		return 0
	}
}

func riverFlags(r action.RiverTile) int64 {
	var f int64
	if r.Tsumogiri {
		f |= 1
	}
	if r.RiichiTile {
		f |= 2
	}
	return f
}

func encodeActions(e *engine.Env, me int, actions []action.Action, turn *Turn) error {
	if len(actions) == 0 {
		return overflow("no legal actions")
	}
	lastFromRel := int64(-1)
	if e.Phase == engine.WaitClaim {
		lastFromRel = absToRel(e.LastDiscardFrom, me)
	}

	for i, a := range actions {
		if i >= MaxActions {
			return overflow("too many legal actions: %d > MAX_ACTIONS=%d", i+1, MaxActions)
		}
		kind := int64(a.Kind)

		var tid, hasTile int64 = TIDNone, 0
		switch a.Kind {
		case action.Discard, action.Chi, action.Pon, action.Daiminkan, action.Ankan, action.Kakan:
			tid, hasTile = kindTID(a.Tile), 1
		}

		if len(a.Consume) > MaxConsumeTiles {
			return overflow("consume_tiles too long: %d > MAX_CONSUME_TILES=%d", len(a.Consume), MaxConsumeTiles)
		}

		turn.ActionMain[i][ActColKind] = kind
		turn.ActionMain[i][ActColTile] = tid
		turn.ActionMain[i][ActColHasTile] = hasTile
		turn.ActionMain[i][ActColConsumeLen] = int64(len(a.Consume))

		var from, hasFrom int64
		switch a.Kind {
		case action.Chi, action.Pon, action.Daiminkan:
			if lastFromRel >= 0 {
				from, hasFrom = lastFromRel, 1
			}
		case action.Ron:
			if lastFromRel >= 0 {
				from, hasFrom = lastFromRel, 1
			} else if a.From >= 0 {
				from, hasFrom = absToRel(a.From, me), 1
			}
		}
		turn.ActionMain[i][ActColFrom] = from
		turn.ActionMain[i][ActColHasFrom] = hasFrom

		for j, t := range a.Consume {
			turn.ActionConsume[i][j] = kindTID(t)
			turn.ActionConsumeMask[i][j] = true
		}

		turn.LegalActionMask[i] = true
	}
	return nil
}
