package encode

import (
	"testing"

	"mahjongcore/internal/mahjong/action"
	"mahjongcore/internal/mahjong/engine"
)

func TestEncodeFreshKyokuShape(t *testing.T) {
	e := engine.New(engine.EastOnly, 1)
	legal := e.LegalActions(e.ActiveSeat)

	turn, err := Encode(e, e.ActiveSeat, legal)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if turn.TokenMain[0][ColType] != TokCLS {
		t.Fatalf("token 0 type = %d, want TokCLS", turn.TokenMain[0][ColType])
	}
	if !turn.TokenMask[0] {
		t.Fatal("token 0 mask should be set")
	}
	if turn.TokenMask[MaxStateTokens-1] {
		t.Fatal("an untouched trailing token should not be masked")
	}

	foundHand := 0
	for i := 0; i < MaxStateTokens; i++ {
		if turn.TokenMask[i] && turn.TokenMain[i][ColType] == TokHand {
			foundHand++
		}
	}
	if foundHand != 14 {
		t.Fatalf("dealer's opening hand should encode 14 hand tokens (13 dealt + 1 draw), got %d", foundHand)
	}

	legalCount := 0
	for i := 0; i < MaxActions; i++ {
		if turn.LegalActionMask[i] {
			legalCount++
		}
	}
	if legalCount != len(legal) {
		t.Fatalf("legal action mask count = %d, want %d", legalCount, len(legal))
	}
}

func TestAbsToRelIsModulo4(t *testing.T) {
	cases := []struct {
		seat, me int
		want     int64
	}{
		{0, 0, 0}, {1, 0, 1}, {0, 1, 3}, {3, 1, 2},
	}
	for _, c := range cases {
		if got := absToRel(c.seat, c.me); got != c.want {
			t.Errorf("absToRel(%d,%d) = %d, want %d", c.seat, c.me, got, c.want)
		}
	}
}

func TestEncodeRejectsTooManyActions(t *testing.T) {
	e := engine.New(engine.EastOnly, 1)
	legal := e.LegalActions(e.ActiveSeat)

	big := make([]action.Action, MaxActions+1)
	for i := range big {
		big[i] = legal[0]
	}
	if _, err := Encode(e, e.ActiveSeat, big); err == nil {
		t.Fatal("expected an overflow error for an oversized action list")
	}
}
