package engine

import (
	"math/rand"
	"testing"

	"mahjongcore/internal/mahjong/action"
)

func totalPoints(e *Env) int {
	total := e.Kyotaku * 1000
	for _, s := range e.Scores() {
		total += s
	}
	return total
}

func playRandomGame(t *testing.T, seed int64, gt GameType) *Env {
	t.Helper()
	e := New(gt, seed)
	rng := rand.New(rand.NewSource(seed))

	pending := []int{e.ActiveSeat}
	steps := 0
	for !e.Ended {
		steps++
		if steps > 200000 {
			t.Fatalf("game did not end within step budget (seed=%d)", seed)
		}
		if len(pending) == 0 {
			t.Fatalf("no pending seat but game not ended (seed=%d)", seed)
		}
		seat := pending[0]
		pending = pending[1:]

		legal := e.LegalActions(seat)
		if len(legal) == 0 {
			continue
		}
		act := legal[rng.Intn(len(legal))]
		res, err := e.Step(seat, act)
		if err != nil {
			t.Fatalf("unexpected step error (seed=%d seat=%d act=%v): %v", seed, seat, act, err)
		}
		if got := totalPoints(e); got != 100000 {
			t.Fatalf("points conservation violated: total=%d, want 100000 (seed=%d)", got, seed)
		}
		if len(pending) == 0 {
			pending = res.ActiveSeats
		}
	}
	return e
}

func TestNewStartsInWaitAct(t *testing.T) {
	e := New(EastOnly, 1)
	if e.Phase != WaitAct {
		t.Fatalf("Phase = %v, want WaitAct", e.Phase)
	}
	if e.ActiveSeat != e.DealerSeat {
		t.Fatalf("ActiveSeat = %d, want dealer seat %d", e.ActiveSeat, e.DealerSeat)
	}
	legal := e.LegalActions(e.ActiveSeat)
	if len(legal) == 0 {
		t.Fatal("dealer should have at least one legal action after the opening draw")
	}
	foundDiscard := false
	for _, a := range legal {
		if a.Kind == action.Discard {
			foundDiscard = true
		}
	}
	if !foundDiscard {
		t.Fatal("expected at least one legal discard action")
	}
}

func TestRandomPlayEastOnlyTerminates(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 100, 9999} {
		e := playRandomGame(t, seed, EastOnly)
		if !e.Ended {
			t.Fatalf("seed %d: game should have ended", seed)
		}
		if e.Phase != DoneGame {
			t.Fatalf("seed %d: Phase = %v, want DoneGame", seed, e.Phase)
		}
	}
}

func TestMjaiLogStartsWithStartGame(t *testing.T) {
	e := New(EastOnly, 5)
	lines := e.MjaiLogs()
	if len(lines) == 0 {
		t.Fatal("expected a non-empty mjai log after New")
	}
	if want := `"type":"start_game"`; !contains(lines[0], want) {
		t.Fatalf("first mjai line = %q, want to contain %q", lines[0], want)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

func TestFinalRankRewardsAssignsEveryRank(t *testing.T) {
	e := playRandomGame(t, 42, EastOnly)
	rewards := e.FinalRankRewards()
	seen := map[float64]int{}
	for _, r := range rewards {
		seen[r]++
	}
	for _, want := range RankRewards {
		if seen[want] == 0 {
			t.Fatalf("reward %v from the rank table was never assigned: %v", want, rewards)
		}
	}
}
