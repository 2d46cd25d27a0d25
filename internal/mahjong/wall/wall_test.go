package wall

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	a := New(42, "kyoku-0-0-0")
	b := New(42, "kyoku-0-0-0")
	if a.Digest() != b.Digest() {
		t.Fatal("same seed+salt produced different wall digests")
	}
}

func TestNewVariesBySalt(t *testing.T) {
	a := New(42, "kyoku-0-0-0")
	b := New(42, "kyoku-1-0-0")
	if a.Digest() == b.Digest() {
		t.Fatal("different salts produced identical wall digests")
	}
}

func TestDealAndDrawNonOverlapping(t *testing.T) {
	w := New(7, "salt")
	seen := map[int]bool{}
	for seat := 0; seat < 4; seat++ {
		for _, id := range w.Deal(seat) {
			if seen[int(id)] {
				t.Fatalf("tile id %d dealt to more than one seat", id)
			}
			seen[int(id)] = true
		}
	}
	if len(seen) != 52 {
		t.Fatalf("dealt %d distinct tiles, want 52", len(seen))
	}
	w.StartLiveDraws()

	for i := 0; i < liveWallSize-52; i++ {
		id, ok := w.Draw()
		if !ok {
			t.Fatalf("live wall exhausted early at draw %d", i)
		}
		if seen[int(id)] {
			t.Fatalf("live-wall tile id %d collides with a dealt tile", id)
		}
		seen[int(id)] = true
	}
	if _, ok := w.Draw(); ok {
		t.Fatal("expected live wall exhaustion after liveWallSize-52 draws")
	}
}

func TestRevealDoraCapsAtFive(t *testing.T) {
	w := New(1, "s")
	for i := 0; i < maxDora; i++ {
		if _, ok := w.RevealDoraIndicator(); !ok {
			t.Fatalf("dora reveal %d should have succeeded", i)
		}
	}
	if _, ok := w.RevealDoraIndicator(); ok {
		t.Fatal("sixth dora reveal should fail")
	}
	if len(w.RevealedDora()) != maxDora {
		t.Fatalf("RevealedDora len = %d, want %d", len(w.RevealedDora()), maxDora)
	}
}

func TestCanKanCapsAtFour(t *testing.T) {
	w := New(1, "s")
	for i := 0; i < maxKanTiles; i++ {
		if !w.CanKan() {
			t.Fatalf("CanKan should be true before rinshan draw %d", i)
		}
		if _, ok := w.DrawRinshan(); !ok {
			t.Fatalf("rinshan draw %d should have succeeded", i)
		}
	}
	if w.CanKan() {
		t.Fatal("CanKan should be false after four rinshan draws")
	}
}
