package tile

import "testing"

func TestKindOfRoundTrips(t *testing.T) {
	for k := 0; k < NumKinds; k++ {
		for copy := 0; copy < 4; copy++ {
			id := ID(k*4 + copy)
			if got := KindOf(id); got != Kind(k) {
				t.Fatalf("KindOf(%d) = %v, want %v", id, got, k)
			}
		}
	}
}

func TestIsRedOnlyFirstCopyOfFives(t *testing.T) {
	for _, k := range []Kind{4, 13, 22} {
		base := ID(int(k) * 4)
		if !IsRed(base) {
			t.Errorf("kind %v copy 0 should be red", k)
		}
		for copy := 1; copy < 4; copy++ {
			if IsRed(ID(int(k)*4 + copy)) {
				t.Errorf("kind %v copy %d should not be red", k, copy)
			}
		}
	}
	if IsRed(ID(3 * 4)) {
		t.Fatal("4m's first copy must not be flagged red")
	}
}

func TestNumberAndSuitClassification(t *testing.T) {
	cases := []struct {
		k          Kind
		number     int
		man, pin, sou, honor bool
	}{
		{0, 1, true, false, false, false},
		{8, 9, true, false, false, false},
		{9, 1, false, true, false, false},
		{17, 9, false, true, false, false},
		{18, 1, false, false, true, false},
		{26, 9, false, false, true, false},
		{East, 0, false, false, false, true},
		{Red, 0, false, false, false, true},
	}
	for _, c := range cases {
		if got := c.k.Number(); got != c.number {
			t.Errorf("Kind(%d).Number() = %d, want %d", c.k, got, c.number)
		}
		if got := c.k.IsMan(); got != c.man {
			t.Errorf("Kind(%d).IsMan() = %v, want %v", c.k, got, c.man)
		}
		if got := c.k.IsPin(); got != c.pin {
			t.Errorf("Kind(%d).IsPin() = %v, want %v", c.k, got, c.pin)
		}
		if got := c.k.IsSou(); got != c.sou {
			t.Errorf("Kind(%d).IsSou() = %v, want %v", c.k, got, c.sou)
		}
		if got := c.k.IsHonor(); got != c.honor {
			t.Errorf("Kind(%d).IsHonor() = %v, want %v", c.k, got, c.honor)
		}
	}
}

func TestTerminalOrHonorCoversYaochuu(t *testing.T) {
	yaochuu := []Kind{0, 8, 9, 17, 18, 26, East, South, West, North, White, Green, Red}
	for _, k := range yaochuu {
		if !k.IsTerminalOrHonor() {
			t.Errorf("kind %v should be yaochuu", k)
		}
	}
	middle := []Kind{1, 2, 10, 19}
	for _, k := range middle {
		if k.IsTerminalOrHonor() {
			t.Errorf("kind %v should not be yaochuu", k)
		}
	}
}

func TestNextDoraWraps(t *testing.T) {
	cases := []struct{ from, want Kind }{
		{8, 0},    // 9m -> 1m
		{0, 1},    // 1m -> 2m
		{17, 9},   // 9p -> 1p
		{26, 18},  // 9s -> 1s
		{North, East},
		{East, South},
		{Red, White},
		{White, Green},
	}
	for _, c := range cases {
		if got := c.from.NextDora(); got != c.want {
			t.Errorf("Kind(%d).NextDora() = %v, want %v", c.from, got, c.want)
		}
	}
}

func TestCountsFromKindsAndTotal(t *testing.T) {
	c := CountsFromKinds([]Kind{0, 0, 1, East})
	if c.Total() != 4 {
		t.Fatalf("Total() = %d, want 4", c.Total())
	}
	if c[0] != 2 || c[1] != 1 || c[East] != 1 {
		t.Fatalf("unexpected counts vector: %v", c)
	}
	c2 := c.Add(0, 1)
	if c2[0] != 3 {
		t.Fatalf("Add did not increment: %v", c2)
	}
	if c[0] != 2 {
		t.Fatalf("Add mutated the receiver's copy: %v", c)
	}
}
