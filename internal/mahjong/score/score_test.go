package score

import "testing"

func TestCalculateRon(t *testing.T) {
	cases := []struct {
		name             string
		han, fu          int
		isOya            bool
		wantRon          int
	}{
		{"30fu 4han non-dealer", 4, 30, false, 7700},
		{"30fu 4han dealer", 4, 30, true, 11600},
		{"40fu 3han non-dealer", 3, 40, false, 5200},
		{"mangan non-dealer (5han)", 5, 30, false, 8000},
		{"haneman non-dealer (6han)", 6, 30, false, 12000},
		{"baiman non-dealer (8han)", 8, 30, false, 16000},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Calculate(c.han, c.fu, c.isOya, false)
			if p.RonPays != c.wantRon {
				t.Errorf("RonPays = %d, want %d", p.RonPays, c.wantRon)
			}
			if p.Total != p.RonPays {
				t.Errorf("Total = %d, want equal to RonPays %d", p.Total, p.RonPays)
			}
		})
	}
}

func TestCalculateTsumo(t *testing.T) {
	// 30fu 4han dealer tsumo: base = 30*2^6 = 1920, each = ceil100(3840) = 3900
	p := Calculate(4, 30, true, true)
	if p.KoPays != 3900 {
		t.Fatalf("KoPays = %d, want 3900", p.KoPays)
	}
	if p.Total != 3900*3 {
		t.Fatalf("Total = %d, want %d", p.Total, 3900*3)
	}

	// 30fu 3han non-dealer tsumo: base = 30*2^5 = 960, dealer pays ceil100(1920)=2000, ko pays ceil100(960)=1000
	p2 := Calculate(3, 30, false, true)
	if p2.DealerPays != 2000 || p2.KoPays != 1000 {
		t.Fatalf("got dealer=%d ko=%d, want dealer=2000 ko=1000", p2.DealerPays, p2.KoPays)
	}
}

func TestBaseCapsAtLimits(t *testing.T) {
	if got := Base(13, 30); got != 8000 {
		t.Errorf("kazoe yakuman base = %d, want 8000", got)
	}
	if got := Base(6, 30); got != 3000 {
		t.Errorf("haneman base = %d, want 3000", got)
	}
	if got := Base(3, 70); got != 2000 {
		// 70fu*2^5=2240 is clamped to the mangan base of 2000
		t.Errorf("clamped base = %d, want 2000", got)
	}
}

func TestYakumanPayout(t *testing.T) {
	p := YakumanPayout(1, false, false)
	if p.RonPays != 32000 {
		t.Fatalf("single yakuman non-dealer ron = %d, want 32000", p.RonPays)
	}
	double := YakumanPayout(2, true, false)
	if double.RonPays != 96000 {
		t.Fatalf("double yakuman dealer ron = %d, want 96000", double.RonPays)
	}
}

func TestLimitName(t *testing.T) {
	if LimitName(13, 30) != "yakuman" {
		t.Errorf("LimitName(13,30) should report yakuman")
	}
	if LimitName(5, 30) != "mangan" {
		t.Errorf("LimitName(5,30) should report mangan")
	}
	if LimitName(2, 30) != "" {
		t.Errorf("LimitName(2,30) should report no named limit")
	}
}
