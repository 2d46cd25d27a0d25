// Package score implements the pure point calculator of spec §4.3,
// deliberately split out of the teacher's callHuPoints
// (runtime/game/engines/mahjong/score_calculator.go), which conflated honba
// into the same call; here honba/kyotaku are left for the state machine to
// apply on top, per spec's explicit "applied by the state machine" rule.
package score

// Payout is the bare point transfer for one win, before honba/kyotaku.
type Payout struct {
	// Total points collected by the winner.
	Total      int
	DealerPays int // tsumo only: what the dealer (if not winner) pays
	KoPays     int // tsumo only: what each non-dealer pays
	RonPays    int // ron only: what the single loser pays
}

// limitName reports the named scoring tier for a given base, per spec
// §4.2's Limits table. Empty string means no named limit (ordinary hand).
func limitName(base int) string {
	switch {
	case base >= 6000:
		return "sanbaiman"
	case base >= 4000:
		return "baiman"
	case base >= 3000:
		return "haneman"
	case base >= 2000:
		return "mangan"
	default:
		return ""
	}
}

// Base computes the scoring base fu*2^(2+han), capped at the limit implied
// by han/fu per spec §4.2 (no kiriage-mangan rounding: 1920 stays 1920).
func Base(han, fu int) int {
	if han >= 13 {
		return 8000
	}
	base := fu
	for i := 0; i < 2+han; i++ {
		base *= 2
	}
	switch {
	case han >= 11:
		return 6000
	case han >= 8:
		return 4000
	case han >= 6:
		return 3000
	case base >= 2000:
		return 2000
	default:
		return base
	}
}

func ceilTo100(v int) int {
	if v%100 == 0 {
		return v
	}
	return (v/100 + 1) * 100
}

// Calculate implements `calculate(han, fu, is_oya_win, is_tsumo) -> Payout`.
func Calculate(han, fu int, isOyaWin, isTsumo bool) Payout {
	base := Base(han, fu)
	if isTsumo {
		if isOyaWin {
			each := ceilTo100(base * 2)
			return Payout{Total: each * 3, KoPays: each}
		}
		dealer := ceilTo100(base * 2)
		ko := ceilTo100(base)
		return Payout{Total: dealer + 2*ko, DealerPays: dealer, KoPays: ko}
	}
	if isOyaWin {
		pays := ceilTo100(base * 6)
		return Payout{Total: pays, RonPays: pays}
	}
	pays := ceilTo100(base * 4)
	return Payout{Total: pays, RonPays: pays}
}

// LimitName exposes the named scoring tier for (han, fu), for logging/MJAI
// purposes; yakuman callers should not call this (han>=13 always returns
// "yakuman" conceptually but yakuman payouts bypass Base/Calculate — see
// YakumanPayout).
func LimitName(han, fu int) string {
	if han >= 13 {
		return "yakuman"
	}
	return limitName(Base(han, fu))
}

// YakumanPayout computes the payout for a hand scored as one or more
// stacked yakuman (units = sum of yakuman multiples, 2 per double yakuman).
func YakumanPayout(units int, isOyaWin, isTsumo bool) Payout {
	base := 8000 * units
	if isTsumo {
		if isOyaWin {
			each := base * 2
			return Payout{Total: each * 3, KoPays: each}
		}
		dealer := base * 2
		ko := base
		return Payout{Total: dealer + 2*ko, DealerPays: dealer, KoPays: ko}
	}
	if isOyaWin {
		return Payout{Total: base * 6, RonPays: base * 6}
	}
	return Payout{Total: base * 4, RonPays: base * 4}
}
