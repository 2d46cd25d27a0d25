package yaku

import "mahjongcore/internal/mahjong/agari"

// isPinfuShape reports the pinfu precondition on SHAPE alone (all runs,
// non-yakuhai pair, ryanmen wait); callers must separately ensure the
// hand is closed.
func isPinfuShape(p agari.Parse, ctx Context, wait WaitType) bool {
	for _, s := range p.Sets {
		if s.Kind != agari.SetRun {
			return false
		}
	}
	if p.Pair == ctx.SeatWind || p.Pair == ctx.RoundWind || p.Pair.IsDragon() {
		return false
	}
	return wait == WaitRyanmen
}

// setFu returns the fu contributed by one completed triplet/quad set; runs
// contribute zero.
func setFu(s agari.CompletedSet) int {
	terminalOrHonor := s.Base.IsTerminalOrHonor()
	switch s.Kind {
	case agari.SetRun:
		return 0
	case agari.SetTriplet:
		if s.Concealed {
			if terminalOrHonor {
				return 8
			}
			return 4
		}
		if terminalOrHonor {
			return 4
		}
		return 2
	case agari.SetQuad:
		// Concealed distinguishes ankan (true) from minkan/kakan (false);
		// kakan, despite starting life as an open pon, scores as an open
		// kan once completed.
		if s.Concealed {
			if terminalOrHonor {
				return 32
			}
			return 16
		}
		if terminalOrHonor {
			return 16
		}
		return 8
	}
	return 0
}

// Fu computes total fu for a standard-shape parse per spec §4.2's table.
// chiitoitsu callers should skip this and use the fixed 25.
func Fu(p agari.Parse, ctx Context, closed bool) int {
	wait := ClassifyWait(p, ctx.WinTile)

	if closed && isPinfuShape(p, ctx, wait) {
		if ctx.Tsumo {
			return 20
		}
		return 30
	}

	fu := 20
	if closed && !ctx.Tsumo {
		fu += 10 // menzen ron
	}
	if ctx.Tsumo {
		fu += 2
	}

	isSeat := p.Pair == ctx.SeatWind
	isRound := p.Pair == ctx.RoundWind
	isDragon := p.Pair.IsDragon()
	if isDragon {
		fu += 2
	} else if isSeat && isRound {
		fu += 4
	} else if isSeat || isRound {
		fu += 2
	}

	for _, s := range p.Sets {
		// A triplet completed by ron via a shanpon wait is a minkou, not an
		// ankou, even though the concealed decomposition marks it
		// concealed — correct that one set here.
		fuSet := s
		if !ctx.Tsumo && wait == WaitShanpon && s.Kind == agari.SetTriplet && s.Base == ctx.WinTile && s.Concealed {
			fuSet.Concealed = false
		}
		fu += setFu(fuSet)
	}

	switch wait {
	case WaitKanchan, WaitPenchan, WaitTanki, WaitShanpon:
		fu += 2
	}

	return roundUpTo10(fu)
}

func roundUpTo10(fu int) int {
	if fu%10 == 0 {
		return fu
	}
	return (fu/10 + 1) * 10
}
