// Package tile defines the 34-kind tile space and the 136-tile physical
// identity space shared by every other mahjong package, grounded on the
// Tile/TileType model in the teacher's
// runtime/game/engines/mahjong/material.go.
package tile

import "fmt"

// Kind is one of the 34 distinct tile faces: man 0-8, pin 9-17, sou 18-26,
// winds 27-30 (E,S,W,N), dragons 31-33 (White,Green,Red).
type Kind int

const (
	NumKinds = 34

	ManMin = 0
	ManMax = 8
	PinMin = 9
	PinMax = 17
	SouMin = 18
	SouMax = 26

	East  Kind = 27
	South Kind = 28
	West  Kind = 29
	North Kind = 30

	White Kind = 31 // haku
	Green Kind = 32 // hatsu
	Red   Kind = 33 // chun

	// NoneKind is the tensor-encoder sentinel for an absent tile kind.
	NoneKind Kind = 136
)

// ID is a physical tile identity in 0..135; four copies of each Kind.
type ID int

// NoneID is the tensor-encoder sentinel for an absent physical tile.
const NoneID ID = 136

// KindOf maps a physical id to its face.
func KindOf(id ID) Kind { return Kind(int(id) / 4) }

// redSlotKind holds the three kinds (5-man, 5-pin, 5-sou) whose first copy
// is the red-five variant.
var redSlotKind = map[Kind]bool{4: true, 13: true, 22: true}

// IsRed reports whether id is the canonical red-five variant of its kind.
// Shape tests never care about this flag; only dora/display logic does.
func IsRed(id ID) bool {
	return redSlotKind[KindOf(id)] && int(id)%4 == 0
}

func (k Kind) IsMan() bool    { return k >= ManMin && k <= ManMax }
func (k Kind) IsPin() bool    { return k >= PinMin && k <= PinMax }
func (k Kind) IsSou() bool    { return k >= SouMin && k <= SouMax }
func (k Kind) IsNumbered() bool {
	return k.IsMan() || k.IsPin() || k.IsSou()
}
func (k Kind) IsHonor() bool    { return k >= East && k <= Red }
func (k Kind) IsWind() bool     { return k >= East && k <= North }
func (k Kind) IsDragon() bool   { return k >= White && k <= Red }
func (k Kind) IsTerminal() bool { return k.IsNumbered() && k.Number() == 1 || (k.IsNumbered() && k.Number() == 9) }

// IsTerminalOrHonor reports membership in the 13 "yaochuu" kinds used by
// tanyao/chanta/junchan/kokushi checks.
func (k Kind) IsTerminalOrHonor() bool {
	return k.IsHonor() || (k.IsNumbered() && (k.Number() == 1 || k.Number() == 9))
}

// Number returns the 1..9 pip for numbered kinds, 0 for honors.
func (k Kind) Number() int {
	switch {
	case k.IsMan():
		return int(k-ManMin) + 1
	case k.IsPin():
		return int(k-PinMin) + 1
	case k.IsSou():
		return int(k-SouMin) + 1
	default:
		return 0
	}
}

// SuitBase returns the first kind of k's suit (0, 9 or 18); -1 for honors.
func (k Kind) SuitBase() int {
	switch {
	case k.IsMan():
		return ManMin
	case k.IsPin():
		return PinMin
	case k.IsSou():
		return SouMin
	default:
		return -1
	}
}

// NextDora returns the dora kind indicated by k (the rotation rule: within a
// suit 8 wraps to 0 offset; winds cycle E->S->W->N->E; dragons cycle
// White->Green->Red->White).
func (k Kind) NextDora() Kind {
	switch {
	case k.IsNumbered():
		base := k.SuitBase()
		offset := (int(k) - base + 1) % 9
		return Kind(base + offset)
	case k.IsWind():
		return East + (k-East+1)%4
	case k.IsDragon():
		return White + (k-White+1)%3
	default:
		return k
	}
}

func (k Kind) String() string {
	switch {
	case k.IsMan():
		return fmt.Sprintf("%dm", k.Number())
	case k.IsPin():
		return fmt.Sprintf("%dp", k.Number())
	case k.IsSou():
		return fmt.Sprintf("%ds", k.Number())
	case k == East:
		return "E"
	case k == South:
		return "S"
	case k == West:
		return "W"
	case k == North:
		return "N"
	case k == White:
		return "Haku"
	case k == Green:
		return "Hatsu"
	case k == Red:
		return "Chun"
	default:
		return "?"
	}
}

// Counts is a 34-length multiset of tile kinds, the basic currency every
// shape-test operates on.
type Counts [NumKinds]int

// Total sums every slot.
func (c Counts) Total() int {
	t := 0
	for _, v := range c {
		t += v
	}
	return t
}

// Add returns a copy of c with delta added at k (no bounds clamping; callers
// must not overdraw).
func (c Counts) Add(k Kind, delta int) Counts {
	c[k] += delta
	return c
}

// CountsFromKinds builds a Counts vector from a list of kinds.
func CountsFromKinds(kinds []Kind) Counts {
	var c Counts
	for _, k := range kinds {
		c[k]++
	}
	return c
}
