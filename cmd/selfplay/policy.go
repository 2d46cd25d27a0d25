package main

import (
	"math/rand"

	"mahjongcore/internal/mahjong/action"
)

// uniformPolicy picks uniformly among the legal actions offered each step.
// It exists only to exercise the engine end to end; a real training
// consumer replaces this with a learned policy driven by the encode
// package's Turn — that consumer lives outside this repo per spec §1.
type uniformPolicy struct {
	rng *rand.Rand
}

func newUniformPolicy(seed int64) *uniformPolicy {
	return &uniformPolicy{rng: rand.New(rand.NewSource(seed))}
}

func (p *uniformPolicy) choose(legal []action.Action) action.Action {
	return legal[p.rng.Intn(len(legal))]
}
