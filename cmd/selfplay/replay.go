package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mahjongcore/common/log"
	"mahjongcore/internal/mahjong/engine"
)

var replaySeed int64
var replayGameType string

// replayCmd re-runs one seed twice with the identical deterministic policy
// and checks the two MJAI logs are byte-for-byte identical, exercising
// spec §5/§9's reproducibility guarantee ("identical action sequences on an
// identical seed") end to end through the real engine rather than asserting
// it only at the wall level.
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replay one seed twice and verify the resulting episodes match",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Init("selfplay-replay", "info")
		gt, err := parseGameType(replayGameType)
		if err != nil {
			return err
		}

		first := replayOnce(replaySeed, gt)
		second := replayOnce(replaySeed, gt)

		if first != second {
			return fmt.Errorf("replay mismatch for seed %d: two runs diverged", replaySeed)
		}
		fmt.Printf("seed %d: %d mjai lines, replay verified deterministic\n", replaySeed, strings.Count(first, "\n")+1)
		return nil
	},
}

func init() {
	replayCmd.Flags().Int64Var(&replaySeed, "seed", 1, "seed to replay")
	replayCmd.Flags().StringVar(&replayGameType, "game-type", "east-south", "east-only | east-south | east-south-sudden-death")
}

func replayOnce(seed int64, gt engine.GameType) string {
	e := engine.New(gt, seed)
	// start_game logs Env.ID, a fresh random uuid per Env; pin it and deal
	// again so that both runs write the same log.
	e.ID = uuid.Nil
	e.Reset()
	policy := newUniformPolicy(seed)

	pending := []int{e.ActiveSeat}
	for !e.Ended {
		if len(pending) == 0 {
			break
		}
		seat := pending[0]
		pending = pending[1:]

		legal := e.LegalActions(seat)
		if len(legal) == 0 {
			continue
		}
		res, err := e.Step(seat, policy.choose(legal))
		if err != nil {
			continue
		}
		if len(pending) == 0 {
			pending = res.ActiveSeats
		}
	}
	return strings.Join(e.MjaiLogs(), "\n")
}
