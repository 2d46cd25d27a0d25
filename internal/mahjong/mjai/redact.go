// Package mjai turns the engine's canonical, per-episode MJAI event log
// into the three things a real deployment needs around it: a per-seat
// redacted view, a NATS publish step for the live training consumer, and a
// Mongo archive — adapted from the teacher's persistence boundary in
// runtime/game/engines/mahjong/persist.go (GamePersister), which collects
// per-round events during play and flushes them once the round/game ends.
package mjai

import "encoding/json"

// Redact returns the subset of view a given seat is allowed to see:
// start_kyoku events keep only that seat's own tehais, every other seat's
// hand is replaced by "?" placeholders of the same length so array shape stays stable
// for any consumer that indexes by seat.
func Redact(lines []string, viewer int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = redactLine(line, viewer)
	}
	return out
}

func redactLine(line string, viewer int) string {
	var v map[string]any
	if err := json.Unmarshal([]byte(line), &v); err != nil {
		return line
	}
	if v["type"] != "start_kyoku" {
		return line
	}
	tehais, ok := v["tehais"].([]any)
	if !ok {
		return line
	}
	for seat, h := range tehais {
		if seat == viewer {
			continue
		}
		hand, ok := h.([]any)
		if !ok {
			continue
		}
		hidden := make([]any, len(hand))
		for i := range hidden {
			hidden[i] = "?"
		}
		tehais[seat] = hidden
	}
	b, err := json.Marshal(v)
	if err != nil {
		return line
	}
	return string(b)
}
