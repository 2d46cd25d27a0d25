// Package yaku evaluates a completed hand against the full scoring-pattern
// table in spec §4.2, generalizing the teacher's YakuChecker registry
// pattern (runtime/game/engines/mahjong/yaku.go) from ~20 stubbed checkers
// to a complete implementation.
package yaku

import "mahjongcore/internal/mahjong/tile"

// Context carries every piece of winning-moment state the evaluator needs
// beyond the hand itself, mirroring spec §4.2's context object.
type Context struct {
	IsDealer      bool
	RoundWind     tile.Kind
	SeatWind      tile.Kind
	Tsumo         bool
	Riichi        bool
	DoubleRiichi  bool
	Ippatsu       bool
	Haitei        bool // last-tile tsumo
	Houtei        bool // last-discard ron
	Rinshan       bool // win on the kan replacement draw
	Chankan       bool // ron on a tile added to form a kakan
	FirstTurn     bool // win occurs before any call has interrupted the deal
	NoCallsYet    bool // no pon/chi/kan has happened this kyoku (tenhou/chiihou)
	DoraIndicators    []tile.Kind
	UraDoraIndicators []tile.Kind
	WinTile tile.Kind
}
