package engine

import (
	"encoding/json"

	"mahjongcore/internal/mahjong/tile"
)

// mjaiLine marshals an event map to a single JSON line, per spec §6's
// "minimal event set" requirement. Marshal errors are impossible here (the
// payloads are plain maps of primitives) so they are swallowed into an
// empty JSON object ("{}") rather than threaded through every caller.
func mjaiLine(v map[string]any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func tileStr(k tile.Kind) string {
	if k == tile.NoneKind {
		return ""
	}
	return k.String()
}

func mjaiStartGame(e *Env) string {
	return mjaiLine(map[string]any{"type": "start_game", "id": e.ID.String(), "game_type": int(e.GameType)})
}

func mjaiStartKyoku(e *Env) string {
	hands := make([][]string, 4)
	for i, s := range e.Seats {
		var h []string
		for _, id := range s.Hand.Tiles {
			h = append(h, tileStr(tile.KindOf(id)))
		}
		hands[i] = h
	}
	return mjaiLine(map[string]any{
		"type": "start_kyoku", "bakaze": tileStr(e.RoundWind), "kyoku": e.KyokuIdx + 1,
		"honba": e.Honba, "kyotaku": e.Kyotaku, "oya": e.DealerSeat, "tehais": hands,
	})
}

func mjaiTsumo(e *Env, seat int, id tile.ID) string {
	return mjaiLine(map[string]any{"type": "tsumo", "actor": seat, "pai": tileStr(tile.KindOf(id))})
}

func mjaiDahai(e *Env, seat int, k tile.Kind, tsumogiri bool) string {
	return mjaiLine(map[string]any{"type": "dahai", "actor": seat, "pai": tileStr(k), "tsumogiri": tsumogiri})
}

func mjaiReach(e *Env, seat int) string {
	return mjaiLine(map[string]any{"type": "reach", "actor": seat})
}

func mjaiAnkan(e *Env, seat int, k tile.Kind) string {
	return mjaiLine(map[string]any{"type": "ankan", "actor": seat, "consumed": tileStr(k)})
}

func mjaiKakan(e *Env, seat int, k tile.Kind) string {
	return mjaiLine(map[string]any{"type": "kakan", "actor": seat, "pai": tileStr(k)})
}

func mjaiDora(e *Env) string {
	dora := e.Wall.RevealedDora()
	var k tile.Kind = tile.NoneKind
	if len(dora) > 0 {
		k = dora[len(dora)-1]
	}
	return mjaiLine(map[string]any{"type": "dora", "dora_marker": tileStr(k)})
}

func meldStrs(tiles []tile.Kind) []string {
	var out []string
	for _, t := range tiles {
		out = append(out, tileStr(t))
	}
	return out
}

func mjaiChi(e *Env, seat, from int, tiles []tile.Kind) string {
	return mjaiLine(map[string]any{"type": "chi", "actor": seat, "target": from, "consumed": meldStrs(tiles), "pai": tileStr(e.LastDiscard)})
}

func mjaiPon(e *Env, seat, from int, tiles []tile.Kind) string {
	return mjaiLine(map[string]any{"type": "pon", "actor": seat, "target": from, "consumed": meldStrs(tiles), "pai": tileStr(e.LastDiscard)})
}

func mjaiDaiminkan(e *Env, seat, from int, tiles []tile.Kind) string {
	return mjaiLine(map[string]any{"type": "daiminkan", "actor": seat, "target": from, "consumed": meldStrs(tiles), "pai": tileStr(e.LastDiscard)})
}

func mjaiHora(e *Env, winners []int, loser int) string {
	return mjaiLine(map[string]any{
		"type": "hora", "actors": winners, "target": loser,
		"scores": e.Scores(),
	})
}

func mjaiRyukyoku(e *Env, reason string) string {
	return mjaiLine(map[string]any{"type": "ryukyoku", "reason": reason, "scores": e.Scores()})
}

func mjaiEndKyoku(e *Env) string {
	return mjaiLine(map[string]any{"type": "end_kyoku"})
}

func mjaiEndGame(e *Env) string {
	return mjaiLine(map[string]any{"type": "end_game", "scores": e.Scores()})
}
