// Package engine implements the synchronous state machine of spec §4.5,
// adapting the teacher's riichi_mahjong_4p_engine.go central struct and
// turn_manager.go phase constants into a channel-free, timer-free Env that
// advances purely through Step calls from the host, per §5's "no internal
// suspension points" requirement.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"mahjongcore/internal/mahjong/action"
	"mahjongcore/internal/mahjong/agari"
	"mahjongcore/internal/mahjong/hand"
	"mahjongcore/internal/mahjong/score"
	"mahjongcore/internal/mahjong/tile"
	"mahjongcore/internal/mahjong/wall"
	"mahjongcore/internal/mahjong/yaku"
)

// Phase mirrors turn_manager.go's TurnState, generalized to the five
// states spec §4.5 names.
type Phase int

const (
	WaitAct Phase = iota
	WaitClaim
	WaitRiichiAccept
	DoneKyoku
	DoneGame
)

func (p Phase) String() string {
	switch p {
	case WaitAct:
		return "WAIT_ACT"
	case WaitClaim:
		return "WAIT_CLAIM"
	case WaitRiichiAccept:
		return "WAIT_RIICHI_ACCEPT"
	case DoneKyoku:
		return "DONE_KYOKU"
	case DoneGame:
		return "DONE_GAME"
	default:
		return "?"
	}
}

// ErrorKind classifies the four error classes of spec §7.
type ErrorKind int

const (
	KindProtocol ErrorKind = iota
	KindOverflow
	KindInvariant
	KindRuleVeto
)

// Error is the typed error every engine operation may return.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func protoErr(format string, a ...any) error {
	return &Error{KindProtocol, fmt.Sprintf(format, a...)}
}

func invariantErr(format string, a ...any) error {
	return &Error{KindInvariant, fmt.Sprintf(format, a...)}
}

// GameType encodes the three match-length modes of spec §6.
type GameType int

const (
	EastOnly GameType = iota
	EastSouth
	EastSouthSuddenDeath
)

// RankRewards is the terminal reward-shaping table by final rank,
// supplementing spec.md from original_source's self-play training harness
// (not present in the distilled spec; see DESIGN.md).
var RankRewards = [4]float64{0.9, 0.45, 0.0, -1.35}

// seatState is one seat's mutable round state.
type seatState struct {
	Hand            *hand.Hand
	River           []action.RiverTile
	Score           int
	SeatWind        tile.Kind
	RiichiDeclared  bool
	RiichiTurn      int // river index of the declaration discard, -1 if none
	Ippatsu         bool
	ForbiddenDiscards map[tile.Kind]bool
	MissedRonThisGo bool // temporary furiten
	NagashiEligible bool
}

func newSeatState(seatWind tile.Kind, score int) *seatState {
	return &seatState{
		Hand: hand.New(), SeatWind: seatWind, Score: score,
		RiichiTurn: -1, NagashiEligible: true,
	}
}

// Env is one self-contained game instance, never aliased across goroutines
// per §5.
type Env struct {
	ID uuid.UUID

	GameType  GameType
	Seed      int64
	LastKyoku int // configured last kyoku index for the base length (3 or 7)

	RoundWind  tile.Kind
	KyokuIdx   int // 0-based within the current round wind
	Honba      int
	Kyotaku    int
	DealerSeat int

	Wall *wall.Wall
	Seats [4]*seatState

	Phase       Phase
	ActiveSeat  int // acting seat in WAIT_ACT; discarder in WAIT_CLAIM
	LastDiscard tile.Kind
	LastDiscardFrom int
	claims      map[int]action.Action // rival seat -> chosen claim, collected during WAIT_CLAIM
	firstTurnUninterrupted bool
	noCallsYet  bool
	kansThisKyoku int

	Ended     bool
	MjaiLog   []string
}

// New builds an Env for the given game type and seed, per the `new`
// control-interface entry of spec §6.
func New(gt GameType, seed int64) *Env {
	e := &Env{ID: uuid.New(), GameType: gt, Seed: seed, LastKyoku: 3}
	if gt != EastOnly {
		e.LastKyoku = 7
	}
	e.Reset()
	return e
}

// Reset reinitializes the match to East 1, honba 0, kyotaku 0, 25000 each,
// per the `reset` control-interface entry.
func (e *Env) Reset() {
	e.RoundWind = tile.East
	e.KyokuIdx = 0
	e.Honba = 0
	e.Kyotaku = 0
	e.DealerSeat = 0
	e.Ended = false
	e.MjaiLog = nil
	for i := range e.Seats {
		e.Seats[i] = newSeatState(tile.East, 25000)
	}
	e.emit(mjaiStartGame(e))
	e.startKyoku()
}

func (e *Env) kyokuSeed() int64 {
	return e.Seed ^ int64(e.RoundWind)<<32 ^ int64(e.KyokuIdx)<<8 ^ int64(e.Honba)
}

func (e *Env) startKyoku() {
	e.Wall = wall.New(e.kyokuSeed(), fmt.Sprintf("kyoku-%d-%d-%d", e.RoundWind, e.KyokuIdx, e.Honba))
	for i := 0; i < 4; i++ {
		seatWind := tile.East + tile.Kind((i-e.DealerSeat+4)%4)
		sc := e.Seats[i].Score
		e.Seats[i] = newSeatState(seatWind, sc)
		e.Seats[i].Hand = hand.New()
		for _, id := range e.Wall.Deal(i) {
			e.Seats[i].Hand.AddTile(id)
		}
	}
	e.Wall.StartLiveDraws()
	e.Wall.RevealDoraIndicator()
	e.Phase = WaitAct
	e.ActiveSeat = e.DealerSeat
	e.firstTurnUninterrupted = true
	e.noCallsYet = true
	e.kansThisKyoku = 0
	e.claims = nil

	e.emit(mjaiStartKyoku(e))
	e.draw(e.ActiveSeat)
}

func (e *Env) draw(seat int) {
	id, ok := e.Wall.Draw()
	if !ok {
		e.resolveExhaustiveDraw()
		return
	}
	e.Seats[seat].Hand.AddTile(id)
	e.emit(mjaiTsumo(e, seat, id))
}

// Snapshot builds the read-only action.Snapshot the legal-action generator
// and encoder consume.
func (e *Env) Snapshot() action.Snapshot {
	var snap action.Snapshot
	snap.RoundWind = e.RoundWind
	snap.DealerSeat = e.DealerSeat
	snap.WallRemaining = e.Wall.Remaining()
	snap.DoraIndicators = e.Wall.RevealedDora()
	for i := 0; i < 4; i++ {
		s := e.Seats[i]
		snap.Seats[i] = action.SeatView{
			Hand: s.Hand, River: s.River, Score: s.Score,
			RiichiDeclared: s.RiichiDeclared, SeatWind: s.SeatWind,
		}
	}
	return snap
}

// LegalActions implements the `legal_actions(me)` control-interface entry.
func (e *Env) LegalActions(me int) []action.Action {
	snap := e.Snapshot()
	switch e.Phase {
	case WaitAct:
		if me != e.ActiveSeat {
			return nil
		}
		s := e.Seats[me]
		var drawn tile.Kind = tile.NoneKind
		if len(s.Hand.Tiles) > 0 {
			drawn = tile.KindOf(s.Hand.Tiles[len(s.Hand.Tiles)-1])
		}
		haitei := e.Wall.Remaining() == 0
		return action.GenerateWaitAct(snap, me, drawn, s.ForbiddenDiscards, s.Ippatsu, haitei, false, e.firstTurnUninterrupted, e.noCallsYet)
	case WaitClaim:
		if me == e.LastDiscardFrom {
			return nil
		}
		furiten := e.isFuriten(me)
		houtei := e.Wall.Remaining() == 0
		return action.GenerateWaitClaim(snap, e.LastDiscardFrom, me, e.LastDiscard, furiten, houtei, e.Wall.RevealedUraDora())
	default:
		return nil
	}
}

func (e *Env) isFuriten(seat int) bool {
	s := e.Seats[seat]
	if s.MissedRonThisGo {
		return true
	}
	waits := agari.WaitingKinds(s.Hand.Counts, s.Hand.Melds)
	waitSet := map[tile.Kind]bool{}
	for _, w := range waits {
		waitSet[w] = true
	}
	for _, r := range s.River {
		if waitSet[r.Kind] {
			return true
		}
	}
	return false
}

// StepResult is returned from Step, mirroring spec §6's control interface.
type StepResult struct {
	Phase        Phase
	ActiveSeats  []int
	EndedKyoku   bool
	EndedGame    bool
}

// Step implements the `step(action_index)` control entry: act carries the
// caller's chosen Action value for the seat it is legal for (the host is
// expected to have validated action_index against LegalActions(seat)).
func (e *Env) Step(seat int, act action.Action) (StepResult, error) {
	if e.Ended {
		return StepResult{}, invariantErr("step called after game end")
	}
	var res StepResult
	var err error
	switch e.Phase {
	case WaitAct:
		res, err = e.stepWaitAct(seat, act)
	case WaitClaim:
		res, err = e.stepWaitClaim(seat, act)
	default:
		return StepResult{}, protoErr("step called in terminal phase %s", e.Phase)
	}
	if err == nil {
		// A step that ends a kyoku has already dealt the next one, so the
		// result reports the phase and acting seat as they now stand.
		res.Phase, res.EndedGame = e.Phase, e.Ended
		if e.Phase == WaitAct && !e.Ended {
			res.ActiveSeats = []int{e.ActiveSeat}
		}
	}
	return res, err
}

func (e *Env) stepWaitAct(seat int, act action.Action) (StepResult, error) {
	if seat != e.ActiveSeat {
		return StepResult{}, protoErr("seat %d acted out of turn (active=%d)", seat, e.ActiveSeat)
	}
	s := e.Seats[seat]

	switch act.Kind {
	case action.Discard:
		if s.RiichiDeclared && s.ForbiddenDiscards[act.Tile] {
			return StepResult{}, &Error{KindRuleVeto, "discard violates riichi forbidden set"}
		}
		tsumogiri := false
		var ok bool
		if n := len(s.Hand.Tiles); n > 0 && tile.KindOf(s.Hand.Tiles[n-1]) == act.Tile {
			tsumogiri, ok = true, s.Hand.RemoveTile(s.Hand.Tiles[n-1])
		} else {
			_, ok = s.Hand.RemoveKind(act.Tile)
		}
		if !ok {
			return StepResult{}, invariantErr("discard of unheld kind %v", act.Tile)
		}
		s.River = append(s.River, action.RiverTile{Kind: act.Tile, Tsumogiri: tsumogiri, RiichiTile: s.RiichiDeclared && s.RiichiTurn == -1})
		if s.RiichiDeclared && s.RiichiTurn == -1 {
			s.RiichiTurn = len(s.River) - 1
		}
		e.LastDiscard = act.Tile
		e.LastDiscardFrom = seat
		for i := range e.Seats {
			e.Seats[i].MissedRonThisGo = e.Seats[i].MissedRonThisGo && i != seat
		}
		e.emit(mjaiDahai(e, seat, act.Tile, tsumogiri))
		e.Phase = WaitClaim
		e.claims = map[int]action.Action{}
		return StepResult{Phase: e.Phase, ActiveSeats: others(seat)}, nil

	case action.Riichi:
		if s.Score < 1000 {
			return StepResult{}, &Error{KindRuleVeto, "insufficient score for riichi"}
		}
		s.RiichiDeclared = true
		s.ForbiddenDiscards = e.computeForbiddenDiscards(s)
		s.Score -= 1000
		e.Kyotaku++
		e.emit(mjaiReach(e, seat))
		return StepResult{Phase: e.Phase, ActiveSeats: []int{seat}}, nil

	case action.Ankan, action.Kakan:
		return e.stepKan(seat, act)

	case action.Tsumo:
		return e.resolveTsumo(seat)

	case action.KyushuKyuhai:
		e.abortiveDraw("kyushukyuhai")
		return StepResult{Phase: e.Phase, EndedKyoku: true}, nil

	default:
		return StepResult{}, protoErr("action kind %v illegal in WAIT_ACT", act.Kind)
	}
}

func (e *Env) stepKan(seat int, act action.Action) (StepResult, error) {
	s := e.Seats[seat]
	if !e.Wall.CanKan() {
		return StepResult{}, &Error{KindRuleVeto, "no rinshan tiles remain"}
	}
	e.kansThisKyoku++
	if act.Kind == action.Ankan {
		for i := 0; i < 4; i++ {
			s.Hand.RemoveKind(act.Tile)
		}
		s.Hand.Melds = append(s.Hand.Melds, hand.Meld{Kind: hand.Ankan, Tiles: []tile.Kind{act.Tile, act.Tile, act.Tile, act.Tile}, From: -1})
		e.emit(mjaiAnkan(e, seat, act.Tile))
	} else {
		for i, m := range s.Hand.Melds {
			if m.Kind == hand.Pon && m.TripletKind() == act.Tile {
				s.Hand.RemoveKind(act.Tile)
				s.Hand.Melds[i] = hand.Meld{Kind: hand.Kakan, Tiles: []tile.Kind{act.Tile, act.Tile, act.Tile, act.Tile}, From: m.From, CalledTile: m.CalledTile}
				break
			}
		}
		e.emit(mjaiKakan(e, seat, act.Tile))
		if chankan := e.checkChankan(seat, act.Tile); chankan {
			return e.resolveChankan(seat, act.Tile)
		}
	}
	e.clearIppatsuAll()
	id, ok := e.Wall.DrawRinshan()
	if !ok {
		return StepResult{}, invariantErr("dead wall exhausted unexpectedly")
	}
	s.Hand.AddTile(id)
	e.Wall.RevealDoraIndicator()
	e.emit(mjaiDora(e))
	if e.kansThisKyoku >= 4 && !allKansFromSameSeat(e) {
		e.abortiveDraw("four_kan")
		return StepResult{Phase: e.Phase, EndedKyoku: true}, nil
	}
	return StepResult{Phase: e.Phase, ActiveSeats: []int{seat}}, nil
}

func allKansFromSameSeat(e *Env) bool {
	owner := -1
	total := 0
	for i, s := range e.Seats {
		n := 0
		for _, m := range s.Hand.Melds {
			if m.IsQuad() {
				n++
			}
		}
		if n > 0 {
			if owner == -1 {
				owner = i
			} else if owner != i {
				return false
			}
		}
		total += n
	}
	return total == 4
}

// checkChankan is a simplified synchronous chankan check: since this engine
// has no asynchronous claim window for kakan, it evaluates every rival's
// theoretical ron on the added tile directly rather than polling Step
// (§4.5's "chankan window" is collapsed into this single check).
func (e *Env) checkChankan(kakanSeat int, addedTile tile.Kind) bool {
	for i := 0; i < 4; i++ {
		if i == kakanSeat {
			continue
		}
		r := e.Seats[i]
		if e.isFuriten(i) {
			continue
		}
		trial := r.Hand.Counts
		trial[addedTile]++
		if ok, _ := agari.IsWinning(trial, r.Hand.Melds); ok {
			ctx := e.winContext(i, false, addedTile, false, false, true)
			if res, err := yaku.Evaluate(trial, r.Hand.Melds, r.Hand.Closed(), ctx); err == nil && (res.Han > 0 || res.IsYakuman) {
				return true
			}
		}
	}
	return false
}

func (e *Env) resolveChankan(kakanSeat int, addedTile tile.Kind) (StepResult, error) {
	winners := []int{}
	for i := 0; i < 4; i++ {
		if i == kakanSeat {
			continue
		}
		r := e.Seats[i]
		trial := r.Hand.Counts
		trial[addedTile]++
		if ok, _ := agari.IsWinning(trial, r.Hand.Melds); ok {
			ctx := e.winContext(i, false, addedTile, false, false, true)
			if res, err := yaku.Evaluate(trial, r.Hand.Melds, r.Hand.Closed(), ctx); err == nil && (res.Han > 0 || res.IsYakuman) {
				winners = append(winners, i)
			}
		}
	}
	e.payoutWins(winners, kakanSeat, addedTile, false, true)
	e.emit(mjaiHora(e, winners, kakanSeat))
	e.endKyoku(winnerSeats(winners))
	return StepResult{Phase: e.Phase, EndedKyoku: true}, nil
}

func (e *Env) resolveTsumo(seat int) (StepResult, error) {
	s := e.Seats[seat]
	drawn := tile.KindOf(s.Hand.Tiles[len(s.Hand.Tiles)-1])
	ctx := e.winContext(seat, true, drawn, s.Ippatsu, e.Wall.Remaining() == 0, false)
	res, err := yaku.Evaluate(s.Hand.Counts, s.Hand.Melds, s.Hand.Closed(), ctx)
	if err != nil {
		return StepResult{}, &Error{KindRuleVeto, "tsumo declared with no yaku"}
	}
	e.payoutWins([]int{seat}, -1, drawn, true, false)
	_ = res
	e.emit(mjaiHora(e, []int{seat}, -1))
	e.endKyoku([]int{seat})
	return StepResult{Phase: e.Phase, EndedKyoku: true}, nil
}

func (e *Env) winContext(seat int, tsumo bool, winTile tile.Kind, ippatsu, haitei, chankan bool) yaku.Context {
	s := e.Seats[seat]
	return yaku.Context{
		IsDealer: seat == e.DealerSeat, RoundWind: e.RoundWind, SeatWind: s.SeatWind,
		Tsumo: tsumo, Riichi: s.RiichiDeclared, Ippatsu: ippatsu, Haitei: haitei,
		Houtei: !tsumo && e.Wall.Remaining() == 0, Chankan: chankan,
		FirstTurn: e.firstTurnUninterrupted, NoCallsYet: e.noCallsYet,
		DoraIndicators: e.Wall.RevealedDora(), UraDoraIndicators: e.Wall.RevealedUraDora(),
		WinTile: winTile,
	}
}

func (e *Env) payoutWins(winners []int, loser int, winTile tile.Kind, tsumo, chankan bool) {
	honbaBonus := e.Honba * 300
	honbaBonusTsumo := e.Honba * 100
	kyotakuTotal := e.Kyotaku * 1000
	first := true
	for _, w := range winners {
		s := e.Seats[w]
		counts := s.Hand.Counts
		if !tsumo {
			counts[winTile]++
		}
		ctx := e.winContext(w, tsumo, winTile, s.Ippatsu, e.Wall.Remaining() == 0 && !tsumo, chankan)
		res, err := yaku.Evaluate(counts, s.Hand.Melds, s.Hand.Closed(), ctx)
		if err != nil {
			continue
		}
		isOya := w == e.DealerSeat
		var payout score.Payout
		if res.IsYakuman {
			payout = score.YakumanPayout(res.YakumanUnits, isOya, tsumo)
		} else {
			payout = score.Calculate(res.Han, res.Fu, isOya, tsumo)
		}
		if tsumo {
			for i := 0; i < 4; i++ {
				if i == w {
					continue
				}
				amt := payout.KoPays
				if i == e.DealerSeat {
					amt = payout.DealerPays
				}
				amt += honbaBonusTsumo
				e.Seats[i].Score -= amt
				s.Score += amt
			}
		} else {
			s.Score += payout.RonPays + honbaBonus
			e.Seats[loser].Score -= payout.RonPays + honbaBonus
		}
		if first {
			s.Score += kyotakuTotal
			e.Kyotaku = 0
			first = false
		}
	}
}

func winnerSeats(w []int) []int { return w }

func (e *Env) stepWaitClaim(seat int, act action.Action) (StepResult, error) {
	if seat == e.LastDiscardFrom {
		return StepResult{}, protoErr("discarder cannot claim own tile")
	}
	e.claims[seat] = act
	pending := others(e.LastDiscardFrom)
	for _, p := range pending {
		if _, ok := e.claims[p]; !ok {
			return StepResult{Phase: e.Phase, ActiveSeats: pendingSeats(pending, e.claims)}, nil
		}
	}
	return e.resolveClaims()
}

func pendingSeats(all []int, claims map[int]action.Action) []int {
	var out []int
	for _, s := range all {
		if _, ok := claims[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

func others(seat int) []int {
	var out []int
	for i := 0; i < 4; i++ {
		if i != seat {
			out = append(out, i)
		}
	}
	return out
}

// resolveClaims applies spec §4.5/§9's strict priority: ron > pon/kan > chi,
// collected-then-resolved (never streamed) so seat-order bias cannot leak.
func (e *Env) resolveClaims() (StepResult, error) {
	var rons []int
	var callClaim *action.Action
	var callSeat int
	for seat, act := range e.claims {
		switch act.Kind {
		case action.Ron:
			rons = append(rons, seat)
		case action.Pon, action.Daiminkan:
			if callClaim == nil || callClaim.Kind == action.Chi {
				c := act
				callClaim = &c
				callSeat = seat
			}
		case action.Chi:
			if callClaim == nil {
				c := act
				callClaim = &c
				callSeat = seat
			}
		}
	}

	if len(rons) > 0 {
		for i := 0; i < 4; i++ {
			if i != e.LastDiscardFrom && !containsInt(rons, i) {
				if _, claimed := e.claims[i]; claimed {
					e.Seats[i].MissedRonThisGo = true
				}
			}
		}
		sortBySeatFrom(rons, e.LastDiscardFrom)
		e.payoutWins(rons, e.LastDiscardFrom, e.LastDiscard, false, false)
		e.emit(mjaiHora(e, rons, e.LastDiscardFrom))
		e.endKyoku(rons)
		return StepResult{Phase: e.Phase, EndedKyoku: true}, nil
	}

	if callClaim != nil {
		return e.installCall(callSeat, *callClaim)
	}

	e.firstTurnUninterrupted = false
	next := (e.LastDiscardFrom + 1) % 4
	e.ActiveSeat = next
	e.Phase = WaitAct
	e.clearIppatsuAll()
	e.draw(next)
	if e.Ended {
		return StepResult{Phase: e.Phase, EndedGame: true}, nil
	}
	return StepResult{Phase: e.Phase, ActiveSeats: []int{next}}, nil
}

// sortBySeatFrom orders seats by clockwise distance from discarder, so the
// kyotaku stake is awarded deterministically to the closest winner in a
// multi-ron (the conventional priority even though this engine pays every
// ron winner in full per spec §4.5/§9's "all rons pay" choice).
func sortBySeatFrom(seats []int, from int) {
	dist := func(s int) int { return (s - from + 4) % 4 }
	for i := 1; i < len(seats); i++ {
		for j := i; j > 0 && dist(seats[j]) < dist(seats[j-1]); j-- {
			seats[j], seats[j-1] = seats[j-1], seats[j]
		}
	}
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func (e *Env) installCall(seat int, act action.Action) (StepResult, error) {
	s := e.Seats[seat]
	discarder := e.LastDiscardFrom
	var meldKind hand.MeldKind
	switch act.Kind {
	case action.Chi:
		meldKind = hand.Chi
	case action.Pon:
		meldKind = hand.Pon
	case action.Daiminkan:
		meldKind = hand.Minkan
	}
	for _, k := range act.Consume {
		s.Hand.RemoveKind(k)
	}
	tiles := append(append([]tile.Kind{}, act.Consume...), e.LastDiscard)
	sortKinds(tiles)
	s.Hand.Melds = append(s.Hand.Melds, hand.Meld{Kind: meldKind, Tiles: tiles, From: discarder, CalledTile: e.LastDiscard})
	e.Seats[discarder].River[len(e.Seats[discarder].River)-1] = action.RiverTile{Kind: e.LastDiscard, Tsumogiri: e.Seats[discarder].River[len(e.Seats[discarder].River)-1].Tsumogiri}
	e.Seats[discarder].NagashiEligible = false
	e.noCallsYet = false
	e.firstTurnUninterrupted = false
	e.clearIppatsuAll()

	switch meldKind {
	case hand.Chi:
		e.emit(mjaiChi(e, seat, discarder, tiles))
	case hand.Pon:
		e.emit(mjaiPon(e, seat, discarder, tiles))
	case hand.Minkan:
		e.emit(mjaiDaiminkan(e, seat, discarder, tiles))
		e.kansThisKyoku++
		id, ok := e.Wall.DrawRinshan()
		if ok {
			s.Hand.AddTile(id)
			e.Wall.RevealDoraIndicator()
			e.emit(mjaiDora(e))
		}
		if e.kansThisKyoku >= 4 && !allKansFromSameSeat(e) {
			e.abortiveDraw("four_kan")
			return StepResult{Phase: e.Phase, EndedKyoku: true}, nil
		}
	}

	e.ActiveSeat = seat
	e.Phase = WaitAct
	return StepResult{Phase: e.Phase, ActiveSeats: []int{seat}}, nil
}

func sortKinds(ks []tile.Kind) {
	for i := 1; i < len(ks); i++ {
		for j := i; j > 0 && ks[j] < ks[j-1]; j-- {
			ks[j], ks[j-1] = ks[j-1], ks[j]
		}
	}
}

func (e *Env) clearIppatsuAll() {
	for _, s := range e.Seats {
		s.Ippatsu = false
	}
}

func (e *Env) computeForbiddenDiscards(s *seatState) map[tile.Kind]bool {
	waits := agari.WaitingKinds(s.Hand.FullCounts(), s.Hand.Melds)
	waitSet := map[tile.Kind]bool{}
	for _, w := range waits {
		waitSet[w] = true
	}
	forbidden := map[tile.Kind]bool{}
	for k := 0; k < tile.NumKinds; k++ {
		if s.Hand.Counts[k] == 0 {
			continue
		}
		trial := s.Hand.Counts
		trial[k]--
		newWaits := agari.WaitingKinds(trial, s.Hand.Melds)
		if !sameWaitSet(newWaits, waitSet) {
			forbidden[tile.Kind(k)] = true
		}
	}
	return forbidden
}

func sameWaitSet(waits []tile.Kind, set map[tile.Kind]bool) bool {
	if len(waits) != len(set) {
		return false
	}
	for _, w := range waits {
		if !set[w] {
			return false
		}
	}
	return true
}

// abortiveDraw ends the kyoku with no score transfer, advancing per spec
// §4.5's renchan rule (dealer keeps seat on an abortive draw).
func (e *Env) abortiveDraw(reason string) {
	e.emit(mjaiRyukyoku(e, reason))
	e.advanceKyoku(true)
}

// resolveExhaustiveDraw implements the canonical 1000/1500/3000-by-tenpai-
// count schedule (spec §4.5 redesign note 1), plus the nagashi-mangan
// override.
func (e *Env) resolveExhaustiveDraw() {
	if seat, ok := e.nagashiWinner(); ok {
		e.payoutNagashi(seat)
		e.emit(mjaiHora(e, []int{seat}, -1))
		e.endKyoku([]int{seat})
		return
	}

	tenpaiSeats := []int{}
	for i, s := range e.Seats {
		if agari.IsTenpai(s.Hand.Counts, s.Hand.Melds) {
			tenpaiSeats = append(tenpaiSeats, i)
		}
	}
	n := len(tenpaiSeats)
	if n > 0 && n < 4 {
		var payEach, collectEach int
		switch n {
		case 1:
			payEach, collectEach = 1000, 3000
		case 2:
			payEach, collectEach = 1500, 1500
		case 3:
			payEach, collectEach = 3000, 1000
		}
		tenpaiSet := map[int]bool{}
		for _, t := range tenpaiSeats {
			tenpaiSet[t] = true
		}
		for i := 0; i < 4; i++ {
			if tenpaiSet[i] {
				e.Seats[i].Score += collectEach
			} else {
				e.Seats[i].Score -= payEach
			}
		}
	}

	e.emit(mjaiRyukyoku(e, "howanpai"))
	dealerTenpai := false
	for _, t := range tenpaiSeats {
		if t == e.DealerSeat {
			dealerTenpai = true
		}
	}
	e.advanceKyoku(dealerTenpai)
}

// nagashiWinner reports the seat (if any) achieving nagashi-mangan: an
// all-terminal-honor river with no tile called by a rival.
func (e *Env) nagashiWinner() (int, bool) {
	for i, s := range e.Seats {
		if !s.NagashiEligible || len(s.River) == 0 {
			continue
		}
		all := true
		for _, r := range s.River {
			if !r.Kind.IsTerminalOrHonor() {
				all = false
				break
			}
		}
		if all {
			return i, true
		}
	}
	return 0, false
}

func (e *Env) payoutNagashi(seat int) {
	isOya := seat == e.DealerSeat
	for i := 0; i < 4; i++ {
		if i == seat {
			continue
		}
		amt := 1000
		if isOya {
			amt = 2000
		} else if i == e.DealerSeat {
			amt = 2000
		}
		e.Seats[i].Score -= amt
		e.Seats[seat].Score += amt
	}
}

func (e *Env) endKyoku(winners []int) {
	dealerWon := containsInt(winners, e.DealerSeat)
	e.advanceKyoku(dealerWon)
}

// advanceKyoku applies spec §4.5's renchan/rotation/round-advance rule and
// §4.5 redesign note 3's generalized match-end check. dealerKeepsSeat is
// true for a dealer win, an abortive draw, or an exhaustive draw with dealer
// tenpai; honba increments whenever the dealer keeps the seat and resets to
// zero whenever the dealer rotates away (a non-dealer win or an exhaustive
// draw with the dealer noten).
func (e *Env) advanceKyoku(dealerKeepsSeat bool) {
	e.emit(mjaiEndKyoku(e))
	if dealerKeepsSeat {
		e.Honba++
	} else {
		e.Honba = 0
		e.DealerSeat = (e.DealerSeat + 1) % 4
		e.KyokuIdx++
		if e.DealerSeat == 0 {
			e.RoundWind++
			e.KyokuIdx = 0
		}
	}

	if e.checkMatchEnd() {
		e.Ended = true
		e.Phase = DoneGame
		e.emit(mjaiEndGame(e))
		return
	}
	e.Phase = DoneKyoku
	e.startKyoku()
}

// checkMatchEnd implements spec §4.5 redesign note 3 / §6's game-type rule.
func (e *Env) checkMatchEnd() bool {
	for _, s := range e.Seats {
		if s.Score < 0 {
			return true
		}
	}
	// kyokuOrdinal is computed after advanceKyoku's rotation, so it already
	// names the kyoku about to start; the match is over once that kyoku
	// would fall past the last one configured to be played, not when it
	// merely reaches it.
	kyokuOrdinal := int(e.RoundWind-tile.East)*4 + e.KyokuIdx
	switch e.GameType {
	case EastOnly, EastSouth:
		return kyokuOrdinal > e.LastKyoku
	case EastSouthSuddenDeath:
		if kyokuOrdinal <= e.LastKyoku {
			return false
		}
		for _, s := range e.Seats {
			if s.Score >= 30000 {
				return true
			}
		}
		return false
	}
	return false
}

// Scores implements the `scores()` control-interface entry.
func (e *Env) Scores() [4]int {
	var out [4]int
	for i, s := range e.Seats {
		out[i] = s.Score
	}
	return out
}

// MjaiLogs implements `mjai_log(per_player?)`: without per-player redaction
// this is the canonical full log; callers wanting per-seat redaction should
// use mjai.Redact (package mahjongcore/internal/mahjong/mjai).
func (e *Env) MjaiLogs() []string { return e.MjaiLog }

// FinalRankRewards returns each seat's terminal reward by final standing,
// valid only once Ended is true; ties are broken by seat order, matching
// the original_source training harness's stable-sort convention.
func (e *Env) FinalRankRewards() [4]float64 {
	var out [4]float64
	if !e.Ended {
		return out
	}
	order := [4]int{0, 1, 2, 3}
	scores := e.Scores()
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && scores[order[j]] > scores[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	for rank, seat := range order {
		out[seat] = RankRewards[rank]
	}
	return out
}

func (e *Env) emit(line string) { e.MjaiLog = append(e.MjaiLog, line) }
