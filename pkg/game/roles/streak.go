package roles

import (
	"github.com/cbodonnell/grouphell/pkg/game/constants"
	"github.com/cbodonnell/grouphell/pkg/game/types"
)

// streak remembers the partner of the previous round. A round without a
// pairing breaks the streak.
type streak struct {
	previous string
}

// extend records partner and reports whether it repeats the previous round.
func (s *streak) extend(partner string) bool {
	if s.previous == partner {
		return true
	}
	s.previous = partner
	return false
}

func (s *streak) reset() {
	s.previous = ""
}

// Previous returns the partner of the previous round, or "".
func (s *streak) Previous() string {
	return s.previous
}

// Leech takes half of its partner's points when paired with the same
// partner two rounds in a row.
type Leech struct {
	base
	streak
}

func (l *Leech) OnInit() {
	l.base.OnInit()
	l.reset()
}

func (l *Leech) RoundBonus(state *types.GameState, _ *Round, partner string) error {
	if !l.extend(partner) {
		return nil
	}
	partnerScore, err := state.Score(partner)
	if err != nil {
		return err
	}
	return state.AdjustScore(l.name, floorHalf(partnerScore))
}

func (l *Leech) Unmatched(_ *types.GameState, _ *Round) error {
	l.reset()
	return nil
}

// TeamPlayer rewards itself and its partner when paired with the same
// partner two rounds in a row.
type TeamPlayer struct {
	base
	streak
}

func (p *TeamPlayer) OnInit() {
	p.base.OnInit()
	p.reset()
}

func (p *TeamPlayer) RoundBonus(state *types.GameState, _ *Round, partner string) error {
	if !p.extend(partner) {
		return nil
	}
	if err := state.AdjustScore(p.name, constants.TeamPlayerBonus); err != nil {
		return err
	}
	return state.AdjustScore(partner, constants.TeamPlayerBonus)
}

func (p *TeamPlayer) Unmatched(_ *types.GameState, _ *Round) error {
	p.reset()
	return nil
}

// Schadenfreuder scores when it finds a partner in a round where its
// enemy does not. An unmatched schadenfreuder gets nothing.
type Schadenfreuder struct {
	base
	enemy string
}

func (s *Schadenfreuder) AssignEnemy(name string) {
	s.enemy = name
}

func (s *Schadenfreuder) Enemy() string {
	return s.enemy
}

func (s *Schadenfreuder) RoundBonus(state *types.GameState, round *Round, _ string) error {
	if s.enemy == "" || round.IsMatched(s.enemy) {
		return nil
	}
	if _, err := state.Index(s.enemy); err != nil {
		return err
	}
	return state.AdjustScore(s.name, constants.SchadenfreudeBonus)
}

// floorHalf divides by two rounding toward negative infinity.
func floorHalf(n int) int {
	q := n / 2
	if n%2 != 0 && n < 0 {
		q--
	}
	return q
}
