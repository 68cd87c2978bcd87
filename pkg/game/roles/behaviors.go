package roles

import (
	"github.com/cbodonnell/grouphell/pkg/game/constants"
	"github.com/cbodonnell/grouphell/pkg/game/types"
)

// base carries the fields shared by every behavior and the no-op hooks.
type base struct {
	name  string
	role  types.Role
	label string
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Role() types.Role {
	return b.role
}

func (b *base) Label() string {
	return b.label
}

func (b *base) OnInit() {
	b.label = b.role.Label()
}

func (b *base) RoundBonus(_ *types.GameState, _ *Round, _ string) error {
	return nil
}

func (b *base) Unmatched(_ *types.GameState, _ *Round) error {
	return nil
}

func (b *base) FinalBonus(state *types.GameState) (int, error) {
	return state.Score(b.name)
}

// Default has no special ability and always finishes with 0.
type Default struct {
	base
}

func (d *Default) FinalBonus(_ *types.GameState) (int, error) {
	return 0, nil
}

// Slacker drags itself and its partner down on every pairing, then
// cashes in one point per pairing at the end of the game.
type Slacker struct {
	base
	pairings int
}

func (s *Slacker) OnInit() {
	s.base.OnInit()
	s.pairings = 0
}

func (s *Slacker) RoundBonus(state *types.GameState, _ *Round, partner string) error {
	if err := state.AdjustScore(s.name, -constants.SlackerPenalty); err != nil {
		return err
	}
	if err := state.AdjustScore(partner, -constants.SlackerPenalty); err != nil {
		return err
	}
	s.pairings++
	return nil
}

// Pairings returns the pairings not yet cashed in.
func (s *Slacker) Pairings() int {
	return s.pairings
}

func (s *Slacker) FinalBonus(state *types.GameState) (int, error) {
	if err := state.AdjustScore(s.name, s.pairings); err != nil {
		return 0, err
	}
	s.pairings = 0
	return state.Score(s.name)
}

// Thief steals from any partner that is neither a slacker nor a thief.
type Thief struct {
	base
}

func (t *Thief) RoundBonus(state *types.GameState, _ *Round, partner string) error {
	partnerRole, err := state.RoleOf(partner)
	if err != nil {
		return err
	}
	if partnerRole == types.RoleSlacker || partnerRole == types.RoleThief {
		return nil
	}
	return transfer(state, partner, t.name, constants.ThiefSteal)
}

// Snitch takes points from a slacker or thief partner.
type Snitch struct {
	base
}

func (s *Snitch) RoundBonus(state *types.GameState, _ *Round, partner string) error {
	partnerRole, err := state.RoleOf(partner)
	if err != nil {
		return err
	}
	if partnerRole != types.RoleSlacker && partnerRole != types.RoleThief {
		return nil
	}
	return transfer(state, partner, s.name, constants.SnitchSteal)
}

// CSGod collects a flat bonus at the final tally.
type CSGod struct {
	base
	awarded bool
}

func (g *CSGod) OnInit() {
	g.base.OnInit()
	g.awarded = false
}

func (g *CSGod) FinalBonus(state *types.GameState) (int, error) {
	if !g.awarded {
		if err := state.AdjustScore(g.name, constants.CSGodBonus); err != nil {
			return 0, err
		}
		g.awarded = true
	}
	return state.Score(g.name)
}

// Flake profits from every player it stood up this round, and loses a
// point when nobody tried to pair with it.
type Flake struct {
	base
	rejections int
}

func (f *Flake) OnInit() {
	f.base.OnInit()
	f.rejections = 0
}

func (f *Flake) ReceiveRejections(n int) {
	f.rejections += n
}

// Rejections returns the count received for the round being scored.
func (f *Flake) Rejections() int {
	return f.rejections
}

func (f *Flake) RoundBonus(state *types.GameState, _ *Round, _ string) error {
	delta := f.rejections
	if delta == 0 {
		delta = -constants.FlakePenalty
	}
	f.rejections = 0
	return state.AdjustScore(f.name, delta)
}

func (f *Flake) Unmatched(_ *types.GameState, _ *Round) error {
	f.rejections = 0
	return nil
}

// Gossip learns the role of every partner.
type Gossip struct {
	base
}

func (g *Gossip) RoundBonus(state *types.GameState, round *Round, partner string) error {
	partnerRole, err := state.RoleOf(partner)
	if err != nil {
		return err
	}
	return round.Whisper(types.Announcement{
		Kind:    types.AnnouncementGossip,
		Player:  g.name,
		Subject: partner,
		Role:    partnerRole,
		Round:   round.Number,
	})
}

// Hacker swaps scores with every partner.
type Hacker struct {
	base
}

func (h *Hacker) RoundBonus(state *types.GameState, _ *Round, partner string) error {
	return state.SwapScores(h.name, partner)
}

// transfer moves amount points from one player to another.
func transfer(state *types.GameState, from, to string, amount int) error {
	if err := state.AdjustScore(from, -amount); err != nil {
		return err
	}
	return state.AdjustScore(to, amount)
}
