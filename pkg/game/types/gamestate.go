package types

import (
	"time"

	"github.com/cbodonnell/grouphell/pkg/game/constants"
)

// GameState is the ledger of one game. It is owned by a single game
// manager and passed explicitly to every engine operation.
//
// Public scores are only changed through AwardMatchPoint, AdjustScore and
// SwapScores.
type GameState struct {
	// Round is the index of the current round, from 0 to MaxRounds
	Round int
	// MaxRounds is the number of rounds in the game
	MaxRounds int
	// Players lists player names in roster order
	Players []string
	// Roles holds the role of each player, aligned with Players
	Roles []Role
	// PlayerDict maps player names to their roster index
	PlayerDict map[string]int
	// RoundTimes holds the advisory messaging window of each round
	RoundTimes []time.Duration

	scores      []int
	publicRoles map[string]struct{}
	revealOrder []string
}

// NewGameState validates the roster and builds the state for round 0.
func NewGameState(players []string, roles []Role) (*GameState, error) {
	n := len(players)
	if n < constants.MinPlayers || n > constants.MaxPlayers {
		return nil, NewConfigurationError("player count %d outside [%d, %d]", n, constants.MinPlayers, constants.MaxPlayers)
	}
	if len(roles) != n {
		return nil, NewIntegrityError("%d roles for %d players", len(roles), n)
	}

	playerDict := make(map[string]int, n)
	for i, name := range players {
		if name == "" {
			return nil, NewIntegrityError("player %d has an empty name", i+1)
		}
		if _, ok := playerDict[name]; ok {
			return nil, NewIntegrityError("duplicate player name %q", name)
		}
		playerDict[name] = i
	}

	seenRoles := make(map[Role]struct{}, n)
	for _, role := range roles {
		if !role.Valid() {
			return nil, NewIntegrityError("unknown role %q", role)
		}
		if _, ok := seenRoles[role]; ok {
			return nil, NewIntegrityError("role %q assigned twice", role)
		}
		seenRoles[role] = struct{}{}
	}

	maxRounds := constants.MaxRounds(n)
	roundTimes := make([]time.Duration, maxRounds)
	for i := range roundTimes {
		roundTimes[i] = constants.RoundTime(i)
	}

	return &GameState{
		Round:       0,
		MaxRounds:   maxRounds,
		Players:     append([]string(nil), players...),
		Roles:       append([]Role(nil), roles...),
		PlayerDict:  playerDict,
		RoundTimes:  roundTimes,
		scores:      make([]int, n),
		publicRoles: make(map[string]struct{}, n),
	}, nil
}

// Index returns the roster index of name.
func (g *GameState) Index(name string) (int, error) {
	i, ok := g.PlayerDict[name]
	if !ok {
		return 0, NewIntegrityError("unknown player %q", name)
	}
	return i, nil
}

// RoleOf returns the role assigned to name.
func (g *GameState) RoleOf(name string) (Role, error) {
	i, err := g.Index(name)
	if err != nil {
		return "", err
	}
	return g.Roles[i], nil
}

// Score returns the public score of name.
func (g *GameState) Score(name string) (int, error) {
	i, err := g.Index(name)
	if err != nil {
		return 0, err
	}
	return g.scores[i], nil
}

// Scores returns a copy of the public scores in roster order.
func (g *GameState) Scores() []int {
	return append([]int(nil), g.scores...)
}

// TotalScore returns the sum of all public scores.
func (g *GameState) TotalScore() int {
	total := 0
	for _, s := range g.scores {
		total += s
	}
	return total
}

// AwardMatchPoint adds the flat pairing point to name.
func (g *GameState) AwardMatchPoint(name string) error {
	return g.AdjustScore(name, constants.MatchPoint)
}

// AdjustScore adds delta to the public score of name.
func (g *GameState) AdjustScore(name string, delta int) error {
	i, err := g.Index(name)
	if err != nil {
		return err
	}
	g.scores[i] += delta
	return nil
}

// SwapScores exchanges the public scores of a and b.
func (g *GameState) SwapScores(a, b string) error {
	i, err := g.Index(a)
	if err != nil {
		return err
	}
	j, err := g.Index(b)
	if err != nil {
		return err
	}
	g.scores[i], g.scores[j] = g.scores[j], g.scores[i]
	return nil
}

// Reveal makes the role of name public. Revealing twice is a no-op.
func (g *GameState) Reveal(name string) error {
	if _, err := g.Index(name); err != nil {
		return err
	}
	if g.IsRevealed(name) {
		return nil
	}
	g.publicRoles[name] = struct{}{}
	g.revealOrder = append(g.revealOrder, name)
	return nil
}

// IsRevealed reports whether the role of name is public.
func (g *GameState) IsRevealed(name string) bool {
	_, ok := g.publicRoles[name]
	return ok
}

// Revealed returns revealed players in the order they were revealed.
func (g *GameState) Revealed() []string {
	return append([]string(nil), g.revealOrder...)
}

// AdvanceRound moves to the next round.
func (g *GameState) AdvanceRound() {
	g.Round++
}

// Finished reports whether every round has been played.
func (g *GameState) Finished() bool {
	return g.Round >= g.MaxRounds
}

// Copy returns a deep copy of the game state.
func (g *GameState) Copy() *GameState {
	playerDict := make(map[string]int, len(g.PlayerDict))
	for k, v := range g.PlayerDict {
		playerDict[k] = v
	}
	publicRoles := make(map[string]struct{}, len(g.publicRoles))
	for k := range g.publicRoles {
		publicRoles[k] = struct{}{}
	}
	return &GameState{
		Round:       g.Round,
		MaxRounds:   g.MaxRounds,
		Players:     append([]string(nil), g.Players...),
		Roles:       append([]Role(nil), g.Roles...),
		PlayerDict:  playerDict,
		RoundTimes:  append([]time.Duration(nil), g.RoundTimes...),
		scores:      g.Scores(),
		publicRoles: publicRoles,
		revealOrder: g.Revealed(),
	}
}
