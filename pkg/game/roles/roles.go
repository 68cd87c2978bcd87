// Package roles implements the scoring behavior of every role.
//
// A behavior is created once per player from the player's role tag and
// owns that player's role-private state (counters, previous partner,
// enemy). Behaviors only change scores through the GameState methods.
package roles

import (
	"github.com/cbodonnell/grouphell/pkg/game/constants"
	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/cbodonnell/grouphell/pkg/queue"
)

// Behavior is the scoring contract implemented by every role.
type Behavior interface {
	// Name returns the player owning the behavior.
	Name() string
	// Role returns the role tag of the behavior.
	Role() types.Role
	// Label returns the display label set by OnInit.
	Label() string
	// OnInit sets the display label and resets role-private counters.
	OnInit()
	// RoundBonus is invoked for a player paired with partner this round,
	// after the flat match point was awarded.
	RoundBonus(state *types.GameState, round *Round, partner string) error
	// Unmatched is invoked for a player that was not paired this round.
	Unmatched(state *types.GameState, round *Round) error
	// FinalBonus is invoked once at game end and returns the final score.
	FinalBonus(state *types.GameState) (int, error)
}

// RejectionTracker is implemented by behaviors that score the picks
// aimed at their player which the player did not return.
type RejectionTracker interface {
	ReceiveRejections(n int)
}

// EnemyHolder is implemented by behaviors that are assigned an enemy
// at game start.
type EnemyHolder interface {
	AssignEnemy(name string)
	Enemy() string
}

// Round is what a behavior can observe about the round being scored.
type Round struct {
	// Number is the index of the round
	Number int
	// Partners maps every paired player to their partner
	Partners map[string]string
	// Whispers receives private announcements produced by behaviors
	Whispers queue.Queue[types.Announcement]
}

// IsMatched reports whether name was paired this round.
func (r *Round) IsMatched(name string) bool {
	_, ok := r.Partners[name]
	return ok
}

// Whisper queues a private announcement. It is dropped when the round
// has no whisper queue.
func (r *Round) Whisper(a types.Announcement) error {
	if r.Whispers == nil {
		return nil
	}
	return r.Whispers.Enqueue(a)
}

// New returns the behavior for role, owned by player name.
func New(role types.Role, name string) (Behavior, error) {
	b := base{name: name, role: role}
	switch role {
	case types.RoleDefault:
		return &Default{base: b}, nil
	case types.RoleSlacker:
		return &Slacker{base: b}, nil
	case types.RoleThief:
		return &Thief{base: b}, nil
	case types.RoleSnitch:
		return &Snitch{base: b}, nil
	case types.RoleCSGod:
		return &CSGod{base: b}, nil
	case types.RoleFlake:
		return &Flake{base: b}, nil
	case types.RoleGossip:
		return &Gossip{base: b}, nil
	case types.RoleLeech:
		return &Leech{base: b}, nil
	case types.RoleTeamPlayer:
		return &TeamPlayer{base: b}, nil
	case types.RoleSchadenfreuder:
		return &Schadenfreuder{base: b}, nil
	case types.RoleHacker:
		return &Hacker{base: b}, nil
	default:
		return nil, types.NewIntegrityError("no behavior for role %q", role)
	}
}

var (
	smallPool = []types.Role{
		types.RoleTeamPlayer,
		types.RoleSchadenfreuder,
		types.RoleSlacker,
		types.RoleThief,
		types.RoleSnitch,
		types.RoleFlake,
		types.RoleLeech,
	}
	mediumPool = []types.Role{
		types.RoleSlacker,
		types.RoleThief,
		types.RoleSnitch,
		types.RoleCSGod,
		types.RoleLeech,
		types.RoleTeamPlayer,
		types.RoleSchadenfreuder,
	}
	largePool = []types.Role{
		types.RoleSlacker,
		types.RoleThief,
		types.RoleSnitch,
		types.RoleCSGod,
		types.RoleFlake,
		types.RoleGossip,
		types.RoleLeech,
		types.RoleTeamPlayer,
		types.RoleSchadenfreuder,
		types.RoleHacker,
	}
)

// PoolFor returns a copy of the role pool roles are drawn from in a game
// of n players.
func PoolFor(n int) ([]types.Role, error) {
	var pool []types.Role
	switch {
	case n < constants.MinPlayers || n > constants.MaxPlayers:
		return nil, types.NewConfigurationError("no role pool for %d players", n)
	case n <= 4:
		pool = smallPool
	case n == 5:
		pool = mediumPool
	default:
		pool = largePool
	}
	return append([]types.Role(nil), pool...), nil
}
