package types

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the state of a game manager.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseInRound
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseInRound:
		return "in_round"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Pair is a successful pairing. A precedes B in roster order.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Standing is one row of the final ranking.
type Standing struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Role   Role   `json:"role"`
	Score  int    `json:"score"`
}

// GameRecord describes a game when it starts.
type GameRecord struct {
	ID        uuid.UUID `json:"id"`
	StartedAt time.Time `json:"startedAt"`
	Players   []string  `json:"players"`
	Roles     []Role    `json:"roles"`
	MaxRounds int       `json:"maxRounds"`
}

// RoundRecord is the outcome of one played round.
type RoundRecord struct {
	Round    int               `json:"round"`
	Picks    map[string]string `json:"picks"`
	Pairs    []Pair            `json:"pairs"`
	Scores   []int             `json:"scores"`
	Revealed string            `json:"revealed,omitempty"`
}

// GameResult is the final ranking of a finished game.
type GameResult struct {
	GameID     uuid.UUID  `json:"gameId"`
	FinishedAt time.Time  `json:"finishedAt"`
	Standings  []Standing `json:"standings"`
}

// Winner returns the first-ranked player, if any.
func (r *GameResult) Winner() (Standing, bool) {
	if len(r.Standings) == 0 {
		return Standing{}, false
	}
	return r.Standings[0], true
}
