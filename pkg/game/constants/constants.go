package constants

import "time"

const (
	// MinPlayers is the minimum number of players in a game
	MinPlayers int = 3
	// MaxPlayers is the maximum number of players in a game
	MaxPlayers int = 8

	// MinRoundNum is the minimum number of matching rounds
	MinRoundNum int = 4
	// MaxRoundNum is the maximum number of matching rounds
	MaxRoundNum int = 6

	// MinMessageTimer is the advisory messaging window of the opening rounds
	MinMessageTimer time.Duration = 90 * time.Second
	// MaxMessageTimer is the advisory messaging window of every later round
	MaxMessageTimer time.Duration = 120 * time.Second
	// ShortRounds is the number of opening rounds that use MinMessageTimer
	ShortRounds int = 2

	// RoleRevealRound is the first round index at which the leader's role is revealed
	RoleRevealRound int = 2

	// MatchPoint is awarded to both players of a successful pairing
	MatchPoint int = 1
	// SlackerPenalty is taken from the slacker and their partner on every pairing
	SlackerPenalty int = 1
	// ThiefSteal is moved from the partner to the thief
	ThiefSteal int = 1
	// SnitchSteal is moved from a slacker or thief partner to the snitch
	SnitchSteal int = 2
	// CSGodBonus is added to the CS god's score at the final tally
	CSGodBonus int = 3
	// FlakePenalty is taken from a flake nobody tried to pair with
	FlakePenalty int = 1
	// TeamPlayerBonus is given to a team player and their partner on a streak
	TeamPlayerBonus int = 1
	// SchadenfreudeBonus is given when the schadenfreuder's enemy goes unmatched
	SchadenfreudeBonus int = 1
)

// MaxRounds returns the number of rounds for a game of n players.
// The player count is clamped into [MinRoundNum, MaxRoundNum].
func MaxRounds(n int) int {
	if n < MinRoundNum {
		return MinRoundNum
	}
	if n > MaxRoundNum {
		return MaxRoundNum
	}
	return n
}

// RoundTime returns the advisory messaging window for a round index.
func RoundTime(round int) time.Duration {
	if round < ShortRounds {
		return MinMessageTimer
	}
	return MaxMessageTimer
}
