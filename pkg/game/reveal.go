package game

import (
	"sort"

	"github.com/cbodonnell/grouphell/pkg/game/constants"
	"github.com/cbodonnell/grouphell/pkg/game/types"
)

// RankScores orders the roster by scores, highest first. Players with equal
// scores keep their roster order. Ranks are 1-based positions in the
// resulting order.
func RankScores(state *types.GameState, scores []int) []types.Standing {
	standings := make([]types.Standing, len(state.Players))
	for i, name := range state.Players {
		standings[i] = types.Standing{
			Player: name,
			Role:   state.Roles[i],
			Score:  scores[i],
		}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// Ranking orders the roster by public score.
func Ranking(state *types.GameState) []types.Standing {
	return RankScores(state, state.Scores())
}

// MaybeReveal reveals the role of the highest ranked player whose role is
// still hidden and returns that player's standing. Nothing is revealed
// before the reveal round or once every role is public. At most one role
// is revealed per call.
func MaybeReveal(state *types.GameState) (types.Standing, bool, error) {
	if state.Round < constants.RoleRevealRound {
		return types.Standing{}, false, nil
	}
	for _, standing := range Ranking(state) {
		if state.IsRevealed(standing.Player) {
			continue
		}
		if err := state.Reveal(standing.Player); err != nil {
			return types.Standing{}, false, err
		}
		return standing, true, nil
	}
	return types.Standing{}, false, nil
}
