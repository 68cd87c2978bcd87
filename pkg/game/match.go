package game

import (
	"github.com/cbodonnell/grouphell/pkg/game/types"
)

// ValidatePicks checks that picks holds exactly one pick for every roster
// player and that every pick names another roster player.
func ValidatePicks(state *types.GameState, picks map[string]string) error {
	if len(picks) != len(state.Players) {
		return types.NewIntegrityError("%d picks for %d players", len(picks), len(state.Players))
	}
	for picker, target := range picks {
		if _, err := state.Index(picker); err != nil {
			return err
		}
		if _, err := state.Index(target); err != nil {
			return err
		}
		if picker == target {
			return types.NewIntegrityError("player %q picked themselves", picker)
		}
	}
	return nil
}

// ResolvePairs returns every mutual pick in picks. A player appears in at
// most one pair. Pairs follow the order of roster, with A being the player
// listed first.
func ResolvePairs(roster []string, picks map[string]string) []types.Pair {
	pairs := make([]types.Pair, 0, len(roster)/2)
	paired := make(map[string]struct{}, len(roster))
	for _, a := range roster {
		if _, ok := paired[a]; ok {
			continue
		}
		b, ok := picks[a]
		if !ok || b == a || picks[b] != a {
			continue
		}
		paired[a] = struct{}{}
		paired[b] = struct{}{}
		pairs = append(pairs, types.Pair{A: a, B: b})
	}
	return pairs
}

// CountRejections returns, for every player picked at least once, how many
// pickers were not picked back.
func CountRejections(picks map[string]string) map[string]int {
	rejections := make(map[string]int)
	for picker, target := range picks {
		if picks[target] == picker {
			continue
		}
		rejections[target]++
	}
	return rejections
}

// Partners maps both members of every pair to each other.
func Partners(pairs []types.Pair) map[string]string {
	partners := make(map[string]string, 2*len(pairs))
	for _, p := range pairs {
		partners[p.A] = p.B
		partners[p.B] = p.A
	}
	return partners
}
