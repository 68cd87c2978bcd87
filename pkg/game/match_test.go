package game

import (
	"testing"

	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, players []string, roles []types.Role) *types.GameState {
	t.Helper()
	state, err := types.NewGameState(players, roles)
	require.NoError(t, err)
	return state
}

func TestResolvePairs(t *testing.T) {
	roster := []string{"A", "B", "C", "D", "E"}
	tests := []struct {
		name  string
		picks map[string]string
		want  []types.Pair
	}{
		{
			name:  "two mutual pairs",
			picks: map[string]string{"A": "B", "B": "A", "C": "D", "D": "C", "E": "A"},
			want:  []types.Pair{{A: "A", B: "B"}, {A: "C", B: "D"}},
		},
		{
			name:  "roster order decides A",
			picks: map[string]string{"A": "C", "B": "E", "C": "D", "D": "A", "E": "B"},
			want:  []types.Pair{{A: "B", B: "E"}},
		},
		{
			name:  "cycle has no pairs",
			picks: map[string]string{"A": "B", "B": "C", "C": "A", "D": "E", "E": "A"},
			want:  []types.Pair{},
		},
		{
			name:  "missing picks are ignored",
			picks: map[string]string{"A": "B", "B": "A"},
			want:  []types.Pair{{A: "A", B: "B"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePairs(roster, tt.picks)
			assert.Equal(t, tt.want, got)

			partners := Partners(got)
			seen := make(map[string]int)
			for a, b := range partners {
				assert.Equal(t, a, partners[b], "partner of %s's partner", a)
				assert.Equal(t, b, tt.picks[a])
				seen[a]++
			}
			for name, n := range seen {
				assert.Equal(t, 1, n, "%s paired more than once", name)
			}
		})
	}
}

func TestCountRejections(t *testing.T) {
	tests := []struct {
		name  string
		picks map[string]string
		want  map[string]int
	}{
		{
			name:  "everyone reciprocated",
			picks: map[string]string{"A": "B", "B": "A", "C": "D", "D": "C"},
			want:  map[string]int{},
		},
		{
			name:  "one rejection per picker",
			picks: map[string]string{"X": "F", "Y": "F", "F": "Z", "Z": "F"},
			want:  map[string]int{"F": 2},
		},
		{
			name:  "chain",
			picks: map[string]string{"A": "B", "B": "C", "C": "A"},
			want:  map[string]int{"A": 1, "B": 1, "C": 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountRejections(tt.picks))
		})
	}
}

func TestValidatePicks(t *testing.T) {
	state := newTestState(t, []string{"A", "B", "C"}, []types.Role{types.RoleSlacker, types.RoleThief, types.RoleSnitch})

	tests := []struct {
		name    string
		picks   map[string]string
		wantErr bool
	}{
		{
			name:  "valid",
			picks: map[string]string{"A": "B", "B": "C", "C": "A"},
		},
		{
			name:    "missing pick",
			picks:   map[string]string{"A": "B", "B": "A"},
			wantErr: true,
		},
		{
			name:    "unknown picker",
			picks:   map[string]string{"A": "B", "B": "A", "Z": "A"},
			wantErr: true,
		},
		{
			name:    "unknown target",
			picks:   map[string]string{"A": "B", "B": "A", "C": "Z"},
			wantErr: true,
		},
		{
			name:    "self pick",
			picks:   map[string]string{"A": "B", "B": "A", "C": "C"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePicks(state, tt.picks)
			if tt.wantErr {
				assert.True(t, types.IsIntegrityError(err), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
