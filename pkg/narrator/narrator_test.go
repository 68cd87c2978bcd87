package narrator

import (
	"testing"
	"time"

	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestParsePlayerCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "minimum", input: "3", want: 3},
		{name: "maximum", input: "8", want: 8},
		{name: "surrounding space", input: " 5 \r", want: 5},
		{name: "too few", input: "2", wantErr: true},
		{name: "too many", input: "9", wantErr: true},
		{name: "not a number", input: "four", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlayerCount(tt.input)
			if tt.wantErr {
				assert.True(t, IsInputValidationError(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateName(t *testing.T) {
	taken := []string{"Ana", "Zo\u00eb"}
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "new name", input: "Bo", want: "Bo"},
		{name: "trimmed", input: "  Bo  ", want: "Bo"},
		{name: "empty", input: "   ", wantErr: true},
		{name: "duplicate", input: "Ana", wantErr: true},
		{name: "duplicate after normalization", input: "Zoe\u0308", wantErr: true},
		{name: "case differs", input: "ana", want: "ana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input, taken)
			if tt.wantErr {
				assert.True(t, IsInputValidationError(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePick(t *testing.T) {
	roster := []string{"A", "B", "C"}
	tests := []struct {
		name    string
		player  string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", player: "A", input: "B", want: "B"},
		{name: "trimmed", player: "A", input: " C ", want: "C"},
		{name: "self pick", player: "A", input: "A", wantErr: true},
		{name: "unknown", player: "A", input: "D", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePick(tt.player, tt.input, roster)
			if tt.wantErr {
				assert.True(t, IsInputValidationError(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhrase(t *testing.T) {
	p := message.NewPrinter(language.AmericanEnglish)
	tests := []struct {
		name         string
		announcement types.Announcement
		want         string
	}{
		{
			name:         "role assigned",
			announcement: types.Announcement{Kind: types.AnnouncementRoleAssigned, Player: "A", Role: types.RoleSlacker},
			want:         "Narrator, please let A know that they are: The Slacker",
		},
		{
			name:         "enemy assigned",
			announcement: types.Announcement{Kind: types.AnnouncementEnemyAssigned, Player: "A", Subject: "B"},
			want:         "Narrator, please let A know their enemy is B",
		},
		{
			name:         "round start",
			announcement: types.Announcement{Kind: types.AnnouncementRoundStart, Round: 0, Duration: 90 * time.Second},
			want:         "Narrator, please say: It is the start of week 1! Students, you have 90 seconds to find a project partner by messaging them!",
		},
		{
			name: "pairings",
			announcement: types.Announcement{Kind: types.AnnouncementPairings, Round: 1, Pairs: []types.Pair{
				{A: "A", B: "B"},
				{A: "C", B: "D"},
			}},
			want: "These were the successful pairings for week 2: A & B, C & D",
		},
		{
			name:         "no pairings",
			announcement: types.Announcement{Kind: types.AnnouncementPairings, Round: 2},
			want:         "Nobody found a project partner in week 3.",
		},
		{
			name:         "gossip",
			announcement: types.Announcement{Kind: types.AnnouncementGossip, Player: "A", Subject: "B", Role: types.RoleHacker},
			want:         "Narrator, please let A know that their partner B is: The Hacker",
		},
		{
			name:         "reveal",
			announcement: types.Announcement{Kind: types.AnnouncementRoleRevealed, Subject: "B", Rank: 1, Score: 5, Role: types.RoleThief},
			want:         "B is in the lead with 5 points, meaning it's time to reveal their role! B's role is... The Thief",
		},
		{
			name:         "reveal behind a revealed leader",
			announcement: types.Announcement{Kind: types.AnnouncementRoleRevealed, Subject: "C", Rank: 2, Score: 4, Role: types.RoleLeech},
			want:         "C is #2 with 4 points and the highest ranked player still hiding their role. C's role is... The Leech",
		},
		{
			name:         "standing",
			announcement: types.Announcement{Kind: types.AnnouncementStanding, Rank: 1, Subject: "B", Role: types.RoleCSGod, Score: 12},
			want:         "#1: B (The CS God) finished the class with a score of 12!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phrase(p, tt.announcement))
		})
	}
}
