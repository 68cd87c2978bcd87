package narrator

import (
	"strings"

	"github.com/cbodonnell/grouphell/pkg/game/types"
	"golang.org/x/text/message"
)

// Phrase renders an announcement as the line the narrator reads out.
// Rounds are announced as weeks, counted from 1.
func Phrase(p *message.Printer, a types.Announcement) string {
	switch a.Kind {
	case types.AnnouncementRoleAssigned:
		return p.Sprintf("Narrator, please let %s know that they are: %s", a.Player, a.Role.Label())
	case types.AnnouncementEnemyAssigned:
		return p.Sprintf("Narrator, please let %s know their enemy is %s", a.Player, a.Subject)
	case types.AnnouncementRoundStart:
		return p.Sprintf("Narrator, please say: It is the start of week %d! Students, you have %d seconds to find a project partner by messaging them!",
			a.Round+1, int(a.Duration.Seconds()))
	case types.AnnouncementPairings:
		if len(a.Pairs) == 0 {
			return p.Sprintf("Nobody found a project partner in week %d.", a.Round+1)
		}
		pairs := make([]string, 0, len(a.Pairs))
		for _, pair := range a.Pairs {
			pairs = append(pairs, pair.A+" & "+pair.B)
		}
		return p.Sprintf("These were the successful pairings for week %d: %s", a.Round+1, strings.Join(pairs, ", "))
	case types.AnnouncementGossip:
		return p.Sprintf("Narrator, please let %s know that their partner %s is: %s", a.Player, a.Subject, a.Role.Label())
	case types.AnnouncementRoleRevealed:
		if a.Rank > 1 {
			return p.Sprintf("%s is #%d with %d points and the highest ranked player still hiding their role. %s's role is... %s",
				a.Subject, a.Rank, a.Score, a.Subject, a.Role.Label())
		}
		return p.Sprintf("%s is in the lead with %d points, meaning it's time to reveal their role! %s's role is... %s",
			a.Subject, a.Score, a.Subject, a.Role.Label())
	case types.AnnouncementGameOver:
		return p.Sprintf("Narrator, please say: And that was the last week! Let's see who ended up on top!")
	case types.AnnouncementStanding:
		return p.Sprintf("#%d: %s (%s) finished the class with a score of %d!", a.Rank, a.Subject, a.Role.Label(), a.Score)
	default:
		return p.Sprintf("Unknown announcement %s", a.Kind)
	}
}
