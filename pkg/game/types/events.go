package types

import "time"

// AnnouncementKind identifies what the narrator is asked to relay.
type AnnouncementKind uint8

const (
	// AnnouncementRoleAssigned privately tells Player their Role
	AnnouncementRoleAssigned AnnouncementKind = iota
	// AnnouncementEnemyAssigned privately tells Player that Subject is their enemy
	AnnouncementEnemyAssigned
	// AnnouncementRoundStart opens Round with an advisory Duration
	AnnouncementRoundStart
	// AnnouncementPairings publishes the successful Pairs of Round
	AnnouncementPairings
	// AnnouncementGossip privately tells Player the Role of Subject
	AnnouncementGossip
	// AnnouncementRoleRevealed publicly reveals the Role of Subject
	AnnouncementRoleRevealed
	// AnnouncementStanding publishes the final Score and Rank of Subject
	AnnouncementStanding
	// AnnouncementGameOver opens the final standings
	AnnouncementGameOver
)

func (k AnnouncementKind) String() string {
	switch k {
	case AnnouncementRoleAssigned:
		return "role_assigned"
	case AnnouncementEnemyAssigned:
		return "enemy_assigned"
	case AnnouncementRoundStart:
		return "round_start"
	case AnnouncementPairings:
		return "pairings"
	case AnnouncementGossip:
		return "gossip"
	case AnnouncementRoleRevealed:
		return "role_revealed"
	case AnnouncementStanding:
		return "standing"
	case AnnouncementGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Announcement is a message for the narrator. Player is set when the
// message is for one player only.
type Announcement struct {
	Kind     AnnouncementKind
	Player   string
	Subject  string
	Role     Role
	Round    int
	Rank     int
	Score    int
	Duration time.Duration
	Pairs    []Pair
}
