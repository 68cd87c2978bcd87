package types

// Role is the tag assigned to a player at game start. It selects the
// player's scoring behavior.
type Role string

const (
	RoleDefault        Role = "default"
	RoleSlacker        Role = "slacker"
	RoleThief          Role = "thief"
	RoleSnitch         Role = "snitch"
	RoleCSGod          Role = "god"
	RoleFlake          Role = "flake"
	RoleGossip         Role = "gossip"
	RoleLeech          Role = "leech"
	RoleTeamPlayer     Role = "team_player"
	RoleSchadenfreuder Role = "schadenfreuder"
	RoleHacker         Role = "hacker"
)

// AllRoles lists every known role.
var AllRoles = []Role{
	RoleDefault,
	RoleSlacker,
	RoleThief,
	RoleSnitch,
	RoleCSGod,
	RoleFlake,
	RoleGossip,
	RoleLeech,
	RoleTeamPlayer,
	RoleSchadenfreuder,
	RoleHacker,
}

func (r Role) String() string {
	return string(r)
}

// Valid reports whether r is one of AllRoles.
func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Label is the name the narrator uses for the role.
func (r Role) Label() string {
	switch r {
	case RoleDefault:
		return "Default"
	case RoleSlacker:
		return "The Slacker"
	case RoleThief:
		return "The Thief"
	case RoleSnitch:
		return "The Snitch"
	case RoleCSGod:
		return "The CS God"
	case RoleFlake:
		return "The Flake"
	case RoleGossip:
		return "The Gossip"
	case RoleLeech:
		return "The Leech"
	case RoleTeamPlayer:
		return "The Team Player"
	case RoleSchadenfreuder:
		return "The Schadenfreuder"
	case RoleHacker:
		return "The Hacker"
	default:
		return "Unknown"
	}
}
