// Package narrator is the boundary between the game engine and the
// human relaying prompts and announcements to the players.
package narrator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cbodonnell/grouphell/pkg/game/constants"
	"github.com/cbodonnell/grouphell/pkg/game/types"
	"golang.org/x/text/unicode/norm"
)

// Narrator collects input for the engine and relays its announcements.
// Implementations validate input and re-prompt, so the engine only ever
// sees valid counts, names and picks.
type Narrator interface {
	// RequestPlayerCount returns a count in [MinPlayers, MaxPlayers].
	RequestPlayerCount(ctx context.Context) (int, error)
	// RequestPlayerName returns a non-empty name not present in taken.
	// ordinal starts at 1.
	RequestPlayerName(ctx context.Context, ordinal int, taken []string) (string, error)
	// RequestPick returns the roster player that player picked this round.
	RequestPick(ctx context.Context, player string, roster []string) (string, error)
	// Announce relays a message. It never fails.
	Announce(ctx context.Context, announcement types.Announcement)
}

// InputValidationError is returned for input that should be asked for again.
type InputValidationError struct {
	Msg string
}

func (e *InputValidationError) Error() string {
	return e.Msg
}

// IsInputValidationError reports whether err wraps an InputValidationError.
func IsInputValidationError(err error) bool {
	var target *InputValidationError
	return errors.As(err, &target)
}

func invalid(format string, args ...interface{}) error {
	return &InputValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ParsePlayerCount parses and range checks a player count.
func ParsePlayerCount(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, invalid("That wasn't an integer, please try again.")
	}
	if n < constants.MinPlayers || n > constants.MaxPlayers {
		return 0, invalid("Sorry, this game supports %d to %d players, please try again.", constants.MinPlayers, constants.MaxPlayers)
	}
	return n, nil
}

// NormalizeName trims and NFC-normalizes a player name, so names typed
// with different unicode compositions compare equal.
func NormalizeName(input string) string {
	return norm.NFC.String(strings.TrimSpace(input))
}

// ValidateName normalizes a new player name and rejects empty or taken names.
func ValidateName(input string, taken []string) (string, error) {
	name := NormalizeName(input)
	if name == "" {
		return "", invalid("Player names can't be empty, please try again.")
	}
	for _, t := range taken {
		if t == name {
			return "", invalid("You can't repeat player names, unfortunately.")
		}
	}
	return name, nil
}

// ValidatePick normalizes the pick of player and checks it names another
// roster player.
func ValidatePick(player, input string, roster []string) (string, error) {
	pick := NormalizeName(input)
	if pick == player {
		return "", invalid("Players cannot pair with themselves, please try again.")
	}
	for _, name := range roster {
		if name == pick {
			return pick, nil
		}
	}
	return "", invalid("You've made a typo, please input one of the players.")
}
