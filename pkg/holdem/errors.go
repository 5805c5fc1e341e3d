package holdem

import "fmt"

// ValidationError is a recoverable rejection of a proposed player action.
// No table state is mutated when one is returned; it is surfaced to the
// acting client only.
type ValidationError string

func (v ValidationError) Error() string {
	return string(v)
}

func newValidationError(format string, a ...interface{}) ValidationError {
	return ValidationError(fmt.Sprintf(format, a...))
}

// validation rejections with a fixed message
var (
	// ErrOutOfTurn is returned when a player acts out of turn
	ErrOutOfTurn = ValidationError("it is not your turn")

	// ErrCannotAct is returned when a player is folded, all-in, or has left the table
	ErrCannotAct = ValidationError("you cannot act")

	// ErrInvalidAction is returned for an unrecognized action kind
	ErrInvalidAction = ValidationError("invalid action")
)

// StateError is a failed operation against the table. The table itself
// remains usable after one is returned.
type StateError string

func (s StateError) Error() string {
	return string(s)
}

// state errors
var (
	// ErrPlayerNotFound is returned when the player is unknown to the table
	ErrPlayerNotFound = StateError("player not found")

	// ErrNoPlayers is returned when there is nobody to assign the dealer or blinds to
	ErrNoPlayers = StateError("no players to assign dealer")

	// ErrNotEnoughPlayers is returned when fewer than two players can continue
	ErrNotEnoughPlayers = StateError("there must be at least two players")

	// ErrHandInProgress is returned when the next hand is requested before the current one ended
	ErrHandInProgress = StateError("hand is still in progress")

	// ErrGameOver is returned when an operation is attempted after the game ended
	ErrGameOver = StateError("game is over")
)
