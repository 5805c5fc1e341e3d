package holdem

import (
	"encoding/json"
	"fmt"
)

// Action represents an action a player can take during a betting round
type Action string

// action constants
const (
	ActionFold  Action = "fold"
	ActionCheck Action = "check"
	ActionCall  Action = "call"
	ActionBet   Action = "bet"
	ActionRaise Action = "raise"
)

var allowedActions = map[Action]bool{
	ActionFold:  true,
	ActionCheck: true,
	ActionCall:  true,
	ActionBet:   true,
	ActionRaise: true,
}

// ActionFromString returns an action for the given string
func ActionFromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case ActionFold:
		return "Fold"
	case ActionCheck:
		return "Check"
	case ActionCall:
		return "Call"
	case ActionBet:
		return "Bet"
	case ActionRaise:
		return "Raise"
	}

	panic("unknown action")
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// RequiresAmount returns true if the action must carry a positive chip amount
func (a Action) RequiresAmount() bool {
	return a == ActionBet || a == ActionRaise
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case ActionFold:
		return "folded"
	case ActionCheck:
		return "checked"
	case ActionCall:
		return fmt.Sprintf("called ${%d}", amount)
	case ActionBet:
		return fmt.Sprintf("bet ${%d}", amount)
	case ActionRaise:
		return fmt.Sprintf("raised by ${%d}", amount)
	}

	return ""
}
