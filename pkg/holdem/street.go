package holdem

import "encoding/json"

// Street represents a betting phase of a hold'em hand
type Street int

// constants for Street
const (
	StreetPreFlop Street = iota
	StreetFlop
	StreetTurn
	StreetRiver
	StreetShowdown
	StreetHandComplete
)

// communityCardCount is how many community cards must be on the board for each street
var communityCardCount = map[Street]int{
	StreetPreFlop: 0,
	StreetFlop:    3,
	StreetTurn:    4,
	StreetRiver:   5,
}

func (s Street) String() string {
	switch s {
	case StreetPreFlop:
		return "pre-flop"
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	case StreetShowdown:
		return "showdown"
	case StreetHandComplete:
		return "hand-complete"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
