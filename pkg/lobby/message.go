package lobby

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	// Action is the lobby-level intent: join, start, or play
	Action string `json:"action"`

	// Name is the requested display name on a join
	Name string `json:"name,omitempty"`

	// GameAction is the betting action on a play: fold, check, call, bet, raise
	GameAction string `json:"gameAction,omitempty"`

	// Amount is the chip amount for a bet or raise
	Amount int `json:"amount,omitempty"`

	// Context will be passed back on any outgoing message
	Context string `json:"context,omitempty"`
}

// Response is a message sent to a connected client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// OK returns a generic success response
func OK(ctx string) *Response {
	return &Response{
		Key:     "status",
		Value:   "OK",
		Context: ctx,
	}
}

// Error returns an error response
func Error(err error, ctx string) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

// lobbyState is broadcast whenever the pre-game roster changes
type lobbyState struct {
	Started bool        `json:"started"`
	Seats   []*SeatInfo `json:"seats"`
}

// SeatInfo describes one player in the lobby roster
type SeatInfo struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Host     bool   `json:"host"`
}

// joined is the direct response to a successful join
type joined struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Host     bool   `json:"host"`
}
