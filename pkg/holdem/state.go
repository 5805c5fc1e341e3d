package holdem

import (
	"holdem-server/pkg/deck"
)

// PlayerState is the remote-display projection of a player. Hole cards are
// only populated for the viewing player, or for everyone still in the hand
// once it completes.
type PlayerState struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Chips            int       `json:"chips"`
	CurrentBet       int       `json:"currentBet"`
	TotalBetThisHand int       `json:"totalBetThisHand"`
	Folded           bool      `json:"folded"`
	AllIn            bool      `json:"allIn"`
	HoleCards        deck.Hand `json:"holeCards,omitempty"`
}

// GameState is the remote-display projection of the table for one viewer
type GameState struct {
	Players       []*PlayerState `json:"players"`
	PlayerOrder   []string       `json:"playerOrder"`
	Community     deck.Hand      `json:"community"`
	Pots          []*Pot         `json:"pots"`
	Street        Street         `json:"street"`
	CurrentBet    int            `json:"currentBet"`
	CurrentTurnID string         `json:"currentTurnId,omitempty"`
	DealerID      string         `json:"dealerId"`
	SmallBlindID  string         `json:"smallBlindId"`
	BigBlindID    string         `json:"bigBlindId"`
	Winners       []*Winner      `json:"winners,omitempty"`
	GameOver      bool           `json:"gameOver"`
}

// StateForPlayer returns the game state as the given viewer is allowed to
// see it
func (g *Game) StateForPlayer(viewerID string) *GameState {
	t := g.table

	players := make([]*PlayerState, 0, len(t.playerOrder))
	for _, id := range t.playerOrder {
		p := t.players[id]

		ps := &PlayerState{
			ID:               p.ID,
			Name:             p.Name,
			Chips:            p.chips,
			CurrentBet:       p.currentBet,
			TotalBetThisHand: p.totalBetThisHand,
			Folded:           p.folded,
			AllIn:            p.allIn,
		}

		if g.revealCardsTo(viewerID, p) {
			ps.HoleCards = p.cards
		}

		players = append(players, ps)
	}

	return &GameState{
		Players:       players,
		PlayerOrder:   t.PlayerOrder(),
		Community:     t.community,
		Pots:          t.pots,
		Street:        t.street,
		CurrentBet:    t.currentBet,
		CurrentTurnID: t.currentTurnID,
		DealerID:      t.dealerID,
		SmallBlindID:  t.smallBlindID,
		BigBlindID:    t.bigBlindID,
		Winners:       g.winners,
		GameOver:      g.gameOver,
	}
}

// revealCardsTo returns true if the viewer may see the player's hole cards.
// Everyone sees the showdown hands once the hand is complete.
func (g *Game) revealCardsTo(viewerID string, p *Player) bool {
	if p.ID == viewerID {
		return true
	}

	return g.table.street == StreetHandComplete && !p.folded && !p.left
}
