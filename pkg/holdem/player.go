package holdem

import (
	"holdem-server/pkg/deck"
)

// Player is an individual player seated at a table
// A player persists across hands until they leave; their chip stack carries over
type Player struct {
	ID   string
	Name string

	chips            int
	currentBet       int
	totalBetThisHand int
	cards            deck.Hand

	folded          bool
	allIn           bool
	left            bool
	actedThisStreet bool
}

// NewPlayer returns a new player with an empty stack
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		cards: make(deck.Hand, 0, 2),
	}
}

// Chips returns the player's current stack
func (p *Player) Chips() int {
	return p.chips
}

// CurrentBet returns how much the player has committed on the current street
func (p *Player) CurrentBet() int {
	return p.currentBet
}

// TotalBetThisHand returns how much the player has committed over the whole hand
func (p *Player) TotalBetThisHand() int {
	return p.totalBetThisHand
}

// HoleCards returns the player's two hole cards
func (p *Player) HoleCards() deck.Hand {
	return p.cards
}

// Folded returns true if the player folded this hand
func (p *Player) Folded() bool {
	return p.folded
}

// IsAllIn returns true if the player has committed their entire stack
func (p *Player) IsAllIn() bool {
	return p.allIn
}

// HasLeft returns true if the player disconnected or was eliminated
func (p *Player) HasLeft() bool {
	return p.left
}

// HasActedThisStreet returns true if the player took an action this street
func (p *Player) HasActedThisStreet() bool {
	return p.actedThisStreet
}

// addChips credits the stack. Only settlement and table setup may call this.
func (p *Player) addChips(amount int) {
	if amount < 0 {
		panic("cannot add negative chips")
	}

	p.chips += amount
}

// canAct returns true if the player may take a betting action
func (p *Player) canAct() bool {
	return !p.folded && !p.allIn && !p.left
}

// newStreet clears the street-scoped bet and acted flag
func (p *Player) newStreet() {
	p.currentBet = 0
	p.actedThisStreet = false
}

// newHand resets everything scoped to a single hand. The chip stack survives.
func (p *Player) newHand() {
	p.cards = make(deck.Hand, 0, 2)
	p.currentBet = 0
	p.totalBetThisHand = 0
	p.folded = false
	p.allIn = false
	p.actedThisStreet = false
}
