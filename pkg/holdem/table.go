package holdem

import (
	"fmt"

	"holdem-server/pkg/deck"
)

// Table is the single source of truth for one hand in progress: seating,
// stacks, community cards, street pointer, bet tracking, the active-player
// set, and the pot ledger. The orchestrator is the only mutator.
type Table struct {
	players     map[string]*Player
	playerOrder []string

	deck      *deck.Deck
	community deck.Hand
	pots      []*Pot

	street          Street
	currentBet      int
	lastAggressorID string
	activeIDs       []string
	currentTurnID   string

	dealerID     string
	smallBlindID string
	bigBlindID   string
}

// NewTable seats the players in the order given. Seating order is fixed for
// the life of the table.
func NewTable(players []*Player) (*Table, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	byID := make(map[string]*Player, len(players))
	order := make([]string, 0, len(players))
	for _, p := range players {
		if _, ok := byID[p.ID]; ok {
			return nil, StateError(fmt.Sprintf("player %s is already seated", p.ID))
		}

		byID[p.ID] = p
		order = append(order, p.ID)
	}

	t := &Table{
		players:     byID,
		playerOrder: order,
		deck:        deck.New(),
		community:   make(deck.Hand, 0, 5),
		pots:        make([]*Pot, 0, 1),
	}
	t.rebuildActiveList()

	return t, nil
}

// Player returns the player for the given id, or nil if unknown
func (t *Table) Player(id string) *Player {
	return t.players[id]
}

// Players returns the players in seating order
func (t *Table) Players() []*Player {
	players := make([]*Player, len(t.playerOrder))
	for i, id := range t.playerOrder {
		players[i] = t.players[id]
	}

	return players
}

// PlayerOrder returns the seating order
func (t *Table) PlayerOrder() []string {
	order := make([]string, len(t.playerOrder))
	copy(order, t.playerOrder)
	return order
}

// Community returns the community cards dealt so far
func (t *Table) Community() deck.Hand {
	return t.community
}

// Pots returns the current pot ledger
func (t *Table) Pots() []*Pot {
	return t.pots
}

// Street returns the current street
func (t *Table) Street() Street {
	return t.street
}

// CurrentBet returns the table-wide bet to match on this street
func (t *Table) CurrentBet() int {
	return t.currentBet
}

// LastAggressorID returns the most recent bettor or raiser this street,
// or the empty string if there has been no aggression
func (t *Table) LastAggressorID() string {
	return t.lastAggressorID
}

// CurrentTurnID returns the id of the player whose turn it is, or the empty
// string when nobody can act
func (t *Table) CurrentTurnID() string {
	return t.currentTurnID
}

// DealerID returns the dealer button holder
func (t *Table) DealerID() string {
	return t.dealerID
}

// SmallBlindID returns the small blind holder
func (t *Table) SmallBlindID() string {
	return t.smallBlindID
}

// BigBlindID returns the big blind holder
func (t *Table) BigBlindID() string {
	return t.bigBlindID
}

// ActiveIDs returns the ids of players who are still in the hand, in seating
// order. A player leaves the active set by folding or disconnecting.
func (t *Table) ActiveIDs() []string {
	ids := make([]string, len(t.activeIDs))
	copy(ids, t.activeIDs)
	return ids
}

// CanActIDs returns the ids of active players who may still take a betting
// action (not folded, not all-in). This is a strict subset of ActiveIDs.
func (t *Table) CanActIDs() []string {
	ids := make([]string, 0, len(t.activeIDs))
	for _, id := range t.activeIDs {
		if t.players[id].canAct() {
			ids = append(ids, id)
		}
	}

	return ids
}

// AllInIDs returns the ids of active players who are all-in
func (t *Table) AllInIDs() []string {
	ids := make([]string, 0, len(t.activeIDs))
	for _, id := range t.activeIDs {
		if t.players[id].allIn {
			ids = append(ids, id)
		}
	}

	return ids
}

// IsActive returns true if the player is still in the hand
func (t *Table) IsActive(id string) bool {
	for _, activeID := range t.activeIDs {
		if activeID == id {
			return true
		}
	}

	return false
}

// PostBet commits chips for the player. A bet exceeding the stack becomes an
// all-in for the remaining stack and flips the all-in flag. Raises the
// table-wide bet if the player's street commitment now exceeds it.
func (t *Table) PostBet(id string, amount int) error {
	if amount < 0 {
		return newValidationError("cannot post a negative bet")
	}

	p, ok := t.players[id]
	if !ok {
		return ErrPlayerNotFound
	}

	if p.folded || p.left {
		return newValidationError("player %s cannot bet after folding or leaving", id)
	}

	if amount >= p.chips {
		amount = p.chips
		p.allIn = true
	}

	p.chips -= amount
	p.currentBet += amount
	p.totalBetThisHand += amount

	if p.currentBet > t.currentBet {
		t.currentBet = p.currentBet
	}

	return nil
}

// AdvanceStreet moves the street pointer forward by one, clamped at the
// showdown. Street-scoped bets, acted flags, the table bet, and the last
// aggressor are cleared. Dealing cards for the new street is the
// orchestrator's job.
func (t *Table) AdvanceStreet() {
	if t.street < StreetShowdown {
		t.street++
	}

	for _, p := range t.players {
		p.newStreet()
	}

	t.currentBet = 0
	t.lastAggressorID = ""
}

// SetCurrentTurn sets the turn to the given active player
func (t *Table) SetCurrentTurn(id string) error {
	if !t.IsActive(id) {
		return StateError(fmt.Sprintf("player %s is not active", id))
	}

	t.currentTurnID = id
	return nil
}

// AdvanceTurnTo walks the seating order forward from the given seat, skipping
// players who are out of the hand or all-in, and sets the first eligible
// player as the current turn. If nobody is eligible, the turn is cleared.
func (t *Table) AdvanceTurnTo(seedID string) {
	t.currentTurnID = t.NextEligible(seedID)
}

// NextEligible returns the first player after the given seat who is active
// and not all-in, or the empty string if no such player exists. A seed that
// no longer has a seat restarts the scan from the first seat.
func (t *Table) NextEligible(seedID string) string {
	n := len(t.playerOrder)
	seed := t.seatIndex(seedID)

	for i := 1; i <= n; i++ {
		id := t.playerOrder[(seed+i)%n]
		if !t.IsActive(id) {
			continue
		}

		if t.players[id].allIn {
			continue
		}

		return id
	}

	return ""
}

// RemoveActivePlayer takes the player out of the active set. Their committed
// chips stay in the pots they funded.
func (t *Table) RemoveActivePlayer(id string) {
	ids := make([]string, 0, len(t.activeIDs))
	for _, activeID := range t.activeIDs {
		if activeID != id {
			ids = append(ids, activeID)
		}
	}

	t.activeIDs = ids

	if t.currentTurnID == id {
		t.currentTurnID = ""
	}
}

// DealHoleCards deals two cards to every active player
func (t *Table) DealHoleCards() error {
	for i := 0; i < 2; i++ {
		for _, id := range t.activeIDs {
			card, err := t.deck.Draw()
			if err != nil {
				return err
			}

			t.players[id].cards.AddCard(card)
		}
	}

	return nil
}

// DealCommunityCards draws cards until the board matches the current street.
// Calling it on a street whose board is already complete is a no-op.
func (t *Table) DealCommunityCards() error {
	want, ok := communityCardCount[t.street]
	if !ok {
		return StateError(fmt.Sprintf("cannot deal community cards on %s", t.street))
	}

	for len(t.community) < want {
		card, err := t.deck.Draw()
		if err != nil {
			return err
		}

		t.community.AddCard(card)
	}

	return nil
}

// ResetForNewHand prepares the table for the next hand: left players are
// purged, per-hand player state is cleared, the deck is reshuffled, and the
// active list is rebuilt from players who still have chips.
func (t *Table) ResetForNewHand() {
	order := make([]string, 0, len(t.playerOrder))
	for _, id := range t.playerOrder {
		p := t.players[id]
		if p.left {
			delete(t.players, id)
			continue
		}

		p.newHand()
		order = append(order, id)
	}

	t.playerOrder = order
	t.rebuildActiveList()

	t.deck = deck.New()
	t.deck.Shuffle(0)
	t.community = make(deck.Hand, 0, 5)
	t.pots = make([]*Pot, 0, 1)
	t.street = StreetPreFlop
	t.currentBet = 0
	t.lastAggressorID = ""
	t.currentTurnID = ""
	t.smallBlindID = ""
	t.bigBlindID = ""
}

// SetStreet forces the street pointer. Only the orchestrator's hand-complete
// transition uses this.
func (t *Table) SetStreet(street Street) {
	t.street = street
}

// SetDealer moves the dealer button
func (t *Table) SetDealer(id string) error {
	if _, ok := t.players[id]; !ok {
		return ErrPlayerNotFound
	}

	t.dealerID = id
	return nil
}

// SetBlinds records the blind positions
func (t *Table) SetBlinds(smallBlindID, bigBlindID string) {
	t.smallBlindID = smallBlindID
	t.bigBlindID = bigBlindID
}

// SetLastAggressor records the most recent bettor or raiser this street
func (t *Table) SetLastAggressor(id string) {
	t.lastAggressorID = id
}

func (t *Table) rebuildActiveList() {
	ids := make([]string, 0, len(t.playerOrder))
	for _, id := range t.playerOrder {
		if t.players[id].chips > 0 {
			ids = append(ids, id)
		}
	}

	t.activeIDs = ids
}

func (t *Table) seatIndex(id string) int {
	for i, seatID := range t.playerOrder {
		if seatID == id {
			return i
		}
	}

	return -1
}

// seatOrderFrom returns the given ids sorted by seating order starting
// immediately left of the dealer
func (t *Table) seatOrderFrom(dealerID string, ids []string) []string {
	include := make(map[string]bool, len(ids))
	for _, id := range ids {
		include[id] = true
	}

	n := len(t.playerOrder)
	dealer := t.seatIndex(dealerID)

	ordered := make([]string, 0, len(ids))
	for i := 1; i <= n; i++ {
		id := t.playerOrder[(dealer+i)%n]
		if include[id] {
			ordered = append(ordered, id)
		}
	}

	return ordered
}
