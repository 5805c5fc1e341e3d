package holdem

import (
	"fmt"

	"holdem-server/pkg/handrank"
)

// WinReason explains why a player was paid
type WinReason string

// win reasons
const (
	WinReasonBestHand           WinReason = "best hand"
	WinReasonLastPlayerStanding WinReason = "last player standing"
)

// Winner records a single player's payout from a concluded hand
type Winner struct {
	PlayerID string    `json:"playerId"`
	Amount   int       `json:"amount"`
	Reason   WinReason `json:"reason"`
}

// settleShowdown ranks every eligible player per pot, splits each pot among
// the co-equal best hands, and pays the remainder one chip at a time in seat
// order starting left of the dealer. Payouts are aggregated across pots and
// applied once per player.
// The orchestrator's sequencing guarantees a five-card board and at least one
// active player here; anything else is a programming error.
func (g *Game) settleShowdown() error {
	t := g.table
	t.RecalculatePots()

	if len(t.community) != 5 {
		panic("settlement attempted before the river was dealt")
	}

	if len(t.activeIDs) == 0 {
		panic("settlement attempted with no active players")
	}

	payouts := make(map[string]int)

	for _, pot := range t.pots {
		if len(pot.EligiblePlayerIDs) == 0 {
			// every contributor to this tier is out of the hand
			continue
		}

		winnerIDs, err := g.bestHands(pot.EligiblePlayerIDs)
		if err != nil {
			return err
		}

		share := pot.Amount / len(winnerIDs)
		remainder := pot.Amount % len(winnerIDs)

		for _, id := range winnerIDs {
			payouts[id] += share
		}

		// odd chips go to winners left of the button first, per pot
		ordered := t.seatOrderFrom(t.dealerID, winnerIDs)
		for i := 0; i < remainder; i++ {
			payouts[ordered[i%len(ordered)]]++
		}
	}

	winners := make([]*Winner, 0, len(payouts))
	for _, id := range t.playerOrder {
		amount, ok := payouts[id]
		if !ok {
			continue
		}

		t.players[id].addChips(amount)
		winners = append(winners, &Winner{
			PlayerID: id,
			Amount:   amount,
			Reason:   WinReasonBestHand,
		})
	}

	g.winners = winners
	return nil
}

// bestHands returns the ids holding the co-equal best seven-card hands among
// the eligible players
func (g *Game) bestHands(eligibleIDs []string) ([]string, error) {
	values := make([]handrank.Value, len(eligibleIDs))
	for i, id := range eligibleIDs {
		p := g.table.players[id]

		cards := p.cards.Clone()
		for _, card := range g.table.community {
			cards.AddCard(card)
		}

		value, err := g.ranker.Rank(cards)
		if err != nil {
			return nil, fmt.Errorf("could not rank hand for %s: %w", id, err)
		}

		values[i] = value
	}

	best := handrank.BestOf(values)
	winnerIDs := make([]string, len(best))
	for i, index := range best {
		winnerIDs[i] = eligibleIDs[index]
	}

	return winnerIDs, nil
}

// awardAllPots pays the entire ledger to a single player. Used when everyone
// else has folded or disconnected.
func (g *Game) awardAllPots(id string) {
	t := g.table
	total := PotTotal(t.pots)

	t.players[id].addChips(total)
	g.winners = []*Winner{{
		PlayerID: id,
		Amount:   total,
		Reason:   WinReasonLastPlayerStanding,
	}}
}
