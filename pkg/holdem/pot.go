package holdem

import "sort"

// Pot is a single tier of the pot ledger: an amount and the set of players
// entitled to win it. Folded players still fund pots they contributed to,
// but never appear in an eligibility set.
type Pot struct {
	Amount            int      `json:"amount"`
	EligiblePlayerIDs []string `json:"eligiblePlayerIds"`
}

// hasSameEligibility compares eligibility as a set, independent of order
func (p *Pot) hasSameEligibility(ids []string) bool {
	if len(p.EligiblePlayerIDs) != len(ids) {
		return false
	}

	seen := make(map[string]bool, len(p.EligiblePlayerIDs))
	for _, id := range p.EligiblePlayerIDs {
		seen[id] = true
	}

	for _, id := range ids {
		if !seen[id] {
			return false
		}
	}

	return true
}

// PotTotal returns the combined amount across the ledger
func PotTotal(pots []*Pot) int {
	total := 0
	for _, pot := range pots {
		total += pot.Amount
	}

	return total
}

// RecalculatePots rebuilds the pot ledger from every player's total
// contribution this hand. Contributions are layered by committed level:
// each layer spans the contributors who reached that level, and its
// eligibility is the subset of those contributors still in the hand.
// Layers with identical eligibility are merged, producing the minimal
// ordered ledger. Idempotent for unchanged contributions.
func (t *Table) RecalculatePots() {
	contributors := make([]*Player, 0, len(t.playerOrder))
	for _, id := range t.playerOrder {
		if p := t.players[id]; p.totalBetThisHand > 0 {
			contributors = append(contributors, p)
		}
	}

	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].totalBetThisHand < contributors[j].totalBetThisHand
	})

	pots := make([]*Pot, 0, 1)
	previousLevel := 0

	for i, contributor := range contributors {
		level := contributor.totalBetThisHand
		width := level - previousLevel
		if width > 0 {
			remaining := contributors[i:]
			amount := width * len(remaining)

			eligible := make([]string, 0, len(remaining))
			for _, p := range remaining {
				if t.IsActive(p.ID) {
					eligible = append(eligible, p.ID)
				}
			}

			if n := len(pots); n > 0 && pots[n-1].hasSameEligibility(eligible) {
				pots[n-1].Amount += amount
			} else {
				pots = append(pots, &Pot{
					Amount:            amount,
					EligiblePlayerIDs: eligible,
				})
			}
		}

		previousLevel = level
	}

	t.pots = pots
}
