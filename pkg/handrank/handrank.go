// Package handrank ranks seven-card hold'em hands.
package handrank

import (
	"fmt"

	"holdem-server/pkg/deck"

	"github.com/paulhankin/poker"
)

// HandSize is the number of cards a rankable hand must contain
// (two hole cards plus the five community cards)
const HandSize = 7

// Value is a comparable hand strength. Higher is better, equal values tie.
type Value int16

// Ranker scores a seven-card hand
// The zero-dependency surface lets tests substitute a deterministic ranker
type Ranker interface {
	Rank(cards deck.Hand) (Value, error)
}

// Evaluator ranks hands using the paulhankin/poker lookup tables
type Evaluator struct{}

// Rank returns the strength of the best five-card hand within the seven cards
func (e Evaluator) Rank(cards deck.Hand) (Value, error) {
	if len(cards) != HandSize {
		return 0, fmt.Errorf("expected %d cards, got %d", HandSize, len(cards))
	}

	var hand [7]poker.Card
	for i, card := range cards {
		pc, err := libraryCard(card)
		if err != nil {
			return 0, err
		}

		hand[i] = pc
	}

	return Value(poker.Eval7(&hand)), nil
}

// BestOf returns the indices of the co-equal best values
// Ties are possible; at least one index is returned for a non-empty input
func BestOf(values []Value) []int {
	best := make([]int, 0, 1)
	for i, v := range values {
		if len(best) == 0 || v > values[best[0]] {
			best = append(best[:0], i)
		} else if v == values[best[0]] {
			best = append(best, i)
		}
	}

	return best
}

// libraryCard converts our card into the evaluator's representation.
// Our ranks run 2-14 with a high ace; the library uses 1-13 with a low ace.
func libraryCard(card *deck.Card) (poker.Card, error) {
	var suit poker.Suit
	switch card.Suit {
	case deck.Clubs:
		suit = poker.Club
	case deck.Diamonds:
		suit = poker.Diamond
	case deck.Hearts:
		suit = poker.Heart
	case deck.Spades:
		suit = poker.Spade
	default:
		return 0, fmt.Errorf("unknown suit: %s", card.Suit)
	}

	rank := poker.Rank(card.Rank)
	if card.Rank == deck.Ace {
		rank = poker.Rank(1)
	}

	pc, err := poker.MakeCard(suit, rank)
	if err != nil {
		return 0, fmt.Errorf("could not convert card %s: %w", card, err)
	}

	return pc, nil
}
