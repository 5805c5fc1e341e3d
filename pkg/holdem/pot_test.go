package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_RecalculatePots_EqualContributions(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 100, 100, 100)

	a.NoError(tbl.PostBet("a", 10))
	a.NoError(tbl.PostBet("b", 10))
	a.NoError(tbl.PostBet("c", 10))

	tbl.RecalculatePots()
	a.Equal([]*Pot{
		{Amount: 30, EligiblePlayerIDs: []string{"a", "b", "c"}},
	}, tbl.Pots())
}

func TestTable_RecalculatePots_SidePots(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 30, 100, 100)

	a.NoError(tbl.PostBet("a", 30))
	a.NoError(tbl.PostBet("b", 100))
	a.NoError(tbl.PostBet("c", 100))

	tbl.RecalculatePots()
	a.Equal([]*Pot{
		{Amount: 90, EligiblePlayerIDs: []string{"a", "b", "c"}},
		{Amount: 140, EligiblePlayerIDs: []string{"b", "c"}},
	}, tbl.Pots())
}

func TestTable_RecalculatePots_FoldedContributor(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 100, 100, 100)

	a.NoError(tbl.PostBet("a", 10))
	a.NoError(tbl.PostBet("b", 10))
	a.NoError(tbl.PostBet("c", 10))

	tbl.Player("a").folded = true
	tbl.RemoveActivePlayer("a")

	// a's chips stay in the pot, but a can't win it
	tbl.RecalculatePots()
	a.Equal([]*Pot{
		{Amount: 30, EligiblePlayerIDs: []string{"b", "c"}},
	}, tbl.Pots())
}

func TestTable_RecalculatePots_MergesEqualEligibility(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 30, 100, 100)

	a.NoError(tbl.PostBet("a", 30))
	a.NoError(tbl.PostBet("b", 50))
	a.NoError(tbl.PostBet("c", 50))

	// once a folds, the layer a funded and the layer above it pay the same
	// players, so they collapse into one pot
	tbl.Player("a").folded = true
	tbl.RemoveActivePlayer("a")

	tbl.RecalculatePots()
	a.Equal([]*Pot{
		{Amount: 130, EligiblePlayerIDs: []string{"b", "c"}},
	}, tbl.Pots())
}

func TestTable_RecalculatePots_Idempotent(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 30, 100, 100)

	a.NoError(tbl.PostBet("a", 30))
	a.NoError(tbl.PostBet("b", 100))
	a.NoError(tbl.PostBet("c", 100))

	tbl.RecalculatePots()
	first := tbl.Pots()

	tbl.RecalculatePots()
	a.Equal(first, tbl.Pots())
	a.Equal(230, PotTotal(tbl.Pots()))
}

func TestTable_RecalculatePots_NoContributions(t *testing.T) {
	tbl := testTable(t, 100, 100)
	tbl.RecalculatePots()
	assert.Empty(t, tbl.Pots())
	assert.Equal(t, 0, PotTotal(tbl.Pots()))
}

func TestPotTotal(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, PotTotal(nil))
	a.Equal(75, PotTotal([]*Pot{{Amount: 30}, {Amount: 45}}))
}
