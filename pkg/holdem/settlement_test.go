package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGame_SidePotSettlement(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 3, DefaultOptions())
	tbl := g.Table()

	// the dealer is short-stacked
	tbl.Player("a").chips = 30
	favorPlayers(g, "a")

	a.NoError(g.PlayerAction("a", ActionCall, 0))
	a.NoError(g.PlayerAction("b", ActionRaise, 90))
	a.NoError(g.PlayerAction("c", ActionCall, 0))
	a.NoError(g.PlayerAction("a", ActionCall, 0))
	a.True(tbl.Player("a").IsAllIn())
	a.Equal(StreetFlop, tbl.Street())

	// a is all-in for 30; the overage goes to a side pot
	a.Equal([]*Pot{
		{Amount: 90, EligiblePlayerIDs: []string{"a", "b", "c"}},
		{Amount: 140, EligiblePlayerIDs: []string{"b", "c"}},
	}, tbl.Pots())

	// b and c check it down
	for tbl.Street() != StreetHandComplete {
		a.NoError(g.PlayerAction("b", ActionCheck, 0))
		a.NoError(g.PlayerAction("c", ActionCheck, 0))
	}

	// a wins the main pot; b and c chop the side pot they alone funded
	a.Equal([]*Winner{
		{PlayerID: "a", Amount: 90, Reason: WinReasonBestHand},
		{PlayerID: "b", Amount: 70, Reason: WinReasonBestHand},
		{PlayerID: "c", Amount: 70, Reason: WinReasonBestHand},
	}, g.Winners())

	a.Equal(90, tbl.Player("a").Chips())
	a.Equal(970, tbl.Player("b").Chips())
	a.Equal(970, tbl.Player("c").Chips())
	a.Equal(2030, totalChips(g))
}

func TestGame_LayeredAllInShowdown(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 3, DefaultOptions())
	tbl := g.Table()

	tbl.Player("a").chips = 30
	tbl.Player("b").chips = 30
	favorPlayers(g, "a")

	a.NoError(g.PlayerAction("a", ActionCall, 0))
	a.NoError(g.PlayerAction("b", ActionCall, 0))
	a.NoError(g.PlayerAction("c", ActionRaise, 90))

	// both short stacks call all-in; the board runs out immediately
	a.NoError(g.PlayerAction("a", ActionCall, 0))
	a.NoError(g.PlayerAction("b", ActionCall, 0))
	a.Equal(StreetHandComplete, tbl.Street())
	a.Len(tbl.Community(), 5)

	// c's unmatched 70 comes back as a pot only c is eligible for
	a.Equal([]*Winner{
		{PlayerID: "a", Amount: 90, Reason: WinReasonBestHand},
		{PlayerID: "c", Amount: 70, Reason: WinReasonBestHand},
	}, g.Winners())

	a.Equal(90, tbl.Player("a").Chips())
	a.Equal(0, tbl.Player("b").Chips())
	a.Equal(970, tbl.Player("c").Chips())
	a.Equal(1060, totalChips(g))
}

func TestGame_LeaverOverageIsForfeited(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 3, DefaultOptions())
	tbl := g.Table()

	tbl.Player("a").chips = 30
	favorPlayers(g, "b")

	a.NoError(g.PlayerAction("a", ActionCall, 0))
	a.NoError(g.PlayerAction("b", ActionCall, 0))
	a.NoError(g.PlayerAction("c", ActionRaise, 90))

	// the raiser leaves before anyone matches the 100
	a.NoError(g.PlayerDisconnect("c"))

	// a calls all-in for 30, b can no longer bet against anyone
	a.NoError(g.PlayerAction("a", ActionCall, 0))
	a.Equal(StreetHandComplete, tbl.Street())

	// nobody in the hand reached c's level, so that layer pays out to no one
	a.Equal([]*Winner{
		{PlayerID: "a", Amount: 40, Reason: WinReasonBestHand},
		{PlayerID: "b", Amount: 30, Reason: WinReasonBestHand},
	}, g.Winners())

	a.Equal(40, tbl.Player("a").Chips())
	a.Equal(1020, tbl.Player("b").Chips())
	a.Equal(900, tbl.Player("c").Chips())
}
