package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGame_StateForPlayer(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 3, DefaultOptions())

	state := g.StateForPlayer("a")
	a.Equal([]string{"a", "b", "c"}, state.PlayerOrder)
	a.Equal(StreetPreFlop, state.Street)
	a.Equal(10, state.CurrentBet)
	a.Equal("a", state.CurrentTurnID)
	a.Equal("a", state.DealerID)
	a.False(state.GameOver)

	// a sees their own hole cards and nobody else's
	a.Len(state.Players[0].HoleCards, 2)
	a.Nil(state.Players[1].HoleCards)
	a.Nil(state.Players[2].HoleCards)

	// a spectator sees no hole cards at all
	state = g.StateForPlayer("")
	for _, p := range state.Players {
		a.Nil(p.HoleCards)
	}
}

func TestGame_StateForPlayer_ShowdownReveal(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 3, DefaultOptions())

	a.NoError(g.PlayerAction("a", ActionFold, 0))
	a.NoError(g.PlayerDisconnect("b"))
	a.Equal(StreetHandComplete, g.Table().Street())

	// once the hand completes, only players still in the hand are revealed
	state := g.StateForPlayer("")
	a.Nil(state.Players[0].HoleCards)
	a.Nil(state.Players[1].HoleCards)
	a.Len(state.Players[2].HoleCards, 2)

	a.Equal(g.Winners(), state.Winners)
}
