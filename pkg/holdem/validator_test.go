package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_TurnAndEligibility(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 100, 100, 100)
	a.NoError(tbl.SetCurrentTurn("a"))

	a.Equal(ErrOutOfTurn, Authorize(tbl, "b", ActionFold, 0))
	a.Equal(ErrOutOfTurn, Authorize(tbl, "nope", ActionFold, 0))

	tbl.Player("a").folded = true
	a.Equal(ErrCannotAct, Authorize(tbl, "a", ActionFold, 0))

	tbl.Player("a").folded = false
	tbl.Player("a").allIn = true
	a.Equal(ErrCannotAct, Authorize(tbl, "a", ActionCheck, 0))
}

func TestAuthorize_Fold(t *testing.T) {
	tbl := testTable(t, 100, 100)
	assert.NoError(t, tbl.SetCurrentTurn("a"))

	// folding is always allowed, even with no bet to match
	assert.NoError(t, Authorize(tbl, "a", ActionFold, 0))

	tbl.currentBet = 50
	assert.NoError(t, Authorize(tbl, "a", ActionFold, 0))
}

func TestAuthorize_Check(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 100, 100)
	a.NoError(tbl.SetCurrentTurn("a"))

	a.NoError(Authorize(tbl, "a", ActionCheck, 0))

	tbl.currentBet = 10
	a.EqualError(Authorize(tbl, "a", ActionCheck, 0), "cannot check with a bet of ${10} on the table")
}

func TestAuthorize_Call(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 100, 100)
	a.NoError(tbl.SetCurrentTurn("a"))

	a.EqualError(Authorize(tbl, "a", ActionCall, 0), "cannot call without a bet on the table")

	tbl.currentBet = 10
	a.NoError(Authorize(tbl, "a", ActionCall, 0))

	tbl.Player("a").currentBet = 10
	a.EqualError(Authorize(tbl, "a", ActionCall, 0), "you have already matched the current bet")
}

func TestAuthorize_Bet(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 100, 100)
	a.NoError(tbl.SetCurrentTurn("a"))

	a.NoError(Authorize(tbl, "a", ActionBet, 50))
	a.EqualError(Authorize(tbl, "a", ActionBet, 0), "bet amount must be greater than zero")

	tbl.currentBet = 10
	a.EqualError(Authorize(tbl, "a", ActionBet, 50), "cannot bet with a bet already on the table")
}

func TestAuthorize_Raise(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 100, 100)
	a.NoError(tbl.SetCurrentTurn("a"))

	a.EqualError(Authorize(tbl, "a", ActionRaise, 10), "cannot raise without a bet on the table")

	tbl.currentBet = 10
	a.NoError(Authorize(tbl, "a", ActionRaise, 10))
	a.EqualError(Authorize(tbl, "a", ActionRaise, 0), "raise amount must be greater than zero")

	// raising to exactly the stack is allowed; beyond it is not
	a.NoError(Authorize(tbl, "a", ActionRaise, 90))
	a.EqualError(Authorize(tbl, "a", ActionRaise, 91), "raise to ${101} exceeds your total chips")
}

func TestAuthorize_UnknownAction(t *testing.T) {
	tbl := testTable(t, 100, 100)
	assert.NoError(t, tbl.SetCurrentTurn("a"))

	assert.Equal(t, ErrInvalidAction, Authorize(tbl, "a", Action("jump"), 0))
}
