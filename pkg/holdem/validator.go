package holdem

// Authorize checks whether the proposed action is legal for the current
// table state. It is a pure predicate: it never mutates the table and can be
// re-run freely. A nil error means the action may be applied.
func Authorize(t *Table, playerID string, action Action, amount int) error {
	if t.CurrentTurnID() != playerID {
		return ErrOutOfTurn
	}

	p := t.Player(playerID)
	if p == nil || !p.canAct() {
		return ErrCannotAct
	}

	switch action {
	case ActionFold:
		// a player who can act can always fold
		return nil
	case ActionCheck:
		return authorizeCheck(t)
	case ActionCall:
		return authorizeCall(t, p)
	case ActionBet:
		return authorizeBet(t, amount)
	case ActionRaise:
		return authorizeRaise(t, p, amount)
	}

	return ErrInvalidAction
}

func authorizeCheck(t *Table) error {
	if t.CurrentBet() > 0 {
		return newValidationError("cannot check with a bet of ${%d} on the table", t.CurrentBet())
	}

	return nil
}

func authorizeCall(t *Table, p *Player) error {
	if t.CurrentBet() == 0 {
		return ValidationError("cannot call without a bet on the table")
	}

	if p.currentBet == t.CurrentBet() {
		return ValidationError("you have already matched the current bet")
	}

	return nil
}

func authorizeBet(t *Table, amount int) error {
	if t.CurrentBet() > 0 {
		return ValidationError("cannot bet with a bet already on the table")
	}

	if amount <= 0 {
		return ValidationError("bet amount must be greater than zero")
	}

	return nil
}

func authorizeRaise(t *Table, p *Player, amount int) error {
	if t.CurrentBet() == 0 {
		return ValidationError("cannot raise without a bet on the table")
	}

	if amount <= 0 {
		return ValidationError("raise amount must be greater than zero")
	}

	// a raise is never silently capped; going all-in happens through the
	// call and bet paths instead
	if t.CurrentBet()+amount > p.chips+p.currentBet {
		return newValidationError("raise to ${%d} exceeds your total chips", t.CurrentBet()+amount)
	}

	return nil
}
