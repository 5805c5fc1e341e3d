package holdem

import (
	"time"

	"holdem-server/pkg/handrank"

	"github.com/sirupsen/logrus"
)

// Options configures a game of Texas Hold'em
type Options struct {
	StartingChips int
	SmallBlind    int
	BigBlind      int
	NextHandDelay time.Duration
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		StartingChips: 1000,
		SmallBlind:    5,
		BigBlind:      10,
		NextHandDelay: time.Second * 5,
	}
}

func validateOptions(opts Options) error {
	if opts.StartingChips <= 0 {
		return StateError("starting chips must be greater than zero")
	}

	if opts.SmallBlind <= 0 {
		return StateError("small blind must be greater than zero")
	}

	if opts.BigBlind < opts.SmallBlind {
		return StateError("big blind must be at least the small blind")
	}

	return nil
}

// pendingNextHand is a scheduled transition into the next hand. It exists
// purely to pace the table between hands; Tick performs the transition and
// ForceNextHand short-circuits it for deterministic tests.
type pendingNextHand struct {
	After time.Time
}

// Game drives a table of Texas Hold'em through deal, betting rounds, street
// advances, settlement, and the next-hand setup. It is the only component
// that mutates the table. A game is not safe for concurrent use; the caller
// must serialize all intents for a table (see pkg/lobby).
type Game struct {
	logger logrus.FieldLogger
	opts   Options
	table  *Table
	ranker handrank.Ranker

	handNumber      int
	winners         []*Winner
	pendingNextHand *pendingNextHand
	gameOver        bool

	// called after every hand-ending event
	onStateChange func()
}

// NewGame seats the players, funds their stacks, and starts the first hand:
// the first seat takes the dealer button, blinds are posted, hole cards are
// dealt, and the turn is set to the first player after the big blind.
func NewGame(logger logrus.FieldLogger, players []*Player, opts Options, onStateChange func()) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	for _, p := range players {
		p.chips = opts.StartingChips
	}

	table, err := NewTable(players)
	if err != nil {
		return nil, err
	}

	table.deck.Shuffle(0)

	g := &Game{
		logger:        logger,
		opts:          opts,
		table:         table,
		ranker:        handrank.Evaluator{},
		onStateChange: onStateChange,
	}

	if err := table.SetDealer(table.playerOrder[0]); err != nil {
		return nil, err
	}

	if err := g.beginHand(); err != nil {
		return nil, err
	}

	return g, nil
}

// Table returns the underlying table state
func (g *Game) Table() *Table {
	return g.table
}

// Winners returns the settlement result of the last concluded hand
func (g *Game) Winners() []*Winner {
	return g.winners
}

// IsGameOver returns true once fewer than two players can continue
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// HandNumber returns the one-based number of the current hand
func (g *Game) HandNumber() int {
	return g.handNumber
}

// setRanker substitutes the hand-rank oracle; tests use this to force
// deterministic showdowns
func (g *Game) setRanker(r handrank.Ranker) {
	g.ranker = r
}

// beginHand posts the blinds, deals hole cards, and opens pre-flop action
func (g *Game) beginHand() error {
	g.handNumber++
	g.winners = nil

	if err := g.allocateBlinds(); err != nil {
		return err
	}

	if err := g.table.DealHoleCards(); err != nil {
		return err
	}

	// first to act pre-flop is the first player after the big blind
	g.table.AdvanceTurnTo(g.table.bigBlindID)

	g.logger.WithFields(logrus.Fields{
		"hand":       g.handNumber,
		"dealer":     g.table.dealerID,
		"smallBlind": g.table.smallBlindID,
		"bigBlind":   g.table.bigBlindID,
	}).Info("hand started")

	// the blinds may already have put every stack all-in
	return g.resolveTable()
}

// allocateBlinds assigns the blind positions relative to the dealer and
// posts the blind bets. Heads-up, the dealer is the small blind.
func (g *Game) allocateBlinds() error {
	t := g.table

	var smallBlindID, bigBlindID string
	if len(t.activeIDs) == 2 {
		smallBlindID = t.dealerID
		for _, id := range t.activeIDs {
			if id != t.dealerID {
				bigBlindID = id
			}
		}
	} else {
		smallBlindID = t.NextEligible(t.dealerID)
		bigBlindID = t.NextEligible(smallBlindID)
	}

	if smallBlindID == "" || bigBlindID == "" {
		return ErrNoPlayers
	}

	t.SetBlinds(smallBlindID, bigBlindID)

	// a short stack posting a blind goes all-in for what they have
	if err := t.PostBet(smallBlindID, g.opts.SmallBlind); err != nil {
		return err
	}

	return t.PostBet(bigBlindID, g.opts.BigBlind)
}

// PlayerAction authorizes and applies a player intent, then resolves any
// state transition it causes. On a validation rejection, nothing changes.
func (g *Game) PlayerAction(playerID string, action Action, amount int) error {
	if g.gameOver {
		return ErrGameOver
	}

	if err := Authorize(g.table, playerID, action, amount); err != nil {
		return err
	}

	t := g.table
	p := t.players[playerID]

	switch action {
	case ActionFold:
		p.folded = true
		t.RemoveActivePlayer(playerID)
	case ActionCheck:
		// no chips move on a check
	case ActionCall:
		if err := t.PostBet(playerID, t.currentBet-p.currentBet); err != nil {
			return err
		}
	case ActionBet:
		if err := t.PostBet(playerID, amount); err != nil {
			return err
		}

		t.SetLastAggressor(playerID)
	case ActionRaise:
		if err := t.PostBet(playerID, t.currentBet+amount-p.currentBet); err != nil {
			return err
		}

		t.SetLastAggressor(playerID)
	}

	p.actedThisStreet = true

	g.logger.WithFields(logrus.Fields{
		"player": playerID,
		"street": t.street.String(),
	}).Debug(action.LogMessage(amount))

	return g.postActionResolution(playerID)
}

// PlayerDisconnect marks the player as having left the table. Their
// committed chips stay in the pot ledger. If the hand can no longer
// continue it is settled immediately.
func (g *Game) PlayerDisconnect(playerID string) error {
	t := g.table

	p, ok := t.players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}

	wasTurn := t.currentTurnID == playerID

	p.left = true
	t.RemoveActivePlayer(playerID)

	// the aggressor's seat no longer exists, so the round can only close
	// once every remaining player has matched and acted
	if t.lastAggressorID == playerID {
		t.SetLastAggressor("")
	}

	g.logger.WithField("player", playerID).Info("player left the table")

	if t.street == StreetHandComplete {
		g.endGameIfShortHanded()
		return nil
	}

	if len(t.activeIDs) == 1 {
		t.RecalculatePots()
		g.awardAllPots(t.activeIDs[0])
		g.endHand()
		return nil
	}

	if wasTurn {
		return g.postActionResolution(playerID)
	}

	return nil
}

// postActionResolution advances the turn past the seat that just acted and
// then evaluates the termination and street-advance conditions
func (g *Game) postActionResolution(actedID string) error {
	g.table.AdvanceTurnTo(actedID)
	return g.resolveTable()
}

// resolveTable evaluates, in fixed priority order: fold-out, all-in runout,
// betting-round closure, or nothing (await the next action)
func (g *Game) resolveTable() error {
	t := g.table

	// 1: everyone else folded or left
	if len(t.activeIDs) == 1 {
		t.RecalculatePots()
		g.awardAllPots(t.activeIDs[0])
		g.endHand()
		return nil
	}

	// 2: no further betting is possible; run out the board
	if len(t.CanActIDs()) <= 1 && len(t.AllInIDs()) >= 1 {
		if err := g.runOutBoard(); err != nil {
			return err
		}

		if err := g.settleShowdown(); err != nil {
			return err
		}

		g.endHand()
		return nil
	}

	// 3: the betting round closed; advance the street
	if g.bettingRoundComplete() {
		t.RecalculatePots()

		if err := g.advanceStreet(); err != nil {
			return err
		}

		if t.street == StreetShowdown {
			if err := g.settleShowdown(); err != nil {
				return err
			}

			g.endHand()
			return nil
		}

		// post-flop action opens at the earliest eligible seat clockwise
		// from the dealer
		t.AdvanceTurnTo(t.dealerID)
		return nil
	}

	// 4: await the next action
	return nil
}

// bettingRoundComplete reports whether the current betting round is closed.
// With no aggressor this street, every player who can act must have acted
// (the all-check case). With an aggressor, the round closes exactly when the
// action returns to their seat.
func (g *Game) bettingRoundComplete() bool {
	t := g.table

	for _, id := range t.activeIDs {
		p := t.players[id]
		if !p.canAct() {
			continue
		}

		if p.currentBet < t.currentBet {
			return false
		}
	}

	// the turn can only return to an aggressor who can still act; an all-in
	// aggressor is skipped by the turn advance, so fall back to the
	// everyone-acted rule
	if aggressor := t.players[t.lastAggressorID]; aggressor != nil && aggressor.canAct() {
		return t.currentTurnID == t.lastAggressorID
	}

	for _, id := range t.activeIDs {
		p := t.players[id]
		if !p.canAct() {
			continue
		}

		if !p.actedThisStreet {
			return false
		}
	}

	return true
}

// advanceStreet moves to the next street and deals its community cards
func (g *Game) advanceStreet() error {
	t := g.table
	t.AdvanceStreet()

	if t.street == StreetShowdown {
		return nil
	}

	if err := t.DealCommunityCards(); err != nil {
		return err
	}

	g.logger.WithFields(logrus.Fields{
		"street":    t.street.String(),
		"community": t.community.String(),
	}).Debug("street advanced")

	return nil
}

// runOutBoard deals the remaining streets without further betting
func (g *Game) runOutBoard() error {
	for g.table.street != StreetShowdown {
		if err := g.advanceStreet(); err != nil {
			return err
		}
	}

	return nil
}

// endHand stores the settlement, marks the hand complete, notifies the
// transport, and schedules the next hand
func (g *Game) endHand() {
	t := g.table
	t.SetStreet(StreetHandComplete)
	t.currentTurnID = ""

	g.logger.WithFields(logrus.Fields{
		"hand":    g.handNumber,
		"winners": len(g.winners),
	}).Info("hand complete")

	g.notifyStateChange()

	g.pendingNextHand = &pendingNextHand{
		After: time.Now().Add(g.opts.NextHandDelay),
	}
}

// Tick advances the game into the next hand once the inter-hand delay has
// elapsed. The caller invokes it periodically from the same loop that
// serializes player intents. Returns true if the state changed.
func (g *Game) Tick() (bool, error) {
	if g.gameOver || g.pendingNextHand == nil {
		return false, nil
	}

	if time.Now().Before(g.pendingNextHand.After) {
		return false, nil
	}

	g.pendingNextHand = nil
	return true, g.nextHand()
}

// ForceNextHand starts the next hand immediately, skipping the remaining
// inter-hand delay
func (g *Game) ForceNextHand() error {
	if g.gameOver {
		return ErrGameOver
	}

	if g.pendingNextHand == nil {
		return ErrHandInProgress
	}

	g.pendingNextHand = nil
	return g.nextHand()
}

// nextHand resets the table, rotates the dealer, and starts the next hand.
// The game ends if fewer than two players can continue. If the outgoing
// dealer was purged by the reset, the button search restarts from the first
// seat rather than the departed seat.
func (g *Game) nextHand() error {
	t := g.table
	t.ResetForNewHand()

	if len(t.activeIDs) < 2 {
		g.gameOver = true
		g.logger.WithField("players", len(t.activeIDs)).Info("not enough players to continue, game over")
		g.notifyStateChange()
		return nil
	}

	nextDealerID := t.NextEligible(t.dealerID)
	if nextDealerID == "" {
		return ErrNoPlayers
	}

	if err := t.SetDealer(nextDealerID); err != nil {
		return err
	}

	return g.beginHand()
}

// endGameIfShortHanded cancels the pending next hand when a disconnect
// during the inter-hand window leaves fewer than two players with chips
func (g *Game) endGameIfShortHanded() {
	remaining := 0
	for _, p := range g.table.players {
		if !p.left && p.chips > 0 {
			remaining++
		}
	}

	if remaining >= 2 {
		return
	}

	g.pendingNextHand = nil
	g.gameOver = true
	g.logger.Info("not enough players to continue, game over")
	g.notifyStateChange()
}

func (g *Game) notifyStateChange() {
	if g.onStateChange != nil {
		g.onStateChange()
	}
}
