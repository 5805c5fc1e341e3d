package lobby

import (
	"errors"
	"time"

	"holdem-server/internal/util"
	"holdem-server/pkg/holdem"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// tickInterval is how often the run loop polls the game for scheduled
// transitions (the inter-hand delay)
const tickInterval = time.Millisecond * 250

// Options configures a lobby
type Options struct {
	MaxSeats int
	Game     holdem.Options
}

// DefaultOptions returns the default lobby options
func DefaultOptions() Options {
	return Options{
		MaxSeats: 6,
		Game:     holdem.DefaultOptions(),
	}
}

// Lobby owns one table: the pre-game roster and, once started, the game
// itself. All intents for the table are serialized through a single run
// loop, so the game never sees concurrent mutations.
type Lobby struct {
	ID string

	logger  logrus.FieldLogger
	manager *Manager
	opts    Options

	clients map[*Client]bool
	seats   []*SeatInfo
	started bool
	hostID  string
	game    *holdem.Game

	execInRunLoop chan func()
	close         chan bool
}

func newLobby(manager *Manager, opts Options) *Lobby {
	id := uuid.New().String()

	return &Lobby{
		ID:            id,
		logger:        manager.logger.WithField("lobby", id),
		manager:       manager,
		opts:          opts,
		clients:       make(map[*Client]bool),
		seats:         make([]*SeatInfo, 0, opts.MaxSeats),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// StartShift starts the run loop
func (l *Lobby) StartShift() {
	go l.runLoop()
}

// EndShift terminates the run loop
func (l *Lobby) EndShift() {
	close(l.close)
}

func (l *Lobby) runLoop() {
	l.logger.Debug("creating lobby run loop")

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case fn := <-l.execInRunLoop:
			fn()
		case <-ticker.C:
			l.tickGame()
		case <-l.close:
			l.logger.Debug("terminating lobby run loop")
			return
		}
	}
}

// AddClient registers a connected client
// This method must return quickly
func (l *Lobby) AddClient(client *Client) {
	// bind before the read loop can deliver the client's first message
	client.lobby = l

	l.execInRunLoop <- func() {
		l.clients[client] = true
	}
}

// RemoveClient unregisters a client and processes the disconnect
// This method must return quickly
func (l *Lobby) RemoveClient(client *Client) {
	l.execInRunLoop <- func() {
		delete(l.clients, client)
		l.clientLeft(client)

		if len(l.clients) == 0 {
			l.manager.removeLobby(l.ID)
			l.EndShift()
		}
	}
}

// ReceivedMessage dispatches a client intent onto the run loop
// This method must return quickly
func (l *Lobby) ReceivedMessage(client *Client, msg *PayloadIn) {
	l.execInRunLoop <- func() {
		l.handleMessage(client, msg)
	}
}

func (l *Lobby) handleMessage(client *Client, msg *PayloadIn) {
	switch msg.Action {
	case "join":
		l.handleJoin(client, msg)
	case "start":
		l.handleStart(client, msg)
	case "play":
		l.handlePlay(client, msg)
	default:
		client.Send(Error(errors.New("unknown action: "+msg.Action), msg.Context))
	}
}

func (l *Lobby) handleJoin(client *Client, msg *PayloadIn) {
	if l.started {
		client.Send(Error(errors.New("game has already started"), msg.Context))
		return
	}

	if client.playerID != "" {
		client.Send(Error(errors.New("you have already joined"), msg.Context))
		return
	}

	if len(l.seats) >= l.opts.MaxSeats {
		client.Send(Error(errors.New("lobby is full"), msg.Context))
		return
	}

	name := msg.Name
	if name == "" {
		name = util.GetRandomName()
	}

	client.playerID = uuid.New().String()
	client.name = name

	host := len(l.seats) == 0
	if host {
		l.hostID = client.playerID
	}

	l.seats = append(l.seats, &SeatInfo{
		PlayerID: client.playerID,
		Name:     name,
		Host:     host,
	})

	l.logger.WithFields(logrus.Fields{
		"player": client.playerID,
		"name":   name,
		"host":   host,
	}).Info("player joined the lobby")

	client.Send(&Response{
		Key:     "joined",
		Data:    &joined{PlayerID: client.playerID, Name: name, Host: host},
		Context: msg.Context,
	})

	l.broadcastLobbyState()
}

func (l *Lobby) handleStart(client *Client, msg *PayloadIn) {
	if l.started {
		client.Send(Error(errors.New("game has already started"), msg.Context))
		return
	}

	if client.playerID != l.hostID {
		client.Send(Error(errors.New("only the host can start the game"), msg.Context))
		return
	}

	players := make([]*holdem.Player, len(l.seats))
	for i, seat := range l.seats {
		players[i] = holdem.NewPlayer(seat.PlayerID, seat.Name)
	}

	game, err := holdem.NewGame(l.logger, players, l.opts.Game, l.broadcastGameState)
	if err != nil {
		client.Send(Error(err, msg.Context))
		return
	}

	l.started = true
	l.game = game

	l.logger.WithField("players", len(players)).Info("game started")

	client.Send(OK(msg.Context))
	l.broadcastLobbyState()
	l.broadcastGameState()
}

func (l *Lobby) handlePlay(client *Client, msg *PayloadIn) {
	if l.game == nil {
		client.Send(Error(errors.New("game has not started yet"), msg.Context))
		return
	}

	if client.playerID == "" {
		client.Send(Error(errors.New("you have not joined the lobby"), msg.Context))
		return
	}

	action, err := holdem.ActionFromString(msg.GameAction)
	if err != nil {
		client.Send(Error(err, msg.Context))
		return
	}

	if action.RequiresAmount() && msg.Amount <= 0 {
		client.Send(Error(errors.New("amount must be greater than zero"), msg.Context))
		return
	}

	if err := l.game.PlayerAction(client.playerID, action, msg.Amount); err != nil {
		client.Send(Error(err, msg.Context))
		return
	}

	client.Send(OK(msg.Context))
	l.broadcastGameState()
}

// clientLeft handles a websocket disconnect for a client that may or may
// not have joined the roster
func (l *Lobby) clientLeft(client *Client) {
	if client.playerID == "" {
		return
	}

	if !l.started {
		seats := make([]*SeatInfo, 0, len(l.seats))
		for _, seat := range l.seats {
			if seat.PlayerID != client.playerID {
				seats = append(seats, seat)
			}
		}
		l.seats = seats

		// promote the next player if the host left
		if l.hostID == client.playerID {
			l.hostID = ""
			if len(l.seats) > 0 {
				l.seats[0].Host = true
				l.hostID = l.seats[0].PlayerID
			}
		}

		l.broadcastLobbyState()
		return
	}

	if err := l.game.PlayerDisconnect(client.playerID); err != nil {
		l.logger.WithError(err).WithField("player", client.playerID).Error("could not process disconnect")
		return
	}

	l.broadcastGameState()
}

// tickGame lets the game perform its scheduled transitions
func (l *Lobby) tickGame() {
	if l.game == nil {
		return
	}

	changed, err := l.game.Tick()
	if err != nil {
		l.logger.WithError(err).Error("game tick failed")
		return
	}

	if changed {
		l.broadcastGameState()
	}
}

func (l *Lobby) broadcastLobbyState() {
	state := &lobbyState{
		Started: l.started,
		Seats:   l.seats,
	}

	for client := range l.clients {
		client.Send(&Response{Key: "lobby", Data: state})
	}
}

// broadcastGameState sends each client their personalized view of the table
func (l *Lobby) broadcastGameState() {
	if l.game == nil {
		return
	}

	for client := range l.clients {
		client.Send(&Response{
			Key:  "game",
			Data: l.game.StateForPlayer(client.playerID),
		})
	}
}
