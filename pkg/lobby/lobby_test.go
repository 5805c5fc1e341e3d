package lobby

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"holdem-server/pkg/holdem"
)

func testLobby(opts Options) *Lobby {
	return newLobby(NewManager(logrus.StandardLogger()), opts)
}

// addTestClient registers a client without going through the run loop
func addTestClient(l *Lobby) *Client {
	c := NewClient(nil)
	c.lobby = l
	l.clients[c] = true
	return c
}

// received drains the client's outgoing messages and returns them
func received(t *testing.T, c *Client) []*Response {
	t.Helper()

	responses := make([]*Response, 0)
	for {
		select {
		case msg := <-c.SendChan():
			resp, ok := msg.(*Response)
			if !ok {
				t.Fatalf("unexpected message type: %T", msg)
			}

			responses = append(responses, resp)
		default:
			return responses
		}
	}
}

// lastWithKey returns the most recent response with the given key
func lastWithKey(t *testing.T, c *Client, key string) *Response {
	t.Helper()

	var found *Response
	for _, resp := range received(t, c) {
		if resp.Key == key {
			found = resp
		}
	}

	if found == nil {
		t.Fatalf("no response with key %q", key)
	}

	return found
}

func TestLobby_Join(t *testing.T) {
	a := assert.New(t)
	l := testLobby(DefaultOptions())

	c1 := addTestClient(l)
	l.handleMessage(c1, &PayloadIn{Action: "join", Context: "ctx-1"})

	resp := lastWithKey(t, c1, "joined")
	data := resp.Data.(*joined)
	a.NotEmpty(data.PlayerID)
	a.NotEmpty(data.Name)
	a.True(data.Host)
	a.Equal("ctx-1", resp.Context)
	a.Equal(data.PlayerID, l.hostID)

	c2 := addTestClient(l)
	l.handleMessage(c2, &PayloadIn{Action: "join", Name: "Bob"})
	data = lastWithKey(t, c2, "joined").Data.(*joined)
	a.Equal("Bob", data.Name)
	a.False(data.Host)

	// the roster broadcast reaches both clients
	state := lastWithKey(t, c2, "lobby").Data.(*lobbyState)
	a.False(state.Started)
	a.Len(state.Seats, 2)

	// joining twice is rejected
	l.handleMessage(c1, &PayloadIn{Action: "join"})
	a.Equal("you have already joined", lastWithKey(t, c1, "error").Value)
}

func TestLobby_Join_Full(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.MaxSeats = 2
	l := testLobby(opts)

	for i := 0; i < 2; i++ {
		c := addTestClient(l)
		l.handleMessage(c, &PayloadIn{Action: "join"})
	}

	c := addTestClient(l)
	l.handleMessage(c, &PayloadIn{Action: "join"})
	a.Equal("lobby is full", lastWithKey(t, c, "error").Value)
}

func TestLobby_Start(t *testing.T) {
	a := assert.New(t)
	l := testLobby(DefaultOptions())

	host := addTestClient(l)
	l.handleMessage(host, &PayloadIn{Action: "join", Name: "Host"})

	// can't start alone
	l.handleMessage(host, &PayloadIn{Action: "start"})
	a.Equal("there must be at least two players", lastWithKey(t, host, "error").Value)

	guest := addTestClient(l)
	l.handleMessage(guest, &PayloadIn{Action: "join", Name: "Guest"})

	// only the host can start
	l.handleMessage(guest, &PayloadIn{Action: "start"})
	a.Equal("only the host can start the game", lastWithKey(t, guest, "error").Value)

	l.handleMessage(host, &PayloadIn{Action: "start"})
	a.True(l.started)
	a.NotNil(l.game)

	// both clients get their view of the table
	a.Equal("game", lastWithKey(t, host, "game").Key)
	a.Equal("game", lastWithKey(t, guest, "game").Key)

	// no more joins or starts
	late := addTestClient(l)
	l.handleMessage(late, &PayloadIn{Action: "join"})
	a.Equal("game has already started", lastWithKey(t, late, "error").Value)

	l.handleMessage(host, &PayloadIn{Action: "start"})
	a.Equal("game has already started", lastWithKey(t, host, "error").Value)
}

func TestLobby_Play(t *testing.T) {
	a := assert.New(t)
	l := testLobby(DefaultOptions())

	host := addTestClient(l)
	l.handleMessage(host, &PayloadIn{Action: "play", GameAction: "fold"})
	a.Equal("game has not started yet", lastWithKey(t, host, "error").Value)

	l.handleMessage(host, &PayloadIn{Action: "join", Name: "Host"})
	guest := addTestClient(l)
	l.handleMessage(guest, &PayloadIn{Action: "join", Name: "Guest"})
	l.handleMessage(host, &PayloadIn{Action: "start"})

	l.handleMessage(host, &PayloadIn{Action: "play", GameAction: "shove"})
	a.Equal("unknown action for identifier: shove", lastWithKey(t, host, "error").Value)

	l.handleMessage(host, &PayloadIn{Action: "play", GameAction: "bet"})
	a.Equal("amount must be greater than zero", lastWithKey(t, host, "error").Value)

	// heads-up, the host seat is the dealer and acts first pre-flop
	a.Equal(host.playerID, l.game.Table().CurrentTurnID())

	l.handleMessage(guest, &PayloadIn{Action: "play", GameAction: "fold"})
	a.Equal("it is not your turn", lastWithKey(t, guest, "error").Value)

	l.handleMessage(host, &PayloadIn{Action: "play", GameAction: "fold", Context: "ctx-9"})
	ok := lastWithKey(t, host, "status")
	a.Equal("OK", ok.Value)
	a.Equal("ctx-9", ok.Context)

	state := lastWithKey(t, guest, "game").Data.(*holdem.GameState)
	a.Equal(holdem.StreetHandComplete, state.Street)
	a.Len(state.Winners, 1)
}

func TestLobby_HostLeaveBeforeStart(t *testing.T) {
	a := assert.New(t)
	l := testLobby(DefaultOptions())

	host := addTestClient(l)
	l.handleMessage(host, &PayloadIn{Action: "join", Name: "Host"})
	guest := addTestClient(l)
	l.handleMessage(guest, &PayloadIn{Action: "join", Name: "Guest"})

	delete(l.clients, host)
	l.clientLeft(host)

	// the remaining player is promoted to host
	a.Equal(guest.playerID, l.hostID)
	a.Len(l.seats, 1)
	a.True(l.seats[0].Host)

	state := lastWithKey(t, guest, "lobby").Data.(*lobbyState)
	a.Len(state.Seats, 1)
}

func TestLobby_LeaveDuringGame(t *testing.T) {
	a := assert.New(t)
	l := testLobby(DefaultOptions())

	host := addTestClient(l)
	l.handleMessage(host, &PayloadIn{Action: "join", Name: "Host"})
	guest := addTestClient(l)
	l.handleMessage(guest, &PayloadIn{Action: "join", Name: "Guest"})
	l.handleMessage(host, &PayloadIn{Action: "start"})

	delete(l.clients, guest)
	l.clientLeft(guest)

	// the hand settles in the host's favor
	state := lastWithKey(t, host, "game").Data.(*holdem.GameState)
	a.Equal(holdem.StreetHandComplete, state.Street)
	a.Len(state.Winners, 1)
	a.Equal(host.playerID, state.Winners[0].PlayerID)
}

func TestManager(t *testing.T) {
	a := assert.New(t)
	m := NewManager(logrus.StandardLogger())

	l := m.CreateLobby(DefaultOptions())
	defer l.EndShift()

	a.NotEmpty(l.ID)
	a.Equal(l, m.Lobby(l.ID))
	a.Nil(m.Lobby("nope"))

	m.removeLobby(l.ID)
	a.Nil(m.Lobby(l.ID))
}
