package lobby

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	lobby *Lobby

	// playerID is set once the client has joined the lobby
	playerID string
	name     string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		send:  make(chan interface{}, 256),
		Close: make(chan string),
		Conn:  conn,
	}
}

// PlayerID returns the player id, or the empty string before the client joined
func (c *Client) PlayerID() string {
	return c.playerID
}

// Send sends a message to the web client
// Returns false if the client's buffer is full and the message was dropped
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	if c.playerID == "" {
		return fmt.Sprintf("anonymous:%s", c.Conn.RemoteAddr())
	}

	return fmt.Sprintf("%s:%s", c.playerID, c.lobby.ID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.lobby == nil {
		logrus.WithField("msg", msg).Warn("received message, but lobby not found")
		return
	}

	c.lobby.ReceivedMessage(c, msg)
}
