package mux

import (
	"net/http"

	"holdem-server/pkg/lobby"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	manager *lobby.Manager
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		manager: lobby.NewManager(logrus.StandardLogger()),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/lobby").Handler(this.postLobby())

	lr := r.PathPrefix("/lobby/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	lr.Use(this.lobbyMiddleware)

	lr.Methods(http.MethodGet).Path("/ws").Handler(this.getLobbyUUIDWS())

	return this
}
