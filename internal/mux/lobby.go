package mux

import (
	"context"
	"net/http"
	"time"

	"holdem-server/internal/config"
	"holdem-server/pkg/lobby"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const ctxLobbyKey ctxKey = iota

type createLobbyRequest struct {
	StartingChips int `json:"startingChips"`
	SmallBlind    int `json:"smallBlind"`
	BigBlind      int `json:"bigBlind"`
}

type createLobbyResponse struct {
	UUID string `json:"uuid"`
}

func (m *Mux) postLobby() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := config.Instance()

		opts := lobby.DefaultOptions()
		opts.MaxSeats = cfg.Lobby.MaxSeats
		opts.Game.StartingChips = cfg.Game.StartingChips
		opts.Game.SmallBlind = cfg.Game.SmallBlind
		opts.Game.BigBlind = cfg.Game.BigBlind
		opts.Game.NextHandDelay = time.Duration(cfg.Game.NextHandDelaySec) * time.Second

		// the request body is optional and overrides the configured stakes
		if r.ContentLength > 0 {
			var payload createLobbyRequest
			if !decodeRequest(w, r, &payload) {
				return
			}

			if payload.StartingChips > 0 {
				opts.Game.StartingChips = payload.StartingChips
			}

			if payload.SmallBlind > 0 {
				opts.Game.SmallBlind = payload.SmallBlind
			}

			if payload.BigBlind > 0 {
				opts.Game.BigBlind = payload.BigBlind
			}
		}

		l := m.manager.CreateLobby(opts)
		writeJSON(w, http.StatusCreated, createLobbyResponse{UUID: l.ID})
	}
}

func (m *Mux) lobbyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := m.manager.Lobby(gmux.Vars(r)["uuid"])
		if l == nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxLobbyKey, l)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
