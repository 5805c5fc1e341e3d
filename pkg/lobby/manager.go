package lobby

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Manager is responsible for dispatching players to lobbies
type Manager struct {
	logger  logrus.FieldLogger
	mu      sync.Mutex
	lobbies map[string]*Lobby
}

// NewManager returns a new dispatch object
func NewManager(logger logrus.FieldLogger) *Manager {
	return &Manager{
		logger:  logger,
		lobbies: make(map[string]*Lobby),
	}
}

// CreateLobby creates a lobby, starts its run loop, and returns it
func (m *Manager) CreateLobby(opts Options) *Lobby {
	l := newLobby(m, opts)
	l.StartShift()

	m.mu.Lock()
	m.lobbies[l.ID] = l
	m.mu.Unlock()

	m.logger.WithField("lobby", l.ID).Info("lobby created")

	return l
}

// Lobby returns the lobby with the given ID, or nil if it does not exist
func (m *Manager) Lobby(id string) *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lobbies[id]
}

func (m *Manager) removeLobby(id string) {
	m.mu.Lock()
	delete(m.lobbies, id)
	m.mu.Unlock()

	m.logger.WithField("lobby", id).Info("lobby removed")
}
