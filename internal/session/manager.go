package session

import "sync"

// Manager holds the live sessions in memory, keyed by session ID.
// There is no persistence: sessions exist for the lifetime of the
// process only.
type Manager struct {
	mu       sync.RWMutex
	gw       ModelGateway
	sessions map[string]*Session
}

// NewManager creates an empty session manager backed by the gateway.
func NewManager(gw ModelGateway) *Manager {
	return &Manager{
		gw:       gw,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session in the Intake state and returns it.
func (m *Manager) Create() *Session {
	s := NewSession(m.gw)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes the session with the given ID. Deleting an unknown ID
// is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
