package game

import "sync"

// Manager holds the live round of each conversation. Rounds themselves
// are not shared: each one is created with its own Deck.
type Manager struct {
	rounds map[int64]*Round
	mu     sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		rounds: make(map[int64]*Round),
	}
}

func (m *Manager) Get(chatID int64) *Round {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rounds[chatID]
}

func (m *Manager) Set(chatID int64, round *Round) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[chatID] = round
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, chatID)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rounds)
}
