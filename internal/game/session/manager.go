package session

import (
	"sync"
	"time"

	"github.com/Sagarjari01/judgment/internal/apperrors"
	"github.com/Sagarjari01/judgment/internal/game/card"
)

// Manager 游戏注册表。The only shared state across games is this map;
// each aggregate serializes its own mutations.
type Manager struct {
	notifier     Notifier
	resolveDelay time.Duration

	games map[string]*GameSession
	mu    sync.RWMutex
}

// NewManager creates the registry. resolveDelay is the trick resolution
// window (~2s in production; tests use near-zero). A nil notifier
// discards events.
func NewManager(notifier Notifier, resolveDelay time.Duration) *Manager {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Manager{
		notifier:     notifier,
		resolveDelay: resolveDelay,
		games:        make(map[string]*GameSession),
	}
}

// CreateGameWithAI sets up a game of 1 human plus numPlayers-1 AI
// opponents and starts round 1 (status BIDDING). Returns the initial
// snapshot.
func (m *Manager) CreateGameWithAI(numPlayers int, humanName, humanID string, totalRounds int) *Snapshot {
	s := newGameSession(numPlayers, humanName, humanID, totalRounds, m.resolveDelay, m.notifier)

	m.mu.Lock()
	m.games[s.id] = s
	m.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (m *Manager) get(gameID string) (*GameSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[gameID]
	if !ok {
		return nil, apperrors.ErrGameNotFound
	}
	return s, nil
}

// PlaceBid applies a participant's bid to a game.
func (m *Manager) PlaceBid(gameID, playerID string, bid int) error {
	s, err := m.get(gameID)
	if err != nil {
		return err
	}
	return s.HandleBid(playerID, bid)
}

// PlayCard applies a participant's card play to a game.
func (m *Manager) PlayCard(gameID, playerID string, c card.Card) error {
	s, err := m.get(gameID)
	if err != nil {
		return err
	}
	return s.HandlePlayCard(playerID, c)
}

// DriveAITurns advances all consecutive AI turns for a game.
func (m *Manager) DriveAITurns(gameID string) error {
	s, err := m.get(gameID)
	if err != nil {
		return err
	}
	s.DriveAITurns()
	return nil
}

// GameState returns a full, unredacted snapshot.
func (m *Manager) GameState(gameID string) (*Snapshot, error) {
	s, err := m.get(gameID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

// GameStateFor returns a snapshot with only the viewer's hand visible.
func (m *Manager) GameStateFor(gameID, viewerID string) (*Snapshot, error) {
	snap, err := m.GameState(gameID)
	if err != nil {
		return nil, err
	}
	return snap.Redacted(viewerID), nil
}

// Remove discards a game and cancels any pending resolution timer.
func (m *Manager) Remove(gameID string) {
	m.mu.Lock()
	s, ok := m.games[gameID]
	delete(m.games, gameID)
	m.mu.Unlock()

	if ok {
		s.stop()
	}
}

// Count returns the number of live games.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
