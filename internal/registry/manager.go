// Package registry keeps many draughts games in memory, addressed by id.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/draughts-go/internal/config"
	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/engine"
	"github.com/lgbarn/draughts-go/internal/errors"
)

// Info describes a stored game.
type Info struct {
	ID        string
	FEN       string
	Turn      draughts.Colour
	Plies     int
	GameOver  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type entry struct {
	game      *engine.Game
	createdAt time.Time
	updatedAt time.Time
}

// Manager is a concurrency safe store of games.
// All operations on a game are serialized by the manager's lock.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*entry
	cfg   *config.Config
	now   func() time.Time
}

// NewManager creates an empty manager. Games are created with cfg, or the defaults if nil.
func NewManager(cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Manager{
		games: make(map[string]*entry),
		cfg:   cfg,
		now:   time.Now,
	}
}

// NewGame stores a new game and returns its id. An empty fen starts from the initial position.
func (m *Manager) NewGame(fen string) (string, error) {
	var g *engine.Game
	if fen == "" {
		g = engine.NewGame(engine.WithConfig(m.cfg))
	} else {
		var err error
		if g, err = engine.NewGameFromFEN(fen, engine.WithConfig(m.cfg)); err != nil {
			return "", err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := m.now()
	m.games[id] = &entry{game: g, createdAt: now, updatedAt: now}
	return id, nil
}

// lookup returns the entry for id. The caller holds the lock.
func (m *Manager) lookup(id string) (*entry, error) {
	e, ok := m.games[id]
	if !ok {
		return nil, &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	return e, nil
}

// Snapshot returns an independent copy of a stored game.
func (m *Manager) Snapshot(id string) (*engine.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.game.Clone(), nil
}

// FEN returns the current position of a stored game.
func (m *Manager) FEN(id string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, err := m.lookup(id)
	if err != nil {
		return "", err
	}
	return e.game.FEN(), nil
}

// Moves returns the legal moves in a stored game.
func (m *Manager) Moves(id string) ([]draughts.Move, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.game.Moves(), nil
}

// Move plays from-to in a stored game.
func (m *Manager) Move(id string, from, to draughts.Square) (draughts.Move, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.lookup(id)
	if err != nil {
		return draughts.Move{}, err
	}

	played, ok := e.game.Move(from, to)
	if !ok {
		return draughts.Move{}, &errors.GameError{
			Err:      errors.ErrIllegalMove,
			GameID:   id,
			PlyNum:   len(e.game.History()) + 1,
			MoveText: fmt.Sprintf("%d-%d", from, to),
		}
	}
	e.updatedAt = m.now()
	return played, nil
}

// Undo takes back the last move of a stored game.
func (m *Manager) Undo(id string) (draughts.Move, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.lookup(id)
	if err != nil {
		return draughts.Move{}, err
	}

	undone, ok := e.game.Undo()
	if !ok {
		return draughts.Move{}, &errors.GameError{Err: errors.ErrNothingToUndo, GameID: id}
	}
	e.updatedAt = m.now()
	return undone, nil
}

// SetHeader merges tags into the header of a stored game.
func (m *Manager) SetHeader(id string, tags map[string]string) (draughts.Header, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	header := e.game.SetHeader(tags)
	e.updatedAt = m.now()
	return header, nil
}

// Info describes a stored game.
func (m *Manager) Info(id string) (Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, err := m.lookup(id)
	if err != nil {
		return Info{}, err
	}
	return Info{
		ID:        id,
		FEN:       e.game.FEN(),
		Turn:      e.game.Turn(),
		Plies:     len(e.game.History()),
		GameOver:  e.game.GameOver(),
		CreatedAt: e.createdAt,
		UpdatedAt: e.updatedAt,
	}, nil
}

// Delete removes a stored game.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.lookup(id); err != nil {
		return err
	}
	delete(m.games, id)
	return nil
}

// IDs returns the ids of all stored games in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of stored games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
