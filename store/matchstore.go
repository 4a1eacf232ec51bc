package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/pyramid/engine"
)

var (
	ErrMissingGameID   = errors.New("game ID required")
	ErrDuplicateGameID = errors.New("game ID already in use")
	ErrUnknownGameID   = errors.New("unknown game ID")
	ErrAlreadyRecorded = errors.New("result already recorded")
)

// Match is a game registered with the store and, once played, its result
type Match struct {
	GameID   string
	PlayerA  string
	PlayerB  string
	Result   engine.Result
	Finished bool
}

type MatchStore interface {
	AddMatch(gameID, playerA, playerB string) error
	RecordResult(gameID string, result engine.Result) error
	FindMatch(gameID string) (Match, error)
}

// InMemoryMatchStore maps game id to match
type InMemoryMatchStore struct {
	mu      sync.RWMutex
	matches map[string]*Match
}

// NewInMemoryMatchStore constructs an InMemoryMatchStore
func NewInMemoryMatchStore() *InMemoryMatchStore {
	return &InMemoryMatchStore{
		matches: map[string]*Match{},
	}
}

func (s *InMemoryMatchStore) AddMatch(gameID, playerA, playerB string) error {
	if gameID == "" {
		return ErrMissingGameID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.matches[gameID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateGameID, gameID)
	}

	s.matches[gameID] = &Match{GameID: gameID, PlayerA: playerA, PlayerB: playerB}
	return nil
}

func (s *InMemoryMatchStore) RecordResult(gameID string, result engine.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}
	if m.Finished {
		return fmt.Errorf("%w: %s", ErrAlreadyRecorded, gameID)
	}

	m.Result = result
	m.Finished = true
	return nil
}

func (s *InMemoryMatchStore) FindMatch(gameID string) (Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[gameID]
	if !ok {
		return Match{}, fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}
	return *m, nil
}
