package criteria

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("criteria session not found")
)

// Sessions — реестр хранилищ критериев, по одному на открытую страницу.
type Sessions struct {
	log *slog.Logger

	mu     sync.RWMutex
	stores map[string]*Store
}

func NewSessions(log *slog.Logger) *Sessions {
	return &Sessions{
		log:    log,
		stores: make(map[string]*Store),
	}
}

// Open создаёт новую сессию с пустыми критериями.
func (s *Sessions) Open() (string, *Store) {
	id := uuid.NewString()
	store := NewStore()

	s.mu.Lock()
	s.stores[id] = store
	s.mu.Unlock()

	s.log.Debug("criteria session opened", slog.String("session_id", id))
	return id, store
}

// Get возвращает хранилище сессии.
func (s *Sessions) Get(id string) (*Store, error) {
	const op = "criteria.Sessions.Get"

	s.mu.RLock()
	store, ok := s.stores[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}
	return store, nil
}

// Close удаляет сессию вместе с её критериями.
func (s *Sessions) Close(id string) error {
	const op = "criteria.Sessions.Close"

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stores[id]; !ok {
		return fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}
	delete(s.stores, id)

	s.log.Debug("criteria session closed", slog.String("session_id", id))
	return nil
}

// Len — количество открытых сессий.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stores)
}
