package storage

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"dhaqaaleeye/finance-bot/internal/model/session"
)

// ErrNoView is returned on a rendered-view cache miss.
var ErrNoView = errors.New("view is not cached")

// InMemStorage keeps sessions and rendered views in process memory. It is
// the storage capability used when no memcached hosts are configured, and in
// tests.
type InMemStorage struct {
	mu       sync.RWMutex
	sessions map[int64]session.Session
	views    map[string]string
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		sessions: make(map[int64]session.Session),
		views:    make(map[string]string),
	}
}

func (s *InMemStorage) GetByID(_ context.Context, id int64) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id], nil
}

func (s *InMemStorage) SaveByID(_ context.Context, id int64, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
	return nil
}

func (s *InMemStorage) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *InMemStorage) CacheView(userID int64, view, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[viewKey(userID, view)] = text
	return nil
}

func (s *InMemStorage) GetView(userID int64, view string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.views[viewKey(userID, view)]
	if !ok {
		return "", ErrNoView
	}
	return text, nil
}

func (s *InMemStorage) InvalidateViews(userID int64, views []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, view := range views {
		delete(s.views, viewKey(userID, view))
	}
	return nil
}
