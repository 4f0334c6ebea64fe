package service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fulldump/prooflines/rowset"
)

type Service struct {
	template *rowset.Template
	sessions map[string]*Session
	mutex    sync.RWMutex
}

func NewService(template *rowset.Template) *Service {
	if template == nil {
		template = rowset.DefaultTemplate()
	}
	return &Service{
		template: template,
		sessions: map[string]*Session{},
	}
}

func (s *Service) CreateSession() (*Session, error) {

	rows, err := rowset.New(s.template)
	if err != nil {
		return nil, err
	}

	// a proof page always starts with one line
	_, err = rows.EnsureRow()
	if err != nil {
		return nil, fmt.Errorf("initial row: %w", err)
	}

	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		rows:      rows,
	}

	s.mutex.Lock()
	s.sessions[session.ID] = session
	s.mutex.Unlock()

	return session, nil
}

func (s *Service) GetSession(id string) (*Session, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	session, exist := s.sessions[id]
	if !exist {
		return nil, ErrorSessionNotFound
	}

	return session, nil
}

// ListSessions returns sessions oldest first.
func (s *Service) ListSessions() []*Session {
	s.mutex.RLock()
	result := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		result = append(result, session)
	}
	s.mutex.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result
}

func (s *Service) DeleteSession(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exist := s.sessions[id]; !exist {
		return ErrorSessionNotFound
	}
	delete(s.sessions, id)

	return nil
}
