package service

import (
	"errors"
)

var ErrorSessionNotFound = errors.New("session not found")

type Servicer interface { // todo: review naming
	CreateSession() (*Session, error)
	GetSession(id string) (*Session, error)
	ListSessions() []*Session
	DeleteSession(id string) error
}
