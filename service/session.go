package service

import (
	"sync"
	"time"

	"github.com/fulldump/prooflines/rowset"
)

// Session is one proof page editing session. It owns its row set; every
// access goes through Do so operations never interleave.
type Session struct {
	ID        string
	CreatedAt time.Time
	rows      *rowset.RowSet
	mutex     sync.Mutex
}

func (s *Session) Do(f func(rows *rowset.RowSet) error) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return f(s.rows)
}

func (s *Session) Count() (count int) {
	s.Do(func(rows *rowset.RowSet) error {
		count = rows.Count()
		return nil
	})
	return
}

// Replace swaps the row set for the one built by f, which receives the
// current template. The session is untouched when f fails.
func (s *Session) Replace(f func(template *rowset.Template) (*rowset.RowSet, error)) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	rows, err := f(s.rows.Template())
	if err != nil {
		return err
	}
	s.rows = rows

	return nil
}
