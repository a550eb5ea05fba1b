package memory

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	fitting "github.com/wedifit/wedifit-services/api/internal/fitting/domain"
	survey "github.com/wedifit/wedifit-services/api/internal/survey/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// Record is one planning session: the survey wizard plus the fitting
// pipeline, living only for the lifetime of the process.
type Record struct {
	ID        string
	CreatedAt time.Time
	Survey    survey.Survey
	Fitting   fitting.Session
}

// SessionStore keeps sessions in process memory. Reads hand out shallow
// snapshots; writes go through Update so every mutation happens under the
// lock as one discrete replacement.
type SessionStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewSessionStore() *SessionStore {
	return &SessionStore{records: make(map[string]Record)}
}

// Create registers a fresh session at the start of the wizard.
func (s *SessionStore) Create() Record {
	record := Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Survey:    survey.NewSurvey(),
		Fitting:   fitting.NewSession(),
	}

	s.mu.Lock()
	s.records[record.ID] = record
	s.mu.Unlock()
	return record
}

// Get returns a snapshot of the session. Interior slices and pointers are
// shared with the store; treat them as read-only.
func (s *SessionStore) Get(id string) (Record, error) {
	s.mu.RLock()
	record, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return Record{}, ErrSessionNotFound
	}
	return record, nil
}

// Update applies fn to the stored session under the lock and replaces it.
// When fn returns an error the stored session is left untouched. The
// resulting snapshot is returned either way it exists.
func (s *SessionStore) Update(id string, fn func(*Record) error) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		return Record{}, ErrSessionNotFound
	}
	if err := fn(&record); err != nil {
		return s.records[id], err
	}
	s.records[id] = record
	return record, nil
}

// Delete removes a session. Missing sessions are not an error; the caller
// cannot act on the difference.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.records, id)
	s.mu.Unlock()
}
