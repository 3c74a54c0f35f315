package cache

import (
	"sync"

	"scorecard-service/internal/questionnaire/model"
)

// Snapshot is one cached extraction result: the flattened question list
// and the sector attributed to it.
type Snapshot struct {
	Questions []model.QuestionSummary
	Sector    string
}

// Store holds the most recent extraction in a single slot, last write
// wins. It is handed to the handlers that share it rather than living as
// a package global. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data *Snapshot
}

func NewStore() *Store { return &Store{} }

// Set replaces the cached snapshot.
func (s *Store) Set(questions []model.QuestionSummary, sector string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = &Snapshot{Questions: questions, Sector: sector}
}

// Get returns the cached snapshot and whether one exists.
func (s *Store) Get() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return Snapshot{}, false
	}
	return *s.data, true
}

// Clear empties the slot.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
}
