// Package store holds the client-side cache of reflection records for one
// view context (public-filtered or admin-all). The cache mirrors server
// state: it is replaced wholesale after successful fetches and mutations,
// never reconciled field-by-field.
package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pranayk/reflections/internal/client/models"
)

// Store is an ordered in-memory reflection collection. Ordering is whatever
// the server returned, with created records inserted at the head.
type Store struct {
	mu      sync.Mutex
	records []models.Reflection
	latest  uuid.UUID
}

func New() *Store {
	return &Store{}
}

// BeginFetch issues a generation token for an outgoing list fetch. A snapshot
// is applied via ReplaceAllIf only while its token is still the newest one,
// so responses to superseded fetches are discarded (last-request-wins).
func (s *Store) BeginFetch() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = uuid.New()
	return s.latest
}

// ReplaceAllIf swaps the held collection if token is still current.
// Returns false when the fetch was superseded and the snapshot dropped.
func (s *Store) ReplaceAllIf(token uuid.UUID, records []models.Reflection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest {
		return false
	}
	s.records = append([]models.Reflection(nil), records...)
	return true
}

// ReplaceAll swaps the held collection unconditionally.
func (s *Store) ReplaceAll(records []models.Reflection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]models.Reflection(nil), records...)
}

// Upsert inserts a new record at the head, or replaces the record with the
// same identifier in place. Exactly one entry per identifier; an update
// never changes the record's position. The whole record object is replaced,
// never patched from partial data.
func (s *Store) Upsert(r models.Reflection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == r.ID {
			s.records[i] = r
			return
		}
	}
	s.records = append([]models.Reflection{r}, s.records...)
}

// Remove deletes the record with the given identifier. Removing an unknown
// identifier is a no-op, not an error.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}

// Get returns the record with the given identifier, if present.
func (s *Store) Get(id string) (models.Reflection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			return s.records[i], true
		}
	}
	return models.Reflection{}, false
}

// All returns a copy of the held collection in order.
func (s *Store) All() []models.Reflection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Reflection(nil), s.records...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Clear drops all held records. Used on logout so privileged content is not
// displayed to an anonymous session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}
