package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meldehub/meldehub-backend/internal/confirmation/domain"
)

// StoredConfirmation is a parsed record held for rendering, keyed by a
// server-assigned ID.
type StoredConfirmation struct {
	ID        string
	Summary   *domain.SubmissionSummary
	CreatedAt time.Time
}

// Store provides in-memory storage for parsed confirmations. Entries are
// automatically cleaned up after a TTL; the audit trail is the durable
// record, this store only backs the viewer.
type Store struct {
	mu    sync.RWMutex
	items map[string]*StoredConfirmation
	ttl   time.Duration
}

// New creates a new in-memory store with the given TTL
func New(ttl time.Duration) *Store {
	s := &Store{
		items: make(map[string]*StoredConfirmation),
		ttl:   ttl,
	}
	go s.cleanupLoop()
	return s
}

// Put stores a parsed summary and returns its assigned ID
func (s *Store) Put(summary *domain.SubmissionSummary) *StoredConfirmation {
	item := &StoredConfirmation{
		ID:        uuid.New().String(),
		Summary:   summary,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
	return item
}

// Get retrieves a stored confirmation by ID, or nil
func (s *Store) Get(id string) *StoredConfirmation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[id]
}

// Delete removes a stored confirmation
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

// Len returns the number of stored confirmations
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.evictExpired(time.Now())
	}
}

func (s *Store) evictExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.items {
		if now.Sub(item.CreatedAt) > s.ttl {
			delete(s.items, id)
		}
	}
}
