package storage

import (
	"testing"
	"time"

	"github.com/meldehub/meldehub-backend/internal/confirmation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutAndGet(t *testing.T) {
	s := New(time.Hour)

	summary := &domain.SubmissionSummary{Code: domain.NewValidString("A123456789")}
	item := s.Put(summary)

	require.NotEmpty(t, item.ID)
	assert.Same(t, summary, item.Summary)

	got := s.Get(item.ID)
	require.NotNil(t, got)
	assert.Equal(t, item.ID, got.ID)

	assert.Nil(t, s.Get("no-such-id"))
}

func TestStore_Delete(t *testing.T) {
	s := New(time.Hour)

	item := s.Put(&domain.SubmissionSummary{})
	require.NotNil(t, s.Get(item.ID))

	s.Delete(item.ID)
	assert.Nil(t, s.Get(item.ID))
}

func TestStore_EvictExpired(t *testing.T) {
	s := New(10 * time.Minute)

	stale := s.Put(&domain.SubmissionSummary{})
	fresh := s.Put(&domain.SubmissionSummary{})

	// Age the first entry past the TTL without waiting.
	s.mu.Lock()
	s.items[stale.ID].CreatedAt = time.Now().Add(-time.Hour)
	s.mu.Unlock()

	s.evictExpired(time.Now())

	assert.Nil(t, s.Get(stale.ID))
	assert.NotNil(t, s.Get(fresh.ID))
	assert.Equal(t, 1, s.Len())
}
