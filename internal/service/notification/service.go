// Package notification is the server-side analog of the client's
// transient toasts: per-user messages that expire instead of
// persisting, delivered when the user next polls.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/medsync/booking-api/internal/model"
)

const DefaultTTL = 5 * time.Minute

type Service struct {
	mu    sync.Mutex
	store *gocache.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewService(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Push appends a notification for the user, resetting the bucket's TTL.
func (s *Service) Push(ctx context.Context, userID, title, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := &model.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		CreatedAt: s.now(),
	}
	var pending []*model.Notification
	if v, ok := s.store.Get(userID); ok {
		pending = v.([]*model.Notification)
	}
	s.store.Set(userID, append(pending, n), s.ttl)
}

// Drain returns and clears the user's pending notifications. A toast
// is shown once.
func (s *Service) Drain(ctx context.Context, userID string) []*model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.store.Get(userID)
	if !ok {
		return nil
	}
	s.store.Delete(userID)
	return v.([]*model.Notification)
}
