// Package store owns the local cache of notification records and is the
// only component permitted to mutate it.
//
// The remote notifier service stays authoritative: the cache is replaced
// wholesale on every successful refresh, and the single local transition
// (scheduled -> cancelled) is applied only after the service has confirmed
// the cancellation.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/notiboard/notiboard/internal/model"
)

//go:generate mockgen -source=store.go -destination=../mocks/store/mock.go -package=mocks

var (
	// ErrNotFound is returned by Cancel when the id is absent from the
	// cache. No network call is made in that case.
	ErrNotFound = errors.New("notification not found")

	// ErrNotCancellable is returned by Cancel when the cached record is
	// already in a terminal state.
	ErrNotCancellable = errors.New("notification is not cancellable")
)

// remoteService is the subset of the notifier API the store depends on.
type remoteService interface {
	Create(ctx context.Context, input model.CreateInput) (model.Notification, error)
	Cancel(ctx context.Context, id string) (model.Notification, error)
	List(ctx context.Context) ([]model.Notification, error)
}

// Store is the single source of truth for the current notification cache.
//
// Mutating operations are serialized: a Cancel and a concurrent Refresh can
// never interleave into a cache matching neither outcome. Readers always
// observe a fully-applied cache.
type Store struct {
	remote remoteService

	opMu sync.Mutex // serializes cache-mutating operations end to end
	mu   sync.RWMutex
	// records is newest-first: creates are inserted at the head, and the
	// remote list endpoint returns the same order.
	records []model.Notification

	subMu       sync.Mutex
	subscribers []func()
}

// New creates a Store backed by the given remote service. The cache starts
// empty; call Refresh to populate it.
func New(remote remoteService) *Store {
	return &Store{remote: remote}
}

// Subscribe registers fn to run after every completed cache mutation
// (refresh, create, cancel). Subscribers run synchronously on the mutating
// goroutine and must not mutate the store themselves.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Refresh replaces the cache with the service's current list. On failure
// the cache is left exactly as it was.
func (s *Store) Refresh(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	records, err := s.remote.List(ctx)
	if err != nil {
		return fmt.Errorf("refresh notifications: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	s.notify()

	return nil
}

// Create sends a create request and, on success, inserts the returned
// record at the head of the cache. There is no optimistic insert: the
// remote-assigned id is required for any later cancel.
//
// The input must already be validated (non-empty message, future
// scheduled_at, recipient present); the store does not re-validate.
func (s *Store) Create(ctx context.Context, input model.CreateInput) (model.Notification, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	record, err := s.remote.Create(ctx, input)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	s.mu.Lock()
	s.records = append([]model.Notification{record}, s.records...)
	s.mu.Unlock()

	s.notify()

	return record, nil
}

// Cancel cancels a scheduled notification. The cached record must exist and
// still be scheduled; its status flips to cancelled only after the service
// confirms. On any failure the cache is unchanged.
func (s *Store) Cancel(ctx context.Context, id string) (model.Notification, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.RLock()
	idx := -1
	for i, r := range s.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	var current model.Notification
	if idx >= 0 {
		current = s.records[idx]
	}
	s.mu.RUnlock()

	if idx < 0 {
		return model.Notification{}, fmt.Errorf("cancel %s: %w", id, ErrNotFound)
	}
	if current.Status.Terminal() {
		return model.Notification{}, fmt.Errorf("cancel %s (status %s): %w", id, current.Status, ErrNotCancellable)
	}

	if _, err := s.remote.Cancel(ctx, id); err != nil {
		return model.Notification{}, fmt.Errorf("cancel notification: %w", err)
	}

	s.mu.Lock()
	s.records[idx].Status = model.StatusCancelled
	updated := s.records[idx]
	s.mu.Unlock()

	s.notify()

	return updated, nil
}

// Snapshot returns a copy of the cache in its current order.
func (s *Store) Snapshot() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.Notification, len(s.records))
	copy(records, s.records)

	return records
}

// Get returns the cached record with the given id, if present.
func (s *Store) Get(id string) (model.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}

	return model.Notification{}, false
}

// notify runs subscribers after a mutation has been applied. It is called
// with opMu held and mu released, so every snapshot a subscriber takes is
// fully updated.
func (s *Store) notify() {
	s.subMu.Lock()
	subscribers := make([]func(), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.subMu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}
