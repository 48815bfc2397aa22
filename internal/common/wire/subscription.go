// Package wire provides a reactive fetch binding: a subscription that re-runs
// its fetch on demand and re-delivers the latest {data, error} snapshot to its
// callbacks.
package wire

import (
	"context"
	"sync"
	"time"
)

// Result is one delivered snapshot. Exactly one of Data/Err is meaningful.
type Result[T any] struct {
	Data      T
	Err       error
	FetchedAt time.Time
}

func (r Result[T]) OK() bool { return r.Err == nil }

type FetchFunc[T any] func(ctx context.Context) (T, error)

// Subscription is safe for concurrent use. Concurrent refreshes are not
// ordered: whichever fetch finishes last overwrites the stored snapshot.
type Subscription[T any] struct {
	fetch FetchFunc[T]
	now   func() time.Time

	mu        sync.RWMutex
	callbacks []func(Result[T])
	latest    Result[T]
	delivered bool
}

func New[T any](fetch FetchFunc[T]) *Subscription[T] {
	return &Subscription[T]{fetch: fetch, now: time.Now}
}

// OnResult registers a callback invoked after every refresh.
func (s *Subscription[T]) OnResult(cb func(Result[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, cb)
}

// Refresh runs the fetch, stores the snapshot and notifies callbacks.
func (s *Subscription[T]) Refresh(ctx context.Context) Result[T] {
	data, err := s.fetch(ctx)
	res := Result[T]{Err: err, FetchedAt: s.now()}
	if err == nil {
		res.Data = data
	}

	s.mu.Lock()
	s.latest = res
	s.delivered = true
	cbs := make([]func(Result[T]), len(s.callbacks))
	copy(cbs, s.callbacks)
	s.mu.Unlock()

	for _, cb := range cbs {
		cb(res)
	}
	return res
}

// Latest returns the last delivered snapshot, if any.
func (s *Subscription[T]) Latest() (Result[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.delivered
}
