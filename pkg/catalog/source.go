// Package catalog is the read-only library of shoppable content. Items come
// from a remote source with a bundled fallback; reads never block on the
// network.
package catalog

import (
	"context"
	"sync"
	"time"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/pkg/logger"

	"github.com/patrickmn/go-cache"
)

type ErrorKind string

const (
	ErrorKindNone        ErrorKind = "none"
	ErrorKindFetchFailed ErrorKind = "fetch_failed"
	ErrorKindEmpty       ErrorKind = "empty"
)

// Snapshot is the observable source state beyond the item data. Error states
// are terminal until an explicit Retry.
type Snapshot struct {
	Loading   bool      `json:"loading"`
	Empty     bool      `json:"empty"`
	ErrorKind ErrorKind `json:"error_kind"`
}

const fetchTimeout = 15 * time.Second

type fetchCall struct {
	done chan struct{}
	err  error
}

// Source caches the fetched library and answers category/id lookups. All
// concurrent Retry and Prewarm calls collapse onto one in-flight fetch.
type Source struct {
	fetcher Fetcher
	log     logger.ILogger

	items *cache.Cache

	mu       sync.Mutex
	inflight *fetchCall
	state    Snapshot
	loaded   bool // a remote fetch has succeeded at least once
}

func NewSource(fetcher Fetcher, log logger.ILogger) *Source {
	s := &Source{
		fetcher: fetcher,
		log:     log,
		items:   cache.New(cache.NoExpiration, 10*time.Minute),
		state:   Snapshot{ErrorKind: ErrorKindNone},
	}
	s.store(FallbackItems())
	return s
}

// GetByCategory returns the current items of a category in stable library
// order. Never blocks; before the first successful fetch this serves the
// bundled fallback.
func (s *Source) GetByCategory(cat entity.Category) []entity.LibraryItem {
	if x, found := s.items.Get("category:" + string(cat)); found {
		stored := x.([]entity.LibraryItem)
		out := make([]entity.LibraryItem, len(stored))
		copy(out, stored)
		return out
	}
	return []entity.LibraryItem{}
}

// GetItemByID looks a single item up by id.
func (s *Source) GetItemByID(id string) (entity.LibraryItem, bool) {
	if x, found := s.items.Get("item:" + id); found {
		return x.(entity.LibraryItem), true
	}
	return entity.LibraryItem{}, false
}

// State returns the observable source snapshot.
func (s *Source) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Retry re-attempts the remote fetch and waits for the shared outcome.
// Concurrent callers join the same in-flight fetch; all observe the same
// result. Safe to call repeatedly.
func (s *Source) Retry(ctx context.Context) error {
	call := s.refresh()
	select {
	case <-call.done:
		return call.err
	case <-ctx.Done():
		// The fetch keeps running; the caller just stops waiting. Its
		// result lands in the cache for the next reader.
		return ctx.Err()
	}
}

// Prewarm kicks off a fetch ahead of user-visible need without blocking the
// caller. Redundant calls are no-ops once the library has loaded or a fetch
// is already in flight.
func (s *Source) Prewarm(ctx context.Context) {
	s.mu.Lock()
	if s.loaded || s.inflight != nil {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.refresh()
}

// refresh starts a fetch unless one is already running, and returns the call
// every waiter shares.
func (s *Source) refresh() *fetchCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight != nil {
		return s.inflight
	}
	call := &fetchCall{done: make(chan struct{})}
	s.inflight = call
	s.state.Loading = true
	go s.run(call)
	return call
}

func (s *Source) run(call *fetchCall) {
	// Detached from any single caller: abandoning the tip sheet must not
	// cancel a fetch other callers may be waiting on.
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	items, err := s.fetcher.FetchCatalog(ctx)

	s.mu.Lock()
	s.inflight = nil
	s.state.Loading = false
	switch {
	case err != nil:
		s.state.Empty = false
		s.state.ErrorKind = ErrorKindFetchFailed
		call.err = err
		s.mu.Unlock()
		s.log.Warn("CATALOG", "Library fetch failed, serving cached/fallback data", map[string]interface{}{"error": err.Error()})
	case len(items) == 0:
		// Remote reachable but genuinely nothing published. Not retryable
		// from the user's point of view, so the fallback is not served.
		s.state.Empty = true
		s.state.ErrorKind = ErrorKindEmpty
		s.loaded = true
		s.mu.Unlock()
		s.items.Flush()
		s.log.Warn("CATALOG", "Library fetch returned zero items", nil)
	default:
		s.state.Empty = false
		s.state.ErrorKind = ErrorKindNone
		s.loaded = true
		s.mu.Unlock()
		s.store(items)
		s.log.Info("CATALOG", "Library refreshed", map[string]interface{}{"items": len(items)})
	}
	close(call.done)
}

// store replaces the cached sets wholesale, preserving library order within
// each category.
func (s *Source) store(items []entity.LibraryItem) {
	byCategory := make(map[entity.Category][]entity.LibraryItem)
	for _, it := range items {
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}
	s.items.Flush()
	for cat, list := range byCategory {
		s.items.Set("category:"+string(cat), list, cache.NoExpiration)
	}
	for _, it := range items {
		s.items.Set("item:"+it.Id, it, cache.NoExpiration)
	}
}
