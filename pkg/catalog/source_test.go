package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/pkg/styling/vibe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeFetcher returns queued outcomes, one per fetch, and counts calls.
type fakeFetcher struct {
	mu       sync.Mutex
	outcomes []fetchOutcome
	calls    int32
	block    chan struct{} // when set, fetches wait here first
}

type fetchOutcome struct {
	items []entity.LibraryItem
	err   error
}

func (f *fakeFetcher) FetchCatalog(ctx context.Context) ([]entity.LibraryItem, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.outcomes) == 0 {
		return nil, errors.New("no outcome queued")
	}
	out := f.outcomes[0]
	f.outcomes = f.outcomes[1:]
	return out.items, out.err
}

func remoteItems() []entity.LibraryItem {
	return []entity.LibraryItem{
		{
			Id:       "r1",
			Label:    "Remote loafer",
			Category: entity.CategoryShoes,
			Attributes: entity.ItemAttributes{
				Vibes:       []vibe.Vibe{vibe.Office},
				ColorFamily: entity.ColorNeutral,
			},
		},
		{
			Id:       "r2",
			Label:    "Remote tote",
			Category: entity.CategoryBag,
			Attributes: entity.ItemAttributes{
				ColorFamily: entity.ColorDark,
			},
		},
	}
}

func TestSourceServesFallbackBeforeFirstFetch(t *testing.T) {
	src := NewSource(&fakeFetcher{}, nopLogger{})

	items := src.GetByCategory(entity.CategoryShoes)
	assert.NotEmpty(t, items)

	state := src.State()
	assert.False(t, state.Loading)
	assert.Equal(t, ErrorKindNone, state.ErrorKind)
}

func TestSourceRetryReplacesFallback(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: []fetchOutcome{{items: remoteItems()}}}
	src := NewSource(fetcher, nopLogger{})

	err := src.Retry(context.Background())
	require.NoError(t, err)

	shoes := src.GetByCategory(entity.CategoryShoes)
	require.Len(t, shoes, 1)
	assert.Equal(t, "r1", shoes[0].Id)

	it, ok := src.GetItemByID("r2")
	assert.True(t, ok)
	assert.Equal(t, entity.CategoryBag, it.Category)

	assert.Equal(t, ErrorKindNone, src.State().ErrorKind)
}

func TestSourceFetchFailureKeepsCachedData(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: []fetchOutcome{
		{err: errors.New("connection refused")},
		{items: remoteItems()},
	}}
	src := NewSource(fetcher, nopLogger{})

	err := src.Retry(context.Background())
	require.Error(t, err)
	assert.Equal(t, ErrorKindFetchFailed, src.State().ErrorKind)
	assert.NotEmpty(t, src.GetByCategory(entity.CategoryShoes), "fallback survives a failed fetch")

	// A user retry clears the error state.
	require.NoError(t, src.Retry(context.Background()))
	assert.Equal(t, ErrorKindNone, src.State().ErrorKind)
	shoes := src.GetByCategory(entity.CategoryShoes)
	require.Len(t, shoes, 1)
	assert.Equal(t, "r1", shoes[0].Id)
}

func TestSourceEmptyRemoteFlushesCache(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: []fetchOutcome{{items: nil}}}
	src := NewSource(fetcher, nopLogger{})

	require.NoError(t, src.Retry(context.Background()))

	state := src.State()
	assert.True(t, state.Empty)
	assert.Equal(t, ErrorKindEmpty, state.ErrorKind)
	assert.Empty(t, src.GetByCategory(entity.CategoryShoes), "an empty library is empty, not the fallback")
}

func TestSourceConcurrentRetriesShareOneFetch(t *testing.T) {
	fetcher := &fakeFetcher{
		outcomes: []fetchOutcome{{items: remoteItems()}},
		block:    make(chan struct{}),
	}
	src := NewSource(fetcher, nopLogger{})

	const waiters = 8
	var wg sync.WaitGroup
	errs := make([]error, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = src.Retry(context.Background())
		}(i)
	}

	// Let the waiters pile up on the single in-flight call, then release.
	time.Sleep(50 * time.Millisecond)
	close(fetcher.block)
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "waiter %d", i)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetcher.calls))
}

func TestSourceRetryCallerCanStopWaiting(t *testing.T) {
	fetcher := &fakeFetcher{
		outcomes: []fetchOutcome{{items: remoteItems()}},
		block:    make(chan struct{}),
	}
	src := NewSource(fetcher, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Retry(ctx) }()

	cancel()
	err := <-done
	assert.ErrorIs(t, err, context.Canceled)

	// The abandoned fetch still completes and lands in the cache.
	close(fetcher.block)
	assert.Eventually(t, func() bool {
		shoes := src.GetByCategory(entity.CategoryShoes)
		return len(shoes) == 1 && shoes[0].Id == "r1"
	}, time.Second, 10*time.Millisecond)
}

func TestSourcePrewarmNoopOnceLoaded(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: []fetchOutcome{{items: remoteItems()}}}
	src := NewSource(fetcher, nopLogger{})

	require.NoError(t, src.Retry(context.Background()))
	src.Prewarm(context.Background())
	src.Prewarm(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(&fetcher.calls))
}

func TestSourceGetByCategoryCopies(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: []fetchOutcome{{items: remoteItems()}}}
	src := NewSource(fetcher, nopLogger{})
	require.NoError(t, src.Retry(context.Background()))

	first := src.GetByCategory(entity.CategoryShoes)
	first[0].Label = "mutated"

	again := src.GetByCategory(entity.CategoryShoes)
	assert.Equal(t, "Remote loafer", again[0].Label)
}
