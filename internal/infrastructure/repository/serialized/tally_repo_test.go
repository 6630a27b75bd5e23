package serialized

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/repository/memory"
)

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

// gatedStore holds every reader until a second reader has arrived or the wait runs out.
// Two unserialized read-modify-write cycles therefore both read the same value.
type gatedStore struct {
	mu      sync.Mutex
	tallies map[string]entity.Tally
	readers int
	release chan struct{}
	wait    time.Duration
}

func newGatedStore(wait time.Duration, tallies map[string]entity.Tally) *gatedStore {
	return &gatedStore{tallies: tallies, release: make(chan struct{}), wait: wait}
}

func (s *gatedStore) SelectTally(_ context.Context, itemID string) (entity.Tally, error) {
	s.mu.Lock()
	t, ok := s.tallies[itemID]
	s.readers++
	if s.readers == 2 {
		close(s.release)
	}
	s.mu.Unlock()
	if !ok {
		return entity.Tally{}, entity.ErrItemNotFound
	}
	select {
	case <-s.release:
	case <-time.After(s.wait):
	}
	return t, nil
}

func (s *gatedStore) UpdateTally(_ context.Context, itemID string, tally entity.Tally) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tallies[itemID]; !ok {
		return entity.ErrItemNotFound
	}
	s.tallies[itemID] = tally
	return nil
}

// naiveApplyDelta is the unprotected read-then-write a plain select/update API invites.
func naiveApplyDelta(ctx context.Context, s *gatedStore, itemID string, dl, dd int64) error {
	current, err := s.SelectTally(ctx, itemID)
	if err != nil {
		return err
	}
	return s.UpdateTally(ctx, itemID, current.Add(dl, dd))
}

func likeTwiceConcurrently(apply func() error) {
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = apply()
		}()
	}
	wg.Wait()
}

func TestNaiveReadModifyWrite_LosesUpdate(t *testing.T) {
	ctx := context.Background()
	store := newGatedStore(5*time.Second, map[string]entity.Tally{"fresh": {}})

	likeTwiceConcurrently(func() error { return naiveApplyDelta(ctx, store, "fresh", 1, 0) })

	assert.Equal(t, int64(1), store.tallies["fresh"].LikeCount, "both writers read 0 and wrote 1")
}

func TestTallyRepository_NoLostUpdate(t *testing.T) {
	ctx := context.Background()
	store := newGatedStore(20*time.Millisecond, map[string]entity.Tally{"fresh": {}})
	repo := NewTallyRepository(store)

	likeTwiceConcurrently(func() error {
		_, err := repo.ApplyDelta(ctx, "fresh", 1, 0)
		return err
	})

	assert.Equal(t, int64(2), store.tallies["fresh"].LikeCount)
	assert.Equal(t, 0, repo.locks.size())
}

func TestTallyRepository_ManyWriters(t *testing.T) {
	ctx := context.Background()
	items := memory.NewItemRepository()
	require.NoError(t, items.CreateItem(ctx, &entity.Item{ID: "a"}))
	require.NoError(t, items.CreateItem(ctx, &entity.Item{ID: "b"}))
	repo := NewTallyRepository(items)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = repo.ApplyDelta(ctx, "a", 1, 0)
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.ApplyDelta(ctx, "b", 0, 1)
		}()
	}
	wg.Wait()

	a, err := repo.GetTally(ctx, "a")
	require.NoError(t, err)
	b, err := repo.GetTally(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, entity.Tally{LikeCount: 100}, a)
	assert.Equal(t, entity.Tally{DislikeCount: 100}, b)
	assert.Equal(t, 0, repo.locks.size())
}

func TestTallyRepository_ClampAndNotFound(t *testing.T) {
	ctx := context.Background()
	items := memory.NewItemRepository()
	require.NoError(t, items.CreateItem(ctx, &entity.Item{ID: "a", LikeCount: 1}))
	repo := NewTallyRepository(items)

	got, err := repo.ApplyDelta(ctx, "a", -5, -1)
	require.NoError(t, err)
	assert.Equal(t, entity.Tally{}, got)

	_, err = repo.ApplyDelta(ctx, "missing", 1, 0)
	assert.ErrorIs(t, err, entity.ErrItemNotFound)
}

type failingStore struct{ err error }

func (f failingStore) SelectTally(context.Context, string) (entity.Tally, error) {
	return entity.Tally{}, nil
}

func (f failingStore) UpdateTally(context.Context, string, entity.Tally) error { return f.err }

func TestTallyRepository_UpdateFailurePropagates(t *testing.T) {
	boom := errors.New("boom")
	repo := NewTallyRepository(failingStore{err: boom})

	_, err := repo.ApplyDelta(context.Background(), "a", 1, 0)
	assert.ErrorIs(t, err, boom)
}
