package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

var errStorage = errors.New("storage down")

// failingTallyRepo fails ApplyDelta on demand and otherwise delegates.
type failingTallyRepo struct {
	inner           contract.ITallyRepository
	ShouldFailApply bool

	mu    sync.Mutex
	calls []int64
}

func (f *failingTallyRepo) GetTally(ctx context.Context, itemID string) (entity.Tally, error) {
	return f.inner.GetTally(ctx, itemID)
}

func (f *failingTallyRepo) ApplyDelta(ctx context.Context, itemID string, dl, dd int64) (entity.Tally, error) {
	f.mu.Lock()
	f.calls = append(f.calls, dl, dd)
	f.mu.Unlock()
	if f.ShouldFailApply {
		return entity.Tally{}, errors.Join(entity.ErrPersistence, errStorage)
	}
	return f.inner.ApplyDelta(ctx, itemID, dl, dd)
}

// flakyInteractionRepo fails reads or writes on demand and otherwise keeps state in a map.
type flakyInteractionRepo struct {
	mu             sync.Mutex
	votes          map[string]entity.Vote
	ShouldFailGet  bool
	ShouldFailSave bool
}

func newFlakyInteractionRepo() *flakyInteractionRepo {
	return &flakyInteractionRepo{votes: map[string]entity.Vote{}}
}

func (f *flakyInteractionRepo) GetInteraction(_ context.Context, clientID, itemID string) (*entity.ClientInteraction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ShouldFailGet {
		return nil, errStorage
	}
	v, ok := f.votes[clientID+"/"+itemID]
	if !ok {
		return nil, entity.ErrInteractionNotFound
	}
	return &entity.ClientInteraction{ClientID: clientID, ItemID: itemID, Vote: v}, nil
}

func (f *flakyInteractionRepo) SaveInteraction(_ context.Context, in *entity.ClientInteraction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ShouldFailSave {
		return errStorage
	}
	f.votes[in.ClientID+"/"+in.ItemID] = in.Vote
	return nil
}

type fakeTallyCache struct {
	mu          sync.Mutex
	entries     map[string]entity.Tally
	invalidated []string
	ShouldFail  bool
}

func newFakeTallyCache() *fakeTallyCache {
	return &fakeTallyCache{entries: map[string]entity.Tally{}}
}

func (c *fakeTallyCache) GetTally(_ context.Context, itemID string) (*entity.Tally, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ShouldFail {
		return nil, false, errStorage
	}
	t, ok := c.entries[itemID]
	if !ok {
		return nil, false, nil
	}
	return &t, true, nil
}

func (c *fakeTallyCache) SetTally(_ context.Context, itemID string, tally entity.Tally) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ShouldFail {
		return errStorage
	}
	c.entries[itemID] = tally
	return nil
}

func (c *fakeTallyCache) InvalidateTally(_ context.Context, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, itemID)
	delete(c.entries, itemID)
	return nil
}

type fakeUUID struct {
	mu sync.Mutex
	n  int
}

func (f *fakeUUID) NewUUID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return fmt.Sprintf("id-%d", f.n)
}
