package serialized

import (
	"context"
	"sync"

	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

// TallyRepository turns a select/update store into an ITallyRepository by running
// every read-modify-write for a given item under that item's lock. Writers for
// different items do not block each other. The guarantee only holds inside this
// process; several replicas writing the same store need an atomic backend instead.
type TallyRepository struct {
	store contract.ITallyStore
	locks *keyedMutex
}

func NewTallyRepository(store contract.ITallyStore) *TallyRepository {
	return &TallyRepository{store: store, locks: newKeyedMutex()}
}

var _ contract.ITallyRepository = (*TallyRepository)(nil)

func (r *TallyRepository) GetTally(ctx context.Context, itemID string) (entity.Tally, error) {
	return r.store.SelectTally(ctx, itemID)
}

func (r *TallyRepository) ApplyDelta(ctx context.Context, itemID string, deltaLikes, deltaDislikes int64) (entity.Tally, error) {
	unlock := r.locks.lock(itemID)
	defer unlock()

	current, err := r.store.SelectTally(ctx, itemID)
	if err != nil {
		return entity.Tally{}, err
	}
	next := current.Add(deltaLikes, deltaDislikes)
	if err := r.store.UpdateTally(ctx, itemID, next); err != nil {
		return entity.Tally{}, err
	}
	return next, nil
}

// keyedMutex hands out one mutex per key and forgets it once nobody holds or waits for it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedLock)}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
