package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

// ItemRepository keeps items and their tallies in process memory.
// Every method takes the same mutex, so ApplyDelta is atomic per item.
type ItemRepository struct {
	mu    sync.Mutex
	items map[string]*entity.Item
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[string]*entity.Item)}
}

var (
	_ contract.IItemRepository  = (*ItemRepository)(nil)
	_ contract.ITallyRepository = (*ItemRepository)(nil)
	_ contract.ITallyStore      = (*ItemRepository)(nil)
)

func (r *ItemRepository) CreateItem(_ context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("item %s already exists", item.ID)
	}
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *ItemRepository) GetItemByID(_ context.Context, itemID string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return nil, entity.ErrItemNotFound
	}
	out := *item
	return &out, nil
}

func (r *ItemRepository) ListItems(_ context.Context, page, pageSize int) ([]*entity.Item, int64, error) {
	r.mu.Lock()
	all := make([]*entity.Item, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		all = append(all, &cp)
	}
	r.mu.Unlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))
	start := (page - 1) * pageSize
	if page < 1 || pageSize < 1 || start < 0 || start >= len(all) {
		return []*entity.Item{}, total, nil
	}
	end := start + pageSize
	if end > len(all) || end < start {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *ItemRepository) GetTally(_ context.Context, itemID string) (entity.Tally, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return entity.Tally{}, entity.ErrItemNotFound
	}
	return item.Tally(), nil
}

func (r *ItemRepository) ApplyDelta(_ context.Context, itemID string, deltaLikes, deltaDislikes int64) (entity.Tally, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return entity.Tally{}, entity.ErrItemNotFound
	}
	next := item.Tally().Add(deltaLikes, deltaDislikes)
	item.LikeCount, item.DislikeCount = next.LikeCount, next.DislikeCount
	item.UpdatedAt = time.Now()
	return next, nil
}

// SelectTally and UpdateTally expose the plain read/write pair used by the serialized repository.
func (r *ItemRepository) SelectTally(ctx context.Context, itemID string) (entity.Tally, error) {
	return r.GetTally(ctx, itemID)
}

func (r *ItemRepository) UpdateTally(_ context.Context, itemID string, tally entity.Tally) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return entity.ErrItemNotFound
	}
	item.LikeCount, item.DislikeCount = tally.LikeCount, tally.DislikeCount
	item.UpdatedAt = time.Now()
	return nil
}
