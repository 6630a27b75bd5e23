package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

type TallyCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTallyCacheStore(rdb *redis.Client, ttl time.Duration) *TallyCacheStore {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &TallyCacheStore{
		rdb: rdb,
		ttl: ttl,
	}
}

var _ contract.ITallyCache = (*TallyCacheStore)(nil)

func tallyKey(itemID string) string { return fmt.Sprintf("tally:item:%s", itemID) }

func (c *TallyCacheStore) GetTally(ctx context.Context, itemID string) (*entity.Tally, bool, error) {
	b, err := c.rdb.Get(ctx, tallyKey(itemID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var tally entity.Tally
	if err := json.Unmarshal(b, &tally); err != nil {
		// corrupt entry, treat as a miss
		return nil, false, nil
	}
	return &tally, true, nil
}

func (c *TallyCacheStore) SetTally(ctx context.Context, itemID string, tally entity.Tally) error {
	data, err := json.Marshal(tally)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, tallyKey(itemID), data, c.ttl).Err()
}

func (c *TallyCacheStore) InvalidateTally(ctx context.Context, itemID string) error {
	return c.rdb.Del(ctx, tallyKey(itemID)).Err()
}
