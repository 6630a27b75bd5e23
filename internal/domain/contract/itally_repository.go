package contract

import (
	"context"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

// ITallyRepository holds the authoritative counters per item.
type ITallyRepository interface {
	GetTally(ctx context.Context, itemID string) (entity.Tally, error)
	// ApplyDelta adds the signed deltas, floors both counters at zero and returns the result.
	// Fails with entity.ErrItemNotFound or an error wrapping entity.ErrPersistence.
	ApplyDelta(ctx context.Context, itemID string, deltaLikes, deltaDislikes int64) (entity.Tally, error)
}

// ITallyStore is the plain select/update surface of a tally table, with no increment primitive.
type ITallyStore interface {
	SelectTally(ctx context.Context, itemID string) (entity.Tally, error)
	UpdateTally(ctx context.Context, itemID string, tally entity.Tally) error
}
