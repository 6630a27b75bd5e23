package contract

import (
	"context"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

// ITallyCache caches tallies for the read endpoints.
type ITallyCache interface {
	GetTally(ctx context.Context, itemID string) (*entity.Tally, bool, error)
	SetTally(ctx context.Context, itemID string, tally entity.Tally) error
	InvalidateTally(ctx context.Context, itemID string) error
}
