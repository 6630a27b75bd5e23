package contract

import (
	"context"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

// IItemRepository provides methods for managing the votable items.
type IItemRepository interface {
	CreateItem(ctx context.Context, item *entity.Item) error
	GetItemByID(ctx context.Context, itemID string) (*entity.Item, error)
	// ListItems returns one page of items, newest first, and the total count.
	ListItems(ctx context.Context, page, pageSize int) ([]*entity.Item, int64, error)
}
