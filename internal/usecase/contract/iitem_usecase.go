package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

type IItemUseCase interface {
	CreateItem(ctx context.Context, title string, initialLikes, initialDislikes int64) (*entity.Item, error)
	GetItem(ctx context.Context, itemID string) (*entity.Item, error)
	// ListItems returns one page of items along with the page and page size it used.
	ListItems(ctx context.Context, page, pageSize int) (*entity.ItemPage, error)
}
