package mocks

import (
	"context"
	"time"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

// MockItemUsecase is a mock implementation of the IItemUseCase interface
type MockItemUsecase struct {
	ShouldFailCreate  bool
	ShouldFailGetItem bool
	ShouldFailList    bool

	MockItem entity.Item
}

var _ usecasecontract.IItemUseCase = (*MockItemUsecase)(nil)

func NewMockItemUsecase() *MockItemUsecase {
	return &MockItemUsecase{
		MockItem: entity.Item{
			ID:           "mock-item-id",
			Title:        "Sunrise over the lake",
			LikeCount:    5,
			DislikeCount: 2,
			CreatedAt:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
}

func (m *MockItemUsecase) CreateItem(ctx context.Context, title string, initialLikes, initialDislikes int64) (*entity.Item, error) {
	if m.ShouldFailCreate {
		return nil, entity.ErrInvalidInput
	}
	item := m.MockItem
	item.Title = title
	item.LikeCount = initialLikes
	item.DislikeCount = initialDislikes
	return &item, nil
}

func (m *MockItemUsecase) GetItem(ctx context.Context, itemID string) (*entity.Item, error) {
	if m.ShouldFailGetItem {
		return nil, entity.ErrItemNotFound
	}
	item := m.MockItem
	item.ID = itemID
	return &item, nil
}

func (m *MockItemUsecase) ListItems(ctx context.Context, page, pageSize int) (*entity.ItemPage, error) {
	if m.ShouldFailList {
		return nil, entity.ErrPersistence
	}
	if pageSize < 1 {
		pageSize = 10
	}
	item := m.MockItem
	return &entity.ItemPage{Items: []*entity.Item{&item}, Total: 1, Page: page, PageSize: pageSize, TotalPages: 1}, nil
}
