package usecase

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/validator"
)

func newItemUC() (*ItemUseCaseImpl, *memory.ItemRepository) {
	repo := memory.NewItemRepository()
	return NewItemUseCase(repo, &fakeUUID{}, validator.NewValidator(), nopLogger{}), repo
}

func TestCreateItem(t *testing.T) {
	uc, repo := newItemUC()
	ctx := context.Background()

	item, err := uc.CreateItem(ctx, "  Lake tour  ", 5, 2)
	require.NoError(t, err)
	assert.Equal(t, "id-1", item.ID)
	assert.Equal(t, "Lake tour", item.Title)

	tally, err := repo.GetTally(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Tally{LikeCount: 5, DislikeCount: 2}, tally)
}

func TestCreateItem_Invalid(t *testing.T) {
	uc, _ := newItemUC()
	ctx := context.Background()

	_, err := uc.CreateItem(ctx, "   ", 0, 0)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = uc.CreateItem(ctx, strings.Repeat("x", 201), 0, 0)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = uc.CreateItem(ctx, "ok", -1, 0)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestGetItem(t *testing.T) {
	uc, _ := newItemUC()
	ctx := context.Background()
	created, err := uc.CreateItem(ctx, "Sunset", 0, 0)
	require.NoError(t, err)

	got, err := uc.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunset", got.Title)

	_, err = uc.GetItem(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrItemNotFound)

	_, err = uc.GetItem(ctx, "")
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestListItems(t *testing.T) {
	uc, repo := newItemUC()
	ctx := context.Background()
	base := time.Now()
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.CreateItem(ctx, &entity.Item{ID: id, Title: id, CreatedAt: base.Add(time.Duration(i) * time.Second)}))
	}

	result, err := uc.ListItems(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 2, result.PageSize)
	assert.Equal(t, 2, result.TotalPages)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "c", result.Items[0].ID)

	result, err = uc.ListItems(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, result.Items, 3)
	assert.Equal(t, 10, result.PageSize)
	assert.Equal(t, 1, result.TotalPages)

	result, err = uc.ListItems(ctx, 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, 100, result.PageSize)
}

func TestListItems_HugePage(t *testing.T) {
	uc, repo := newItemUC()
	ctx := context.Background()
	require.NoError(t, repo.CreateItem(ctx, &entity.Item{ID: "a", Title: "a", CreatedAt: time.Now()}))

	for _, pageSize := range []int{1, 7, 100} {
		result, err := uc.ListItems(ctx, math.MaxInt/10, pageSize)
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Equal(t, 1, result.Total)
		assert.LessOrEqual(t, result.Page, math.MaxInt/pageSize)
	}

	result, err := uc.ListItems(ctx, math.MaxInt, 100)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}
