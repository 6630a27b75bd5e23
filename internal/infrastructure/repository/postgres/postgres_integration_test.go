package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/database"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("POSTGRES_TEST_URL")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}
	db, err := database.NewPostgresDB(dsn, Models()...)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Exec("TRUNCATE items, client_interactions")
		_ = database.ClosePostgresDB(db)
	})
	require.NoError(t, db.Exec("TRUNCATE items, client_interactions").Error)
	return db
}

func TestPostgresItemRepository_ApplyDelta(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewItemRepository(db)
	require.NoError(t, repo.CreateItem(ctx, &entity.Item{ID: "a", Title: "a", LikeCount: 5, DislikeCount: 2}))

	got, err := repo.ApplyDelta(ctx, "a", -1, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.Tally{LikeCount: 4, DislikeCount: 3}, got)

	got, err = repo.ApplyDelta(ctx, "a", -9, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.LikeCount)

	_, err = repo.ApplyDelta(ctx, "missing", 1, 0)
	assert.ErrorIs(t, err, entity.ErrItemNotFound)
}

func TestPostgresItemRepository_ConcurrentLikes(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewItemRepository(db)
	require.NoError(t, repo.CreateItem(ctx, &entity.Item{ID: "fresh", Title: "fresh"}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.ApplyDelta(ctx, "fresh", 1, 0)
		}()
	}
	wg.Wait()

	got, err := repo.GetTally(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.LikeCount)
}

func TestPostgresItemRepository_List(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewItemRepository(db)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateItem(ctx, &entity.Item{
			ID: fmt.Sprintf("item-%d", i), Title: "t", CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	items, total, err := repo.ListItems(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 1)
	assert.Equal(t, "item-0", items[0].ID)
}

func TestPostgresInteractionRepository(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewInteractionRepository(db)

	_, err := repo.GetInteraction(ctx, "c1", "a")
	assert.ErrorIs(t, err, entity.ErrInteractionNotFound)

	require.NoError(t, repo.SaveInteraction(ctx, &entity.ClientInteraction{ClientID: "c1", ItemID: "a", Vote: entity.VoteLike}))
	require.NoError(t, repo.SaveInteraction(ctx, &entity.ClientInteraction{ClientID: "c1", ItemID: "a", Vote: entity.VoteNone}))

	got, err := repo.GetInteraction(ctx, "c1", "a")
	require.NoError(t, err)
	assert.Equal(t, entity.VoteNone, got.Vote)
}
