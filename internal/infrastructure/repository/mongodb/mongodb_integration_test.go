package mongodb

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database(fmt.Sprintf("votetally_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestMongoTallyRepository_ApplyDelta(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	items := NewItemRepository(db)
	tallies := NewTallyRepository(db)

	require.NoError(t, items.CreateItem(ctx, &entity.Item{ID: "a", Title: "a", LikeCount: 5, DislikeCount: 2}))

	got, err := tallies.ApplyDelta(ctx, "a", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, entity.Tally{LikeCount: 6, DislikeCount: 2}, got)

	got, err = tallies.ApplyDelta(ctx, "a", -10, -1)
	require.NoError(t, err)
	assert.Equal(t, entity.Tally{LikeCount: 0, DislikeCount: 1}, got)

	_, err = tallies.ApplyDelta(ctx, "missing", 1, 0)
	assert.ErrorIs(t, err, entity.ErrItemNotFound)
}

func TestMongoTallyRepository_ConcurrentLikes(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	require.NoError(t, NewItemRepository(db).CreateItem(ctx, &entity.Item{ID: "fresh", Title: "fresh"}))
	tallies := NewTallyRepository(db)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tallies.ApplyDelta(ctx, "fresh", 1, 0)
		}()
	}
	wg.Wait()

	got, err := tallies.GetTally(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.LikeCount)
}

func TestMongoItemRepository_List(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := NewItemRepository(db)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateItem(ctx, &entity.Item{
			ID: fmt.Sprintf("item-%d", i), Title: "t", CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	page, total, err := repo.ListItems(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "item-2", page[0].ID)

	_, err = repo.GetItemByID(ctx, "nope")
	assert.ErrorIs(t, err, entity.ErrItemNotFound)
}

func TestMongoInteractionRepository(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := NewInteractionRepository(db)
	require.NoError(t, repo.EnsureIndexes(ctx))

	_, err := repo.GetInteraction(ctx, "c1", "a")
	assert.ErrorIs(t, err, entity.ErrInteractionNotFound)

	require.NoError(t, repo.SaveInteraction(ctx, &entity.ClientInteraction{ClientID: "c1", ItemID: "a", Vote: entity.VoteLike}))
	require.NoError(t, repo.SaveInteraction(ctx, &entity.ClientInteraction{ClientID: "c1", ItemID: "a", Vote: entity.VoteDislike}))

	got, err := repo.GetInteraction(ctx, "c1", "a")
	require.NoError(t, err)
	assert.Equal(t, entity.VoteDislike, got.Vote)

	count, err := db.Collection("client_interactions").CountDocuments(ctx, map[string]string{"client_id": "c1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
