package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const itemsCollection = "items"

// TallyRepository updates the like/dislike counters stored on item documents.
// ApplyDelta is a single-document update, so it is atomic per item.
type TallyRepository struct {
	collection *mongo.Collection
}

// NewTallyRepository creates and returns a new TallyRepository instance.
func NewTallyRepository(db *mongo.Database) *TallyRepository {
	return &TallyRepository{
		collection: db.Collection(itemsCollection),
	}
}

var (
	_ contract.ITallyRepository = (*TallyRepository)(nil)
	_ contract.ITallyStore      = (*TallyRepository)(nil)
)

var tallyProjection = bson.M{"like_count": 1, "dislike_count": 1}

// GetTally returns the current counters of an item.
func (r *TallyRepository) GetTally(ctx context.Context, itemID string) (entity.Tally, error) {
	var item entity.Item
	opts := options.FindOne().SetProjection(tallyProjection)

	err := r.collection.FindOne(ctx, bson.M{"_id": itemID}, opts).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.Tally{}, entity.ErrItemNotFound
		}
		return entity.Tally{}, fmt.Errorf("%w: failed to get tally: %v", entity.ErrPersistence, err)
	}
	return item.Tally(), nil
}

// ApplyDelta adds the deltas inside an update pipeline that floors each counter at zero,
// and returns the document as it is after the update.
func (r *TallyRepository) ApplyDelta(ctx context.Context, itemID string, deltaLikes, deltaDislikes int64) (entity.Tally, error) {
	update := bson.A{
		bson.M{"$set": bson.M{
			"like_count":    clampedAdd("$like_count", deltaLikes),
			"dislike_count": clampedAdd("$dislike_count", deltaDislikes),
			"updated_at":    time.Now(),
		}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(tallyProjection)

	var item entity.Item
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": itemID}, update, opts).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.Tally{}, entity.ErrItemNotFound
		}
		return entity.Tally{}, fmt.Errorf("%w: failed to apply tally delta: %v", entity.ErrPersistence, err)
	}
	return item.Tally(), nil
}

// SelectTally and UpdateTally are the plain read/write pair used when TALLY_WRITE_MODE=serialized.
func (r *TallyRepository) SelectTally(ctx context.Context, itemID string) (entity.Tally, error) {
	return r.GetTally(ctx, itemID)
}

func (r *TallyRepository) UpdateTally(ctx context.Context, itemID string, tally entity.Tally) error {
	update := bson.M{"$set": bson.M{
		"like_count":    tally.LikeCount,
		"dislike_count": tally.DislikeCount,
		"updated_at":    time.Now(),
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": itemID}, update)
	if err != nil {
		return fmt.Errorf("%w: failed to update tally: %v", entity.ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrItemNotFound
	}
	return nil
}

// clampedAdd builds max(0, field + delta), treating a missing field as 0.
func clampedAdd(field string, delta int64) bson.M {
	return bson.M{"$max": bson.A{
		0,
		bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{field, 0}}, delta}},
	}}
}
