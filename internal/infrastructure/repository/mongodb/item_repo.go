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

// ItemRepository represents the MongoDB implementation of the IItemRepository interface.
// Tallies live on the item document, see TallyRepository.
type ItemRepository struct {
	collection *mongo.Collection
}

// NewItemRepository creates and returns a new ItemRepository instance.
func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{
		collection: db.Collection(itemsCollection),
	}
}

var _ contract.IItemRepository = (*ItemRepository)(nil)

// CreateItem inserts a new item together with its initial tally.
func (r *ItemRepository) CreateItem(ctx context.Context, item *entity.Item) error {
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("%w: failed to create item: %v", entity.ErrPersistence, err)
	}
	return nil
}

// GetItemByID retrieves a single item by its unique id.
func (r *ItemRepository) GetItemByID(ctx context.Context, itemID string) (*entity.Item, error) {
	var item entity.Item
	err := r.collection.FindOne(ctx, bson.M{"_id": itemID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: failed to retrieve item: %v", entity.ErrPersistence, err)
	}
	return &item, nil
}

// ListItems returns one page of items, newest first.
func (r *ItemRepository) ListItems(ctx context.Context, page, pageSize int) ([]*entity.Item, int64, error) {
	filter := bson.M{}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to count items: %v", entity.ErrPersistence, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to retrieve items: %v", entity.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	items := []*entity.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("%w: failed to decode items: %v", entity.ErrPersistence, err)
	}
	return items, totalCount, nil
}
