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

// InteractionRepository represents the MongoDB implementation of the IInteractionRepository interface.
type InteractionRepository struct {
	collection *mongo.Collection
}

// NewInteractionRepository creates and returns a new InteractionRepository instance.
func NewInteractionRepository(db *mongo.Database) *InteractionRepository {
	return &InteractionRepository{
		collection: db.Collection("client_interactions"),
	}
}

var _ contract.IInteractionRepository = (*InteractionRepository)(nil)

// EnsureIndexes creates the unique (client_id, item_id) index the upsert relies on.
func (r *InteractionRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "client_id", Value: 1}, {Key: "item_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("client_item_unique"),
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create interaction index: %w", err)
	}
	return nil
}

// GetInteraction retrieves the recorded vote of a client on an item.
func (r *InteractionRepository) GetInteraction(ctx context.Context, clientID, itemID string) (*entity.ClientInteraction, error) {
	var interaction entity.ClientInteraction
	filter := bson.M{"client_id": clientID, "item_id": itemID}

	err := r.collection.FindOne(ctx, filter).Decode(&interaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrInteractionNotFound
		}
		return nil, fmt.Errorf("%w: failed to retrieve interaction: %v", entity.ErrPersistence, err)
	}
	return &interaction, nil
}

// SaveInteraction creates or updates the vote state of a client on an item.
func (r *InteractionRepository) SaveInteraction(ctx context.Context, interaction *entity.ClientInteraction) error {
	now := time.Now()
	filter := bson.M{"client_id": interaction.ClientID, "item_id": interaction.ItemID}

	// created_at is only written when the upsert inserts the document.
	update := bson.M{
		"$set": bson.M{
			"vote":       interaction.Vote,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)

	res, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("%w: failed to save interaction: %v", entity.ErrPersistence, err)
	}
	if res.UpsertedID != nil {
		interaction.CreatedAt = now
	}
	interaction.UpdatedAt = now
	return nil
}
