package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

// InteractionRepository keeps one row per (client_id, item_id).
type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

var _ contract.IInteractionRepository = (*InteractionRepository)(nil)

func (r *InteractionRepository) GetInteraction(ctx context.Context, clientID, itemID string) (*entity.ClientInteraction, error) {
	var row interactionModel
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND item_id = ?", clientID, itemID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrInteractionNotFound
		}
		return nil, fmt.Errorf("%w: failed to retrieve interaction: %v", entity.ErrPersistence, err)
	}
	return &entity.ClientInteraction{
		ClientID:  row.ClientID,
		ItemID:    row.ItemID,
		Vote:      entity.Vote(row.Vote),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *InteractionRepository) SaveInteraction(ctx context.Context, interaction *entity.ClientInteraction) error {
	now := time.Now()
	row := interactionModel{
		ClientID:  interaction.ClientID,
		ItemID:    interaction.ItemID,
		Vote:      string(interaction.Vote),
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"vote", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("%w: failed to save interaction: %v", entity.ErrPersistence, err)
	}
	interaction.UpdatedAt = now
	return nil
}
