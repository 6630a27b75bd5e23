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

// ItemRepository stores items and their tallies in the items table.
// ApplyDelta is a single UPDATE ... RETURNING statement, so it is atomic per row.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

var (
	_ contract.IItemRepository  = (*ItemRepository)(nil)
	_ contract.ITallyRepository = (*ItemRepository)(nil)
	_ contract.ITallyStore      = (*ItemRepository)(nil)
)

func (r *ItemRepository) CreateItem(ctx context.Context, item *entity.Item) error {
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	row := itemModel{
		ID:           item.ID,
		Title:        item.Title,
		LikeCount:    item.LikeCount,
		DislikeCount: item.DislikeCount,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("%w: failed to create item: %v", entity.ErrPersistence, err)
	}
	return nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, itemID string) (*entity.Item, error) {
	var row itemModel
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to retrieve item")
	}
	return row.toEntity(), nil
}

func (r *ItemRepository) ListItems(ctx context.Context, page, pageSize int) ([]*entity.Item, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&itemModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: failed to count items: %v", entity.ErrPersistence, err)
	}

	var rows []itemModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to retrieve items: %v", entity.ErrPersistence, err)
	}

	items := make([]*entity.Item, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toEntity())
	}
	return items, total, nil
}

func (r *ItemRepository) GetTally(ctx context.Context, itemID string) (entity.Tally, error) {
	var row itemModel
	err := r.db.WithContext(ctx).
		Select("like_count", "dislike_count").
		Where("id = ?", itemID).
		First(&row).Error
	if err != nil {
		return entity.Tally{}, notFoundOr(err, "failed to get tally")
	}
	return entity.Tally{LikeCount: row.LikeCount, DislikeCount: row.DislikeCount}, nil
}

func (r *ItemRepository) ApplyDelta(ctx context.Context, itemID string, deltaLikes, deltaDislikes int64) (entity.Tally, error) {
	var row itemModel
	res := r.db.WithContext(ctx).
		Model(&row).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "like_count"}, {Name: "dislike_count"}}}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"like_count":    gorm.Expr("GREATEST(like_count + ?, 0)", deltaLikes),
			"dislike_count": gorm.Expr("GREATEST(dislike_count + ?, 0)", deltaDislikes),
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return entity.Tally{}, fmt.Errorf("%w: failed to apply tally delta: %v", entity.ErrPersistence, res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.Tally{}, entity.ErrItemNotFound
	}
	return entity.Tally{LikeCount: row.LikeCount, DislikeCount: row.DislikeCount}, nil
}

func (r *ItemRepository) SelectTally(ctx context.Context, itemID string) (entity.Tally, error) {
	return r.GetTally(ctx, itemID)
}

func (r *ItemRepository) UpdateTally(ctx context.Context, itemID string, tally entity.Tally) error {
	res := r.db.WithContext(ctx).
		Model(&itemModel{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"like_count":    tally.LikeCount,
			"dislike_count": tally.DislikeCount,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("%w: failed to update tally: %v", entity.ErrPersistence, res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrItemNotFound
	}
	return nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrItemNotFound
	}
	return fmt.Errorf("%w: %s: %v", entity.ErrPersistence, msg, err)
}
