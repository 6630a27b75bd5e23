package postgres

import (
	"time"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

type itemModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(128)"`
	Title        string    `gorm:"type:varchar(200);not null"`
	LikeCount    int64     `gorm:"not null;default:0"`
	DislikeCount int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

func (itemModel) TableName() string { return "items" }

func (m *itemModel) toEntity() *entity.Item {
	return &entity.Item{
		ID:           m.ID,
		Title:        m.Title,
		LikeCount:    m.LikeCount,
		DislikeCount: m.DislikeCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type interactionModel struct {
	ClientID  string `gorm:"primaryKey;type:varchar(128)"`
	ItemID    string `gorm:"primaryKey;type:varchar(128);index"`
	Vote      string `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (interactionModel) TableName() string { return "client_interactions" }

// Models lists the tables to auto-migrate.
func Models() []interface{} {
	return []interface{}{&itemModel{}, &interactionModel{}}
}
