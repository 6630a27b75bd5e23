package contract

import (
	"context"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

// IInteractionRepository persists the vote state of a client on an item.
type IInteractionRepository interface {
	// GetInteraction returns entity.ErrInteractionNotFound when the client never voted on the item.
	GetInteraction(ctx context.Context, clientID, itemID string) (*entity.ClientInteraction, error)
	// SaveInteraction creates or replaces the record for (ClientID, ItemID).
	SaveInteraction(ctx context.Context, interaction *entity.ClientInteraction) error
}
