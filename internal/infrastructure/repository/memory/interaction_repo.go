package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

type interactionKey struct {
	clientID string
	itemID   string
}

// InteractionRepository keeps client vote state in process memory.
type InteractionRepository struct {
	mu           sync.RWMutex
	interactions map[interactionKey]entity.ClientInteraction
}

func NewInteractionRepository() *InteractionRepository {
	return &InteractionRepository{interactions: make(map[interactionKey]entity.ClientInteraction)}
}

var _ contract.IInteractionRepository = (*InteractionRepository)(nil)

func (r *InteractionRepository) GetInteraction(_ context.Context, clientID, itemID string) (*entity.ClientInteraction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	interaction, ok := r.interactions[interactionKey{clientID, itemID}]
	if !ok {
		return nil, entity.ErrInteractionNotFound
	}
	return &interaction, nil
}

func (r *InteractionRepository) SaveInteraction(_ context.Context, interaction *entity.ClientInteraction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := interactionKey{interaction.ClientID, interaction.ItemID}
	now := time.Now()
	stored := *interaction
	if existing, ok := r.interactions[key]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = now
	}
	r.interactions[key] = stored
	return nil
}
