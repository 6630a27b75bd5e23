package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

type IVoteUseCase interface {
	Vote(ctx context.Context, clientID, itemID string, action entity.VoteAction) (*entity.VoteResult, error)
	GetTally(ctx context.Context, itemID string) (entity.Tally, error)
	GetClientVote(ctx context.Context, clientID, itemID string) (entity.Vote, error)
	GetItemView(ctx context.Context, clientID, itemID string) (*entity.VoteResult, error)
}
