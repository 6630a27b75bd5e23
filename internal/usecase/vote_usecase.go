package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

// VoteUsecase handles like/dislike toggles on items.
//
// A vote reads the client's recorded state, applies the resulting delta to the
// tally and then records the new state. The two writes are not a transaction:
// if recording the state fails the tally delta is reverted on a best-effort basis.
// Concurrent votes on the same item are only safe when the tally repository is
// atomic per item (every repository shipped in this module is).
type VoteUsecase struct {
	tallyRepo       contract.ITallyRepository
	interactionRepo contract.IInteractionRepository
	tallyCache      contract.ITallyCache
	validator       usecasecontract.IValidator
	logger          usecasecontract.IAppLogger
}

// NewVoteUsecase creates and returns a new VoteUsecase instance.
func NewVoteUsecase(tallyRepo contract.ITallyRepository, interactionRepo contract.IInteractionRepository, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *VoteUsecase {
	return &VoteUsecase{
		tallyRepo:       tallyRepo,
		interactionRepo: interactionRepo,
		validator:       validator,
		logger:          logger,
	}
}

var _ usecasecontract.IVoteUseCase = (*VoteUsecase)(nil)

// SetTallyCache enables the read-through tally cache.
func (u *VoteUsecase) SetTallyCache(cache contract.ITallyCache) {
	u.tallyCache = cache
}

// Vote toggles the client's like or dislike on an item and returns the new tally.
// Tally repository errors are returned unchanged so callers can match them with errors.Is.
func (u *VoteUsecase) Vote(ctx context.Context, clientID, itemID string, action entity.VoteAction) (*entity.VoteResult, error) {
	start := time.Now()
	result, err := u.vote(ctx, clientID, itemID, action)
	metrics.ObserveVote(actionLabel(action), voteOutcome(err), time.Since(start).Seconds())
	return result, err
}

// actionLabel keeps caller-supplied strings out of metric labels.
func actionLabel(action entity.VoteAction) string {
	if action.IsValid() {
		return string(action)
	}
	return "invalid"
}

func (u *VoteUsecase) vote(ctx context.Context, clientID, itemID string, action entity.VoteAction) (*entity.VoteResult, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidAction, action)
	}
	if err := u.validateKey(clientID, itemID); err != nil {
		return nil, err
	}

	previous, err := u.currentVote(ctx, clientID, itemID)
	if err != nil {
		return nil, err
	}

	delta := ComputeDelta(previous, action)

	tally, err := u.tallyRepo.ApplyDelta(ctx, itemID, delta.Likes, delta.Dislikes)
	if err != nil {
		return nil, err
	}

	interaction := &entity.ClientInteraction{
		ClientID:  clientID,
		ItemID:    itemID,
		Vote:      delta.Next,
		UpdatedAt: time.Now(),
	}
	if err := u.interactionRepo.SaveInteraction(ctx, interaction); err != nil {
		u.logger.Errorf("failed to record vote of client %s on item %s: %v", clientID, itemID, err)
		likes, dislikes := delta.Inverse()
		if _, revertErr := u.tallyRepo.ApplyDelta(ctx, itemID, likes, dislikes); revertErr != nil {
			u.logger.Errorf("failed to revert tally of item %s after lost vote record: %v", itemID, revertErr)
		}
		u.invalidateTally(ctx, itemID)
		return nil, fmt.Errorf("%w: failed to record client vote: %v", entity.ErrPersistence, err)
	}

	u.invalidateTally(ctx, itemID)

	return &entity.VoteResult{
		ItemID:       itemID,
		LikeCount:    tally.LikeCount,
		DislikeCount: tally.DislikeCount,
		State:        delta.Next,
	}, nil
}

// GetTally returns the current tally of an item, using the cache when one is configured.
func (u *VoteUsecase) GetTally(ctx context.Context, itemID string) (entity.Tally, error) {
	if err := u.validator.ValidateID(itemID); err != nil {
		return entity.Tally{}, fmt.Errorf("%w: item id: %v", entity.ErrInvalidInput, err)
	}

	if u.tallyCache != nil {
		cached, found, err := u.tallyCache.GetTally(ctx, itemID)
		if err != nil {
			u.logger.Warnf("tally cache read failed for item %s: %v", itemID, err)
		} else if found {
			metrics.IncTallyCacheHit()
			return *cached, nil
		}
		metrics.IncTallyCacheMiss()
	}

	tally, err := u.tallyRepo.GetTally(ctx, itemID)
	if err != nil {
		return entity.Tally{}, err
	}

	if u.tallyCache != nil {
		if err := u.tallyCache.SetTally(ctx, itemID, tally); err != nil {
			u.logger.Warnf("tally cache write failed for item %s: %v", itemID, err)
		}
	}
	return tally, nil
}

// GetClientVote returns the vote the client currently has on the item (VoteNone if it never voted).
func (u *VoteUsecase) GetClientVote(ctx context.Context, clientID, itemID string) (entity.Vote, error) {
	if err := u.validateKey(clientID, itemID); err != nil {
		return entity.VoteNone, err
	}
	return u.currentVote(ctx, clientID, itemID)
}

// GetItemView returns the tally together with the client's own state.
func (u *VoteUsecase) GetItemView(ctx context.Context, clientID, itemID string) (*entity.VoteResult, error) {
	state, err := u.GetClientVote(ctx, clientID, itemID)
	if err != nil {
		return nil, err
	}
	tally, err := u.GetTally(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return &entity.VoteResult{
		ItemID:       itemID,
		LikeCount:    tally.LikeCount,
		DislikeCount: tally.DislikeCount,
		State:        state,
	}, nil
}

func (u *VoteUsecase) currentVote(ctx context.Context, clientID, itemID string) (entity.Vote, error) {
	interaction, err := u.interactionRepo.GetInteraction(ctx, clientID, itemID)
	if err != nil {
		if errors.Is(err, entity.ErrInteractionNotFound) {
			return entity.VoteNone, nil
		}
		return entity.VoteNone, fmt.Errorf("failed to retrieve client interaction: %w", err)
	}
	switch interaction.Vote {
	case entity.VoteLike, entity.VoteDislike:
		return interaction.Vote, nil
	default:
		return entity.VoteNone, nil
	}
}

func (u *VoteUsecase) validateKey(clientID, itemID string) error {
	if err := u.validator.ValidateID(clientID); err != nil {
		return fmt.Errorf("%w: client id: %v", entity.ErrInvalidInput, err)
	}
	if err := u.validator.ValidateID(itemID); err != nil {
		return fmt.Errorf("%w: item id: %v", entity.ErrInvalidInput, err)
	}
	return nil
}

func (u *VoteUsecase) invalidateTally(ctx context.Context, itemID string) {
	if u.tallyCache == nil {
		return
	}
	if err := u.tallyCache.InvalidateTally(ctx, itemID); err != nil {
		u.logger.Warnf("failed to invalidate cached tally for item %s: %v", itemID, err)
	}
}

func voteOutcome(err error) string {
	switch {
	case err == nil:
		return "applied"
	case errors.Is(err, entity.ErrInvalidAction), errors.Is(err, entity.ErrInvalidInput):
		return "rejected"
	case errors.Is(err, entity.ErrItemNotFound):
		return "not_found"
	default:
		return "failed"
	}
}
