package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

// MockVoteUsecase is a mock implementation of the IVoteUseCase interface
type MockVoteUsecase struct {
	// Control mock behavior
	ShouldFailVote        bool
	ShouldFailNotFound    bool
	ShouldFailPersistence bool
	ShouldFailGetTally    bool

	// Return values
	MockTally entity.Tally
	MockState entity.Vote

	// Recorded calls
	LastClientID string
	LastItemID   string
	LastAction   entity.VoteAction
}

var _ usecasecontract.IVoteUseCase = (*MockVoteUsecase)(nil)

func NewMockVoteUsecase() *MockVoteUsecase {
	return &MockVoteUsecase{
		MockTally: entity.Tally{LikeCount: 5, DislikeCount: 2},
		MockState: entity.VoteNone,
	}
}

func (m *MockVoteUsecase) failure() error {
	switch {
	case m.ShouldFailNotFound:
		return entity.ErrItemNotFound
	case m.ShouldFailPersistence:
		return entity.ErrPersistence
	case m.ShouldFailVote:
		return errors.New("vote failed")
	}
	return nil
}

func (m *MockVoteUsecase) Vote(ctx context.Context, clientID, itemID string, action entity.VoteAction) (*entity.VoteResult, error) {
	m.LastClientID, m.LastItemID, m.LastAction = clientID, itemID, action
	if err := m.failure(); err != nil {
		return nil, err
	}
	state := entity.Vote(action)
	return &entity.VoteResult{
		ItemID:       itemID,
		LikeCount:    m.MockTally.LikeCount,
		DislikeCount: m.MockTally.DislikeCount,
		State:        state,
	}, nil
}

func (m *MockVoteUsecase) GetTally(ctx context.Context, itemID string) (entity.Tally, error) {
	if m.ShouldFailGetTally {
		return entity.Tally{}, entity.ErrItemNotFound
	}
	return m.MockTally, nil
}

func (m *MockVoteUsecase) GetClientVote(ctx context.Context, clientID, itemID string) (entity.Vote, error) {
	if err := m.failure(); err != nil {
		return entity.VoteNone, err
	}
	return m.MockState, nil
}

func (m *MockVoteUsecase) GetItemView(ctx context.Context, clientID, itemID string) (*entity.VoteResult, error) {
	m.LastClientID, m.LastItemID = clientID, itemID
	if err := m.failure(); err != nil {
		return nil, err
	}
	return &entity.VoteResult{
		ItemID:       itemID,
		LikeCount:    m.MockTally.LikeCount,
		DislikeCount: m.MockTally.DislikeCount,
		State:        m.MockState,
	}, nil
}
