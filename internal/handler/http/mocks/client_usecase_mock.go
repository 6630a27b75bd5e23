package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

// MockClientUsecase accepts exactly MockToken and maps it to MockClientID.
type MockClientUsecase struct {
	ShouldFailRegister bool

	MockClientID string
	MockToken    string
}

var _ usecasecontract.IClientUseCase = (*MockClientUsecase)(nil)

func NewMockClientUsecase() *MockClientUsecase {
	return &MockClientUsecase{
		MockClientID: "mock-client-id",
		MockToken:    "mock_client_token",
	}
}

func (m *MockClientUsecase) RegisterClient(ctx context.Context) (*entity.ClientRegistration, error) {
	if m.ShouldFailRegister {
		return nil, errors.New("client registration failed")
	}
	return &entity.ClientRegistration{
		ClientID:  m.MockClientID,
		Token:     m.MockToken,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (m *MockClientUsecase) AuthenticateClient(ctx context.Context, token string) (string, error) {
	if token != m.MockToken {
		return "", entity.ErrInvalidClientToken
	}
	return m.MockClientID, nil
}
