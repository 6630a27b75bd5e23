package usecase

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

// ClientUsecase mints and checks the anonymous identities browsers vote with.
type ClientUsecase struct {
	tokens  ClientTokenService
	uuidgen contract.IUUIDGenerator
	logger  usecasecontract.IAppLogger
}

func NewClientUsecase(tokens ClientTokenService, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *ClientUsecase {
	return &ClientUsecase{
		tokens:  tokens,
		uuidgen: uuidgen,
		logger:  logger,
	}
}

var _ usecasecontract.IClientUseCase = (*ClientUsecase)(nil)

// RegisterClient creates a new client id and a signed token carrying it.
func (u *ClientUsecase) RegisterClient(ctx context.Context) (*entity.ClientRegistration, error) {
	clientID := u.uuidgen.NewUUID()
	token, expiresAt, err := u.tokens.IssueClientToken(clientID)
	if err != nil {
		u.logger.Errorf("failed to issue client token: %v", err)
		return nil, fmt.Errorf("failed to issue client token: %w", err)
	}
	return &entity.ClientRegistration{
		ClientID:  clientID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// AuthenticateClient verifies a token and returns the client id it carries.
func (u *ClientUsecase) AuthenticateClient(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", entity.ErrInvalidClientToken
	}
	claims, err := u.tokens.ParseClientToken(token)
	if err != nil {
		u.logger.Debugf("rejected client token: %v", err)
		return "", fmt.Errorf("%w: %v", entity.ErrInvalidClientToken, err)
	}
	if claims.ClientID == "" {
		return "", entity.ErrInvalidClientToken
	}
	return claims.ClientID, nil
}
