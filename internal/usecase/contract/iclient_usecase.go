package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

type IClientUseCase interface {
	RegisterClient(ctx context.Context) (*entity.ClientRegistration, error)
	AuthenticateClient(ctx context.Context, token string) (string, error)
}
