package usecase

import (
	"time"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

// ClientTokenService defines the interface for signing and verifying client tokens.
type ClientTokenService interface {
	IssueClientToken(clientID string) (string, time.Time, error)
	ParseClientToken(token string) (*entity.ClientClaims, error)
}
