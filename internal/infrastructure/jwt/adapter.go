package jwt

import (
	"time"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	"github.com/mikiasgoitom/votetally/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.ClientTokenService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.ClientTokenService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.ClientTokenService {
	return &JWTServiceAdapter{mgr: mgr}
}

// IssueClientToken issues a token for a client id.
func (a *JWTServiceAdapter) IssueClientToken(clientID string) (string, time.Time, error) {
	return a.mgr.GenerateClientToken(clientID)
}

// ParseClientToken validates a client token and returns its claims.
func (a *JWTServiceAdapter) ParseClientToken(tokenStr string) (*entity.ClientClaims, error) {
	claims, err := a.mgr.VerifyClientToken(tokenStr)
	if err != nil {
		return nil, err
	}
	out := &entity.ClientClaims{ClientID: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
