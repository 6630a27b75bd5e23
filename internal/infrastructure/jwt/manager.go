package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const clientTokenIssuer = "votetally"

// ClientClaims is the JWT payload of a client token. Subject carries the client id.
type ClientClaims struct {
	jwtlib.RegisteredClaims
}

// JWTManager signs and verifies HS256 client tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) (*JWTManager, error) {
	if len(secret) < 16 {
		return nil, errors.New("client token secret must be at least 16 characters")
	}
	if ttl <= 0 {
		return nil, errors.New("client token ttl must be positive")
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// GenerateClientToken issues a token for clientID and returns its expiry.
func (m *JWTManager) GenerateClientToken(clientID string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := ClientClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   clientID,
			Issuer:    clientTokenIssuer,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign client token: %w", err)
	}
	return signed, expiresAt, nil
}

// VerifyClientToken checks signature, issuer and expiry.
func (m *JWTManager) VerifyClientToken(tokenStr string) (*ClientClaims, error) {
	claims := &ClientClaims{}
	_, err := jwtlib.ParseWithClaims(tokenStr, claims, func(t *jwtlib.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(clientTokenIssuer),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to verify client token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("client token has no subject")
	}
	return claims, nil
}
