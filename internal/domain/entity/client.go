package entity

import "time"

// ClientRegistration is handed to a browser the first time it asks for an identity.
type ClientRegistration struct {
	ClientID  string
	Token     string
	ExpiresAt time.Time
}

// ClientClaims are the verified contents of a client token.
type ClientClaims struct {
	ClientID  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
