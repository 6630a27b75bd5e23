package contract

// IUUIDGenerator mints identifiers for items and clients.
type IUUIDGenerator interface {
	NewUUID() string
}

// IHasher hashes and checks secrets such as the admin key.
type IHasher interface {
	HashSecret(secret string) (string, error)
	CompareSecretHash(secret, hashedSecret string) error
}

// IRandomGenerator produces URL-safe random secrets.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}
