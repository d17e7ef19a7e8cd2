package auth

import "cms/internal/domain/models"

// JWTVerifier validates admin bearer tokens.
// The middleware only depends on this interface, so tests can swap in a fake.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is invalid, expired, or signed by an unknown key.
	VerifyToken(tokenString string) (*models.AdminClaims, error)

	// Close releases any resources held by the verifier
	Close() error
}
