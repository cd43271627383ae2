package domain

import "time"

// RoleAdmin is the role carried by administrator tokens.
const RoleAdmin = "admin"

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated principal.
type TokenIssuer interface {
	Issue(subject, email string, roles []string, expiry time.Duration) (string, error)
}

// Principal is the identity carried by a verified token.
type Principal struct {
	Subject string
	Email   string
	Roles   []string
}

// HasRole reports whether the principal carries role.
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenVerifier verifies a token and returns its principal.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}

// AdminCredentials is the configured administrator account.
type AdminCredentials struct {
	Email        string
	PasswordHash string
	Salt         string
}
