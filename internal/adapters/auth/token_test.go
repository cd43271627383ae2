package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanpoints/internal/domain"
)

func TestJWTIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret)

	token, err := issuer.Issue("admin@example.com", "admin@example.com", []string{domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.Equal(t, tokenIssuerName, claims.Issuer)
	assert.Equal(t, []string{domain.RoleAdmin}, claims.Roles)
}

func TestJWTVerifier_Verify(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret)
	verifier := NewJWTVerifier(secret)

	valid, err := issuer.Issue("admin@example.com", "admin@example.com", []string{domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	expired, err := issuer.Issue("admin@example.com", "admin@example.com", []string{domain.RoleAdmin}, -time.Minute)
	require.NoError(t, err)
	otherSecret, err := NewJWTIssuer("other-secret").Issue("admin@example.com", "admin@example.com", nil, time.Hour)
	require.NoError(t, err)
	noSubject, err := issuer.Issue("", "", nil, time.Hour)
	require.NoError(t, err)

	p, err := verifier.Verify(valid)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", p.Subject)
	assert.True(t, p.HasRole(domain.RoleAdmin))

	for name, tok := range map[string]string{
		"expired":      expired,
		"wrong secret": otherSecret,
		"no subject":   noSubject,
		"garbage":      "not.a.jwt",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.Verify(tok)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}
