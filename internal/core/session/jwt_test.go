package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTStore() *JWTStore {
	return &JWTStore{Secret: []byte("test-secret"), Issuer: "elenyum-user", TTL: time.Hour}
}

func TestJWTStore_IssueResolve(t *testing.T) {
	s := newJWTStore()
	ctx := context.Background()

	tok, err := s.Issue(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, ok, err := s.ResolveIdentity(ctx, tok)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestJWTStore_RejectsForeignTokens(t *testing.T) {
	s := newJWTStore()
	ctx := context.Background()

	other := &JWTStore{Secret: []byte("other-secret"), Issuer: s.Issuer, TTL: time.Hour}
	foreign, err := other.Issue(ctx, 1)
	require.NoError(t, err)

	wrongIssuer := &JWTStore{Secret: s.Secret, Issuer: "someone-else", TTL: time.Hour}
	spoofed, err := wrongIssuer.Issue(ctx, 1)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt",
		"wrong secret": foreign,
		"wrong issuer": spoofed,
	} {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.ResolveIdentity(ctx, tok)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestJWTStore_Expired(t *testing.T) {
	s := newJWTStore()
	past := time.Now().Add(-2 * time.Hour)
	claims := jwt.RegisteredClaims{
		Subject:   "7",
		Issuer:    s.Issuer,
		IssuedAt:  jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	require.NoError(t, err)

	_, ok, err := s.ResolveIdentity(context.Background(), tok)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNew_Drivers(t *testing.T) {
	st, err := New(Opts{Driver: "jwt", Secret: "s", Issuer: "i", TTL: time.Minute}, nil)
	require.NoError(t, err)
	assert.IsType(t, &JWTStore{}, st)

	_, err = New(Opts{Driver: "jwt"}, nil)
	assert.Error(t, err)

	_, err = New(Opts{Driver: "redis"}, nil)
	assert.Error(t, err)

	_, err = New(Opts{Driver: "cookie"}, nil)
	assert.Error(t, err)
}
