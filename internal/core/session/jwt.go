package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTStore 无状态会话：token 自带 uid 和过期时间，Revoke 只能等过期
type JWTStore struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (j *JWTStore) Issue(_ context.Context, userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    j.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.Secret)
}

func (j *JWTStore) ResolveIdentity(_ context.Context, token string) (uint, bool, error) {
	if token == "" {
		return 0, false, nil
	}
	claims, err := j.parse(token)
	if err != nil {
		return 0, false, nil
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, false, nil
	}
	return uint(id), true, nil
}

func (j *JWTStore) Revoke(context.Context, string) error { return nil }

func (j *JWTStore) parse(tokenStr string) (*jwt.RegisteredClaims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer), jwt.WithLeeway(60*time.Second))
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*jwt.RegisteredClaims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}
