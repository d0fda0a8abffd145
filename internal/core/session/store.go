package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store issues and resolves opaque session tokens bound to a user id.
type Store interface {
	Issue(ctx context.Context, userID uint) (string, error)
	// ResolveIdentity returns ok=false for unknown, expired or malformed tokens.
	ResolveIdentity(ctx context.Context, token string) (uint, bool, error)
	Revoke(ctx context.Context, token string) error
}

type Opts struct {
	Driver string // "redis" | "jwt"
	Secret string
	Issuer string
	TTL    time.Duration
}

// New 按配置选择会话存储；redis 驱动需要传入客户端
func New(o Opts, rdb *redis.Client) (Store, error) {
	switch o.Driver {
	case "", "redis":
		if rdb == nil {
			return nil, fmt.Errorf("session driver redis: redis client not configured")
		}
		return NewRedisStore(rdb, o.TTL), nil
	case "jwt":
		if o.Secret == "" {
			return nil, fmt.Errorf("session driver jwt: empty secret")
		}
		return &JWTStore{Secret: []byte(o.Secret), Issuer: o.Issuer, TTL: o.TTL}, nil
	}
	return nil, fmt.Errorf("unsupported session driver %q", o.Driver)
}
