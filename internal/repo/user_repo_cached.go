package repo

import (
	"context"
	"strconv"
	"time"

	"elenyum-user/internal/core/cache"
	"elenyum-user/internal/domain"
)

// CachedUserRepo 给 FindByID 套一层 Redis 缓存（身份校验每次请求都会查）。
// 缓存里的 JSON 不含密码哈希，所以只缓存按 ID 的读取。
type CachedUserRepo struct {
	domain.UserRepository
	c   *cache.Cache
	ttl time.Duration
}

func NewCachedUserRepo(inner domain.UserRepository, c *cache.Cache, ttl time.Duration) *CachedUserRepo {
	return &CachedUserRepo{UserRepository: inner, c: c, ttl: ttl}
}

func userCacheKey(id uint) string { return "user:" + strconv.FormatUint(uint64(id), 10) }

// Create 成功后清掉该 ID 可能存在的负缓存
func (r *CachedUserRepo) Create(ctx context.Context, u *domain.User) error {
	if err := r.UserRepository.Create(ctx, u); err != nil {
		return err
	}
	_ = r.c.Delete(ctx, userCacheKey(u.ID))
	return nil
}

func (r *CachedUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	return cache.GetOrLoadJSON(r.c, ctx, userCacheKey(id), r.ttl, func(ctx context.Context) (*domain.User, error) {
		return r.UserRepository.FindByID(ctx, id)
	})
}
