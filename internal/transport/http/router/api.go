package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"elenyum-user/internal/core/config"
	mdw "elenyum-user/internal/transport/http/middleware"
)

// Mounter 业务模块在 /user 下挂载自己的接口
type Mounter interface {
	Mount(g *gin.RouterGroup)
}

type Deps struct {
	Log    *zap.Logger
	Limits config.Limits
	CORS   []string // 允许带 Cookie 的前端来源；空则不开 CORS
	User   Mounter
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	// 中间件；限流类配置为 0 表示关闭
	r.Use(
		mdw.RequestID(),
		mdw.Recovery(d.Log),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)
	lim := d.Limits
	if lim.RPS > 0 {
		r.Use(mdw.RateLimit(rate.Limit(lim.RPS), max(1, lim.Burst)))
	}
	if lim.Concurrency > 0 {
		r.Use(mdw.ConcurrencyLimit(lim.Concurrency))
	}
	if lim.MaxBodyBytes > 0 {
		r.Use(mdw.MaxBodyBytes(lim.MaxBodyBytes))
	}
	if lim.TimeoutSec > 0 {
		r.Use(mdw.Timeout(time.Duration(lim.TimeoutSec) * time.Second))
	}
	if len(d.CORS) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORS,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", mdw.HeaderRequestID},
			AllowCredentials: true, // 会话走 Cookie
			MaxAge:           12 * time.Hour,
		}))
	}

	// 健康检查 / 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", mdw.MetricsHandler())

	u := r.Group("/user")
	if lim.PerIPRPS > 0 {
		u.Use(mdw.RateLimitPerIP(rate.Limit(lim.PerIPRPS), max(1, lim.PerIPBurst)))
	}
	d.User.Mount(u)

	return r
}
