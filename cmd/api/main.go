package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"elenyum-user/internal/core/cache"
	"elenyum-user/internal/core/config"
	"elenyum-user/internal/core/database"
	"elenyum-user/internal/core/logger"
	"elenyum-user/internal/core/server"
	"elenyum-user/internal/core/session"
	"elenyum-user/internal/domain"
	"elenyum-user/internal/feature/user"
	"elenyum-user/internal/repo"
	mdw "elenyum-user/internal/transport/http/middleware"
	"elenyum-user/internal/transport/http/router"
	"elenyum-user/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log)
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 数据库（失败直接 Fatal）
	db := mustOpenDB(cfg, log)
	defer func() { _ = database.Close(db) }()
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		var err error
		rdb, err = cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("redis connect", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
		}
		defer func() { _ = rdb.Close() }()
		log.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	}

	ttl := time.Duration(cfg.Session.TTLMin) * time.Minute
	sessions, err := session.New(session.Opts{
		Driver: cfg.Session.Driver,
		Secret: cfg.Session.Secret,
		Issuer: cfg.Session.Issuer,
		TTL:    ttl,
	}, rdb)
	if err != nil {
		log.Fatal("session store", zap.Error(err))
	}

	// 依赖
	var users domain.UserRepository = repo.NewUserRepo(db)
	if rdb != nil && cfg.Cache.UserTTLSec > 0 {
		users = repo.NewCachedUserRepo(users, cache.New(rdb, cfg.App.Name+":"), time.Duration(cfg.Cache.UserTTLSec)*time.Second)
	}
	svc := user.NewService(users, utils.BcryptHasher{Cost: cfg.Security.BcryptCost}, log)
	userH := user.NewHandler(svc, sessions, mdw.SessionCookie{
		Name:   cfg.Session.CookieName,
		MaxAge: int(ttl.Seconds()),
		Secure: cfg.Session.Secure,
	}, log)

	r := router.NewAPIEngine(router.Deps{
		Log:    log,
		Limits: cfg.Limits,
		CORS:   cfg.App.HTTP.AllowOrigins,
		User:   userH,
	})

	srv := server.BuildServer(cfg.App.HTTP, r)
	log.Info("user api starting",
		zap.String("addr", srv.Addr),
		zap.String("env", cfg.App.Env),
		zap.String("session", cfg.Session.Driver),
	)
	if err := server.Run(ctx, srv, log, 10*time.Second); err != nil {
		log.Error("user api stopped with error", zap.Error(err))
	}
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Log:                l,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
