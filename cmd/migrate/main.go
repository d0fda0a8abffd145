package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"elenyum-user/internal/core/config"
	"elenyum-user/internal/core/database"
	"elenyum-user/internal/core/logger"
)

// 只建表/索引然后退出，用于发布前单独跑迁移
func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       1,
		MaxIdleConns:       1,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           "info",
		Log:                log,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}
	log.Info("migrate done", zap.String("driver", cfg.DB.Driver))
}
