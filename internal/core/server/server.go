package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"elenyum-user/internal/core/config"
)

func BuildServer(c config.HTTP, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              Addr(c.Host, c.Port),
		Handler:           handler,
		ReadTimeout:       time.Duration(c.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(c.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(c.WriteTimeoutSec) * time.Second,
		IdleTimeout:       time.Duration(c.IdleTimeoutSec) * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }

// Run 启动并阻塞到 ctx 取消，然后在 grace 时间内优雅关闭
func Run(ctx context.Context, srv *http.Server, l *zap.Logger, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	l.Info("http started", zap.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	l.Info("http stopped gracefully")
	return nil
}
