package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"elenyum-user/internal/core/config"
)

func TestBuildServer(t *testing.T) {
	srv := BuildServer(config.HTTP{Host: "127.0.0.1", Port: 8081, ReadTimeoutSec: 5, WriteTimeoutSec: 10, IdleTimeoutSec: 60}, http.NotFoundHandler())
	assert.Equal(t, "127.0.0.1:8081", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 10*time.Second, srv.WriteTimeout)
	assert.Equal(t, 60*time.Second, srv.IdleTimeout)
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := BuildServer(config.HTTP{Host: "127.0.0.1", Port: 0}, http.NotFoundHandler())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, srv, zap.NewNop(), time.Second) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
