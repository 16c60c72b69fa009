package main

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"dispatchsim/internal/config"
	"dispatchsim/internal/infra"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.Redis.Addr = "127.0.0.1:1"
	cfg.Redis.TTL = time.Minute
	cfg.Sim.MaxTime = -1
	return cfg
}

func TestServe_ClosesRedisOnShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	client := infra.NewRedis(cfg.Redis.Addr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg, log.New(io.Discard), client) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
	if err := client.Ping(context.Background()).Err(); !errors.Is(err, redis.ErrClosed) {
		t.Fatalf("expected closed client, got %v", err)
	}
}

func TestServe_WithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := serve(ctx, testConfig(), log.New(io.Discard), nil); err != nil {
		t.Fatalf("serve: %v", err)
	}
}

func TestServe_BadAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.HTTP.Addr = "not-an-address"
	client := infra.NewRedis(cfg.Redis.Addr)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := serve(ctx, cfg, log.New(io.Discard), client); err == nil {
		t.Fatal("expected listen error")
	}
	if err := client.Ping(context.Background()).Err(); !errors.Is(err, redis.ErrClosed) {
		t.Fatalf("expected closed client after failed listen, got %v", err)
	}
}
