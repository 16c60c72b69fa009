// README: Entry point; loads config, wires the simulation service and report cache, serves the HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"dispatchsim/internal/config"
	httptransport "dispatchsim/internal/http"
	"dispatchsim/internal/infra"
	"dispatchsim/internal/modules/simulation"
)

func main() {
	cfg, err := config.Load(os.Getenv("DISPATCH_CONFIG"))
	if err != nil {
		log.Fatal("loading config", "err", err)
	}
	logger, err := infra.NewLogger(os.Stderr, cfg.Log.Level, "dispatch-api")
	if err != nil {
		log.Fatal("building logger", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)
	if err := serve(ctx, cfg, logger, infra.NewRedis(cfg.Redis.Addr)); err != nil {
		logger.Fatal("serve", "err", err)
	}
}

// serve runs the API until ctx is done and closes redisClient, which may be
// nil, before returning.
func serve(ctx context.Context, cfg config.Config, logger *log.Logger, redisClient *redis.Client) error {
	var cache simulation.RunCache
	if redisClient != nil {
		if err := infra.PingRedis(ctx, redisClient); err != nil {
			logger.Warn("redis unavailable, runs will not be retrievable", "addr", cfg.Redis.Addr, "err", err)
		}
		cache = simulation.NewStore(redisClient, cfg.Redis.TTL)
	} else {
		logger.Warn("no redis address configured, report cache disabled")
	}

	simSvc := simulation.NewService(cache, logger, cfg.Sim.MaxTime)
	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httptransport.Wrap(httptransport.NewRouter(simSvc, logger), os.Stdout),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	logger.Info("listening", "addr", cfg.HTTP.Addr, "redis", cfg.Redis.Addr, "max_time", cfg.Sim.MaxTime)
	serveErr := server.ListenAndServe()
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("closing redis", "err", err)
		}
	}
	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return serveErr
	}
	return nil
}
