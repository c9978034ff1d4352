// Command paged-server is a small demo HTTP server that pages a Redis
// list through the paged library: GET /items?page=N&size=M returns one
// bounds-safe page as JSON.
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/paged-go/paged/pkg/logging"
	"github.com/paged-go/paged/pkg/redisquery"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fallbackLogger := logging.Setup(logging.DefaultConfig())
		fallbackLogger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis")
	}
	logger.Info().Str("addr", cfg.RedisAddr).Msg("Connected to Redis")

	query := redisquery.NewListQuery(redisClient, cfg.ListKey)

	http.HandleFunc("/healthz", healthHandler)
	http.HandleFunc("/readyz", readyHandler(redisClient))
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/items", itemsHandler(query))

	addr := ":" + cfg.Port
	logger.Info().
		Str("addr", addr).
		Str("list_key", cfg.ListKey).
		Msg("Starting paged server")

	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}
