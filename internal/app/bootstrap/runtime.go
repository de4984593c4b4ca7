// Package bootstrap wires the service's external dependencies from
// configuration: the Redis store and the message drafter.
package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	appconfig "github.com/trigueirabraids/studio-platform/internal/config"
	"github.com/trigueirabraids/studio-platform/internal/copy"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

// BuildRedisClient connects to Redis and verifies the connection. Redis is
// the only persistent store, so an unreachable server is a startup failure
// rather than a degraded mode.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (*redis.Client, error) {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil, fmt.Errorf("bootstrap: redis address is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("bootstrap: redis ping: %w", err)
	}
	logger.Info("redis connected", "addr", cfg.RedisAddr, "tls", cfg.RedisTLS)
	return client, nil
}

// BuildDrafter picks the message drafter: Gemini behind the template
// fallback when an API key is configured, templates alone otherwise.
func BuildDrafter(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) copy.Drafter {
	if logger == nil {
		logger = logging.Default()
	}
	template := copy.NewTemplateDrafter(cfg.StudioName, cfg.BraiderName)

	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		logger.Info("no gemini api key, drafting with templates only")
		return copy.NewFallbackDrafter(nil, template, logger)
	}

	gemini, err := copy.NewGeminiDrafter(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID, cfg.StudioName, cfg.BraiderName)
	if err != nil {
		logger.Warn("gemini drafter unavailable, drafting with templates only", "error", err)
		return copy.NewFallbackDrafter(nil, template, logger)
	}
	logger.Info("gemini drafter enabled", "model", cfg.GeminiModelID)
	return copy.NewFallbackDrafter(gemini, template, logger)
}
