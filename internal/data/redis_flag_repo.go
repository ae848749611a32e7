package data

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

// RedisFlagService implements the FeatureFlagService port over Redis keys.
// Lookup order is a per-organization override first, then the global key,
// then the supplied default. Backend failures return the default: flag
// evaluation must never fail a read.
type RedisFlagService struct {
	client redis.UniversalClient
	logger *slog.Logger
}

// NewRedisFlagService creates a new RedisFlagService with the given client.
func NewRedisFlagService(client redis.UniversalClient, logger *slog.Logger) *RedisFlagService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisFlagService{client: client, logger: logger}
}

// GetFlag evaluates a boolean flag for the tenant scope.
func (s *RedisFlagService) GetFlag(ctx context.Context, key string, def bool, scope model.TenantScope) bool {
	for _, k := range []string{flagKey(scope.OrganizationID, key), flagKey("", key)} {
		val, err := s.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			s.logger.WarnContext(ctx, "feature flag lookup failed, using default",
				"flag", key,
				"redis_key", k,
				"default", def,
				"error", err)
			return def
		}
		return parseFlagValue(val, def)
	}
	return def
}

// flagKey builds the Redis key for a flag, optionally scoped to an
// organization.
func flagKey(orgID, key string) string {
	if orgID == "" {
		return "ff:" + key
	}
	return "ff:" + orgID + ":" + key
}

// parseFlagValue interprets a stored flag value, falling back to the default
// on anything unrecognized.
func parseFlagValue(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "on":
		return true
	case "false", "0", "off":
		return false
	default:
		return def
	}
}
