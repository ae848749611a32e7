package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - database.go: Backing store configuration
//   - http.go: HTTP server configuration
//   - feed.go: Feed resolver tuning
//   - observability.go: Metrics emission
type AppConfig struct {
	// IsDev controls development mode behavior (text logging, etc.)
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// SelfHosted marks a single-tenant deployment. Self-hosted deployments
	// have no tier-based feed retention limits.
	SelfHosted bool `env:"SELF_HOSTED" envDefault:"false"`

	// Backing store configuration
	Postgres   DBConfig         `envPrefix:"DB_"`
	Mongo      MongoConfig      `envPrefix:"MONGO_"`
	ClickHouse ClickHouseConfig `envPrefix:"CLICKHOUSE_"`
	Redis      RedisConfig      `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Feed resolver configuration
	Feed FeedConfig

	// Metrics emission configuration
	Metrics MetricsConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Feed.Sanitize()
	c.Metrics.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
