package config

import "time"

// FeedConfig tunes the tiered feed resolver.
type FeedConfig struct {
	// TierTimeout bounds one tier attempt in the fallback chain so a hung
	// store cannot stall fallback evaluation.
	TierTimeout time.Duration `env:"FEED_TIER_TIMEOUT" envDefault:"10s"`

	// TraceEntityType is the entity_type discriminator for the trace store.
	TraceEntityType string `env:"FEED_TRACE_ENTITY_TYPE" envDefault:"step_run"`
}

// Sanitize applies guardrails to feed configuration values.
func (f *FeedConfig) Sanitize() {
	if f.TierTimeout <= 0 {
		f.TierTimeout = 10 * time.Second
	}
}
