package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Session.TokenSecret) < 32 {
		return fmt.Errorf("session.token_secret must be at least 32 characters (got %d)", len(c.Session.TokenSecret))
	}
	if c.Session.RetentionDays <= 0 {
		return fmt.Errorf("session.retention_days must be > 0 (got %d)", c.Session.RetentionDays)
	}
	if c.Session.EvictInterval <= 0 {
		return fmt.Errorf("session.evict_interval must be > 0 (got %v)", c.Session.EvictInterval)
	}

	if c.Generation.APIKey == "" {
		return fmt.Errorf("generation.api_key must not be empty")
	}
	if c.Generation.MaxTokens <= 0 {
		return fmt.Errorf("generation.max_tokens must be > 0 (got %d)", c.Generation.MaxTokens)
	}
	if c.Generation.RequestTimeout <= 0 {
		return fmt.Errorf("generation.request_timeout must be > 0 (got %v)", c.Generation.RequestTimeout)
	}

	if c.Speech.Enabled && c.Speech.MaxTextLength <= 0 {
		return fmt.Errorf("speech.max_text_length must be > 0 when speech is enabled (got %d)", c.Speech.MaxTextLength)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}
