package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Session    SessionConfig    `yaml:"session"`
	Generation GenerationConfig `yaml:"generation"`
	Speech     SpeechConfig     `yaml:"speech"`
	Log        LogConfig        `yaml:"log"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// SessionConfig holds study-session token and retention settings.
type SessionConfig struct {
	TokenSecret   string        `yaml:"token_secret"   env:"SESSION_TOKEN_SECRET"   env-required:"true"`
	TokenIssuer   string        `yaml:"token_issuer"   env:"SESSION_TOKEN_ISSUER"   env-default:"codestudy"`
	TokenTTL      time.Duration `yaml:"token_ttl"      env:"SESSION_TOKEN_TTL"      env-default:"720h"`
	RetentionDays int           `yaml:"retention_days" env:"SESSION_RETENTION_DAYS" env-default:"30"`
	EvictInterval time.Duration `yaml:"evict_interval" env:"SESSION_EVICT_INTERVAL" env-default:"1h"`
}

// GenerationConfig holds settings for the external generation collaborator.
type GenerationConfig struct {
	APIKey         string        `yaml:"api_key"         env:"GENERATION_API_KEY"         env-required:"true"`
	Model          string        `yaml:"model"           env:"GENERATION_MODEL"           env-default:"claude-sonnet-4-5"`
	MaxTokens      int64         `yaml:"max_tokens"      env:"GENERATION_MAX_TOKENS"      env-default:"2048"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"GENERATION_REQUEST_TIMEOUT" env-default:"45s"`
}

// SpeechConfig holds text-to-speech settings.
type SpeechConfig struct {
	Enabled        bool          `yaml:"enabled"         env:"SPEECH_ENABLED"         env-default:"false"`
	VoiceEN        string        `yaml:"voice_en"        env:"SPEECH_VOICE_EN"        env-default:"en-US-Neural2-C"`
	VoiceKR        string        `yaml:"voice_kr"        env:"SPEECH_VOICE_KR"        env-default:"ko-KR-Neural2-A"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"SPEECH_REQUEST_TIMEOUT" env-default:"15s"`
	MaxTextLength  int           `yaml:"max_text_length" env:"SPEECH_MAX_TEXT_LENGTH" env-default:"500"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
