package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Study     StudyConfig     `yaml:"study"`
	Translate TranslateConfig `yaml:"translate"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimitPerMinute caps requests per client IP. Zero disables limiting.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// QueryTimeout bounds each remote store call; expiry surfaces as a
	// persistence failure to the workflow.
	QueryTimeout time.Duration `yaml:"query_timeout" env:"DATABASE_QUERY_TIMEOUT" env-default:"5s"`
}

// AuthConfig holds JWT authentication settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"wordwell"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// StudyConfig holds session workflow settings.
type StudyConfig struct {
	// StaleSessionRetentionDays controls how long never-completed sessions
	// are kept before cmd/cleanup-sessions removes them.
	StaleSessionRetentionDays int `yaml:"stale_session_retention_days" env:"STUDY_STALE_SESSION_RETENTION_DAYS" env-default:"30"`
}

// TranslateConfig holds the chat-completion translation provider settings.
// An empty APIKey disables the provider; the service then reports
// translation as unavailable and clients fall back to manual entry.
type TranslateConfig struct {
	APIKey    string        `yaml:"api_key" env:"TRANSLATE_API_KEY"`
	Model     string        `yaml:"model"   env:"TRANSLATE_MODEL"   env-default:"claude-3-5-haiku-latest"`
	Timeout   time.Duration `yaml:"timeout" env:"TRANSLATE_TIMEOUT" env-default:"15s"`
	MaxTokens int64         `yaml:"max_tokens" env:"TRANSLATE_MAX_TOKENS" env-default:"256"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
