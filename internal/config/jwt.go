package config

import "time"

// JWTConfig holds the access token settings.
type JWTConfig struct {
	SecretKey      string        `yaml:"secret_key" env:"NOTEHUB_JWT_SECRET_KEY" env-default:"notehub-dev-secret"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"NOTEHUB_JWT_ACCESS_TOKEN_TTL" env-default:"24h"`
}
