package config

import (
	"fmt"
	"time"
)

// RedisConfig holds the settings of the note list cache.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"NOTEHUB_REDIS_HOST" env-default:"0.0.0.0"`
	Port           int           `yaml:"port" env:"NOTEHUB_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"NOTEHUB_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"NOTEHUB_REDIS_DB" env-default:"0"`
	PoolSize       int           `yaml:"pool_size" env:"NOTEHUB_REDIS_POOL_SIZE" env-default:"10"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"NOTEHUB_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"NOTEHUB_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"NOTEHUB_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	DefaultTTL     time.Duration `yaml:"default_ttl" env:"NOTEHUB_REDIS_DEFAULT_TTL" env-default:"15m"`
}

// GetAddress returns the Redis address in host:port form.
func (r *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
