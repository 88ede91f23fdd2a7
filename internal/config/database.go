package config

import (
	"fmt"
)

// PostgresConfig holds the database connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host" env:"NOTEHUB_POSTGRES_HOST" env-default:"0.0.0.0"`
	Port     int    `yaml:"port" env:"NOTEHUB_POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"NOTEHUB_POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"NOTEHUB_POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `yaml:"database" env:"NOTEHUB_POSTGRES_DB" env-default:"notehub"`
	MinConn  int    `yaml:"min_conn" env:"NOTEHUB_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn  int    `yaml:"max_conn" env:"NOTEHUB_POSTGRES_MAX_CONN" env-default:"10"`
}

// GetDSN returns the Postgres connection string.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL returns the URL-style connection string used by migrations.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}
