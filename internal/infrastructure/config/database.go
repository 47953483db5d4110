package config

import "time"

// DatabaseConfig selects and parameterizes the chain store backend.
type DatabaseConfig struct {
	// Type selects the backend: "sqlite" for a local single-file store
	// (the default), "postgres" for a shared server.
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`

	// URL is a full postgres connection string. When set it wins over
	// the individual connection fields below.
	URL string `mapstructure:"url"`

	// Postgres connection fields, consulted when URL is empty.
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable require"`

	// Path is the sqlite database file, or ":memory:".
	Path string `mapstructure:"path"`

	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig bounds the postgres connection pool. Sqlite runs with the
// driver defaults and ignores these.
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open" validate:"min=1"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"min=1"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
