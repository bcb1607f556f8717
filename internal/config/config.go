package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"mesa-pacing/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	SQLite    configs.SQLite    `envPrefix:"SQLITE_"`
	Ledger    configs.Ledger    `envPrefix:"LEDGER_"`
	Registry  configs.Registry  `envPrefix:"REGISTRY_"`
	Engine    configs.Engine    `envPrefix:"ENGINE_"`
	Telemetry configs.Telemetry `envPrefix:"OTEL_"`
}

// Load reads configuration from environment variables into a Config and
// validates the sections that have a closed set of values.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Ledger.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Registry.RefreshInterval <= 0 {
		return cfg, fmt.Errorf("registry refresh interval must be positive")
	}
	switch cfg.Registry.Source {
	case "postgres", "none":
	default:
		return cfg, fmt.Errorf("unknown registry source %q", cfg.Registry.Source)
	}
	return cfg, nil
}

// NeedsPostgres reports whether any configured component talks to
// PostgreSQL.
func (c Config) NeedsPostgres() bool {
	return c.Ledger.Driver == configs.LedgerPostgres || c.Registry.Source == "postgres"
}
