package configs

import "time"

// Registry configures how the campaign registry is kept up to date.
type Registry struct {
	// RefreshInterval is the period between reloads from the campaign
	// store and lifecycle sweeps.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"5s"`
	// Source is "postgres" to load campaigns from the database or "none"
	// to rely solely on pushed campaign updates.
	Source string `env:"SOURCE" envDefault:"postgres"`
}
