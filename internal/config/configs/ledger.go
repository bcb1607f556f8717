package configs

import (
	"fmt"
	"time"
)

const (
	LedgerMemory   = "memory"
	LedgerPostgres = "postgres"
	LedgerSQLite   = "sqlite"
)

// Ledger selects the delivery ledger backend and the viewer history policy.
type Ledger struct {
	// Driver is one of "memory", "postgres" or "sqlite".
	Driver string `env:"DRIVER" envDefault:"memory"`
	// ViewerTTL is how long a viewer's streak survives without deliveries.
	ViewerTTL time.Duration `env:"VIEWER_TTL" envDefault:"24h"`
	// PruneInterval is how often expired viewer streaks are removed.
	PruneInterval time.Duration `env:"PRUNE_INTERVAL" envDefault:"10m"`
}

// Validate checks the driver name and intervals.
func (c Ledger) Validate() error {
	switch c.Driver {
	case LedgerMemory, LedgerPostgres, LedgerSQLite:
	default:
		return fmt.Errorf("unknown ledger driver %q", c.Driver)
	}
	if c.ViewerTTL <= 0 || c.PruneInterval <= 0 {
		return fmt.Errorf("ledger viewer ttl and prune interval must be positive")
	}
	return nil
}
