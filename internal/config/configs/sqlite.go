package configs

// SQLite configures the embedded ledger database used with
// LEDGER_DRIVER=sqlite.
type SQLite struct {
	Path string `env:"PATH" envDefault:"data/ledger.db"`
}
