package configs

import "time"

// Engine tunes the allocation engine.
type Engine struct {
	// Deadline bounds a single allocation decision; on expiry the caller
	// gets the fallback outcome.
	Deadline time.Duration `env:"DEADLINE" envDefault:"50ms"`
	// CommitTimeout bounds a ledger commit that has already been issued.
	CommitTimeout time.Duration `env:"COMMIT_TIMEOUT" envDefault:"2s"`
	// MaxCommitRetries is the number of lost-race retries per decision.
	MaxCommitRetries int `env:"MAX_COMMIT_RETRIES" envDefault:"3"`
	// TieEpsilon is the score distance under which campaigns tie and are
	// drawn by weight.
	TieEpsilon float64 `env:"TIE_EPSILON" envDefault:"1e-9"`
	// Normalization is "max_eligible" or "none".
	Normalization string `env:"NORMALIZATION" envDefault:"max_eligible"`
	// Seed fixes the random source; zero seeds from crypto/rand.
	Seed uint64 `env:"SEED" envDefault:"0"`
}
