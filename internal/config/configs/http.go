package configs

import "time"

// HTTP defines configuration for the HTTP server that wraps the engine.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeout limits how long the server waits for request headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	// RequestTimeout bounds a whole HTTP request including body decoding.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"1s"`
	// ShutdownTimeout limits how long in-flight requests may run during
	// graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
