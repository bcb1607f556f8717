package configs

// Telemetry configures OpenTelemetry tracing. Tracing is off unless
// Enabled is set and Endpoint is not empty.
type Telemetry struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"mesa-pacing"`
	// SampleRatio is the share of allocation decisions traced when the
	// caller did not sample the trace already. 0 to 1.
	SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"0.01"`
}
