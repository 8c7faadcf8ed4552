package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // .hcl alias manifest file or directory

	// Names are the names to resolve and report. Empty means print the
	// full alias table instead.
	Names []string

	LogFormat string
	LogLevel  string

	// Strict disables alias overriding: re-registering an alias to a new
	// target becomes a startup failure.
	Strict bool
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
