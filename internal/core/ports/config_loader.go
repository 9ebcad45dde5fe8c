package ports

import "go.trai.ch/sherpa/internal/core/domain"

// ConfigLoader defines the interface for loading the raw plugin
// configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads sherpa.yaml from the given working directory and applies
	// environment overrides. A missing config file is not an error: every
	// option has a documented default.
	Load(cwd string) (domain.RawOptions, error)

	// ConfigPath returns the path of the config file for the given
	// working directory, whether or not it exists.
	ConfigPath(cwd string) string
}
