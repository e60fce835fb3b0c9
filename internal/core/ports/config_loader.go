package ports

import "github.com/karbobc/workday/internal/core/domain"

// ConfigLoader defines the interface for loading the service configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration from its file and the environment.
	Load() (*domain.Settings, error)
}
