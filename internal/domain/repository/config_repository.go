package repository

import (
	"github.com/diillson/pd-payroll-go/internal/shared/types"
)

// ConfigRepository defines the interface for the persisted user configuration.
type ConfigRepository interface {
	Path() string
	Load() (*types.Config, error)
	Save(cfg *types.Config) error
	Clear(field string) error
}

// ConfigRepositoryFactory opens the config store at path. An empty path selects the default location.
type ConfigRepositoryFactory func(path string) (ConfigRepository, error)
