package ports

import "go.trai.ch/depbuild/internal/core/domain"

// ConfigLoader defines the interface for resolving project settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the settings for the project rooted at root.
	Load(root string) (*domain.Settings, error)
}
