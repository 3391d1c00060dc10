package interfaces

import "burgerbude/internal/domain/entities"

// ISettingsProvider exposes the back-office configuration to the core.
// Implementations never fail: missing sources degrade to env/default values.
//
//go:generate mockgen -source=settings_provider_interface.go -destination=mocks/settings_provider_mock.go

type ISettingsProvider interface {
	Get() entities.ServerSettings
}
