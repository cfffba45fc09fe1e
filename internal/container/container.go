// Package container wires the application dependencies with dig.
package container

import (
	"krishi-nirnay/internal/app"
	"krishi-nirnay/internal/config"
	"krishi-nirnay/internal/handler"
	"krishi-nirnay/internal/httpclient"
	"krishi-nirnay/internal/i18n"
	"krishi-nirnay/internal/router"
	"krishi-nirnay/internal/services"
	"krishi-nirnay/internal/store"
	"krishi-nirnay/internal/types"

	"go.uber.org/dig"
)

// BuildContainer creates the dependency injection container and registers
// all application constructors.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		// Infrastructure
		config.NewManager,
		httpclient.NewManager,
		newStore,
		newLocaleStore,
		i18n.NewTranslator,

		// Domain services
		services.NewWeatherService,
		services.NewMandiService,
		services.NewSchemeService,
		services.NewSoilService,
		services.NewSatelliteService,
		services.NewAdvisoryService,
		services.NewChatbotEngine,

		// Interface bindings for service consumers
		func(s *services.WeatherService) services.WeatherSource { return s },
		func(s *services.MandiService) services.MandiSource { return s },
		func(s *services.SchemeService) services.SchemeSource { return s },
		func(s *services.SoilService) services.SoilSource { return s },

		// HTTP layer
		handler.NewServer,
		router.NewRouter,
		app.NewApp,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

func newStore() store.Store {
	return store.NewMemoryStore()
}

func newLocaleStore(configManager types.ConfigManager, cache store.Store) *i18n.LocaleStore {
	return i18n.NewLocaleStore(configManager.GetLocaleConfig().Dir, cache)
}
