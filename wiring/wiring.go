package wiring

import (
	"github.com/kbukum/weatherdi/di"
	"github.com/kbukum/weatherdi/inject"
	"github.com/kbukum/weatherdi/logger"
	"github.com/kbukum/weatherdi/weather"
)

// Keyed binds the stub provider and the weather service into reg.
func Keyed(reg *di.Registry, log *logger.Logger) error {
	if err := di.Provide(reg, Keys.WeatherProvider, func(di.Dependencies) (weather.Provider, error) {
		return weather.Instrumented(log), nil
	}); err != nil {
		return err
	}
	return di.Provide(reg, Keys.WeatherService, func(deps di.Dependencies) (*weather.Service, error) {
		p, err := di.Dep[weather.Provider](deps, Keys.WeatherProvider)
		if err != nil {
			return nil, err
		}
		return weather.NewService(p), nil
	}, Keys.WeatherProvider)
}

// Typed binds the stub provider and the weather service into reg.
func Typed(reg *inject.Registry, log *logger.Logger) error {
	if err := inject.Bind[weather.Provider](reg, func() weather.Provider {
		return weather.Instrumented(log)
	}); err != nil {
		return err
	}
	return inject.Bind[*weather.Service](reg, weather.NewService)
}
