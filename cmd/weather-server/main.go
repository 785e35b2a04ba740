// Command weather-server serves temperatures over HTTP. The weather service
// is resolved from the keyed container on every request.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kbukum/weatherdi/bootstrap"
	"github.com/kbukum/weatherdi/config"
	"github.com/kbukum/weatherdi/di"
	"github.com/kbukum/weatherdi/server"
	"github.com/kbukum/weatherdi/wiring"
)

const serviceName = "weather-server"

type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Server               server.Config `yaml:"server" mapstructure:"server"`
}

func (c *appConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
}

func (c *appConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := &appConfig{}
	if err := config.LoadConfig(serviceName, cfg, config.WithEnvPrefix("WEATHER")); err != nil {
		return err
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	app.Bind(func(reg *di.Registry) error {
		return wiring.Keyed(reg, app.Logger)
	})
	app.OnConfigure(configure)

	return app.Run(ctx)
}

func configure(_ context.Context, app *bootstrap.App[*appConfig]) error {
	srv := server.New(app.Cfg.Server, app.Logger)
	srv.ApplyDefaults(app.Name, app.Components.HealthAll)
	srv.RegisterWeatherRoutes(app.Container, wiring.Keys.WeatherService)
	return app.RegisterComponent(server.NewComponent(srv))
}
