// Command weather-di resolves the weather service from the keyed container
// and prints the temperature for the default city.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kbukum/weatherdi/bootstrap"
	"github.com/kbukum/weatherdi/config"
	"github.com/kbukum/weatherdi/di"
	"github.com/kbukum/weatherdi/logger"
	"github.com/kbukum/weatherdi/weather"
	"github.com/kbukum/weatherdi/wiring"
)

const serviceName = "weather-di"

type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
}

type binder func(reg *di.Registry, log *logger.Logger) error

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr, wiring.Keyed))
}

// run returns the process exit code.
func run(ctx context.Context, out, errOut io.Writer, bind binder) int {
	if err := execute(ctx, out, bind); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	return 0
}

func execute(ctx context.Context, out io.Writer, bind binder) error {
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
		return bind(reg, app.Logger)
	})

	return app.RunTask(ctx, func(ctx context.Context) error {
		return printTemperature(ctx, app.Container, out)
	})
}

func printTemperature(ctx context.Context, c di.Container, out io.Writer) error {
	svc, err := di.Resolve[*weather.Service](ctx, c, wiring.Keys.WeatherService)
	if err != nil {
		return err
	}
	temp, err := svc.GetTemperature(ctx, weather.DefaultCity)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, weather.FormatLine(weather.DefaultCity, temp))
	return err
}
