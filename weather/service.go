package weather

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/weatherdi/observability"
	"github.com/kbukum/weatherdi/validation"
)

// Service answers temperature queries using the Provider it was built with.
type Service struct {
	provider Provider
}

// NewService creates a Service bound to p for its lifetime.
func NewService(p Provider) *Service {
	return &Service{provider: p}
}

type cityQuery struct {
	City string `json:"city" validate:"required"`
}

// GetTemperature returns the current temperature for city.
// An empty city fails with INVALID_INPUT; any other string is a city.
func (s *Service) GetTemperature(ctx context.Context, city string) (temperature float64, err error) {
	ctx, span := observability.StartSpan(ctx, "weather.GetTemperature",
		trace.WithAttributes(attribute.String(observability.AttrCity, city)),
	)
	defer func() { observability.EndSpan(span, err) }()

	if err := validation.Validate(cityQuery{City: city}); err != nil {
		return 0, err
	}

	report, err := s.provider.GetReport(ctx, city)
	if err != nil {
		return 0, err
	}
	return report.Temperature, nil
}
