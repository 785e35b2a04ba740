package weather

import (
	"context"

	"github.com/kbukum/weatherdi/logger"
	"github.com/kbukum/weatherdi/provider"
)

// Provider supplies temperature readings.
type Provider interface {
	GetReport(ctx context.Context, city string) (Report, error)
}

// StubProvider answers every city with StubTemperature without any I/O.
type StubProvider struct{}

var _ Provider = (*StubProvider)(nil)
var _ provider.RequestResponse[string, Report] = (*StubProvider)(nil)

// NewStubProvider creates a StubProvider.
func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

// GetReport returns StubTemperature for city.
func (p *StubProvider) GetReport(_ context.Context, city string) (Report, error) {
	return Report{City: city, Temperature: StubTemperature}, nil
}

func (p *StubProvider) Name() string                       { return "stub" }
func (p *StubProvider) IsAvailable(_ context.Context) bool { return true }

func (p *StubProvider) Execute(ctx context.Context, city string) (Report, error) {
	return p.GetReport(ctx, city)
}

// FromRequestResponse exposes a RequestResponse backend as a Provider.
func FromRequestResponse(rr provider.RequestResponse[string, Report]) Provider {
	return &rrProvider{rr: rr}
}

type rrProvider struct {
	rr provider.RequestResponse[string, Report]
}

func (p *rrProvider) GetReport(ctx context.Context, city string) (Report, error) {
	return p.rr.Execute(ctx, city)
}

// Instrumented wraps the stub backend with logging and tracing middleware.
func Instrumented(log *logger.Logger) Provider {
	return FromRequestResponse(provider.Chain(
		provider.WithLogging[string, Report](log),
		provider.WithTracing[string, Report]("weather"),
	)(NewStubProvider()))
}
