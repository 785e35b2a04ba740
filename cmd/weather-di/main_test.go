package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kbukum/weatherdi/di"
	apperrors "github.com/kbukum/weatherdi/errors"
	"github.com/kbukum/weatherdi/logger"
	"github.com/kbukum/weatherdi/wiring"
)

func TestPrintTemperature(t *testing.T) {
	reg := di.NewRegistry(di.WithLogger(logger.Nop()))
	if err := wiring.Keyed(reg, logger.Nop()); err != nil {
		t.Fatalf("wiring: %v", err)
	}
	res, err := reg.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer res.Close()

	var out bytes.Buffer
	if err := printTemperature(context.Background(), res, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.String(), "The temperature in Pune is 32.5\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrintTemperature_EmptyContainer(t *testing.T) {
	res, err := di.NewRegistry(di.WithLogger(logger.Nop())).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer res.Close()

	var out bytes.Buffer
	err = printTemperature(context.Background(), res, &out)
	if !apperrors.IsCode(err, apperrors.ErrCodeUnresolvableDependency) {
		t.Fatalf("expected UNRESOLVABLE_DEPENDENCY, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", out.String())
	}
}

func TestRun(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run(context.Background(), &out, &errOut, wiring.Keyed); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", code, errOut.String())
	}
	if got, want := out.String(), "The temperature in Pune is 32.5\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRun_MissingBinding(t *testing.T) {
	var out, errOut bytes.Buffer
	noBindings := func(*di.Registry, *logger.Logger) error { return nil }

	if code := run(context.Background(), &out, &errOut, noBindings); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if out.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "weather_service") {
		t.Errorf("expected stderr to name the missing binding, got %q", errOut.String())
	}
}
