package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/weatherdi/component"
	"github.com/kbukum/weatherdi/di"
	apperrors "github.com/kbukum/weatherdi/errors"
	"github.com/kbukum/weatherdi/logger"
	"github.com/kbukum/weatherdi/server"
	"github.com/kbukum/weatherdi/server/middleware"
	"github.com/kbukum/weatherdi/wiring"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newResolver(t *testing.T, bind bool) *di.Resolver {
	t.Helper()
	reg := di.NewRegistry(di.WithLogger(logger.Nop()))
	if bind {
		if err := wiring.Keyed(reg, logger.Nop()); err != nil {
			t.Fatalf("wiring: %v", err)
		}
	}
	res, err := reg.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	t.Cleanup(func() { _ = res.Close() })
	return res
}

func newServer(t *testing.T, container di.Container) *server.Server {
	t.Helper()
	s := server.New(server.Config{Host: "127.0.0.1"}, logger.Nop())
	s.ApplyDefaults("weather-server", nil)
	s.RegisterWeatherRoutes(container, wiring.Keys.WeatherService)
	return s
}

func do(s *server.Server, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestTemperature_Pune(t *testing.T) {
	s := newServer(t, newResolver(t, true))

	w := do(s, http.MethodGet, "/v1/temperature/Pune", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Data struct {
			City        string  `json:"city"`
			Temperature float64 `json:"temperature"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.City != "Pune" || body.Data.Temperature != 32.5 {
		t.Errorf("unexpected body: %+v", body.Data)
	}
	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Error("expected a generated request ID header")
	}
}

func TestTemperature_WhitespaceCity(t *testing.T) {
	s := newServer(t, newResolver(t, true))

	w := do(s, http.MethodGet, "/v1/temperature/%20%20", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Data struct {
			City        string  `json:"city"`
			Temperature float64 `json:"temperature"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.City != "  " || body.Data.Temperature != 32.5 {
		t.Errorf("unexpected body: %+v", body.Data)
	}
}

func TestTemperature_EmptyCity(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/temperature/", nil)

	server.TemperatureHandler(newResolver(t, true), wiring.Keys.WeatherService)(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	assertErrorCode(t, w, apperrors.ErrCodeInvalidInput)
}

func TestTemperature_EmptyContainer(t *testing.T) {
	s := newServer(t, newResolver(t, false))

	w := do(s, http.MethodGet, "/v1/temperature/Pune", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	assertErrorCode(t, w, apperrors.ErrCodeUnresolvableDependency)
}

func TestRequestID_Propagated(t *testing.T) {
	s := newServer(t, newResolver(t, true))

	w := do(s, http.MethodGet, "/v1/temperature/Pune", http.Header{middleware.HeaderRequestID: {"req-123"}})
	if got := w.Header().Get(middleware.HeaderRequestID); got != "req-123" {
		t.Errorf("expected request ID to be echoed, got %q", got)
	}
}

func TestRecovery(t *testing.T) {
	s := newServer(t, newResolver(t, true))
	s.GinEngine().GET("/panic", func(*gin.Context) { panic("boom") })

	w := do(s, http.MethodGet, "/panic", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	assertErrorCode(t, w, apperrors.ErrCodeInternal)
}

func TestHealthAndVersion(t *testing.T) {
	s := newServer(t, newResolver(t, true))

	w := do(s, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", w.Code)
	}
	var health map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if health["status"] != "healthy" || health["service"] != "weather-server" {
		t.Errorf("unexpected health body: %v", health)
	}

	w = do(s, http.MethodGet, "/version", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /version, got %d", w.Code)
	}
	var v map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := v["version"]; !ok {
		t.Errorf("expected version field, got %v", v)
	}
}

func TestHealth_Unhealthy(t *testing.T) {
	s := server.New(server.Config{}, logger.Nop())
	s.ApplyDefaults("weather-server", func(context.Context) []component.Health {
		return []component.Health{{Name: "db", Status: component.StatusUnhealthy}}
	})

	w := do(s, http.MethodGet, "/health", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestComponent_Lifecycle(t *testing.T) {
	s := server.New(server.Config{Host: "127.0.0.1", Port: 0}, logger.Nop())
	c := server.NewComponent(s)
	ctx := context.Background()

	if c.Health(ctx).Status != component.StatusUnhealthy {
		t.Error("expected unhealthy before start")
	}
	if err := c.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if c.Health(ctx).Status != component.StatusHealthy {
		t.Error("expected healthy after start")
	}
	if s.Addr() == "127.0.0.1:0" {
		t.Errorf("expected bound port, got %s", s.Addr())
	}
	if c.Describe().Type != "server" {
		t.Errorf("unexpected description: %+v", c.Describe())
	}
	if err := c.Stop(ctx); err != nil {
		t.Errorf("stop: %v", err)
	}
}

func TestConfig(t *testing.T) {
	var cfg server.Config
	cfg.ApplyDefaults()
	if cfg.Port != 8080 || cfg.ReadTimeout != 15 || cfg.IdleTimeout != 60 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	bad := server.Config{Port: 70000}
	if err := bad.Validate(); err == nil {
		t.Error("expected out-of-range port to fail")
	}
	if got := (&server.Config{Host: "0.0.0.0", Port: 9000}).Addr(); got != "0.0.0.0:9000" {
		t.Errorf("unexpected addr %q", got)
	}
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, want apperrors.ErrorCode) {
	t.Helper()
	var resp apperrors.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	if resp.Error.Code != want {
		t.Errorf("expected code %s, got %s", want, resp.Error.Code)
	}
}
