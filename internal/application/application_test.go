package application

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/topic-functions/internal/config"
	"github.com/eugenenazirov/topic-functions/internal/function"
	"github.com/eugenenazirov/topic-functions/internal/parameters"
)

func TestNewInitializesFunctions(t *testing.T) {
	t.Setenv("STR_TOPICDISPLAYNAME", "Orders")
	cfg := baseTestConfig(":8085")

	app, err := New(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if app.echo.DisplayName() != "Orders" || app.acknowledge.DisplayName() != "Orders" {
		t.Fatalf("expected both functions to hold Orders")
	}
	if app.server == nil || app.router == nil || app.handler == nil {
		t.Fatalf("expected server, router, and handler to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}

	fns := app.Functions()
	resp, err := fns.Echo.Invoke(context.Background(), function.Request{})
	if err != nil || resp.DisplayName != "Orders" {
		t.Fatalf("unexpected echo result %+v, %v", resp, err)
	}
}

func TestNewServesFunctionsOverHTTP(t *testing.T) {
	source := parameters.NewStore(map[string]string{function.TopicDisplayNameKey: "Orders"})
	app, err := NewWithSource(baseTestConfig(":0"), source, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewWithSource returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/functions/echo", nil)
	rec := httptest.NewRecorder()
	app.Server().Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"DisplayName":"Orders"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestNewFailsWhenParameterMissing(t *testing.T) {
	_, err := NewWithSource(baseTestConfig(":0"), parameters.NewStore(nil), zaptest.NewLogger(t))
	if !errors.Is(err, parameters.ErrParameterNotFound) {
		t.Fatalf("expected ErrParameterNotFound, got %v", err)
	}
}

func TestNewParameterSourcePrefersFile(t *testing.T) {
	t.Setenv("STR_TOPICDISPLAYNAME", "FromEnv")

	path := filepath.Join(t.TempDir(), "parameters.yaml")
	if err := os.WriteFile(path, []byte("parameters:\n  TopicDisplayName: FromFile\n"), 0o600); err != nil {
		t.Fatalf("write parameters: %v", err)
	}

	cfg := baseTestConfig(":0")
	cfg.ParametersFile = path
	source, err := NewParameterSource(cfg)
	if err != nil {
		t.Fatalf("NewParameterSource returned error: %v", err)
	}

	got, err := source.ReadText(function.TopicDisplayNameKey)
	if err != nil {
		t.Fatalf("ReadText returned error: %v", err)
	}
	if got != "FromFile" {
		t.Fatalf("expected file value, got %q", got)
	}
}

func TestNewParameterSourceMissingFile(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.ParametersFile = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := New(cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error for missing parameters file")
	}
}

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := baseTestConfig("9090")
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != cfg.ReadHeaderTimeout ||
		server.WriteTimeout != cfg.WriteTimeout ||
		server.IdleTimeout != cfg.IdleTimeout {
		t.Fatalf("server timeouts do not match configuration")
	}
}

func TestStartLambdaRejectsUnknownFunction(t *testing.T) {
	source := parameters.NewStore(map[string]string{function.TopicDisplayNameKey: "Orders"})
	cfg := baseTestConfig(":0")
	cfg.Function = "resize"

	app, err := NewWithSource(cfg, source, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewWithSource returned error: %v", err)
	}
	if err := app.StartLambda(context.Background()); err == nil {
		t.Fatalf("expected error for unknown function")
	}
}

func baseTestConfig(port string) config.Config {
	return config.Config{
		Port:                 port,
		Runtime:              config.RuntimeHTTP,
		Function:             function.EchoName,
		LogLevel:             "info",
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}
