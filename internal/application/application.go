package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/topic-functions/internal/api"
	"github.com/eugenenazirov/topic-functions/internal/config"
	"github.com/eugenenazirov/topic-functions/internal/function"
	"github.com/eugenenazirov/topic-functions/internal/lambdahost"
	"github.com/eugenenazirov/topic-functions/internal/parameters"
)

// App encapsulates the initialized functions and the HTTP server that exposes them.
type App struct {
	cfg         config.Config
	echo        *function.Echo
	acknowledge *function.Acknowledger
	handler     *api.Handler
	router      http.Handler
	logger      *zap.Logger
	server      *http.Server
}

// New initializes both functions from the configured parameter sources.
// A missing TopicDisplayName is a startup failure.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	source, err := NewParameterSource(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithSource(cfg, source, logger)
}

// NewWithSource is New with an explicit parameter source.
func NewWithSource(cfg config.Config, source parameters.Reader, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	echo, err := function.NewEcho(source)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s function: %w", function.EchoName, err)
	}

	ack, err := function.NewAcknowledger(source, logger.Named(function.AcknowledgeName))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s function: %w", function.AcknowledgeName, err)
	}

	handler := api.NewHandler(echo, ack)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	logger.Info("functions initialized",
		zap.Strings("functions", function.Names()),
		zap.String("topic_display_name", echo.DisplayName()),
	)

	return &App{
		cfg:         cfg,
		echo:        echo,
		acknowledge: ack,
		handler:     handler,
		router:      router,
		logger:      logger,
		server:      NewServer(cfg, router),
	}, nil
}

// NewParameterSource builds the parameter chain: the parameters file when
// configured, then STR_* environment variables.
func NewParameterSource(cfg config.Config) (parameters.Reader, error) {
	env := parameters.NewEnvSource()
	if cfg.ParametersFile == "" {
		return env, nil
	}

	file, err := parameters.LoadFile(cfg.ParametersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load parameters file: %w", err)
	}
	return parameters.Chain(file, env), nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// StartLambda hands the configured function to the Lambda runtime.
func (a *App) StartLambda(ctx context.Context) error {
	a.logger.Info("starting lambda runtime", zap.String("function", a.cfg.Function))
	return lambdahost.Start(ctx, a.cfg.Function, a.Functions(), a.logger)
}

// Functions returns the initialized functions for hosting outside HTTP.
func (a *App) Functions() lambdahost.Functions {
	return lambdahost.Functions{
		Echo:        a.echo,
		Acknowledge: a.acknowledge,
	}
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
