package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andreyxaxa/GreenPass-Analyzer/config"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/controller/restapi"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/infrastructure/barcode"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/infrastructure/metrics"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/usecase/greenpass"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/httpserver"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/logger"
)

func Run(cfg *config.Config) {
	// Logger
	l := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer l.Sync() //nolint:errcheck // stdout sync fails on some terminals

	// Metrics
	m := metrics.New()

	// Use-Case
	greenPassUseCase := greenpass.New(barcode.New())

	// HTTP Server
	httpServer := httpserver.New(l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.BodyLimit(cfg.HTTP.BodyLimit),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		httpserver.ErrorHandler(restapi.NewErrorHandler(l)),
	)
	restapi.NewRouter(httpServer.App, cfg, greenPassUseCase, m, l)

	// Start Components
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	var err error

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
