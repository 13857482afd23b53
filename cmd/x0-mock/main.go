// Command x0-mock serves an in-memory x0 API for local development and tests.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Payback159/x0go/internal/handlers"
	"github.com/Payback159/x0go/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func newConfig(configPath string) (*models.Config, error) {
	if configPath == "" {
		return models.DefaultConfig(), nil
	}
	return models.LoadConfig(configPath)
}

// setupLogging applies the configured level to the echo logger and installs
// the slog handler used by the request handlers.
func setupLogging(cfg *models.Config) {
	var slogLevel slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		log.SetLevel(log.DEBUG)
		slogLevel = slog.LevelDebug
	case "WARN":
		log.SetLevel(log.WARN)
		slogLevel = slog.LevelWarn
	case "ERROR":
		log.SetLevel(log.ERROR)
		slogLevel = slog.LevelError
	default:
		log.SetLevel(log.INFO)
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: slogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// shutdown stops e, waiting at most timeout for in-flight requests.
func shutdown(e *echo.Echo, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return e.Shutdown(ctx)
}

func main() {
	configPath := flag.String("config", "", "(optional) path to the mock server configuration file")
	listen := flag.String("listen", "", "(optional) listen address, overrides the configuration file")
	flag.Parse()

	cfg, err := newConfig(*configPath)
	if err != nil {
		log.Fatalf("Error reading config file: %s", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	setupLogging(cfg)

	c, err := handlers.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Container for the handler could not be initialized: %s", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = false

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	c.Register(e)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Shutdown signal received, shutting down server...")
		if err := shutdown(e, 5*time.Second); err != nil {
			log.Errorf("Graceful shutdown failed: %v", err)
		}
	}()

	log.Infof("Serving x0 API version %s", cfg.Version)
	if err := e.Start(cfg.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
