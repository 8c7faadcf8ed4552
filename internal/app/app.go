package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/namereg/internal/config"
	"github.com/vk/namereg/internal/ctxlog"
	"github.com/vk/namereg/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry, and
// the loaded manifest model. A failure to load manifests is a fatal startup
// error and panics; the entrypoint recovers it into an exit code.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load alias manifests: %w", err))
	}
	logger.Debug("Manifests loaded and translated into unified model.")

	reg := registry.New(
		registry.WithOverride(!appConfig.Strict),
		registry.WithLogger(logger),
	)

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		config:   appConfig,
	}
}

// Registry returns the application's registry. This is primarily for
// testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
