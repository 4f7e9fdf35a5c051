package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/flashkit/internal/ctxlog"
	"github.com/vk/flashkit/internal/hcl"
	"github.com/vk/flashkit/internal/model"
	"github.com/vk/flashkit/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	params   *model.ParameterBlock
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All correlation modules registered.", "count", len(modules))

	loader := hcl.NewLoader(reg)
	pb, err := loader.Load(ctx, cfg.PackagePath)
	if err != nil {
		// A failure to load the property package is a fatal startup error.
		panic(fmt.Errorf("failed to load property package: %w", err))
	}
	logger.Debug("Property package loaded.", "name", pb.BlockName())

	// Validate the parity between the loaded package and the registry.
	if err := reg.Validate(ctx, pb); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		params:   pb,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Params returns the loaded parameter block. This is primarily for testing.
func (a *App) Params() *model.ParameterBlock {
	return a.params
}
