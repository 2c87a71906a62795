// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/emitgrid/internal/builder"
	"github.com/vk/emitgrid/internal/config"
	"github.com/vk/emitgrid/internal/ctxlog"
	"github.com/vk/emitgrid/internal/emitter"
	"github.com/vk/emitgrid/internal/handlers"
	"github.com/vk/emitgrid/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	ctx      context.Context
	logger   *slog.Logger
	config   *Config
	handlers *handlers.Handlers
	model    *config.Model
	debug    *DebugFlag

	// catalogs holds one lazily built catalog per debug context.
	catalogs map[bool]func() (*emitter.Catalog, error)

	httpServer *http.Server
}

// New loads the configuration and registers the modules. With no modules the
// built-in ones are used. Catalogs are built on first use, see Catalog.
func New(ctx context.Context, outW io.Writer, appConfig *Config, loader config.Loader, modules ...handlers.Module) (*App, error) {
	logger := NewLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	h := handlers.New()
	if len(modules) == 0 {
		modules = CoreModules()
	}
	for _, mod := range modules {
		mod.Register(h)
	}
	logger.Debug("All Go modules registered.", "count", len(modules), "handlers", h.Len())

	a := &App{
		outW:     outW,
		ctx:      ctx,
		logger:   logger,
		config:   appConfig,
		handlers: h,
		model:    model,
		debug:    NewDebugFlag(appConfig.Debug),
	}
	a.catalogs = map[bool]func() (*emitter.Catalog, error){
		true:  Once(func() (*emitter.Catalog, error) { return a.build(true) }),
		false: Once(func() (*emitter.Catalog, error) { return a.build(false) }),
	}
	return a, nil
}

func (a *App) build(isDebug bool) (*emitter.Catalog, error) {
	catalog, err := builder.Build(a.ctx, a.model, a.handlers, isDebug)
	if err != nil {
		return nil, fmt.Errorf("failed to build emitter catalog: %w", err)
	}
	return catalog, nil
}

// Catalog returns the catalog for the current debug context, building it on
// first use. Concurrent first callers share one build.
func (a *App) Catalog() (*emitter.Catalog, error) {
	return a.CatalogFor(a.debug.IsDebug())
}

// CatalogFor returns the catalog for an explicit debug context.
func (a *App) CatalogFor(isDebug bool) (*emitter.Catalog, error) {
	return a.catalogs[isDebug]()
}

// NewRegistry returns an uninitialised registry over the current catalog,
// logging through the app's logger.
func (a *App) NewRegistry(ctx context.Context) (*registry.Registry, error) {
	catalog, err := a.Catalog()
	if err != nil {
		return nil, err
	}
	return registry.New(ctxlog.WithLogger(ctx, a.logger), catalog), nil
}

// Debug exposes the debug flag so callers can invalidate it.
func (a *App) Debug() *DebugFlag { return a.debug }

// Handlers returns the registered stage factories.
func (a *App) Handlers() *handlers.Handlers { return a.handlers }

// Model returns the loaded configuration model.
func (a *App) Model() *config.Model { return a.model }

// Logger returns the app's logger.
func (a *App) Logger() *slog.Logger { return a.logger }
