package main

import (
	"fmt"
	"os"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"fragment-cache/internal/cache/engine"
	"fragment-cache/internal/cache/store"
	"fragment-cache/internal/config"
	"fragment-cache/internal/httpserver"
	"fragment-cache/internal/interfaces"
	"fragment-cache/internal/regions"
)

// CompositionRoot holds all application dependencies and provides a
// centralized place for dependency injection and service initialization.
type CompositionRoot struct {
	// Configuration
	Config   *config.Config
	Logger   *zap.Logger
	Registry *regions.Registry

	// Cache components
	Store  *store.Store
	Engine *engine.Engine

	// Services
	Renderer   interfaces.Renderer
	HTTPServer *httpserver.Server
}

// NewCompositionRoot creates and initializes all application dependencies.
//
// Initialization order:
// 1. Logger (needed by all other components)
// 2. Configuration (store budget, server addresses, timeouts)
// 3. Region configuration (vary-by and expiration rules, validated here)
// 4. Store and engine
// 5. Origin renderer and HTTP server
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{}

	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := root.loadRegions(); err != nil {
		return nil, fmt.Errorf("failed to load region configuration: %w", err)
	}

	root.initCacheComponents()
	root.initServices()

	return root, nil
}

// initLogger initializes the application logger
func (r *CompositionRoot) initLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	r.Logger = logger
	return nil
}

// loadConfig loads the application configuration
func (r *CompositionRoot) loadConfig() error {
	configPath := os.Getenv("FRAGMENT_CACHE_CONFIG_FILE")
	if configPath == "" {
		configPath = "/app/fragment_cache.yaml"
	}

	cfg, err := config.LoadConfig(configPath, r.Logger)
	if err != nil {
		return err
	}

	r.Config = cfg
	return nil
}

// loadRegions loads and validates cached-region declarations. Invalid
// configuration fails startup; nothing is re-validated at render time.
func (r *CompositionRoot) loadRegions() error {
	regionsPath := os.Getenv("FRAGMENT_CACHE_REGIONS_FILE")
	if regionsPath == "" {
		regionsPath = "/app/regions.yaml"
	}

	registry, err := regions.LoadRegionsConfig(regionsPath, r.Logger)
	if err != nil {
		return err
	}

	r.Registry = registry
	return nil
}

// initCacheComponents initializes the store and the cache engine
func (r *CompositionRoot) initCacheComponents() {
	r.Store = store.New(r.Config.Store.BudgetBytes, clock.New(), r.Logger)
	r.Logger.Info("Fragment store initialized", zap.Int64("budget_bytes", r.Config.Store.BudgetBytes))

	r.Engine = engine.New(
		r.Store,
		r.Config.Engine.DefaultFreshFor.Std(),
		r.Config.Store.SweepInterval.Std(),
		r.Logger,
	)
}

// initServices initializes the origin renderer and the HTTP server
func (r *CompositionRoot) initServices() {
	r.Renderer = NewOriginRenderer(r.Config.Server.OriginTimeout.Std(), r.Logger)
	r.HTTPServer = httpserver.NewServer(r.Engine, r.Registry, r.Renderer, r.Logger)
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	if r.Engine != nil {
		r.Engine.Close()
	}

	if r.Logger != nil {
		if err := r.Logger.Sync(); err != nil {
			return fmt.Errorf("failed to sync logger: %w", err)
		}
	}

	return nil
}
