package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/gameplayers/internal/config"
	"github.com/mcoot/gameplayers/internal/dependencies/clock"
	"github.com/mcoot/gameplayers/internal/metrics"
	"github.com/mcoot/gameplayers/internal/services/player"
	"github.com/mcoot/gameplayers/internal/storage"
	"github.com/mcoot/gameplayers/internal/storage/memory"
	redisstorage "github.com/mcoot/gameplayers/internal/storage/redis"
	sqlitestorage "github.com/mcoot/gameplayers/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageMemory
	StorageTypeRedis  = config.StorageRedis
	StorageTypeSQLite = config.StorageSQLite
)

// App contains all wired application components
type App struct {
	// Storage
	Store       storage.PlayerStore
	StorageType string

	// External dependencies
	Clock clock.Clock

	// Metrics is nil when disabled
	Metrics *metrics.Recorder

	// Services
	PlayerService *player.Service

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// MetricsEnabled creates a Prometheus recorder for the services and router
	MetricsEnabled bool
}

// ConfigFrom maps environment configuration onto a factory Config
func ConfigFrom(cfg *config.Config, logger *slog.Logger) Config {
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = cfg.RedisURL
	redisCfg.PoolSize = cfg.RedisPoolSize

	return Config{
		Logger:         logger,
		StorageType:    cfg.StorageType,
		RedisConfig:    &redisCfg,
		SQLitePath:     cfg.SQLitePath,
		MetricsEnabled: cfg.MetricsEnabled,
	}
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var (
		store  storage.PlayerStore
		closer io.Closer
	)
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store, closer = redisStore, redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.Open(cfg.SQLitePath, clk)
		if err != nil {
			return nil, err
		}
		store, closer = sqliteStore, sqliteStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
	}

	logger.Info("storage initialised", slog.String("type", storageType))

	app := newWithDependencies(store, clk, recorder, logger)
	app.StorageType = storageType
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.PlayerStore, clk clock.Clock, recorder *metrics.Recorder, logger *slog.Logger) *App {
	return &App{
		Store:         store,
		StorageType:   StorageTypeMemory,
		Clock:         clk,
		Metrics:       recorder,
		PlayerService: player.NewService(store, logger, recorder),
	}
}

// Close releases the storage backend's connections
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
