// Package storage selects the key/value backend the shift collection is stored in.
package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/taxometer/backend/config"
	"github.com/taxometer/backend/internal/application/adapter"
	domainerror "github.com/taxometer/backend/internal/domain/error"
	"github.com/taxometer/backend/internal/infra/cache"
	"github.com/taxometer/backend/internal/infra/db"
	"github.com/taxometer/backend/internal/integration/persistence"
)

// Backend names a storage backend.
type Backend string

const (
	// BackendAuto uses the cloud backend when it answers and the local one otherwise.
	BackendAuto Backend = "auto"
	// BackendCloud stores the collection in Redis.
	BackendCloud Backend = "cloud"
	// BackendLocal stores the collection in an embedded SQLite file.
	BackendLocal Backend = "local"
	// BackendPostgres stores the collection in PostgreSQL.
	BackendPostgres Backend = "postgres"
)

// Selection is the opened backend. Close releases its connection.
type Selection struct {
	Store   adapter.KeyValueStore
	Backend Backend
	closer  func() error
}

// Close releases the connection held by the selected backend.
func (s *Selection) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// HealthCheck pings the selected backend.
func (s *Selection) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		slog.Error("Storage health check failed", "backend", s.Backend, "error", err)
		return false
	}
	return true
}

// Select opens the backend named by cfg.Storage.Backend.
func Select(ctx context.Context, cfg *config.Config) (*Selection, error) {
	switch Backend(cfg.Storage.Backend) {
	case BackendCloud:
		return openCloud(ctx, &cfg.Redis)
	case BackendLocal:
		return openLocal(cfg.Storage.SQLitePath)
	case BackendPostgres:
		return openPostgres(&cfg.Database)
	case BackendAuto, "":
		selection, err := openCloud(ctx, &cfg.Redis)
		if err == nil {
			return selection, nil
		}
		slog.Warn("Cloud storage unavailable, falling back to local storage",
			"error", err,
			"path", cfg.Storage.SQLitePath,
		)
		return openLocal(cfg.Storage.SQLitePath)
	default:
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeUnknownBackend,
			"storage backend must be: auto, cloud, local, or postgres",
			domainerror.ErrUnknownBackend,
		)
	}
}

func openCloud(ctx context.Context, cfg *config.RedisConfig) (*Selection, error) {
	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		if client != nil {
			_ = client.Close()
		}
		return nil, unavailable(BackendCloud, err)
	}

	return &Selection{
		Store:   persistence.NewRedisKeyValueStore(client),
		Backend: BackendCloud,
		closer:  client.Close,
	}, nil
}

func openLocal(path string) (*Selection, error) {
	database, err := db.NewSQLiteConnection(path)
	if err != nil {
		return nil, unavailable(BackendLocal, err)
	}
	return sqlSelection(database, BackendLocal)
}

func openPostgres(cfg *config.DatabaseConfig) (*Selection, error) {
	database, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, unavailable(BackendPostgres, err)
	}
	return sqlSelection(database, BackendPostgres)
}

func sqlSelection(database *db.Database, backend Backend) (*Selection, error) {
	if err := persistence.MigrateKeyValues(database.DB()); err != nil {
		_ = database.Close()
		return nil, unavailable(backend, err)
	}

	return &Selection{
		Store:   persistence.NewSQLKeyValueStore(database.DB()),
		Backend: backend,
		closer:  database.Close,
	}, nil
}

func unavailable(backend Backend, err error) error {
	return domainerror.NewStorageError(
		domainerror.ErrCodeBackendUnavailable,
		"storage backend "+string(backend)+" is unavailable",
		err,
	)
}
