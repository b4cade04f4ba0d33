// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/taxometer/backend/config"
	"github.com/taxometer/backend/internal/application/adapter"
	"github.com/taxometer/backend/internal/infra/dependency"
	"github.com/taxometer/backend/internal/infra/storage"
	"github.com/taxometer/backend/internal/integration/persistence"
	"github.com/taxometer/backend/internal/integration/persistence/model"
	"github.com/taxometer/backend/test/integration/mock"
)

// defaultToday is the clock reading every scenario starts from.
var defaultToday = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string
	accessToken    string

	// Application
	cfg      *config.Config
	clock    *mock.Time
	backend  storage.Backend
	kv       adapter.KeyValueStore
	injector *dependency.Injector

	// Last shift created through the API, substituted for {id} in paths
	lastShiftID string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// testConfig returns the configuration every scenario starts from.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Storage: config.StorageConfig{
			Backend:     string(storage.BackendCloud),
			Key:         "taxiShifts",
			SaveTimeout: 2 * time.Second,
		},
		JWT: config.JWTConfig{
			Issuer:   "taxometer",
			TokenTTL: time.Hour,
		},
		Chart: config.ChartConfig{
			Days:   7,
			Weeks:  4,
			Months: 6,
		},
		Calendar: config.CalendarConfig{Timezone: "UTC"},
	}
}

// useBackend points the scenario at a clean key/value backend.
func (tc *TestContext) useBackend(backend storage.Backend) error {
	if tc.server != nil {
		return fmt.Errorf("storage backend must be chosen before the API server starts")
	}

	switch backend {
	case storage.BackendCloud:
		client := mock.NewRedis()
		if err := mock.ClearRedis(client); err != nil {
			return fmt.Errorf("failed to clear redis: %w", err)
		}
		tc.kv = persistence.NewRedisKeyValueStore(client)
	case storage.BackendLocal:
		database := mock.NewDb(map[string]any{
			"key_values": &model.KeyValueModel{},
		})
		if err := database.ClearDB(); err != nil {
			return err
		}
		tc.kv = persistence.NewSQLKeyValueStore(database.DbConn)
	default:
		return fmt.Errorf("unsupported storage backend %q", backend)
	}

	tc.backend = backend
	tc.cfg.Storage.Backend = string(backend)
	return nil
}

// ensureServer builds the application over the scenario's backend and
// starts serving it, unless that already happened.
func (tc *TestContext) ensureServer(ctx context.Context) error {
	if tc.server != nil {
		return nil
	}

	kv := tc.kv
	tc.injector = dependency.NewInjector(tc.cfg, dependency.Storage{
		Store:   kv,
		Backend: string(tc.backend),
		HealthCheck: func() bool {
			pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return kv.Ping(pingCtx) == nil
		},
	}, tc.clock.Now)

	tc.injector.Store.Load(ctx)
	tc.server = httptest.NewServer(tc.injector.Router.Setup("test"))
	return nil
}

// stopServer saves pending changes and shuts the test server down.
func (tc *TestContext) stopServer() {
	if tc.server == nil {
		return
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), tc.cfg.Storage.SaveTimeout)
	defer cancel()
	_ = tc.injector.Store.Flush(flushCtx)

	tc.server.Close()
	tc.server = nil
	tc.injector = nil
}
