// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/taxometer/backend/config"
	"github.com/taxometer/backend/internal/application/adapter"
	"github.com/taxometer/backend/internal/application/store"
	"github.com/taxometer/backend/internal/application/usecase/dashboard"
	"github.com/taxometer/backend/internal/application/usecase/shift"
	"github.com/taxometer/backend/internal/infra/server/router"
	"github.com/taxometer/backend/internal/integration/adapters"
	"github.com/taxometer/backend/internal/integration/entrypoint/controller"
	"github.com/taxometer/backend/internal/integration/entrypoint/middleware"
	"github.com/taxometer/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	Location     *time.Location
	Store        *store.ShiftStore
	TokenService adapter.TokenService
	RateLimiter  *middleware.RateLimiter
	Router       *router.Router

	GetPeriodSummary *dashboard.GetPeriodSummaryUseCase
	GetChartSeries   *dashboard.GetChartSeriesUseCase
	ListShifts       *shift.ListShiftsUseCase
}

// Storage is the selected key/value backend the injector builds on.
type Storage struct {
	Store       adapter.KeyValueStore
	Backend     string
	HealthCheck func() bool
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil clock uses the wall clock in the configured timezone.
func NewInjector(cfg *config.Config, storage Storage, clock dashboard.Clock) *Injector {
	loc := cfg.Calendar.Location()
	if clock == nil {
		clock = func() time.Time { return time.Now().In(loc) }
	}

	// Create the shift collection owner
	gateway := persistence.NewShiftGateway(storage.Store, loc)
	shiftStore := store.NewShiftStore(gateway, store.Config{
		Key:          cfg.Storage.Key,
		FlushTimeout: cfg.Storage.SaveTimeout,
	})

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Create shift use cases
	listShiftsUseCase := shift.NewListShiftsUseCase(shiftStore)
	createShiftUseCase := shift.NewCreateShiftUseCase(shiftStore)
	getShiftUseCase := shift.NewGetShiftUseCase(shiftStore)
	updateShiftUseCase := shift.NewUpdateShiftUseCase(shiftStore)
	deleteShiftUseCase := shift.NewDeleteShiftUseCase(shiftStore)
	previewShiftUseCase := shift.NewPreviewShiftUseCase()

	// Create dashboard use cases
	lengths := dashboard.SeriesLengths{
		Days:   cfg.Chart.Days,
		Weeks:  cfg.Chart.Weeks,
		Months: cfg.Chart.Months,
	}
	summaryUseCase := dashboard.NewGetPeriodSummaryUseCase(shiftStore, clock)
	chartUseCase := dashboard.NewGetChartSeriesUseCase(shiftStore, clock, lengths)
	detailUseCase := dashboard.NewGetPeriodDetailUseCase(shiftStore, clock)
	rangeUseCase := dashboard.NewGetDataRangeUseCase(shiftStore)

	// Create controllers
	healthController := controller.NewHealthController(storage.Backend, storage.HealthCheck, shiftStore.IsLoaded)

	shiftController := controller.NewShiftController(
		listShiftsUseCase,
		createShiftUseCase,
		getShiftUseCase,
		updateShiftUseCase,
		deleteShiftUseCase,
		previewShiftUseCase,
		loc,
	)

	dashboardController := controller.NewDashboardController(
		summaryUseCase,
		chartUseCase,
		detailUseCase,
		rangeUseCase,
		loc,
	)

	// Create middleware
	var writeRateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}

	var authMiddleware *middleware.AuthMiddleware
	if cfg.JWT.AuthEnabled() {
		authMiddleware = middleware.NewAuthMiddleware(tokenService)
	}

	// Create router
	r := router.NewRouter(healthController, shiftController, dashboardController, writeRateLimiter, authMiddleware)

	return &Injector{
		Config:           cfg,
		Location:         loc,
		Store:            shiftStore,
		TokenService:     tokenService,
		RateLimiter:      writeRateLimiter,
		Router:           r,
		GetPeriodSummary: summaryUseCase,
		GetChartSeries:   chartUseCase,
		ListShifts:       listShiftsUseCase,
	}
}
