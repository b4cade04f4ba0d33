// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/taxometer/backend/internal/integration/entrypoint/controller"
	"github.com/taxometer/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	shiftController     *controller.ShiftController
	dashboardController *controller.DashboardController
	writeRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
// A nil authMiddleware leaves the API open; a nil writeRateLimiter disables throttling.
func NewRouter(
	healthController *controller.HealthController,
	shiftController *controller.ShiftController,
	dashboardController *controller.DashboardController,
	writeRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		shiftController:     shiftController,
		dashboardController: dashboardController,
		writeRateLimiter:    writeRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.authMiddleware != nil {
		v1.Use(r.authMiddleware.Authenticate())
	}

	writes := r.writeMiddleware()

	shifts := v1.Group("/shifts")
	{
		shifts.GET("", r.shiftController.List)
		shifts.POST("", append(writes, r.shiftController.Create)...)
		shifts.POST("/preview", r.shiftController.Preview)
		shifts.GET("/:id", r.shiftController.Get)
		shifts.PUT("/:id", append(writes, r.shiftController.Update)...)
		shifts.DELETE("/:id", append(writes, r.shiftController.Delete)...)
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/summary", r.dashboardController.GetSummary)
		dashboard.GET("/chart", r.dashboardController.GetChart)
		dashboard.GET("/detail", r.dashboardController.GetDetail)
		dashboard.GET("/range", r.dashboardController.GetDataRange)
	}
}

// writeMiddleware returns the handlers placed in front of every mutating route.
func (r *Router) writeMiddleware() []gin.HandlerFunc {
	if r.writeRateLimiter == nil {
		return nil
	}
	return []gin.HandlerFunc{r.writeRateLimiter.Middleware()}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
