package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/pingufin/fxdesk/internal/core/services"
	"github.com/pingufin/fxdesk/internal/middleware"
	"github.com/pingufin/fxdesk/internal/platform/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// ErrorResponse is the generic error payload returned by handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies via the
// service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svcs *services.Container) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, svcs)
	setupAPIV1Routes(r, cfg, svcs)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// entity-specific route registrations. Every route requires a valid token and
// a still-existing user; admin-only routes add the role gate per group.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, svcs *services.Container) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.CurrentUserMiddleware(svcs.User),
	)

	registerConversionRoutes(v1, svcs.RateVersion, svcs.Conversion)
	registerRateVersionRoutes(v1, svcs.RateVersion)
	registerTransactionRoutes(v1, svcs.Transaction)
	registerUserRoutes(v1, svcs.User)
}

// newLoginLimiter builds the in-memory IP limiter applied to the login route.
func newLoginLimiter(cfg *config.Config) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		// Fall back to the default rather than refusing to boot.
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	return limiter.New(memory.NewStore(), rate)
}
