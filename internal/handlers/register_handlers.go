package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
	"github.com/ngofin/ledgersync/internal/middleware"
	"github.com/ngofin/ledgersync/internal/platform/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces. The whole surface is read-only: journal entries are
// immutable and fund balances are owned by the synchronizer.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	services *portssvc.ServiceContainer,
) error {
	RegisterValidations()

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return err
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Health check route
	r.GET("/health", healthCheck(dbPool))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	RegisterJournalEntryRoutes(v1, services.Reader)
	registerFundSourceRoutes(v1, services.Reader)
	registerExpenseRoutes(v1, services.Reader)

	return nil
}

// healthCheck reports whether the store is reachable.
func healthCheck(dbPool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
