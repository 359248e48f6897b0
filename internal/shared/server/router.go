// Package server assembles the HTTP router and its middleware chain.
package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/feedback"
	"screening-backend/internal/profiles"
	"screening-backend/internal/screenings"
	"screening-backend/internal/shared/config"
	"screening-backend/internal/shared/metrics"
	"screening-backend/internal/shared/server/middleware"
	"screening-backend/internal/shared/server/respond"
)

// RouterDeps carries everything the router mounts.
type RouterDeps struct {
	Cfg       config.Config
	Profiles  *profiles.Handler
	Screening *screenings.Handler
	Feedback  *feedback.Handler

	// Backends reports which extraction backend is bound per format,
	// surfaced on the health endpoint.
	Backends map[string]string
}

// NewRouter builds the gin engine with the standard middleware chain
// and all API routes mounted under /api/v1.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(deps.Cfg.CORSAllowOrigin))

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"status":   "ok",
			"env":      deps.Cfg.Env,
			"backends": deps.Backends,
		})
	})

	deps.Profiles.RegisterRoutes(api)
	deps.Screening.RegisterRoutes(api)

	limiter := middleware.NewRateLimiter(time.Now)
	sendLimit := middleware.RateLimit(limiter, middleware.RateLimitRule{
		Rate:  deps.Cfg.SendRatePerMin / 60,
		Burst: deps.Cfg.SendBurst,
	})
	deps.Feedback.RegisterRoutes(api, sendLimit)

	return r
}

// Addr formats a listen address for the given port.
func Addr(port string) string {
	return ":" + port
}
