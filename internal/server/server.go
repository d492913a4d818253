package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Amin-Golden/GymWeb/internal/admin"
	"github.com/Amin-Golden/GymWeb/internal/api"
	"github.com/Amin-Golden/GymWeb/internal/auth"
	"github.com/Amin-Golden/GymWeb/internal/client"
	"github.com/Amin-Golden/GymWeb/internal/config"
	"github.com/Amin-Golden/GymWeb/internal/dashboard"
	"github.com/Amin-Golden/GymWeb/internal/instructor"
	"github.com/Amin-Golden/GymWeb/internal/membership"
	"github.com/Amin-Golden/GymWeb/internal/packages"
	"github.com/Amin-Golden/GymWeb/internal/payment"
	"github.com/Amin-Golden/GymWeb/internal/training"
	"github.com/Amin-Golden/GymWeb/internal/visit"

	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Admin       *admin.Handler
	Clients     *client.Handler
	Packages    *packages.Handler
	Instructors *instructor.Handler
	Memberships *membership.Handler
	Payments    *payment.Handler
	Training    *training.Handler
	Visits      *visit.Handler
	Dashboard   *dashboard.Handler
}

type Server struct {
	router *gin.Engine
	http   *http.Server
}

func New(cfg *config.Config, h Handlers) *Server {
	api.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	router.NoRoute(func(c *gin.Context) {
		api.Error(c, http.StatusNotFound, "Route not found")
	})

	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	root := router.Group("/api")
	root.GET("/health", Health)

	public := root.Group("/auth")
	{
		public.POST("/login", RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst), h.Admin.Login)
		public.POST("/refresh", h.Admin.Refresh)
	}

	protected := root.Group("/")
	protected.Use(auth.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/auth/me", h.Admin.Me)

		protected.GET("/clients", h.Clients.List)
		protected.GET("/clients/:id", h.Clients.Get)
		protected.POST("/clients", h.Clients.Create)
		protected.PUT("/clients/:id", h.Clients.Update)
		protected.DELETE("/clients/:id", h.Clients.Delete)
		protected.PUT("/clients/:id/exit", h.Visits.ExitClient)

		protected.GET("/packages", h.Packages.List)
		protected.GET("/packages/:id", h.Packages.Get)
		protected.POST("/packages", h.Packages.Create)
		protected.PUT("/packages/:id", h.Packages.Update)
		protected.DELETE("/packages/:id", h.Packages.Delete)

		protected.GET("/instructors", h.Instructors.List)
		protected.GET("/instructors/:id", h.Instructors.Get)
		protected.POST("/instructors", h.Instructors.Create)
		protected.PUT("/instructors/:id", h.Instructors.Update)
		protected.DELETE("/instructors/:id", h.Instructors.Delete)

		protected.GET("/memberships", h.Memberships.List)
		protected.GET("/memberships/:id", h.Memberships.Get)
		protected.POST("/memberships", h.Memberships.Create)
		protected.PUT("/memberships/:id", h.Memberships.Update)
		protected.DELETE("/memberships/:id", h.Memberships.Delete)

		protected.GET("/payments", h.Payments.List)
		protected.GET("/payments/:id", h.Payments.Get)
		protected.POST("/payments", h.Payments.Create)
		protected.PUT("/payments/:id", h.Payments.Update)
		protected.DELETE("/payments/:id", h.Payments.Delete)

		protected.GET("/sessions", h.Training.List)
		protected.GET("/sessions/:id", h.Training.Get)
		protected.POST("/sessions", h.Training.Create)
		protected.PUT("/sessions/:id", h.Training.Update)
		protected.DELETE("/sessions/:id", h.Training.Delete)

		protected.GET("/gym-sessions", h.Visits.List)
		protected.GET("/gym-sessions/:id", h.Visits.Get)
		protected.POST("/gym-sessions", h.Visits.Enter)
		protected.PUT("/gym-sessions/:id/exit", h.Visits.Exit)

		protected.GET("/dashboard/stats", h.Dashboard.Stats)
		protected.GET("/dashboard/recent-activity", h.Dashboard.RecentActivity)
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks until the server stops. It returns http.ErrServerClosed after
// Shutdown.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", requestIDHeader)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
