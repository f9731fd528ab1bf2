package router

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/middleware"
	"github.com/clinicdesk/clinic-api/pkg/metrics"
)

// Handler mounts a group of routes on a router group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	Mode         string
	UploadDir    string
	StaticDir    string // public assets (default doctor image)
	FrontendDist string // built SPA; served when present
}

type Router struct {
	engine     *gin.Engine
	auth       *middleware.AuthMiddleware
	authH      Handler
	doctorH    Handler
	patientH   Handler
	treatmentH Handler
	healthH    *handler.HealthHandler
	metrics    *metrics.Metrics
	cfg        Config
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH Handler,
	doctorH Handler,
	patientH Handler,
	treatmentH Handler,
	healthH *handler.HealthHandler,
	m *metrics.Metrics,
	cfg Config,
) *Router {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()

	r := &Router{
		engine:     engine,
		auth:       auth,
		authH:      authH,
		doctorH:    doctorH,
		patientH:   patientH,
		treatmentH: treatmentH,
		healthH:    healthH,
		metrics:    m,
		cfg:        cfg,
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.SizeLimit(middleware.DefaultSizeLimitConfig()),
	)

	engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderXRequestID},
		MaxAge:        12 * time.Hour,
	}))

	return r
}

// Setup registers all routes. Signup and login stay public; everything under
// /api requires a valid bearer token.
func (r *Router) Setup() {
	r.engine.GET("/healthz", r.healthH.Liveness)
	r.engine.GET("/readyz", r.healthH.Readiness)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.engine.Group("")
	r.authH.RegisterRoutes(public)

	api := r.engine.Group("/api")
	api.Use(r.auth.Authenticate())
	r.patientH.RegisterRoutes(api)
	r.treatmentH.RegisterRoutes(api)
	r.doctorH.RegisterRoutes(api)

	r.setupStatic()
}

// setupStatic serves uploaded images, public assets and, when a build
// exists, the SPA with a history-mode fallback.
func (r *Router) setupStatic() {
	r.engine.Static("/uploads", r.cfg.UploadDir)
	if r.cfg.StaticDir != "" {
		r.engine.Static("/assets", filepath.Join(r.cfg.StaticDir, "assets"))
	}

	dist := r.cfg.FrontendDist
	if dist == "" {
		return
	}
	index := filepath.Join(dist, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}

	r.engine.StaticFile("/", index)
	r.engine.Static("/static", filepath.Join(dist, "static"))
	r.engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.File(index)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		if c.Writer.Status() >= 400 {
			r.metrics.ErrorTotal.WithLabelValues(c.Request.Method, path).Inc()
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
