package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"github.com/medicore/hospital-api/internal/handler"
	appointmentHandler "github.com/medicore/hospital-api/internal/handler/appointment"
	authHandler "github.com/medicore/hospital-api/internal/handler/auth"
	contactHandler "github.com/medicore/hospital-api/internal/handler/contact"
	directoryHandler "github.com/medicore/hospital-api/internal/handler/directory"
	"github.com/medicore/hospital-api/internal/middleware"
)

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	Timeout       time.Duration
	CORSConfig    middleware.CORSConfig
	MetricsPrefix string
}

func DefaultConfig() Config {
	return Config{
		RateLimit:     100,
		RateBurst:     200,
		Timeout:       30 * time.Second,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "hospital_api",
	}
}

type Router struct {
	engine       *gin.Engine
	auth         *middleware.AuthMiddleware
	appointmentH *appointmentHandler.Handler
	directoryH   *directoryHandler.Handler
	contactH     *contactHandler.Handler
	authH        *authHandler.Handler
	h            *handler.Handler
	metrics      *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func initRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: prefix,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"method", "path"}),
		requestTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: prefix,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		errorTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: prefix,
			Name:      "http_errors_total",
			Help:      "Total number of HTTP error responses",
		}, []string{"method", "path", "status"}),
	}
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	appointmentH *appointmentHandler.Handler,
	directoryH *directoryHandler.Handler,
	contactH *contactHandler.Handler,
	authH *authHandler.Handler,
	h *handler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:       engine,
		auth:         auth,
		appointmentH: appointmentH,
		directoryH:   directoryH,
		contactH:     contactH,
		authH:        authH,
		h:            h,
		metrics:      initRouterMetrics(config.MetricsPrefix),
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.Timeout}),
	)

	engine.Use(middleware.CORS(config.CORSConfig))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		r.metrics.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		r.metrics.requestTotal.WithLabelValues(method, path, status).Inc()
		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(method, path, status).Inc()
		}
	}
}

// Setup registers all routes. The public site, booking clients and admin
// dashboard all share this surface; admin-only routes are guarded inside
// each handler's RegisterRoutes.
func (r *Router) Setup() {
	r.engine.GET("/health", r.h.HealthCheck)
	r.engine.GET("/metrics", r.h.MetricsHandler)

	root := r.engine.Group("")
	r.authH.RegisterRoutes(root)
	r.directoryH.RegisterRoutes(root, r.auth)
	r.appointmentH.RegisterRoutes(root, r.auth)
	r.contactH.RegisterRoutes(root, r.auth)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
