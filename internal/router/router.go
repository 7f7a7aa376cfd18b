package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/prescriptions-api/internal/middleware"
	"github.com/jwalitptl/prescriptions-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// RootHandler serves operational endpoints outside /api
type RootHandler interface {
	RegisterRoutes(gin.IRoutes)
}

type Router struct {
	engine        *gin.Engine
	userH         Handler
	prescriptionH Handler
	healthH       RootHandler
	metricsH      RootHandler
}

type RouterConfig struct {
	RateLimitEnabled bool
	RateLimit        middleware.RateLimiterConfig
	CORSConfig       middleware.CORSConfig
	MaxBodySize      int64
	Metrics          *metrics.Metrics
}

func NewRouter(
	userH Handler,
	prescriptionH Handler,
	healthH RootHandler,
	metricsH RootHandler,
	config RouterConfig,
) *Router {
	engine := gin.New()

	r := &Router{
		engine:        engine,
		userH:         userH,
		prescriptionH: prescriptionH,
		healthH:       healthH,
		metricsH:      metricsH,
	}

	// Request id first so every later middleware can log it
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)
	if config.Metrics != nil {
		engine.Use(middleware.Metrics(config.Metrics))
	}
	engine.Use(
		middleware.ErrorHandler(),
		middleware.SecurityHeaders(),
		middleware.CORS(config.CORSConfig),
	)

	if config.RateLimitEnabled {
		if config.RateLimit.Rate == 0 {
			config.RateLimit.Rate = rate.Inf
		}
		engine.Use(middleware.NewRateLimiter(config.RateLimit).RateLimit())
	}

	maxBody := config.MaxBodySize
	if maxBody <= 0 {
		maxBody = middleware.DefaultMaxBodySize
	}
	engine.Use(middleware.SizeLimit(maxBody))

	return r
}

func (r *Router) Setup() {
	if r.healthH != nil {
		r.healthH.RegisterRoutes(r.engine)
	}
	if r.metricsH != nil {
		r.metricsH.RegisterRoutes(r.engine)
	}

	api := r.engine.Group("/api")
	r.userH.RegisterRoutes(api)
	r.prescriptionH.RegisterRoutes(api)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
