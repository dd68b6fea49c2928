package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hbnb/rental-directory/internal/api/docs"
	"github.com/hbnb/rental-directory/internal/api/handler"
	"github.com/hbnb/rental-directory/internal/api/middleware"
	"github.com/hbnb/rental-directory/internal/core/ports"
)

const basePath = "/api/v1"

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Facade ports.Facade
	Logger zerolog.Logger

	// Idempotency enables Idempotency-Key handling on POST routes when set.
	Idempotency    ports.IdempotencyStore
	IdempotencyTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// HTTP metrics get a registry per router; /metrics merges it with the
	// default registry that holds the domain counters.
	reg := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "hbnb",
		Subsystem:  "http",
		Registerer: reg,
	}))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Facade, deps.Idempotency)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{reg, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API routes ---
	var create []echo.MiddlewareFunc
	if deps.Idempotency != nil {
		create = append(create, middleware.Idempotency(middleware.IdempotencyConfig{
			Store:  deps.Idempotency,
			TTL:    deps.IdempotencyTTL,
			Logger: deps.Logger,
		}))
	}

	v1 := e.Group(basePath)

	users := handler.NewUserHandler(deps.Facade)
	v1.POST("/users", users.Create, create...)
	v1.GET("/users", users.List)
	v1.GET("/users/:id", users.Get)
	v1.PUT("/users/:id", users.Update)

	amenities := handler.NewAmenityHandler(deps.Facade)
	v1.POST("/amenities", amenities.Create, create...)
	v1.GET("/amenities", amenities.List)
	v1.GET("/amenities/:id", amenities.Get)
	v1.PUT("/amenities/:id", amenities.Update)

	places := handler.NewPlaceHandler(deps.Facade)
	reviews := handler.NewReviewHandler(deps.Facade)
	v1.POST("/places", places.Create, create...)
	v1.GET("/places", places.List)
	v1.GET("/places/:id", places.Get)
	v1.PUT("/places/:id", places.Update)
	v1.GET("/places/:id/reviews", reviews.ListByPlace)

	v1.POST("/reviews", reviews.Create, create...)
	v1.GET("/reviews", reviews.List)
	v1.GET("/reviews/:id", reviews.Get)
	v1.PUT("/reviews/:id", reviews.Update)
	v1.DELETE("/reviews/:id", reviews.Delete)

	return e
}
