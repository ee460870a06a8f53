package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/brpaz/echozap"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echomiddleware "github.com/oapi-codegen/echo-middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/carewell-org/hospital/appointments"
	"github.com/carewell-org/hospital/config"
	"github.com/carewell-org/hospital/doctors"
	"github.com/carewell-org/hospital/errors"
	"github.com/carewell-org/hospital/logger"
	"github.com/carewell-org/hospital/metrics"
	"github.com/carewell-org/hospital/patients"
	"github.com/carewell-org/hospital/stats"
	"github.com/carewell-org/hospital/store"
)

func Start(e *echo.Echo, cfg *config.Config, log *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	address := fmt.Sprintf(":%d", cfg.HttpPort)
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(address); err != nil {
					log.Infow("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, cfg *config.Config, log *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	// Do not validate servers in the open api spec
	swagger.Servers = nil

	// Skip validation, logging and metrics for readiness probe and metrics routes
	skipper := RouteSkipper([]string{"/ready", "/metrics"})
	requestValidator := echomiddleware.OapiRequestValidatorWithOptions(swagger, &echomiddleware.Options{
		Options: openapi3filter.Options{},
		Skipper: skipper,
	})

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.CorsOrigins, ","),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echozap.ZapLogger(log))
	e.Use(requestMetrics(skipper))
	e.Use(requestValidator)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	RegisterHandlers(e, handler)

	return e, nil
}

func requestMetrics(skipper middleware.Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			err := next(c)
			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				var echoErr *echo.HTTPError
				if stderrors.As(err, &echoErr) {
					status = echoErr.Code
				}
				var httpErr errors.HttpError
				if stderrors.As(err, &httpErr) {
					status = httpErr.Code
				}
			}
			metrics.HTTPRequestsTotal.
				WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).
				Inc()
			return err
		}
	}
}

// Dependencies returns the service DI graph, which one-shot CLI commands
// reuse to run against the same wiring as the server.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Sugar,
			config.New,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			patients.NewRepository,
			patients.NewService,
			doctors.NewRepository,
			doctors.NewService,
			appointments.NewRepository,
			appointments.NewBookingCodeGenerator,
			appointments.NewService,
			stats.NewSource,
			stats.NewSynthesizer,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	options := append(Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(options...).Run()
}
