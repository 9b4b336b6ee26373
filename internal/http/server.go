package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/pairline/pairline/internal/config"
	"github.com/pairline/pairline/internal/dispatcher"
	"github.com/pairline/pairline/internal/http/middleware"
	"github.com/pairline/pairline/internal/logger"
	"github.com/pairline/pairline/internal/metrics"
	"github.com/pairline/pairline/internal/repository"
	"github.com/pairline/pairline/internal/service/intake"
	"github.com/pairline/pairline/internal/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct{ e *echo.Echo }

func NewServer(cfg config.Config, dbx *sqlx.DB, rds *redis.Client, mail *dispatcher.Dispatcher) *Server {
	// repos
	consultationsRepo := repository.NewConsultationsRepository(dbx)
	subscribersRepo := repository.NewSubscribersRepository(dbx)
	numbersRepo := repository.NewNumbersRepository(dbx)

	// pipeline
	intakeSvc := intake.New(consultationsRepo, subscribersRepo, numbersRepo, mail, logger.Log)

	// echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler
	e.Use(echoMid.Recover(), echoMid.Logger())
	e.Use(echoMid.RequestIDWithConfig(echoMid.RequestIDConfig{Generator: util.New}))
	e.Use(echoMid.Secure())
	e.Use(echoMid.CORSWithConfig(echoMid.CORSConfig{
		AllowOrigins: []string{cfg.HTTP.FrontendOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	if cfg.HTTP.BodyLimit != "" {
		e.Use(echoMid.BodyLimit(cfg.HTTP.BodyLimit))
	}

	metrics.MustRegister(prometheus.DefaultRegisterer)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// health
	e.GET("/health", healthHandler())

	// uniform per-client ceiling at the boundary; passes through when
	// Redis is disabled (dev)
	rlMW := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Redis:          rds,
		RPS:            cfg.RateLimit.RPS,
		KeyPrefix:      "rl:ip:",
		Window:         time.Second,
		RetryAfterHint: true,
	})

	// routes
	api := e.Group("/api", rlMW)
	api.POST("/consultation", submitConsultationHandler(intakeSvc))
	api.GET("/numbers/search", searchNumbersHandler(intakeSvc))
	api.POST("/newsletter", subscribeHandler(intakeSvc))
	// Listing is unauthenticated, matching the system it replaced; the
	// admin panel is expected to sit behind network-level protection.
	// See README.md before exposing this publicly.
	api.GET("/admin/consultations", listConsultationsHandler(intakeSvc))

	return &Server{e: e}
}

func healthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// errorHandler maps everything that escapes a handler onto the two generic
// JSON shapes: 404 for unmatched routes, the request's own code for other
// HTTP errors, 500 with a generic message for the rest. Internal detail is
// logged, never exposed.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Something went wrong!"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code == http.StatusNotFound {
			msg = "Route not found"
		} else if code < http.StatusInternalServerError {
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
	}

	if code >= http.StatusInternalServerError {
		c.Logger().Errorf("unhandled error: %v", err)
	}

	_ = c.JSON(code, map[string]any{"success": false, "message": msg})
}

func (s *Server) Start(addr string) error {
	logger.Log.Info("http: listening", zap.String("addr", addr))
	return s.e.Start(addr)
}
func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }
