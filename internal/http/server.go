package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aerofitlabs/survey-insights/internal/config"
	"github.com/aerofitlabs/survey-insights/internal/dataset"
	"github.com/aerofitlabs/survey-insights/internal/http/middleware"
	"github.com/aerofitlabs/survey-insights/internal/logger"
	"github.com/aerofitlabs/survey-insights/internal/metrics"
	"github.com/aerofitlabs/survey-insights/internal/stats"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct{ e *echo.Echo }

// NewServer wires the stats engine and routes. rds may be nil; the rate
// limiter is disabled without it.
func NewServer(cfg config.Config, table *dataset.Table, rds *redis.Client) *Server {
	engine := stats.New(table)

	// echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMid.Recover(), echoMid.Logger(), middleware.RequestID())

	metrics.MustRegister(prometheus.DefaultRegisterer)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	// middlewares
	rlMW := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Redis:          rds,
		RPS:            cfg.RateLimit.RPS,
		KeyPrefix:      "rl:ip:",
		Window:         time.Second,
		RetryAfterHint: true,
	})

	// routes
	v1 := e.Group("/v1", rlMW)
	v1.GET("/stats/summary", summaryHandler(engine))
	v1.GET("/stats/crosstab", crosstabHandler(engine))
	v1.GET("/stats/chisquare", chiSquareHandler(engine))
	v1.GET("/stats/correlation", correlationHandler(engine))
	v1.GET("/stats/describe", describeHandler(engine))
	v1.GET("/stats/overview", overviewHandler(engine))
	v1.GET("/stats/profiles", profilesHandler(engine))

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	logger.Log.Info("http: listening", zap.String("addr", addr))
	return s.e.Start(addr)
}
func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }
