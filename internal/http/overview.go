package http

import (
	"net/http"

	"github.com/aerofitlabs/survey-insights/internal/metrics"
	"github.com/aerofitlabs/survey-insights/internal/stats"
	"github.com/labstack/echo/v4"
)

// overviewHandler serves GET /v1/stats/overview: totals and market share.
func overviewHandler(engine *stats.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		metrics.StatsQueriesTotal.WithLabelValues("overview", "ok").Inc()

		return c.JSON(http.StatusOK, engine.Overview())
	}
}

// describeHandler serves GET /v1/stats/describe: per-column summaries.
func describeHandler(engine *stats.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		metrics.StatsQueriesTotal.WithLabelValues("describe", "ok").Inc()

		return c.JSON(http.StatusOK, map[string]any{"fields": engine.Describe()})
	}
}

// profilesHandler serves GET /v1/stats/profiles: per-product customer
// profiles with gender split.
func profilesHandler(engine *stats.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		metrics.StatsQueriesTotal.WithLabelValues("profiles", "ok").Inc()

		return c.JSON(http.StatusOK, map[string]any{"profiles": engine.ProductProfiles()})
	}
}
