package http

import (
	"net/http"
	"strings"

	"github.com/aerofitlabs/survey-insights/internal/metrics"
	"github.com/aerofitlabs/survey-insights/internal/model"
	"github.com/aerofitlabs/survey-insights/internal/stats"
	"github.com/labstack/echo/v4"
)

// correlationHandler serves GET /v1/stats/correlation.
//
// With x and y it returns the single Pearson coefficient over the full
// collection. With fields (comma-separated, or omitted for all numeric
// columns) it returns the full matrix.
func correlationHandler(engine *stats.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		x := strings.TrimSpace(c.QueryParam("x"))
		y := strings.TrimSpace(c.QueryParam("y"))

		if x != "" || y != "" {
			fx, err := model.ParseNumericField(x)
			if err != nil {
				return badField(c, "correlation", err)
			}
			fy, err := model.ParseNumericField(y)
			if err != nil {
				return badField(c, "correlation", err)
			}

			r, err := engine.Correlate(fx, fy)
			if err != nil {
				return queryFailed(c, "correlation", err)
			}

			metrics.StatsQueriesTotal.WithLabelValues("correlation", "ok").Inc()

			return c.JSON(http.StatusOK, map[string]any{
				"x": fx,
				"y": fy,
				"r": r,
			})
		}

		var fields []model.Field
		if raw := strings.TrimSpace(c.QueryParam("fields")); raw != "" {
			for _, name := range strings.Split(raw, ",") {
				f, err := model.ParseNumericField(name)
				if err != nil {
					return badField(c, "correlation", err)
				}
				fields = append(fields, f)
			}
		}

		m, err := engine.CorrelationMatrix(fields)
		if err != nil {
			return queryFailed(c, "correlation", err)
		}

		metrics.StatsQueriesTotal.WithLabelValues("correlation", "ok").Inc()

		return c.JSON(http.StatusOK, m)
	}
}
