package http

import (
	"net/http"
	"strings"

	"github.com/aerofitlabs/survey-insights/internal/metrics"
	"github.com/aerofitlabs/survey-insights/internal/model"
	"github.com/aerofitlabs/survey-insights/internal/stats"
	"github.com/labstack/echo/v4"
)

// crosstabHandler serves GET /v1/stats/crosstab.
//
// Query params: row, col (required fields), normalize ("index" for row
// percentages, empty for raw counts).
func crosstabHandler(engine *stats.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		row, err := model.ParseField(c.QueryParam("row"))
		if err != nil {
			return badField(c, "crosstab", err)
		}
		col, err := model.ParseField(c.QueryParam("col"))
		if err != nil {
			return badField(c, "crosstab", err)
		}

		normalize := strings.EqualFold(strings.TrimSpace(c.QueryParam("normalize")), "index")

		ct, err := engine.Crosstab(row, col, normalize)
		if err != nil {
			return queryFailed(c, "crosstab", err)
		}

		metrics.StatsQueriesTotal.WithLabelValues("crosstab", "ok").Inc()

		return c.JSON(http.StatusOK, ct)
	}
}

// chiSquareHandler serves GET /v1/stats/chisquare with row and col params.
func chiSquareHandler(engine *stats.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		row, err := model.ParseField(c.QueryParam("row"))
		if err != nil {
			return badField(c, "chisquare", err)
		}
		col, err := model.ParseField(c.QueryParam("col"))
		if err != nil {
			return badField(c, "chisquare", err)
		}

		res, err := engine.ChiSquare(row, col)
		if err != nil {
			return queryFailed(c, "chisquare", err)
		}

		metrics.StatsQueriesTotal.WithLabelValues("chisquare", "ok").Inc()

		return c.JSON(http.StatusOK, res)
	}
}
