package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aerofitlabs/survey-insights/internal/metrics"
	"github.com/aerofitlabs/survey-insights/internal/model"
	"github.com/aerofitlabs/survey-insights/internal/stats"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// summaryHandler serves GET /v1/stats/summary.
//
// Query params: group_by (comma-separated field list, optional), metric
// (required numeric field), correlate_with (optional numeric field).
func summaryHandler(engine *stats.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q stats.Query

		if raw := strings.TrimSpace(c.QueryParam("group_by")); raw != "" {
			for _, name := range strings.Split(raw, ",") {
				f, err := model.ParseField(name)
				if err != nil {
					return badField(c, "summary", err)
				}
				q.GroupBy = append(q.GroupBy, f)
			}
		}

		metric, err := model.ParseNumericField(c.QueryParam("metric"))
		if err != nil {
			return badField(c, "summary", err)
		}
		q.Metric = metric

		if raw := strings.TrimSpace(c.QueryParam("correlate_with")); raw != "" {
			with, err := model.ParseNumericField(raw)
			if err != nil {
				return badField(c, "summary", err)
			}
			q.CorrelateWith = with
		}

		sum, err := engine.Summarize(q)
		if err != nil {
			return queryFailed(c, "summary", err)
		}

		metrics.StatsQueriesTotal.WithLabelValues("summary", "ok").Inc()

		return c.JSON(http.StatusOK, sum)
	}
}

// badField reports an InvalidFieldError to the caller; the request may be
// retried with a corrected field name.
func badField(c echo.Context, endpoint string, err error) error {
	metrics.StatsQueriesTotal.WithLabelValues(endpoint, "bad_request").Inc()

	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func queryFailed(c echo.Context, endpoint string, err error) error {
	var fe *model.InvalidFieldError
	if errors.As(err, &fe) {
		return badField(c, endpoint, err)
	}

	log.Errorf("%s query failed: %v", endpoint, err)
	metrics.StatsQueriesTotal.WithLabelValues(endpoint, "error").Inc()

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "query failed"})
}
