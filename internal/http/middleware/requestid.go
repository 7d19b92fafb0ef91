package middleware

import (
	echo "github.com/labstack/echo/v4"

	"github.com/aerofitlabs/survey-insights/internal/util"
)

const HeaderRequestID = "X-Request-ID"

// RequestIDFromCtx returns the ULID assigned by RequestID.
func RequestIDFromCtx(c echo.Context) (string, bool) {
	v := c.Get("request_id")
	id, ok := v.(string)
	return id, ok
}

// RequestID assigns a ULID to every request, echoing it in the response
// header. Incoming ids are kept so the chart UI can correlate retries.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if id == "" {
				id = util.NewULID()
			}
			c.Set("request_id", id)
			c.Response().Header().Set(HeaderRequestID, id)
			return next(c)
		}
	}
}
