package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers liveness probes.  It is on the exempt list and performs no
// dependency checks: a degraded database or broker is reported through the
// endpoints that need them, not here.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
