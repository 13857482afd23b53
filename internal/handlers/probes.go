package handlers

// liveness and readiness probes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Container) LivenessProbe(e echo.Context) error {
	return e.String(http.StatusOK, "OK")
}

// ReadinessProbe reports the number of namespaces held in memory.
func (c *Container) ReadinessProbe(e echo.Context) error {
	return e.JSON(http.StatusOK, map[string]any{
		"status":     "OK",
		"namespaces": c.store.count(),
	})
}
