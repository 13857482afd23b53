package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetInfo serves the info document of the given API generation.
func (c *Container) GetInfo(apiVersion int) echo.HandlerFunc {
	return func(e echo.Context) error {
		return e.JSON(http.StatusOK, c.config.Info(apiVersion))
	}
}
