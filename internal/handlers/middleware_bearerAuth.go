package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// BearerAuth only lets requests through that carry the current token of the
// namespace named by the :id path parameter.
func (c *Container) BearerAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator:  c.BearerAuthValidator,
		ErrorHandler: func(err error, ctx echo.Context) error {
			slog.Debug("Bearer authentication failed", "namespace", ctx.Param("id"), "error", err)
			return c.sendErrorResponse(ctx, ctx.Param("id"), "Unauthorized", http.StatusUnauthorized)
		},
	})
}

func (c *Container) BearerAuthValidator(token string, e echo.Context) (bool, error) {
	id := e.Param("id")
	slog.Debug("Checking token for namespace", "namespace", id)
	if c.store.authenticate(id, token) {
		return true, nil
	}
	slog.Warn("Token rejected", "namespace", id)
	return false, nil
}
