package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Payback159/x0go/internal/models"
	"github.com/labstack/echo/v4"
)

func (c *Container) sendErrorResponse(ctx echo.Context, namespace string, message string, status int) error {
	response := models.ErrorResponse{
		Message:   message,
		Namespace: namespace,
	}
	return ctx.JSON(status, response)
}

// parseCreateRequest reads the optional creation body. An empty body means no invite.
func parseCreateRequest(ctx echo.Context) (models.CreateNamespaceRequest, error) {
	req := models.CreateNamespaceRequest{}
	if ctx.Request().ContentLength == 0 {
		return req, nil
	}
	if err := ctx.Bind(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// CreateNamespace - Create a new namespace with a caller chosen id
func (c *Container) CreateNamespace(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.config.Rules().Validate(id); err != nil {
		slog.Warn("Rejecting namespace id", "namespace", id, "error", err)
		return c.sendErrorResponse(ctx, id, "Namespace id is invalid: "+err.Error(), http.StatusBadRequest)
	}

	req, err := parseCreateRequest(ctx)
	if err != nil {
		slog.Error("Error parsing namespace request", "error", err)
		return c.sendErrorResponse(ctx, id, "Error parsing namespace request", http.StatusBadRequest)
	}

	rec, err := c.store.create(id, req.Invite, c.config.Settings.Invites)
	switch {
	case errors.Is(err, errNamespaceExists):
		return c.sendErrorResponse(ctx, id, "Namespace already exists", http.StatusConflict)
	case errors.Is(err, errInvalidInvite):
		slog.Warn("Rejecting namespace creation with invalid invite", "namespace", id)
		return c.sendErrorResponse(ctx, id, "Invite code is invalid", http.StatusForbidden)
	case err != nil:
		return c.sendErrorResponse(ctx, id, "Error creating namespace", http.StatusInternalServerError)
	}

	slog.Info("Namespace created", "namespace", id)
	return ctx.JSON(http.StatusOK, models.CreateNamespace200Response{
		ID:     rec.id,
		Token:  rec.token,
		Active: rec.active,
	})
}

// GetNamespace - Find namespace by id
func (c *Container) GetNamespace(ctx echo.Context) error {
	id := ctx.Param("id")

	rec, err := c.store.get(id)
	if err != nil {
		return c.sendErrorResponse(ctx, id, "Namespace not found", http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"id":      rec.id,
		"active":  rec.active,
		"created": rec.created,
	})
}

// ResetNamespaceToken - Replace the token of a namespace
func (c *Container) ResetNamespaceToken(ctx echo.Context) error {
	id := ctx.Param("id")

	token, err := c.store.resetToken(id)
	if err != nil {
		return c.sendErrorResponse(ctx, id, "Namespace not found", http.StatusNotFound)
	}

	slog.Info("Namespace token reset", "namespace", id)
	return ctx.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
