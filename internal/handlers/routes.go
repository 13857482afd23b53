package handlers

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// apiVersions are the API generations served side by side.
var apiVersions = []int{1, 2}

// Register mounts every x0 endpoint and the probes on e.
func (c *Container) Register(e *echo.Echo) {
	for _, v := range apiVersions {
		g := e.Group(fmt.Sprintf("/v%d", v))

		// GetInfo - service metadata, no authentication
		g.GET("/info", c.GetInfo(v))

		// CreateNamespace - the id is chosen by the caller
		g.POST("/namespaces/:id", c.CreateNamespace)

		// GetNamespace - requires the namespace token
		g.GET("/namespaces/:id", c.GetNamespace, c.BearerAuth())

		// ResetNamespaceToken - requires the current namespace token
		g.POST("/namespaces/:id/resettoken", c.ResetNamespaceToken, c.BearerAuth())
	}

	e.GET("/healthz", c.LivenessProbe)
	e.GET("/readiness", c.ReadinessProbe)
}
