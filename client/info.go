package client

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/Payback159/x0go/models"
)

// infoResponse shadows the required fields of models.Info so a body that
// omits them can be told apart from one carrying zero values.
type infoResponse struct {
	models.Info
	Version    *string `json:"version"`
	Production *bool   `json:"production"`
}

func (r infoResponse) info(op string) (*models.Info, error) {
	if r.Version == nil {
		return nil, newError(KindSerialization, op, errors.New("response carries no version"))
	}
	if r.Production == nil {
		return nil, newError(KindSerialization, op, errors.New("response carries no production flag"))
	}
	info := r.Info
	info.Version = *r.Version
	info.Production = *r.Production
	return &info, nil
}

// InfoHandler reads the server's metadata. It needs no authentication.
type InfoHandler struct {
	client *Client
}

// Get fetches a fresh copy of the server info.
func (h *InfoHandler) Get(ctx context.Context) (*models.Info, error) {
	req := request{
		method: http.MethodGet,
		path:   h.client.path("info"),
	}

	var resp infoResponse
	if err := h.client.transport.send(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.info(req.op())
}
