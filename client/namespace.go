package client

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/Payback159/x0go/models"
)

// tokenResponse is the body of create and reset-token responses. The server
// may send more fields; only the token is kept.
type tokenResponse struct {
	Token *string `json:"token"`
}

// issued returns the token, or a serialization error when the body had none.
func (r tokenResponse) issued(op string) (string, error) {
	if r.Token == nil {
		return "", newError(KindSerialization, op, errors.New("response carries no token"))
	}
	return *r.Token, nil
}

type createNamespaceRequest struct {
	Invite string `json:"invite,omitempty"`
}

// NamespaceHandler binds a namespace id and its bearer token to a Client.
//
// Create and ResetToken replace the held token with the one issued by the
// server, so calls can be chained without managing the token separately.
// A handler is not safe for concurrent use; serialize calls on one handler.
type NamespaceHandler struct {
	id     string
	token  string
	client *Client
}

// ID returns the namespace identifier.
func (h *NamespaceHandler) ID() string {
	return h.id
}

// Token returns the token currently held by the handler.
func (h *NamespaceHandler) Token() string {
	return h.token
}

// WithToken sets the token without contacting the server.
func (h *NamespaceHandler) WithToken(token string) *NamespaceHandler {
	h.token = token
	return h
}

func (h *NamespaceHandler) authHeader() http.Header {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+h.token)
	return header
}

// Get fetches the namespace. The held token is sent as is; an empty or stale
// token is rejected by the server with an unexpected status error.
func (h *NamespaceHandler) Get(ctx context.Context) (*models.Namespace, error) {
	req := request{
		method: http.MethodGet,
		path:   h.client.path("namespaces", h.id),
		header: h.authHeader(),
	}

	var namespace models.Namespace
	if err := h.client.transport.send(ctx, req, &namespace); err != nil {
		return nil, err
	}
	return &namespace, nil
}

// Create registers the namespace on the server and stores the issued token.
// invite may be empty when the server does not require invites.
func (h *NamespaceHandler) Create(ctx context.Context, invite string) error {
	req := request{
		method: http.MethodPost,
		path:   h.client.path("namespaces", h.id),
	}
	if invite != "" {
		req.body = createNamespaceRequest{Invite: invite}
	}

	var resp tokenResponse
	if err := h.client.transport.send(ctx, req, &resp, http.StatusOK, http.StatusCreated); err != nil {
		return err
	}
	token, err := resp.issued(req.op())
	if err != nil {
		return err
	}
	h.token = token
	return nil
}

// ResetToken asks the server for a new token, authenticating with the held
// one, and stores the result. The old token is unusable afterwards.
func (h *NamespaceHandler) ResetToken(ctx context.Context) error {
	req := request{
		method: http.MethodPost,
		path:   h.client.path("namespaces", h.id, "resettoken"),
		header: h.authHeader(),
	}

	var resp tokenResponse
	if err := h.client.transport.send(ctx, req, &resp); err != nil {
		return err
	}
	token, err := resp.issued(req.op())
	if err != nil {
		return err
	}
	h.token = token
	return nil
}
