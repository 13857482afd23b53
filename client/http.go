package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/http/httpguts"
)

// request describes one call against the x0 API.
type request struct {
	method string
	// path is relative to the base URL, e.g. "/v1/info".
	path   string
	header http.Header
	// body is encoded as JSON. A nil body sends no payload.
	body any
}

func (r request) op() string {
	return r.method + " " + r.path
}

// transport sends JSON requests to one x0 server. It holds no mutable state
// and is shared by every handler of a Client.
type transport struct {
	baseURL    string
	httpClient *http.Client
	header     http.Header
	logger     *slog.Logger
}

func newTransport(baseURL string, httpClient *http.Client, header http.Header, logger *slog.Logger) (*transport, error) {
	fixed := http.Header{}
	for key, values := range header {
		if !httpguts.ValidHeaderFieldName(key) {
			return nil, errors.Newf("invalid header name %q", key)
		}
		for _, v := range values {
			if !httpguts.ValidHeaderFieldValue(v) {
				return nil, errors.Newf("invalid value for header %q", key)
			}
			fixed.Add(key, v)
		}
	}
	fixed.Set("User-Agent", UserAgent())
	fixed.Set("Accept", "application/json")

	return &transport{
		baseURL:    baseURL,
		httpClient: httpClient,
		header:     fixed,
		logger:     logger,
	}, nil
}

// send issues r and decodes the response body into out when the status is
// one of accepted (200 if none are given). out may be nil to discard the body.
func (t *transport) send(ctx context.Context, r request, out any, accepted ...int) error {
	op := r.op()
	if len(accepted) == 0 {
		accepted = []int{http.StatusOK}
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return newError(KindSerialization, op, errors.Wrap(err, "encode request body"))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, t.baseURL+r.path, body)
	if err != nil {
		return newError(KindRequestBuild, op, errors.Wrap(err, "build request"))
	}
	for key, values := range t.header {
		req.Header[key] = slices.Clone(values)
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range r.header {
		req.Header.Del(key)
		for _, v := range values {
			if !httpguts.ValidHeaderFieldValue(v) {
				return newError(KindRequestBuild, op, errors.Newf("invalid value for header %q", key))
			}
			req.Header.Add(key, v)
		}
	}

	t.logger.DebugContext(ctx, "Sending request", "method", r.method, "path", r.path)
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return newError(KindTransport, op, errors.Wrap(err, "send request"))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newError(KindTransport, op, errors.Wrap(err, "read response body"))
	}

	if !slices.Contains(accepted, resp.StatusCode) {
		t.logger.DebugContext(ctx, "Unexpected response status",
			"method", r.method, "path", r.path, "status", resp.StatusCode)
		return &Error{Kind: KindUnexpectedStatus, Op: op, StatusCode: resp.StatusCode}
	}
	t.logger.DebugContext(ctx, "Received response", "method", r.method, "path", r.path, "status", resp.StatusCode)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newError(KindSerialization, op, errors.Wrap(err, "decode response body"))
	}
	return nil
}
