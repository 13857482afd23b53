// Package client is a client for the x0 HTTP API.
//
// A Client is bound to one server and one API generation. It hands out
// handlers for the server's resources:
//
//	c, err := client.New("https://x0.example.com", client.WithAPIVersion(client.V2))
//	if err != nil {
//		return err
//	}
//	info, err := c.Info().Get(ctx)
//
//	ns := c.Namespace("my-namespace", "")
//	if err := ns.Create(ctx, ""); err != nil {
//		return err
//	}
//	// ns now holds the token issued by the server
//	namespace, err := ns.Get(ctx)
//
// Every failure is an *Error; use KindOf, StatusCode or errors.Is with the
// Err* sentinels to tell them apart. The library does not retry, time out or
// rate limit on its own; pass a context or a configured *http.Client for that.
package client

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

// APIVersion selects the x0 API generation. Generations are not compatible
// with each other, so a Client talks to exactly one.
type APIVersion int

const (
	V1 APIVersion = 1
	V2 APIVersion = 2
)

func (v APIVersion) String() string {
	return fmt.Sprintf("v%d", int(v))
}

// ParseAPIVersion accepts "1", "v1", "2" or "v2".
func ParseAPIVersion(s string) (APIVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "v1":
		return V1, nil
	case "2", "v2":
		return V2, nil
	}
	return 0, errors.Newf("unknown api version %q", s)
}

type options struct {
	apiVersion APIVersion
	httpClient *http.Client
	logger     *slog.Logger
	header     http.Header
}

// Option configures a Client.
type Option func(*options)

// WithAPIVersion selects the API generation. Defaults to V1.
func WithAPIVersion(v APIVersion) Option {
	return func(o *options) {
		o.apiVersion = v
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to set timeouts or TLS options.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}

// WithLogger enables debug logging of requests. Tokens are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithHeader adds a header to every request. User-Agent cannot be overridden.
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.header.Add(key, value)
	}
}

// Client talks to one x0 server. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiVersion APIVersion
	transport  *transport
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	o := &options{
		apiVersion: V1,
		httpClient: &http.Client{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		header:     http.Header{},
	}
	for _, opt := range opts {
		opt(o)
	}

	const op = "new client"
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, newError(KindTransportConstruction, op, err)
	}
	if o.apiVersion != V1 && o.apiVersion != V2 {
		return nil, newError(KindTransportConstruction, op, errors.Newf("unsupported api version %d", int(o.apiVersion)))
	}

	t, err := newTransport(base, o.httpClient, o.header, o.logger)
	if err != nil {
		return nil, newError(KindTransportConstruction, op, err)
	}

	return &Client{
		baseURL:    base,
		apiVersion: o.apiVersion,
		transport:  t,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("base url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrap(err, "invalid base url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", errors.Newf("base url must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.Newf("base url %q has no host", raw)
	}
	// Request paths are appended to the base url as text.
	if strings.ContainsAny(raw, "?#") {
		return "", errors.Newf("base url %q must not carry a query or fragment", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

// BaseURL returns the server address the Client was created with, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIVersion returns the API generation used for every request.
func (c *Client) APIVersion() APIVersion {
	return c.apiVersion
}

// path joins the version prefix and the given segments. Segments are escaped.
func (c *Client) path(segments ...string) string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(c.apiVersion.String())
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// Info returns a handler for the service info resource.
func (c *Client) Info() *InfoHandler {
	return &InfoHandler{client: c}
}

// Namespace returns a handler for namespace id. Pass an empty token if none is known yet.
func (c *Client) Namespace(id, token string) *NamespaceHandler {
	return &NamespaceHandler{
		id:     id,
		token:  token,
		client: c,
	}
}
