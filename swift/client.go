package swift

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sagarc03/swiftcli"
)

// Swift protocol headers.
const (
	HeaderAuthUser     = "X-Auth-User"
	HeaderAuthKey      = "X-Auth-Key"
	HeaderAuthToken    = "X-Auth-Token"
	HeaderStorageURL   = "X-Storage-Url"
	HeaderStorageToken = "X-Storage-Token"
	HeaderEtag         = "Etag"
	HeaderTransIDExtra = "X-Trans-Id-Extra"
	HeaderTransID      = "X-Trans-Id"

	// AccountHeaderPrefix prefixes the account usage headers.
	AccountHeaderPrefix = "X-Account"

	// DirectoryContentType marks zero-length directory placeholder objects.
	DirectoryContentType = "application/directory"
)

// Client performs requests against a Swift endpoint. It holds no session
// state; every operation receives the Session explicitly.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	transID    string
	timeout    *time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout.
// A client given with WithHTTPClient is copied, not modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = &timeout
	}
}

// WithLogger sets the logger used for per-request debug logs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTransID sets the value sent as X-Trans-Id-Extra on every request.
func WithTransID(id string) Option {
	return func(c *Client) {
		c.transID = id
	}
}

// New creates a new Client with the given options.
// By default the client has no timeout and tags requests with a random trans id.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		logger:     slog.Default(),
		transID:    uuid.NewString(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout != nil {
		hc := *c.httpClient
		hc.Timeout = *c.timeout
		c.httpClient = &hc
	}

	return c
}

// TransID returns the X-Trans-Id-Extra value sent with every request.
func (c *Client) TransID() string {
	return c.transID
}

// objectURL joins the storage URL and path, escaping each path segment.
func objectURL(storageURL string, path swiftcli.ObjectPath) string {
	base := strings.TrimSuffix(storageURL, "/")
	if path.IsAccount() {
		return base
	}

	segments := strings.Split(strings.TrimPrefix(string(path), "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return base + "/" + strings.Join(segments, "/")
}

// newRequest builds an authenticated request for path.
func (c *Client) newRequest(ctx context.Context, sess swiftcli.Session, method string, path swiftcli.ObjectPath, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, objectURL(sess.StorageURL, path), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(HeaderAuthToken, sess.Token)
	c.tag(req)
	return req, nil
}

// tag adds the trans id header.
func (c *Client) tag(req *http.Request) {
	if c.transID != "" {
		req.Header.Set(HeaderTransIDExtra, c.transID)
	}
}

// do executes req and logs the outcome at debug level.
func (c *Client) do(req *http.Request, path swiftcli.ObjectPath) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("swift request failed",
			"method", req.Method,
			"path", path,
			"err", err,
		)
		return nil, transportError(req.Method, path, err)
	}

	c.logger.Debug("swift request",
		"method", req.Method,
		"path", path,
		"status", resp.StatusCode,
		"trans_id", resp.Header.Get(HeaderTransID),
		"elapsed", time.Since(start),
	)
	return resp, nil
}

// drain discards the rest of the body and closes it so the connection can be reused.
func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
