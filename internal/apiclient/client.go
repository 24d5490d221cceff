package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nfrund/hireboard/internal/domain"
	"github.com/tidwall/gjson"
)

// maxBodySize bounds how much of a reply is buffered for inspection.
const maxBodySize = 8 << 20

// Client talks to the marketplace REST API. Every authenticated call takes
// its bearer token from the request context and every reply passes through
// the configured policies.
type Client struct {
	base     *url.URL
	http     *http.Client
	policies []Policy
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-call timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithPolicy appends a response policy after SessionPolicy.
func WithPolicy(p Policy) Option {
	return func(c *Client) { c.policies = append(c.policies, p) }
}

// New creates a Client for baseURL. SessionPolicy is always installed first.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, domain.ErrConfig
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", domain.ErrConfig, baseURL)
	}

	c := &Client{
		base:     base,
		http:     &http.Client{Timeout: 15 * time.Second},
		policies: []Policy{SessionPolicy},
		logger:   slog.Default().With("component", "apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root, always ending in a slash. Media paths
// returned by the API are relative to it.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Get issues an authenticated GET and returns the parsed body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (gjson.Result, error) {
	return c.do(ctx, true, http.MethodGet, path, query, nil, "")
}

// Send issues an authenticated request with an optional JSON payload.
func (c *Client) Send(ctx context.Context, method, path string, payload any) (gjson.Result, error) {
	body, contentType, err := encodeJSON(payload)
	if err != nil {
		return gjson.Result{}, err
	}
	return c.do(ctx, true, method, path, nil, body, contentType)
}

// SendPublic issues a JSON request that does not require a credential. It is
// used for sign-in only.
func (c *Client) SendPublic(ctx context.Context, method, path string, payload any) (gjson.Result, error) {
	body, contentType, err := encodeJSON(payload)
	if err != nil {
		return gjson.Result{}, err
	}
	return c.do(ctx, false, method, path, nil, body, contentType)
}

// Upload is one file part of a multipart request.
type Upload struct {
	Field    string
	Filename string
	Body     io.Reader
}

// SendMultipart issues an authenticated multipart/form-data request.
func (c *Client) SendMultipart(ctx context.Context, method, path string, fields map[string]string, files ...Upload) (gjson.Result, error) {
	if _, ok := CredentialFrom(ctx); !ok {
		return gjson.Result{}, domain.ErrUnauthenticated
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return gjson.Result{}, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("create form file %s: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Body); err != nil {
			return gjson.Result{}, fmt.Errorf("copy form file %s: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return gjson.Result{}, fmt.Errorf("close multipart: %w", err)
	}
	return c.do(ctx, true, method, path, nil, &buf, w.FormDataContentType())
}

func encodeJSON(payload any) (io.Reader, string, error) {
	if payload == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("encode payload: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

func (c *Client) do(ctx context.Context, authenticated bool, method, path string, query url.Values, body io.Reader, contentType string) (gjson.Result, error) {
	token, hasToken := CredentialFrom(ctx)
	if authenticated && !hasToken {
		return gjson.Result{}, domain.ErrUnauthenticated
	}

	target, err := c.base.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if hasToken {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	c.logger.Debug("api call", "method", method, "path", path, "status", res.StatusCode, "duration", time.Since(start))

	resp := &Response{Status: res.StatusCode}
	if gjson.ValidBytes(raw) {
		resp.Body = gjson.ParseBytes(raw)
	}

	// Policies judge the credential, so public calls skip them.
	if authenticated {
		for _, policy := range c.policies {
			if err := policy(resp); err != nil {
				return gjson.Result{}, err
			}
		}
	}

	if res.StatusCode >= http.StatusBadRequest {
		return gjson.Result{}, &domain.APIError{Status: res.StatusCode, Message: resp.Message()}
	}
	return resp.Body, nil
}
