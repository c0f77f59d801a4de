// Package tutorapi is the HTTP client for the external tutor REST API.
package tutorapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tutorportal/internal/domain"
)

const (
	dateLayout      = "2006-01-02"
	maxErrorBody    = 1 << 16
	defaultSubject  = "tutorportal"
	defaultTokenTTL = 5 * time.Minute
)

// Client calls the tutor API. It implements every API port in domain.
type Client struct {
	baseURL  *url.URL
	client   *http.Client
	tokens   domain.TokenIssuer
	tokenTTL time.Duration
	subject  string
	location *time.Location
}

// Option configures a Client.
type Option func(*Client)

// WithTokenIssuer makes every request carry a bearer token minted by issuer.
func WithTokenIssuer(issuer domain.TokenIssuer, ttl time.Duration) Option {
	return func(c *Client) {
		c.tokens = issuer
		if ttl > 0 {
			c.tokenTTL = ttl
		}
	}
}

// WithSubject sets the subject claim of minted tokens.
func WithSubject(subject string) Option {
	return func(c *Client) { c.subject = subject }
}

// WithLocation sets the zone for timestamps the API sends without an offset.
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		if loc != nil {
			c.location = loc
		}
	}
}

// NewClient returns a client for the API rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid tutor api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid tutor api url %q: scheme and host are required", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL:  u,
		client:   httpClient,
		tokenTTL: defaultTokenTTL,
		subject:  defaultSubject,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		token, err := c.tokens.Issue(c.subject, c.tokenTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to issue api token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// send performs req and decodes a successful body into out (when non-nil).
// Any status other than the accepted ones becomes a *domain.APIError.
func (c *Client) send(req *http.Request, out any, accepted ...int) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if !statusAccepted(resp.StatusCode, accepted) {
		return readAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func statusAccepted(code int, accepted []int) bool {
	if len(accepted) == 0 {
		return code >= 200 && code < 300
	}
	for _, a := range accepted {
		if code == a {
			return true
		}
	}
	return false
}

func readAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &domain.APIError{StatusCode: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
	} else if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("<")) {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return c.send(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any, accepted ...int) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, body, contentType)
	if err != nil {
		return err
	}
	return c.send(req, out, accepted...)
}

// getList fetches a JSON array. A body that is not an array yields an empty
// list rather than an error.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, path, query, &raw); err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return out, nil
}
