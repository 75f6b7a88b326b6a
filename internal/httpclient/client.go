package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"report-console/internal/models"

	"github.com/google/uuid"
)

type Config struct {
	Origin  string // e.g. http://localhost:8080
	Prefix  string // e.g. /authority/v1.0
	Timeout time.Duration
}

// Client translates semantic requests into HTTP calls against one backend
// and normalizes every failure into the package's error kinds.
type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	cfg.Origin = strings.TrimRight(cfg.Origin, "/")
	cfg.Prefix = "/" + strings.Trim(cfg.Prefix, "/")
	if cfg.Prefix == "/" {
		cfg.Prefix = ""
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Origin() string { return c.cfg.Origin }

// Request describes one call. Endpoint is relative to the versioned prefix
// unless Unprefixed is set, in which case it is relative to the origin.
type Request struct {
	Method     string
	Endpoint   string
	Query      url.Values
	Body       any
	Header     http.Header
	Token      string
	Unprefixed bool
}

func (c *Client) url(req Request) string {
	u := c.cfg.Origin
	if !req.Unprefixed {
		u += c.cfg.Prefix
	}
	u += req.Endpoint
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	return u
}

// Do performs req and returns the decoded envelope of a successful call.
func (c *Client) Do(ctx context.Context, req Request) (*models.Envelope, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	target := c.url(req)
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, vs := range req.Header {
		httpReq.Header.Del(k)
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		slog.Error("api_unreachable", "method", method, "url", target, "request_id", requestID, "error", err)
		return nil, &NetworkError{Origin: c.cfg.Origin, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Origin: c.cfg.Origin, Err: err}
	}
	slog.Debug("api_response", "method", method, "url", target, "status", resp.StatusCode, "request_id", requestID)

	var env models.Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		he := &HTTPError{Status: resp.StatusCode}
		if decodeErr == nil {
			he.Message = env.Message
		}
		return nil, he
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, decodeErr)
	}
	if CodeFailed(env.Code) {
		return nil, &ApplicationError{Code: env.Code, Message: env.Message}
	}
	return &env, nil
}
