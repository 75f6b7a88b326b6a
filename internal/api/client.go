// Package api holds the typed operations of the reporting backend: one method
// per route, mapping Go-side field names onto the snake_case wire contract.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"report-console/internal/httpclient"
	"report-console/internal/models"
)

// ErrMissingID is returned when a create call succeeds without an identifier.
var ErrMissingID = errors.New("server response did not include an identifier")

// Client is bound to at most one bearer token. It is cheap to copy.
type Client struct {
	hc    *httpclient.Client
	token string
}

func New(hc *httpclient.Client) *Client {
	return &Client{hc: hc}
}

// WithToken returns a copy of c that authenticates as token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) Origin() string { return c.hc.Origin() }

func (c *Client) call(ctx context.Context, req httpclient.Request, out any) error {
	req.Token = c.token
	env, err := c.hc.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || !env.HasBody() {
		return nil
	}
	if err := json.Unmarshal(env.Body, out); err != nil {
		return fmt.Errorf("%w: %v", httpclient.ErrMalformedResponse, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.call(ctx, httpclient.Request{Method: http.MethodGet, Endpoint: endpoint, Query: query}, out)
}

func (c *Client) send(ctx context.Context, method, endpoint string, body, out any) error {
	return c.call(ctx, httpclient.Request{Method: method, Endpoint: endpoint, Body: body}, out)
}

// create posts body and extracts the identifier the server assigned. The
// body may carry the id as a JSON string or a number.
func (c *Client) create(ctx context.Context, endpoint string, body any) (string, error) {
	var raw json.RawMessage
	if err := c.send(ctx, http.MethodPost, endpoint, body, &raw); err != nil {
		return "", err
	}
	id, err := decodeID(raw)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrMissingID
	}
	return id, nil
}

func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("%w: unexpected identifier %s", httpclient.ErrMalformedResponse, raw)
}

func pageQuery(page, limit int) url.Values {
	return url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
}

// Login exchanges credentials for a token. Auth routes live at the origin
// root, outside the versioned prefix.
func (c *Client) Login(ctx context.Context, username, password string) (models.LoginResult, error) {
	var out models.LoginResult
	err := c.call(ctx, httpclient.Request{
		Method:     http.MethodPost,
		Endpoint:   "/auth/login",
		Body:       models.Credentials{Username: username, Password: password},
		Unprefixed: true,
	}, &out)
	if err != nil {
		return models.LoginResult{}, err
	}
	if out.Token == "" {
		return models.LoginResult{}, fmt.Errorf("%w: login response without token", httpclient.ErrMalformedResponse)
	}
	return out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, httpclient.Request{Method: http.MethodPost, Endpoint: "/auth/logout", Unprefixed: true}, nil)
}

// Me returns the profile behind the bound token.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var out models.User
	err := c.call(ctx, httpclient.Request{Method: http.MethodGet, Endpoint: "/auth/me", Unprefixed: true}, &out)
	return out, err
}
