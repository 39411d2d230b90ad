// Package apiclient is a small Go client for the Servana API that handles
// token refresh transparently: a 401 response triggers one refresh attempt
// and one retry of the original request, never more.
package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// ErrSessionExpired is returned when the refresh token itself is rejected;
// the caller must re-authenticate.
var ErrSessionExpired = errors.New("session expired, please sign in again")

// Tokens is the access/refresh pair the API issues.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Client calls the Servana API with automatic one-shot token refresh.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	mu     sync.Mutex
	tokens Tokens
}

// New builds a client for the given base URL with an existing token pair.
func New(baseURL string, tokens Tokens) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    http.DefaultClient,
		tokens:  tokens,
	}
}

// Tokens returns the current token pair.
func (c *Client) Tokens() Tokens {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens
}

// SetTokens replaces the token pair, e.g. after an external login.
func (c *Client) SetTokens(t Tokens) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = t
}

// Do sends the request with the current access token. On a 401 it refreshes
// the pair and retries the original request exactly once; a second 401 (or a
// failed refresh) surfaces as ErrSessionExpired.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	// The request body must be replayable for the retry.
	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	}

	resp, err := c.send(req, bodyBytes)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	if err := c.refresh(); err != nil {
		return nil, err
	}

	resp, err = c.send(req, bodyBytes)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return nil, ErrSessionExpired
	}
	return resp, nil
}

func (c *Client) send(req *http.Request, body []byte) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if body != nil {
		clone.Body = io.NopCloser(bytes.NewReader(body))
	}
	clone.Header.Set("Authorization", "Bearer "+c.Tokens().AccessToken)
	return c.HTTP.Do(clone)
}

// refresh exchanges the refresh token for a new pair.
func (c *Client) refresh() error {
	c.mu.Lock()
	refreshToken := c.tokens.RefreshToken
	c.mu.Unlock()
	if refreshToken == "" {
		return ErrSessionExpired
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Post(c.BaseURL+"/api/customers/refresh", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("token refresh failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrSessionExpired
	}

	var out struct {
		Tokens Tokens `json:"tokens"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("token refresh failed: %w", err)
	}

	c.mu.Lock()
	c.tokens = out.Tokens
	c.mu.Unlock()
	return nil
}
