// Package integrations implements clients for remote services. The Homebox
// client is the only integration: a typed facade over the Homebox REST API
// that owns credentials, caches the session token, and shapes requests the
// way the service expects.
package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stocktake/stocktake/internal/domain/errors"
	"github.com/stocktake/stocktake/internal/domain/interfaces"
)

// HTTPClient lets tests substitute the transport. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HomeboxClient talks to one Homebox-compatible inventory service. It logs
// in lazily on the first request that needs auth and reuses the cached
// bearer token until the server-declared expiry passes.
type HomeboxClient struct {
	baseURL    string
	username   string
	password   string
	httpClient HTTPClient
	logger     *zap.Logger

	mu           sync.Mutex
	token        string
	tokenExpires time.Time
}

// NewHomeboxClient validates the base URL scheme and returns a client. Only
// http and https are accepted; anything else is rejected here so a bad URL
// can never turn into a non-network request later. No network activity
// happens at construction time.
func NewHomeboxClient(baseURL, username, password string, logger *zap.Logger) (*HomeboxClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.ValidationErrorf("invalid base URL: %v", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, errors.ValidationErrorf("base URL scheme must be http or https, got %q", u.Scheme)
	}

	return &HomeboxClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

// SetHTTPClient replaces the transport. Intended for tests.
func (c *HomeboxClient) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

// login exchanges credentials for a bearer token. Callers must hold c.mu.
func (c *HomeboxClient) login(ctx context.Context) error {
	c.logger.Debug("Logging in to inventory service", zap.String("username", c.username))

	reqBody, err := json.Marshal(map[string]string{
		"username": c.username,
		"password": c.password,
	})
	if err != nil {
		return fmt.Errorf("error marshaling login request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/users/login", bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("error creating login request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Status text only. The password must never surface here.
		c.logger.Warn("Login failed", zap.Int("status_code", resp.StatusCode))
		return errors.AuthErrorf("login failed: %s", http.StatusText(resp.StatusCode))
	}

	var loginResp struct {
		Token     string `json:"token"`
		ExpiresAt string `json:"expiresAt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return fmt.Errorf("error decoding login response: %v", err)
	}

	// The service returns the token with a "Bearer " prefix already applied.
	// Store the bare token and add the prefix ourselves on each request.
	token := loginResp.Token
	if len(token) >= 7 && strings.EqualFold(token[:7], "bearer ") {
		token = token[7:]
	}
	c.token = token

	c.tokenExpires = time.Time{}
	if loginResp.ExpiresAt != "" {
		if expires, err := time.Parse(time.RFC3339, loginResp.ExpiresAt); err == nil {
			c.tokenExpires = expires
		} else {
			c.logger.Warn("Could not parse token expiry, caching token without one",
				zap.String("expires_at", loginResp.ExpiresAt))
		}
	}

	c.logger.Debug("Login succeeded", zap.Time("token_expires", c.tokenExpires))
	return nil
}

// ensureToken returns a valid bearer token, logging in when none is cached
// or the cached one is past its declared expiry.
func (c *HomeboxClient) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		if c.tokenExpires.IsZero() || time.Now().Before(c.tokenExpires) {
			return c.token, nil
		}
		c.logger.Debug("Cached token expired, logging in again")
		c.token = ""
	}

	if err := c.login(ctx); err != nil {
		return "", err
	}
	return c.token, nil
}

// doRequest issues an authenticated JSON request. A nil body sends no
// payload; a nil dest skips decoding. A 204 response returns without
// touching dest.
func (c *HomeboxClient) doRequest(ctx context.Context, method, path string, query url.Values, body any, dest any) error {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshaling request: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("Sending request", zap.String("method", method), zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Inventory service returned an error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode))
		return errors.NewAPIError(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if resp.StatusCode == http.StatusNoContent || dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("error decoding response: %v", err)
	}
	return nil
}

// Ensure HomeboxClient implements InventoryService
var _ interfaces.InventoryService = (*HomeboxClient)(nil)
