package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
	"github.com/taxfree-rdc/customs-agent/internal/common"
)

// HTTPClient talks JSON over HTTP to the platform backend.
//
// It holds the current token pair; an expired access token is refreshed once
// per request and the original call is replayed, mirroring how the web
// frontend's API layer behaves.
type HTTPClient struct {
	baseURL      string
	http         *http.Client
	accessToken  string
	refreshToken string
}

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Resume(s *models.Session) {
	if s == nil {
		c.accessToken = ""
		c.refreshToken = ""
		return
	}
	c.accessToken = s.AccessToken
	c.refreshToken = s.RefreshToken
}

// doOnce performs a single request/response cycle. A non-nil out receives the
// decoded 2xx body.
func (c *HTTPClient) doOnce(ctx context.Context, method, path string, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, mapStatus(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// do wraps doOnce with the refresh-and-retry step: a 401 on an authenticated
// call triggers one token refresh, then the call is replayed.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	code, err := c.doOnce(ctx, method, path, body, out)
	if err == nil {
		return nil
	}
	if code != http.StatusUnauthorized || c.refreshToken == "" {
		return err
	}

	if rerr := c.refresh(ctx); rerr != nil {
		return err
	}

	_, err = c.doOnce(ctx, method, path, body, out)
	return err
}

func (c *HTTPClient) refresh(ctx context.Context) error {
	var pair tokenPair
	req := map[string]string{"refresh": c.refreshToken}
	if _, err := c.doOnce(ctx, http.MethodPost, "/api/auth/refresh/", req, &pair); err != nil {
		return err
	}
	c.accessToken = pair.Access
	if pair.Refresh != "" {
		c.refreshToken = pair.Refresh
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var pair tokenPair
	req := map[string]string{"email": email, "password": password}
	if _, err := c.doOnce(ctx, http.MethodPost, "/api/auth/login/", req, &pair); err != nil {
		return nil, err
	}

	c.accessToken = pair.Access
	c.refreshToken = pair.Refresh

	return &models.Session{AccessToken: pair.Access, RefreshToken: pair.Refresh}, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := c.doOnce(ctx, http.MethodGet, "/api/health/", nil, nil)
	return err
}

func (c *HTTPClient) LookupForm(ctx context.Context, formNumber string) (*models.Form, error) {
	var form models.Form
	if err := c.do(ctx, http.MethodGet, "/api/customs/lookup/"+formNumber+"/", nil, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (c *HTTPClient) Decide(ctx context.Context, formID string, p models.DecisionPayload) error {
	return c.do(ctx, http.MethodPost, "/api/customs/forms/"+formID+"/decide/", p, nil)
}

func (c *HTTPClient) SyncOfflineValidations(ctx context.Context, req models.OfflineSyncRequest) (*models.OfflineSyncResult, error) {
	var result models.OfflineSyncResult
	if err := c.do(ctx, http.MethodPost, "/api/customs/offline/sync/", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func mapStatus(code int, body []byte) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return fmt.Errorf("%w: status %d", ErrServer, code)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, strings.TrimSpace(string(body)))
	}
}
