package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pranayk/reflections/internal/client/models"
	"github.com/pranayk/reflections/internal/logging"
)

// maxErrorBody caps how much of an error payload is read for classification.
const maxErrorBody = 64 << 10

// HTTPClient is the concrete Client speaking JSON over the backend's /api
// surface. The session credential is an opaque httpOnly cookie: the jar
// attaches it to every request and the client never reads or stores it.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Jar: jar, Timeout: timeout},
		log:     log,
	}, nil
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// errorPayload covers both FastAPI-style {"detail": ...} and the project's
// own {"message": ...} error bodies.
type errorPayload struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// do performs one round-trip and funnels every failure through classify.
// Both request and response bodies are JSON; out may be nil for calls whose
// response the caller discards.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	reqID := uuid.NewString()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug(ctx, "api request", "req_id", reqID, "method", method, "path", path)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error(ctx, "api transport failure", "req_id", reqID, "method", method, "path", path, "error", err)
		return &Error{Kind: ErrUnavailable, Message: "cannot reach the server - please check your connection"}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api response", "req_id", reqID, "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return c.classify(ctx, reqID, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error(ctx, "api decode failure", "req_id", reqID, "path", path, "error", err)
		return &Error{Kind: ErrServerFault, Message: "the server returned an unreadable response"}
	}
	return nil
}

// classify is the single chokepoint turning an HTTP error status into one of
// the four failure kinds, carrying the payload message when present.
func (c *HTTPClient) classify(ctx context.Context, reqID string, resp *http.Response) error {
	var payload errorPayload
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(b, &payload)

	msg := payload.Detail
	if msg == "" {
		msg = payload.Message
	}

	var kind error
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		kind = ErrAuthRequired
		if msg == "" {
			msg = "admin authentication required"
		}
	case resp.StatusCode >= 500:
		kind = ErrServerFault
		if msg == "" {
			msg = "something went wrong on the server - please try again"
		}
	default:
		kind = ErrValidation
		if msg == "" {
			msg = "the server rejected the request"
		}
	}

	c.log.Warn(ctx, "api error", "req_id", reqID, "status", resp.StatusCode, "kind", kind, "message", msg)
	return &Error{Kind: kind, Message: msg}
}

func (c *HTTPClient) List(ctx context.Context, category models.Category) (*models.ReflectionList, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"category": {string(category)}}
	}
	var list models.ReflectionList
	if err := c.do(ctx, http.MethodGet, "/api/reflections", query, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) Get(ctx context.Context, id string) (*models.Reflection, error) {
	var r models.Reflection
	if err := c.do(ctx, http.MethodGet, "/api/reflections/"+url.PathEscape(id), nil, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) ListAdmin(ctx context.Context) (*models.ReflectionList, error) {
	var list models.ReflectionList
	if err := c.do(ctx, http.MethodGet, "/api/reflections-admin", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) Create(ctx context.Context, draft models.Draft) (*models.Reflection, error) {
	var r models.Reflection
	if err := c.do(ctx, http.MethodPost, "/api/reflections", nil, draft, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) Update(ctx context.Context, id string, draft models.Draft) (*models.Reflection, error) {
	var r models.Reflection
	if err := c.do(ctx, http.MethodPut, "/api/reflections/"+url.PathEscape(id), nil, draft, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	var ack models.MessageResponse
	return c.do(ctx, http.MethodDelete, "/api/reflections/"+url.PathEscape(id), nil, nil, &ack)
}

func (c *HTTPClient) SubmitContact(ctx context.Context, req models.ContactRequest) (*models.ContactAck, error) {
	var ack models.ContactAck
	if err := c.do(ctx, http.MethodPost, "/api/contact", nil, req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *HTTPClient) ContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	var subs []models.ContactSubmission
	if err := c.do(ctx, http.MethodGet, "/api/contact-submissions", nil, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates the admin. The server answers HTTP 200 with
// success=false for bad credentials; that outcome is normalized to
// ErrAuthRequired so callers handle it like any other auth failure.
func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	var res models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", nil, loginRequest{Username: username, Password: password}, &res); err != nil {
		return err
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "invalid credentials"
		}
		return &Error{Kind: ErrAuthRequired, Message: msg}
	}
	return nil
}

// Verify checks the current session credential. A reachable server always
// answers 200; Valid carries the verdict.
func (c *HTTPClient) Verify(ctx context.Context) (bool, error) {
	var res models.VerifyResult
	if err := c.do(ctx, http.MethodGet, "/api/admin/verify", nil, nil, &res); err != nil {
		return false, err
	}
	return res.Valid, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	var ack models.MessageResponse
	return c.do(ctx, http.MethodPost, "/api/admin/logout", nil, nil, &ack)
}
