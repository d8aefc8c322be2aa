// Package client is the Go client for the She-Fix API. Besides the HTTP calls it
// carries the app-side behavior: a persisted session record, the role-conditional
// dashboard with local search and local accept/book, and a mock voice command.
package client

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

	"she-fix/internal/dto/request"
	"she-fix/internal/dto/response"
	"she-fix/internal/filter"
)

const (
	defaultTimeout = 15 * time.Second
	userIDHeader   = "X-User-ID"
)

// APIError is a non-2xx answer decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("she-fix api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("she-fix api: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	userID     string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithActingUser sets the user id sent on job mutations.
func WithActingUser(userID string) Option {
	return func(c *Client) {
		c.userID = userID
	}
}

// New returns a client for the server at baseURL, e.g. http://localhost:5000.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetActingUser changes the user id sent on job mutations; typically the id of
// the session record after login.
func (c *Client) SetActingUser(userID string) {
	c.userID = userID
}

func (c *Client) Register(ctx context.Context, req request.RegisterRequest) (*response.UserResponse, error) {
	var user response.UserResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login accepts an email or a phone number as identifier.
func (c *Client) Login(ctx context.Context, identifier, password string) (*response.UserResponse, error) {
	req := request.LoginRequest{Password: password}
	if strings.Contains(identifier, "@") {
		req.Email = identifier
	} else {
		req.Identifier = identifier
	}

	var user response.UserResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/login", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Jobs lists open jobs. A zero filter fetches the full list.
func (c *Client) Jobs(ctx context.Context, f filter.JobFilter) ([]response.JobResponse, error) {
	q := url.Values{}
	setIf(q, "category", f.Category)
	setIf(q, "location", f.Location)
	setIf(q, "serviceType", f.ServiceType)
	setIf(q, "q", f.Query)

	var jobs []response.JobResponse
	if err := c.do(ctx, http.MethodGet, withQuery("/api/jobs", q), nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) Job(ctx context.Context, jobID string) (*response.JobResponse, error) {
	var job response.JobResponse
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(jobID), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) Workers(ctx context.Context, query string) ([]response.UserResponse, error) {
	q := url.Values{}
	setIf(q, "q", query)

	var workers []response.UserResponse
	if err := c.do(ctx, http.MethodGet, withQuery("/api/users/workers", q), nil, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

func (c *Client) PostJob(ctx context.Context, req request.JobRequest) (*response.JobResponse, error) {
	var job response.JobResponse
	if err := c.do(ctx, http.MethodPost, "/api/jobs", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) AcceptJob(ctx context.Context, jobID string) (*response.JobResponse, error) {
	var job response.JobResponse
	if err := c.do(ctx, http.MethodPost, "/api/jobs/"+url.PathEscape(jobID)+"/accept", nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CompleteJob(ctx context.Context, jobID string) (*response.JobResponse, error) {
	var job response.JobResponse
	if err := c.do(ctx, http.MethodPost, "/api/jobs/"+url.PathEscape(jobID)+"/complete", nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) VerifyKYC(ctx context.Context, req request.KYCRequest) (*response.KYCResponse, error) {
	var res response.KYCResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/kyc", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	req := request.TranslateRequest{Text: text, SourceLang: sourceLang, TargetLang: targetLang}

	var res response.TranslateResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/translate", req, &res); err != nil {
		return "", err
	}
	return res.TranslatedText, nil
}

func (c *Client) AcademyModules(ctx context.Context) ([]response.ModuleResponse, error) {
	var modules []response.ModuleResponse
	if err := c.do(ctx, http.MethodGet, "/api/academy/modules", nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.Header.Set(userIDHeader, c.userID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Message string            `json:"message"`
			Errors  map[string]string `json:"errors"`
		}
		if json.Unmarshal(raw, &envelope) == nil {
			apiErr.Message = envelope.Message
			apiErr.Errors = envelope.Errors
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func setIf(q url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		q.Set(key, v)
	}
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
