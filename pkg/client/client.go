package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is the typed SDK for the admin system API. It owns the transport
// and attaches the injected Session's bearer token to every request; any
// 401 response clears the session before the error reaches the caller.
type Client struct {
	http    *resty.Client
	session *Session
}

// APIError is a non-2xx response decoded from the server envelope.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Option customizes the Client at construction time.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithRetries enables retrying idempotent requests.
func WithRetries(count int) Option {
	return func(c *Client) {
		c.http.SetRetryCount(count).
			SetRetryWaitTime(500 * time.Millisecond).
			SetRetryMaxWaitTime(3 * time.Second)
	}
}

// New creates a Client for the API at baseURL using the given session.
func New(baseURL string, session *Session, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
		session: session,
	}

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tok := c.session.Token(); tok != "" {
			req.SetHeader("Authorization", "Bearer "+tok)
		}
		return nil
	})

	// The server answering 401 means the token is expired, revoked or
	// invalid. The session is torn down so the caller observes the
	// anonymous transition immediately.
	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			c.session.Clear()
		}
		return nil
	})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session the client was built with.
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) do(ctx context.Context, method, path string, body any, query map[string]string) (json.RawMessage, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("client: %s %s: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		if resp.IsError() {
			return nil, &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		}
		return nil, fmt.Errorf("client: decode response from %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Code: env.Code, Message: env.Message}
	}
	return env.Data, nil
}

// --- Auth ---

type loginData struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login authenticates and stores the token and profile in the session.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	if err != nil {
		return nil, err
	}

	var ld loginData
	if err := json.Unmarshal(data, &ld); err != nil {
		return nil, fmt.Errorf("client: decode login response: %w", err)
	}
	c.session.set(ld.Token, ld.User)
	return ld.User, nil
}

// Logout revokes the token server-side. The session is cleared regardless of
// the outcome; a dead server must not pin the client to a stale identity.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	c.session.Clear()
	return err
}

// --- Users ---

// ListQuery carries list parameters. Zero values mean server defaults.
type ListQuery struct {
	Query   string
	Page    int
	PerPage int
}

func (q ListQuery) params(searchKey string) map[string]string {
	p := map[string]string{}
	if q.Query != "" {
		p[searchKey] = q.Query
	}
	if q.Page > 0 {
		p["page"] = strconv.Itoa(q.Page)
	}
	if q.PerPage > 0 {
		p["per_page"] = strconv.Itoa(q.PerPage)
	}
	return p
}

func (c *Client) ListUsers(ctx context.Context, q ListQuery) (*Page[User], error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/users", nil, q.params("query"))
	if err != nil {
		return nil, err
	}
	return decodePage[User](data)
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/users/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("client: decode user: %w", err)
	}
	return &u, nil
}

func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/v1/users", input, nil)
	if err != nil {
		return nil, err
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("client: decode user: %w", err)
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*User, error) {
	data, err := c.do(ctx, http.MethodPut, "/api/v1/users/"+id, input, nil)
	if err != nil {
		return nil, err
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("client: decode user: %w", err)
	}
	return &u, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/users/"+id, nil, nil)
	return err
}

// SetUserStatus enables or disables an account.
func (c *Client) SetUserStatus(ctx context.Context, id string, enabled bool) error {
	_, err := c.do(ctx, http.MethodPatch, "/api/v1/users/"+id+"/status", map[string]bool{
		"enabled": enabled,
	}, nil)
	return err
}

// ResetUserPassword asks the server to generate a fresh credential and
// returns it. The plaintext is only ever available in this response.
func (c *Client) ResetUserPassword(ctx context.Context, id string) (string, error) {
	data, err := c.do(ctx, http.MethodPatch, "/api/v1/users/"+id+"/reset-password", nil, nil)
	if err != nil {
		return "", err
	}
	var out struct {
		Password string `json:"password"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("client: decode reset response: %w", err)
	}
	return out.Password, nil
}

// --- Departments ---

func (c *Client) ListDepartments(ctx context.Context, q ListQuery) (*Page[Department], error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/departments", nil, q.params("search"))
	if err != nil {
		return nil, err
	}
	return decodePage[Department](data)
}

// DepartmentTree returns the full hierarchy as a forest of roots.
func (c *Client) DepartmentTree(ctx context.Context) ([]Department, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/departments/tree", nil, nil)
	if err != nil {
		return nil, err
	}
	var roots []Department
	if err := json.Unmarshal(data, &roots); err != nil {
		return nil, fmt.Errorf("client: decode tree: %w", err)
	}
	return roots, nil
}

func (c *Client) GetDepartment(ctx context.Context, id string) (*Department, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/departments/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var d Department
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("client: decode department: %w", err)
	}
	return &d, nil
}

func (c *Client) CreateDepartment(ctx context.Context, input CreateDepartmentInput) (*Department, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/v1/departments", input, nil)
	if err != nil {
		return nil, err
	}
	var d Department
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("client: decode department: %w", err)
	}
	return &d, nil
}

func (c *Client) UpdateDepartment(ctx context.Context, id string, input UpdateDepartmentInput) (*Department, error) {
	data, err := c.do(ctx, http.MethodPut, "/api/v1/departments/"+id, input, nil)
	if err != nil {
		return nil, err
	}
	var d Department
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("client: decode department: %w", err)
	}
	return &d, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/departments/"+id, nil, nil)
	return err
}

// DepartmentUsers returns the accounts associated with a department.
func (c *Client) DepartmentUsers(ctx context.Context, id string) ([]DepartmentMember, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/departments/"+id+"/users", nil, nil)
	if err != nil {
		return nil, err
	}
	var members []DepartmentMember
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("client: decode members: %w", err)
	}
	return members, nil
}

// --- Dashboard ---

func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/dashboard/stats", nil, nil)
	if err != nil {
		return nil, err
	}
	var stats DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("client: decode stats: %w", err)
	}
	return &stats, nil
}
