package petkeep

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the default PetKeep API endpoint.
	DefaultBaseURL = "http://localhost:8080/api/v1"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is the PetKeep API client.
//
// Use NewClient to create a new client:
//
//	client := petkeep.NewClient()
//	resp, err := client.Auth.Login(ctx, "ana@example.com", "secret")
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	sessions   SessionStore

	// Services
	Auth       *AuthService
	Customers  *CustomersService
	PetSitters *PetSittersService
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
//
// Example:
//
//	client := petkeep.NewClient(petkeep.WithBaseURL("https://api.petkeep.app/api/v1"))
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithSessionStore sets the session store used to persist the auth token.
// The default is an in-process MemStore; CLI and app embedders should
// supply a durable store so the session survives restarts.
func WithSessionStore(store SessionStore) Option {
	return func(c *Client) {
		c.sessions = store
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new PetKeep API client.
//
// Example:
//
//	store, _ := store.Open(dbPath)
//	client := petkeep.NewClient(
//	    petkeep.WithBaseURL("https://api.petkeep.app/api/v1"),
//	    petkeep.WithSessionStore(store),
//	)
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: sdkUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		sessions: NewMemStore(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Initialize services
	c.Auth = &AuthService{client: c}
	c.Customers = &CustomersService{client: c}
	c.PetSitters = &PetSittersService{client: c}

	return c
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Sessions returns the session store backing this client.
func (c *Client) Sessions() SessionStore {
	return c.sessions
}
