package redump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"discsub/internal/config"
	"discsub/internal/logging"
	"discsub/internal/services"
)

const maxBodyBytes = 8 << 20

// Client talks to the disc catalog website.
type Client struct {
	baseURL    string
	forumURL   string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client. A cookie jar is attached
// when the client has none so login sessions persist.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			clone := *client
			c.httpClient = &clone
		}
	}
}

// WithForumURL sets the forum root used for login.
func WithForumURL(forumURL string) Option {
	return func(c *Client) {
		if forumURL = strings.TrimSpace(forumURL); forumURL != "" {
			c.forumURL = strings.TrimRight(forumURL, "/")
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = strings.TrimSpace(agent)
	}
}

// WithRateLimit throttles requests to perSecond. Zero or negative disables
// throttling.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.NewComponentLogger(logger, "redump")
	}
}

// New creates a catalog client rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("redump base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		forumURL:   strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Inf, 1),
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		client.httpClient.Jar = jar
	}
	return client, nil
}

// NewFromConfig builds a client from the [redump] configuration section.
func NewFromConfig(cfg config.Redump, logger *slog.Logger) (*Client, error) {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return New(cfg.BaseURL,
		WithHTTPClient(&http.Client{Timeout: timeout}),
		WithForumURL(cfg.ForumURL),
		WithUserAgent(cfg.UserAgent),
		WithRateLimit(cfg.RequestsPerSecond),
		WithLogger(logger),
	)
}

// BaseURL returns the catalog root.
func (c *Client) BaseURL() string { return c.baseURL }

// DiscURL returns the detail page address for id.
func (c *Client) DiscURL(id int) string {
	return fmt.Sprintf("%s/disc/%d/", c.baseURL, id)
}

// FetchDetail downloads the detail page for a disc.
func (c *Client) FetchDetail(ctx context.Context, id int) (string, error) {
	if id <= 0 {
		return "", services.Wrap(services.ErrValidation, "redump", "fetch detail", fmt.Sprintf("invalid disc id %d", id), nil)
	}
	body, err := c.get(ctx, c.DiscURL(id))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	ctx := req.Context()
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, services.Wrap(services.ErrTransport, "redump", "throttle", req.URL.String(), err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, "redump", req.Method, fmt.Sprintf("%s (latency=%v)", req.URL, latency), err)
	}
	defer resp.Body.Close()

	c.logger.Debug("catalog request",
		logging.String("method", req.Method),
		logging.String("url", req.URL.String()),
		logging.Int("status", resp.StatusCode),
		logging.Duration("latency", latency),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPStatusError{URL: req.URL.String(), StatusCode: resp.StatusCode, Location: resp.Header.Get("Location")}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, "redump", "read body", req.URL.String(), err)
	}
	return body, nil
}

func (c *Client) postForm(ctx context.Context, target string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}
