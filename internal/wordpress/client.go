package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	apiPathPrefix = "/wp-json"

	defaultTimeout   = 30 * time.Second
	defaultPageSize  = 100
	defaultPageDelay = 500 * time.Millisecond

	maxErrorBodyLen = 512
)

// Config identifies a WordPress site and optional application password.
type Config struct {
	BaseURL  string
	Username string
	Password string
}

// NormalizeBaseURL turns any site or API URL into the canonical wp-json
// API root, e.g. "https://example.com/" -> "https://example.com/wp-json".
func NormalizeBaseURL(raw string) string {
	u := strings.TrimSpace(raw)
	u = strings.TrimRight(u, "/")
	u = strings.TrimSuffix(u, "/wp/v2")
	u = strings.TrimSuffix(u, apiPathPrefix)
	return u + apiPathPrefix
}

// Client interfaces with the WordPress REST API.
type Client struct {
	httpClient *http.Client
	cfg        Config

	// Pagination pacing. Zero values fall back to the package defaults
	// set by NewClient.
	PageSize  int
	PageDelay time.Duration
	MaxPages  int
}

// NewClient creates a client for the given site. The config URL is
// normalized, so callers may pass the plain site URL.
func NewClient(cfg Config) *Client {
	cfg.BaseURL = NormalizeBaseURL(cfg.BaseURL)
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		cfg:        cfg,
		PageSize:   defaultPageSize,
		PageDelay:  defaultPageDelay,
	}
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

func (c *Client) authenticated() bool {
	return c.cfg.Username != "" && c.cfg.Password != ""
}

// TestConnection issues a minimal request against candidate endpoints and
// succeeds if any of them responds 200 with a JSON array or object body.
// Used to fail fast before a long import.
func (c *Client) TestConnection(ctx context.Context) error {
	var lastErr error
	for _, endpoint := range []string{"posts", "categories"} {
		q := url.Values{}
		q.Set("per_page", "1")
		body, _, status, err := c.get(ctx, endpoint, q)
		if err != nil {
			lastErr = err
			continue
		}
		if status != http.StatusOK {
			lastErr = &StatusError{StatusCode: status, Body: truncateBody(body)}
			continue
		}
		trimmed := strings.TrimSpace(string(body))
		if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
			return nil
		}
		lastErr = fmt.Errorf("endpoint %s did not return JSON", endpoint)
	}
	return fmt.Errorf("connection test failed: %w", lastErr)
}

// FetchUsers retrieves all users visible to the configured credentials.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	return fetchCollection[User](ctx, c, "users", nil)
}

// FetchCategories retrieves all categories.
func (c *Client) FetchCategories(ctx context.Context) ([]Category, error) {
	return fetchCollection[Category](ctx, c, "categories", nil)
}

// FetchPosts retrieves posts. The status filter is only sent when
// credentials are configured: an unauthenticated request with a status
// filter is rejected by WordPress, which silently defaults public
// clients to published posts anyway.
func (c *Client) FetchPosts(ctx context.Context, statuses []string) ([]Post, error) {
	q := url.Values{}
	if c.authenticated() && len(statuses) > 0 {
		q.Set("status", strings.Join(statuses, ","))
	}
	return fetchCollection[Post](ctx, c, "posts", q)
}

// FetchMedia retrieves a single media attachment by id. A 404 is not an
// error: the attachment may have been deleted on the source site, so the
// caller simply gets nil.
func (c *Client) FetchMedia(ctx context.Context, id int) (*Media, error) {
	body, _, status, err := c.get(ctx, fmt.Sprintf("media/%d", id), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, &StatusError{StatusCode: status, Body: truncateBody(body)}
	}

	var media Media
	if err := json.Unmarshal(body, &media); err != nil {
		return nil, fmt.Errorf("failed to decode media %d: %w", id, err)
	}
	return &media, nil
}

// fetchCollection pages through a collection endpoint until a short page,
// the server-reported total page count, or the MaxPages cap is reached.
// Between pages it waits PageDelay to avoid hammering the remote site.
func fetchCollection[T any](ctx context.Context, c *Client, endpoint string, query url.Values) ([]T, error) {
	var all []T
	page := 1
	totalPages := 0

	for {
		q := url.Values{}
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		q.Set("per_page", strconv.Itoa(c.PageSize))
		q.Set("page", strconv.Itoa(page))

		body, header, status, err := c.get(ctx, endpoint, q)
		if err != nil {
			return nil, fmt.Errorf("fetching %s page %d: %w", endpoint, page, err)
		}
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil, fmt.Errorf("fetching %s: %w", endpoint, ErrUnauthorized)
		}
		if status != http.StatusOK {
			return nil, &StatusError{StatusCode: status, Body: truncateBody(body)}
		}

		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("failed to decode %s page %d: %w", endpoint, page, err)
		}
		all = append(all, items...)

		if totalPages == 0 {
			if n, err := strconv.Atoi(header.Get("X-WP-TotalPages")); err == nil {
				totalPages = n
			}
		}

		if len(items) < c.PageSize {
			break
		}
		if totalPages > 0 && page >= totalPages {
			break
		}
		if c.MaxPages > 0 && page >= c.MaxPages {
			break
		}

		if c.PageDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.PageDelay):
			}
		}
		page++
	}

	return all, nil
}

// get performs one GET against the API root. It only returns transport
// errors; callers are responsible for interpreting the status code.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, http.Header, int, error) {
	u := c.cfg.BaseURL + "/wp/v2/" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.authenticated() {
		req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, nil, 0, fmt.Errorf("%w: GET %s", ErrTimeout, u)
		}
		return nil, nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.Header, resp.StatusCode, nil
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func truncateBody(body []byte) string {
	s := string(body)
	if len(s) > maxErrorBodyLen {
		return s[:maxErrorBodyLen] + "..."
	}
	return s
}
