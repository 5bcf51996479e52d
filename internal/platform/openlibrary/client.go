package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrNoEdition is returned when Open Library has no record for an ISBN.
var ErrNoEdition = errors.New("openlibrary: edition not found")

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
}

type Option func(*Client)

// WithBaseURL points the client at another host, mostly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(userAgent string, rps int, maxRetries int, opts ...Option) *Client {
	if rps <= 0 {
		rps = 1
	}
	c := &Client{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    "https://openlibrary.org",
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Edition holds the parts of an api/books?jscmd=data entry used for enrichment.
type Edition struct {
	Cover struct {
		Small  string `json:"small"`
		Medium string `json:"medium"`
		Large  string `json:"large"`
	} `json:"cover"`
	Excerpts []struct {
		Text string `json:"text"`
	} `json:"excerpts"`
}

// CoverURL prefers the largest cover available.
func (e Edition) CoverURL() string {
	switch {
	case e.Cover.Large != "":
		return e.Cover.Large
	case e.Cover.Medium != "":
		return e.Cover.Medium
	default:
		return e.Cover.Small
	}
}

func (e Edition) Excerpt() string {
	if len(e.Excerpts) == 0 {
		return ""
	}
	return e.Excerpts[0].Text
}

// EditionByISBN fetches edition data for a single ISBN.
func (c *Client) EditionByISBN(ctx context.Context, isbn string) (Edition, error) {
	key := "ISBN:" + isbn
	u := fmt.Sprintf("%s/api/books?bibkeys=%s&jscmd=data&format=json", c.baseURL, url.QueryEscape(key))

	var res map[string]Edition
	if err := c.get(ctx, u, &res); err != nil {
		return Edition{}, err
	}
	ed, ok := res[key]
	if !ok {
		return Edition{}, ErrNoEdition
	}
	return ed, nil
}

func (c *Client) get(ctx context.Context, u string, target any) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 200ms, 400ms, 800ms...
			backoff := time.Duration(1<<uint(i-1)) * 200 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		retry, err := c.do(ctx, u, target)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) do(ctx context.Context, u string, target any) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500, err
	}
	return false, json.NewDecoder(resp.Body).Decode(target)
}
