// Package ipo proxies the Finnhub IPO calendar with a short-lived Redis
// cache in front of it.
package ipo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	defaultBaseURL  = "https://finnhub.io/api/v1"
	cacheExpiration = 5 * time.Minute
)

// Offering is one entry of the Finnhub IPO calendar, passed through to
// clients as-is.
type Offering struct {
	Date     string `json:"date"`
	Company  string `json:"company"`
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
	Action   string `json:"action"`
	Shares   int64  `json:"shares"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type calendarResponse struct {
	IpoCalendar []Offering `json:"ipoCalendar"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *redis.Client
}

// NewClient reads FINNHUB_API_KEY from the environment. cache may be nil;
// every lookup then goes straight to the API.
func NewClient(cache *redis.Client) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     os.Getenv("FINNHUB_API_KEY"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
	}
}

// Calendar returns the IPO offerings between from and to (both YYYY-MM-DD,
// inclusive). Cached responses are served for 5 minutes; cache errors fall
// through to an uncached fetch.
func (c *Client) Calendar(ctx context.Context, from, to string) ([]Offering, error) {
	cacheKey := fmt.Sprintf("ipo:calendar:%s:%s", from, to)

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Result(); err == nil {
			var offerings []Offering
			if err := json.Unmarshal([]byte(cached), &offerings); err == nil {
				return offerings, nil
			}
		}
	}

	reqURL := fmt.Sprintf("%s/calendar/ipo?from=%s&to=%s&token=%s",
		c.baseURL, url.QueryEscape(from), url.QueryEscape(to), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching IPO calendar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("IPO calendar request failed with status %d", resp.StatusCode)
	}

	var result calendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing IPO calendar: %w", err)
	}

	offerings := result.IpoCalendar
	if offerings == nil {
		offerings = []Offering{}
	}

	if c.cache != nil {
		if data, err := json.Marshal(offerings); err == nil {
			c.cache.Set(ctx, cacheKey, data, cacheExpiration)
		}
	}

	return offerings, nil
}

// CurrentMonth returns the offerings of the current calendar month.
func (c *Client) CurrentMonth(ctx context.Context) ([]Offering, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return c.Calendar(ctx, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// Next30Days returns the offerings of the coming 30 days.
func (c *Client) Next30Days(ctx context.Context) ([]Offering, error) {
	now := time.Now()
	return c.Calendar(ctx, now.Format("2006-01-02"), now.AddDate(0, 0, 30).Format("2006-01-02"))
}
