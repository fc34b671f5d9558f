package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Server-side proxy for the places API. The API key lives here and is never
// rendered into a page; the browser only ever talks to this process.

const DefaultDebounce = 500 * time.Millisecond

type Suggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger

	debounce time.Duration

	mu  sync.Mutex
	gen map[string]uint64
}

func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
		debounce: DefaultDebounce,
		gen:      map[string]uint64{},
	}
}

// Autocomplete issues an upstream lookup after a trailing debounce window.
// A newer query under the same key supersedes the waiting one, which then
// returns no suggestions without ever hitting the upstream.
func (c *Client) Autocomplete(ctx context.Context, key, input string) ([]Suggestion, error) {
	gen := c.bump(key)

	select {
	case <-time.After(c.debounce):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if !c.isCurrent(key, gen) {
		return nil, nil
	}

	return c.lookup(ctx, input)
}

func (c *Client) bump(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen[key]++
	return c.gen[key]
}

func (c *Client) isCurrent(key string, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen[key] == gen
}

func (c *Client) lookup(ctx context.Context, input string) ([]Suggestion, error) {
	q := url.Values{}
	q.Set("input", input)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/autocomplete/json?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("places autocomplete failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("places autocomplete failed")
		return nil, fmt.Errorf("places: status %d", resp.StatusCode)
	}

	var payload struct {
		Predictions []Suggestion `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Predictions, nil
}

// StaticMap fetches a map image for an address so pages can embed it
// without the key ever reaching the browser.
func (c *Client) StaticMap(ctx context.Context, address string) ([]byte, string, error) {
	q := url.Values{}
	q.Set("center", address)
	q.Set("zoom", "15")
	q.Set("size", "600x300")
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/staticmap?"+q.Encode(), nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("places: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}
