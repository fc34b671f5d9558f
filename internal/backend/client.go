package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client is the typed HTTP client for the marketplace backend. Every call
// carries the bearer token of the acting session, when one exists.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

// --------- Auth ---------

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Profile(ctx context.Context, token string) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/api/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --------- Catalog (booking selector steps) ---------

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListBusinesses(ctx context.Context, categoryID uint) ([]Business, error) {
	var out []Business
	path := fmt.Sprintf("/api/categories/%d/businesses", categoryID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListWorkers(ctx context.Context, businessID uint) ([]Worker, error) {
	var out []Worker
	path := fmt.Sprintf("/api/businesses/%d/workers", businessID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListServices(ctx context.Context, workerID uint) ([]Service, error) {
	var out []Service
	path := fmt.Sprintf("/api/workers/%d/services", workerID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --------- Appointments ---------

// ListAppointments fetches the acting user's appointments and normalizes
// them; callers only ever see the canonical shape.
func (c *Client) ListAppointments(ctx context.Context, token string) ([]Appointment, error) {
	var raws []RawAppointment
	if err := c.do(ctx, http.MethodGet, "/api/me/appointments", token, nil, &raws); err != nil {
		return nil, err
	}
	return NormalizeAll(raws), nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, req BookingRequest) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodPost, "/api/appointments", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelAppointment(ctx context.Context, token, id string) error {
	path := fmt.Sprintf("/api/appointments/%s/cancel", id)
	return c.do(ctx, http.MethodPatch, path, token, nil, nil)
}

func (c *Client) RescheduleAppointment(ctx context.Context, token, id, date, hm string) error {
	path := fmt.Sprintf("/api/appointments/%s/reschedule", id)
	body := map[string]string{"date": date, "time": hm}
	return c.do(ctx, http.MethodPatch, path, token, body, nil)
}

// --------- Working hours ---------

func (c *Client) WorkingHours(ctx context.Context, token string) ([]WorkingHours, error) {
	var out []WorkingHours
	if err := c.do(ctx, http.MethodGet, "/api/me/working-hours", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateWorkingHours(ctx context.Context, token string, hours []WorkingHours) error {
	return c.do(ctx, http.MethodPut, "/api/me/working-hours", token, hours, nil)
}

// --------- Payments ---------

func (c *Client) CompletePayment(ctx context.Context, token string, p PaymentCompletion) error {
	return c.do(ctx, http.MethodPost, "/api/payments/complete", token, p, nil)
}

// --------- Transport ---------

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		var payload struct {
			Code string `json:"error_code"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("code", payload.Code).
			Msg("backend request failed")
		return &StatusError{Status: resp.StatusCode, Code: payload.Code}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
