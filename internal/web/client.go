// Package web is the server-rendered view tier. It never touches the
// store: every page is backed by calls to the REST API through Client.
package web

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

	"travelagency/internal/dto"
)

// APIError is a non-2xx response from the REST API, decoded from its
// error body.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (%d): %s", e.Code, e.Status, e.Message)
}

// Client is a thin JSON client for the reservation API. The standard
// http.Client suffices here; there is nothing to pool or retry.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) Flights(ctx context.Context) ([]dto.Flight, error) {
	var out []dto.Flight
	err := c.do(ctx, http.MethodGet, "/api/v1/flights", nil, &out)
	return out, err
}

func (c *Client) SearchFlights(ctx context.Context, origin, destination, date string) ([]dto.Flight, error) {
	q := url.Values{}
	if origin != "" {
		q.Set("origin", origin)
	}
	if destination != "" {
		q.Set("destination", destination)
	}
	if date != "" {
		q.Set("date", date)
	}
	var out []dto.Flight
	err := c.do(ctx, http.MethodGet, "/api/v1/flights/search?"+q.Encode(), nil, &out)
	return out, err
}

func (c *Client) CreateFlight(ctx context.Context, in dto.FlightInput) (dto.Flight, error) {
	var out dto.Flight
	err := c.do(ctx, http.MethodPost, "/api/v1/flights", in, &out)
	return out, err
}

func (c *Client) DeleteFlight(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/flights/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Passengers(ctx context.Context) ([]dto.Passenger, error) {
	var out []dto.Passenger
	err := c.do(ctx, http.MethodGet, "/api/v1/passengers", nil, &out)
	return out, err
}

func (c *Client) CreatePassenger(ctx context.Context, in dto.PassengerInput) (dto.Passenger, error) {
	var out dto.Passenger
	err := c.do(ctx, http.MethodPost, "/api/v1/passengers", in, &out)
	return out, err
}

func (c *Client) DeletePassenger(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/passengers/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Reservations(ctx context.Context) ([]dto.Reservation, error) {
	var out []dto.Reservation
	err := c.do(ctx, http.MethodGet, "/api/v1/reservations", nil, &out)
	return out, err
}

func (c *Client) ReservationsByFlight(ctx context.Context, flightID string) ([]dto.Reservation, error) {
	var out []dto.Reservation
	err := c.do(ctx, http.MethodGet, "/api/v1/reservations/flight/"+url.PathEscape(flightID), nil, &out)
	return out, err
}

func (c *Client) ReservationsByPassenger(ctx context.Context, passengerID string) ([]dto.Reservation, error) {
	var out []dto.Reservation
	err := c.do(ctx, http.MethodGet, "/api/v1/reservations/passenger/"+url.PathEscape(passengerID), nil, &out)
	return out, err
}

func (c *Client) CreateReservation(ctx context.Context, flightID, passengerID, seat string) (dto.Reservation, error) {
	body := map[string]string{
		"flight_id":    flightID,
		"passenger_id": passengerID,
		"seat":         seat,
	}
	var out dto.Reservation
	err := c.do(ctx, http.MethodPost, "/api/v1/reservations", body, &out)
	return out, err
}

func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/reservations/"+url.PathEscape(id), nil, nil)
}
