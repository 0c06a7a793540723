package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"wayfare/internal/extract"
)

// BookingAPIClient is the outbound client for the travel-data provider. It
// returns decoded-but-untyped payloads; all shape handling belongs to the
// extractor.
type BookingAPIClient interface {
	SearchAttractionLocation(ctx context.Context, query string) (extract.Record, error)
	SearchFlightDestination(ctx context.Context, query string) (extract.Record, error)
	SearchFlights(ctx context.Context, fromID, toID string) (extract.Record, error)
	SearchAttractions(ctx context.Context, destID string) (extract.Record, error)
}

type RapidAPIBookingClient struct {
	HTTP    *http.Client
	APIKey  string
	APIHost string
	BaseURL string
}

func NewRapidAPIBookingClient() BookingAPIClient {
	host := os.Getenv("BOOKING_API_HOST")
	if host == "" {
		host = "booking-com15.p.rapidapi.com"
	}
	return &RapidAPIBookingClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  os.Getenv("RAPIDAPI_KEY"),
		APIHost: host,
		BaseURL: "https://" + host + "/api/v1",
	}
}

func (c *RapidAPIBookingClient) get(ctx context.Context, path string, params url.Values) (extract.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.APIKey)
	req.Header.Set("x-rapidapi-host", c.APIHost)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("booking api %s: status %d", path, resp.StatusCode)
	}

	// Some provider endpoints answer with a bare array, wrap it so callers
	// always get an object.
	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("booking api %s: decode: %w", path, err)
	}
	switch v := payload.(type) {
	case map[string]any:
		return extract.Record(v), nil
	case []any:
		return extract.Record{"data": v}, nil
	default:
		return extract.Record{}, nil
	}
}

func (c *RapidAPIBookingClient) SearchAttractionLocation(ctx context.Context, query string) (extract.Record, error) {
	return c.get(ctx, "/attraction/searchLocation", url.Values{
		"query":        {query},
		"languagecode": {"en-us"},
	})
}

func (c *RapidAPIBookingClient) SearchFlightDestination(ctx context.Context, query string) (extract.Record, error) {
	return c.get(ctx, "/flights/searchDestination", url.Values{
		"query": {query},
	})
}

func (c *RapidAPIBookingClient) SearchFlights(ctx context.Context, fromID, toID string) (extract.Record, error) {
	return c.get(ctx, "/flights/searchFlights", url.Values{
		"fromId":        {fromID},
		"toId":          {toID},
		"stops":         {"none"},
		"pageNo":        {"1"},
		"adults":        {"1"},
		"children":      {"0"},
		"sort":          {"BEST"},
		"cabinClass":    {"ECONOMY"},
		"currency_code": {"AED"},
	})
}

func (c *RapidAPIBookingClient) SearchAttractions(ctx context.Context, destID string) (extract.Record, error) {
	return c.get(ctx, "/attraction/searchAttractions", url.Values{
		"id":            {destID},
		"page":          {"1"},
		"currency_code": {"AED"},
		"languagecode":  {"en-us"},
	})
}
