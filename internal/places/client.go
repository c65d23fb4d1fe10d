// Package places resolves free-text hotel names to property details
// through an external hotel metadata API.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/wb-go/wbf/retry"
)

// ErrMissingAPIKey means lookup is not configured; callers surface it
// as a service-unavailable condition rather than an empty result.
var ErrMissingAPIKey = errors.New("places API key is not configured")

const maxResults = 5

// Result is a normalized hotel property match.
type Result struct {
	Title     string  `json:"title"`
	Address   string  `json:"address,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Website   string  `json:"website,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
	Reviews   int     `json:"reviews,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Client queries the hotel metadata API. Lookups are best effort:
// transient failures are retried, and anything the provider returns
// without a usable title is dropped.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	strategy   retry.Strategy
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Lookup searches properties matching the query and returns at most
// five normalized results.
func (c *Client) Lookup(ctx context.Context, query string) ([]Result, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("engine", "google_hotels")
	params.Set("q", query)
	params.Set("api_key", c.apiKey)

	var body []byte
	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/search?"+params.Encode(), nil)
		if err != nil {
			return err
		}
		res, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			io.Copy(io.Discard, res.Body)
			return fmt.Errorf("places lookup: status %d", res.StatusCode)
		}
		body, err = io.ReadAll(res.Body)
		return err
	}, c.strategy)
	if err != nil {
		return nil, fmt.Errorf("places lookup %q: %w", query, err)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("places lookup %q: decode response: %w", query, err)
	}
	return normalize(payload.Properties), nil
}

// searchResponse mirrors the provider's property list. Fields come in
// two naming generations; normalize reconciles them.
type searchResponse struct {
	Properties []property `json:"properties"`
}

type property struct {
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Website       string   `json:"link"`
	OverallRating float64  `json:"overall_rating"`
	Rating        float64  `json:"rating"`
	TotalReviews  int      `json:"total_reviews"`
	Reviews       int      `json:"reviews"`
	GPS           *gpsInfo `json:"gps_coordinates"`
}

type gpsInfo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// normalize prefers the newer field names (name, overall_rating,
// total_reviews) over their legacy counterparts, drops properties
// without a title, and caps the list at maxResults.
func normalize(props []property) []Result {
	var out []Result
	for _, p := range props {
		title := p.Name
		if title == "" {
			title = p.Title
		}
		if title == "" {
			continue
		}
		r := Result{
			Title:   title,
			Address: p.Address,
			Phone:   p.Phone,
			Website: p.Website,
			Rating:  p.OverallRating,
			Reviews: p.TotalReviews,
		}
		if r.Rating == 0 {
			r.Rating = p.Rating
		}
		if r.Reviews == 0 {
			r.Reviews = p.Reviews
		}
		if p.GPS != nil {
			r.Latitude = p.GPS.Latitude
			r.Longitude = p.GPS.Longitude
		}
		out = append(out, r)
		if len(out) == maxResults {
			break
		}
	}
	return out
}
