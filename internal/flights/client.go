package flights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	// ErrAuthFailed is fatal for a search: the credential grant was
	// rejected. Not retried; the user must re-trigger the search.
	ErrAuthFailed = errors.New("authentication failed, unable to connect to flight services")

	ErrSearchFailed = errors.New("failed to fetch flight offers")
)

// SearchQuery carries the offer-search parameters. Empty fields are
// omitted from the request.
type SearchQuery struct {
	Origin        string
	Destination   string
	DepartureDate string // yyyy-mm-dd
	ReturnDate    string
	Adults        int
	Children      int
	Infants       int
	TravelClass   string
	NonStop       bool
	Max           int
}

// Client talks to the external flight search API using a
// client-credentials bearer token. The token source caches and
// refreshes the token between calls.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     oauth2.TokenSource
}

type ClientConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		tokens:     cc.TokenSource(ctx),
	}
}

// SearchOffers acquires a bearer token and fetches offers. Both steps
// are sequential and neither is retried: a token failure surfaces as
// ErrAuthFailed, a non-success search response as ErrSearchFailed with
// the API's own detail message when one can be extracted.
func (c *Client) SearchOffers(ctx context.Context, q SearchQuery) (*OffersResponse, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/shopping/flight-offers?"+q.values().Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	token.SetAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrSearchFailed, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrSearchFailed, apiErrorDetail(body))
	}

	var out OffersResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrSearchFailed, err)
	}
	return &out, nil
}

// values assembles the query string, including only non-empty
// parameters.
func (q SearchQuery) values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("originLocationCode", q.Origin)
	set("destinationLocationCode", q.Destination)
	set("departureDate", q.DepartureDate)
	set("returnDate", q.ReturnDate)
	if q.Adults > 0 {
		v.Set("adults", strconv.Itoa(q.Adults))
	}
	if q.Children > 0 {
		v.Set("children", strconv.Itoa(q.Children))
	}
	if q.Infants > 0 {
		v.Set("infants", strconv.Itoa(q.Infants))
	}
	set("travelClass", q.TravelClass)
	if q.NonStop {
		v.Set("nonStop", "true")
	}
	if q.Max > 0 {
		v.Set("max", strconv.Itoa(q.Max))
	}
	return v
}

// apiErrorDetail extracts the first error detail from the API's error
// envelope, best effort.
func apiErrorDetail(body []byte) string {
	var envelope struct {
		Errors []struct {
			Detail string `json:"detail"`
			Title  string `json:"title"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		if d := envelope.Errors[0].Detail; d != "" {
			return d
		}
		if t := envelope.Errors[0].Title; t != "" {
			return t
		}
	}
	return "please check your search criteria and try again"
}
