package flights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, offers http.HandlerFunc, tokenStatus int) (*Client, *url.Values) {
	t.Helper()

	var gotQuery url.Values

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if tokenStatus != http.StatusOK {
			w.WriteHeader(tokenStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":1799}`))
	})
	mux.HandleFunc("/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		offers(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient(ClientConfig{
		BaseURL:      srv.URL,
		TokenURL:     srv.URL + "/token",
		ClientID:     "id",
		ClientSecret: "secret",
	})
	return c, &gotQuery
}

func TestClient_SearchOffers_Success(t *testing.T) {
	c, gotQuery := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"meta":{"count":1},"data":[{"id":"1","price":{"currency":"USD","total":"199.99"},"itineraries":[]}]}`))
	}, http.StatusOK)

	res, err := c.SearchOffers(context.Background(), SearchQuery{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: "2026-09-10",
		Adults:        2,
		Max:           25,
	})
	require.NoError(t, err)

	require.Len(t, res.Data, 1)
	assert.Equal(t, "1", res.Data[0].ID)

	q := *gotQuery
	assert.Equal(t, "DEL", q.Get("originLocationCode"))
	assert.Equal(t, "BOM", q.Get("destinationLocationCode"))
	assert.Equal(t, "2026-09-10", q.Get("departureDate"))
	assert.Equal(t, "2", q.Get("adults"))
	assert.Equal(t, "25", q.Get("max"))
}

func TestClient_SearchOffers_OmitsEmptyParams(t *testing.T) {
	c, gotQuery := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}, http.StatusOK)

	_, err := c.SearchOffers(context.Background(), SearchQuery{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: "2026-09-10",
		Adults:        1,
	})
	require.NoError(t, err)

	q := *gotQuery
	_, hasReturn := q["returnDate"]
	_, hasChildren := q["children"]
	_, hasNonStop := q["nonStop"]
	_, hasClass := q["travelClass"]
	assert.False(t, hasReturn)
	assert.False(t, hasChildren)
	assert.False(t, hasNonStop)
	assert.False(t, hasClass)
}

func TestClient_SearchOffers_NonStopFlagSent(t *testing.T) {
	c, gotQuery := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}, http.StatusOK)

	_, err := c.SearchOffers(context.Background(), SearchQuery{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: "2026-09-10",
		Adults:        1,
		NonStop:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, "true", (*gotQuery).Get("nonStop"))
}

func TestClient_SearchOffers_TokenFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("offers endpoint must not be reached when token fails")
	}, http.StatusUnauthorized)

	_, err := c.SearchOffers(context.Background(), SearchQuery{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: "2026-09-10",
	})

	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestClient_SearchOffers_APIErrorDetail(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"title":"INVALID DATE","detail":"Date/Time is in the past"}]}`))
	}, http.StatusOK)

	_, err := c.SearchOffers(context.Background(), SearchQuery{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: "2020-01-01",
	})

	require.ErrorIs(t, err, ErrSearchFailed)
	assert.Contains(t, err.Error(), "Date/Time is in the past")
}

func TestClient_SearchOffers_MalformedErrorBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}, http.StatusOK)

	_, err := c.SearchOffers(context.Background(), SearchQuery{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: "2026-09-10",
	})

	require.ErrorIs(t, err, ErrSearchFailed)
	assert.Contains(t, err.Error(), "check your search criteria")
}
