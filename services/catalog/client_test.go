package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"trabby/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
	"status": "success",
	"data": [
		{"id": 1, "ship_name": "Makruzz", "from": "pb", "to": "hl", "departure": "06:30", "arrival": "08:00",
		 "prices": [{"category": "Economy", "price": 500, "pmb": 0}]},
		{"id": 2, "ship_name": "Green Ocean", "from": "PB", "to": "HL", "departure": "09:00", "arrival": "11:30",
		 "prices": [{"category": "Economy", "price": 450, "pmb": 50}, {"category": "Royal", "price": 950, "pmb": 50}]},
		{"id": 3, "ship_name": "Nautika", "from": "hl", "to": "nl", "departure": "12:00", "arrival": "13:00",
		 "prices": [{"category": "Luxury", "price": 1200, "pmb": 150}]}
	]
}`

func catalogServer(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL)
}

func serveJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestCatalogFetch(t *testing.T) {
	client := catalogServer(t, serveJSON(sampleCatalog))

	data, err := client.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, data, 3)
	assert.Equal(t, "Makruzz", data[0].ShipName)
}

func TestOfferingsForLegFiltersCaseInsensitively(t *testing.T) {
	client := catalogServer(t, serveJSON(sampleCatalog))
	leg := models.Leg{From: "Port Blair", To: "Havelock", Departure: "2024-05-01"}

	offerings := client.OfferingsForLeg(context.Background(), leg)
	require.Len(t, offerings, 2, "pb/hl and PB/HL must both match")
	assert.Equal(t, "Makruzz", offerings[0].ShipName)
	assert.Equal(t, "Green Ocean", offerings[1].ShipName)
}

func TestOfferingsForLegNoRouteMatch(t *testing.T) {
	client := catalogServer(t, serveJSON(sampleCatalog))
	leg := models.Leg{From: "Neil Island", To: "Havelock", Departure: "2024-05-01"}

	assert.Empty(t, client.OfferingsForLeg(context.Background(), leg))
}

func TestOfferingsForLegUnmappedLocation(t *testing.T) {
	client := catalogServer(t, serveJSON(sampleCatalog))
	leg := models.Leg{From: "Atlantis", To: "Havelock", Departure: "2024-05-01"}

	// The Not Found sentinel never matches a route code.
	assert.Empty(t, client.OfferingsForLeg(context.Background(), leg))
}

func TestCatalogFailuresDegradeToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"status not success", serveJSON(`{"status": "error", "data": []}`)},
		{"missing data array", serveJSON(`{"status": "success"}`)},
		{"not json", serveJSON(`<html>gateway timeout</html>`)},
	}

	leg := models.Leg{From: "Port Blair", To: "Havelock", Departure: "2024-05-01"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := catalogServer(t, tt.handler)

			_, err := client.Catalog(context.Background())
			require.Error(t, err)

			// The leg-level call swallows the failure into an empty result.
			assert.Empty(t, client.OfferingsForLeg(context.Background(), leg))
		})
	}
}

func TestCatalogTransportFailure(t *testing.T) {
	srv := httptest.NewServer(serveJSON(sampleCatalog))
	client := NewHTTPClient(srv.URL)
	srv.Close() // connection refused from here on

	_, err := client.Catalog(context.Background())
	require.Error(t, err)
	assert.Empty(t, client.OfferingsForLeg(context.Background(), models.Leg{From: "Port Blair", To: "Havelock"}))
}

func TestFetchForStepTagsResult(t *testing.T) {
	client := catalogServer(t, serveJSON(sampleCatalog))
	leg := models.Leg{From: "Havelock", To: "Neil Island", Departure: "2024-05-03"}

	result := client.FetchForStep(context.Background(), 1, leg)
	assert.Equal(t, 1, result.Step)
	require.Len(t, result.Offerings, 1)
	assert.Equal(t, "Nautika", result.Offerings[0].ShipName)
}
