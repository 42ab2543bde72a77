// File: services/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"trabby/models"
	"trabby/utils"

	"go.uber.org/zap"
)

const catalogPath = "/api/v1/ferries"

// HTTPClient implements Client against the upstream catalog API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a catalog client for the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 8 * time.Second},
	}
}

// Catalog fetches the entire upstream catalog. The endpoint is a stateless,
// idempotent read; a non-2xx status or an envelope without status "success"
// and a data array is an error.
func (c *HTTPClient) Catalog(ctx context.Context) ([]models.FerryOffering, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+catalogPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var payload models.CatalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding catalog response failed: %w", err)
	}
	if payload.Status != "success" {
		return nil, fmt.Errorf("catalog returned result %q", payload.Status)
	}
	if payload.Data == nil {
		return nil, fmt.Errorf("catalog response has no data array")
	}
	return payload.Data, nil
}

// OfferingsForLeg fetches the full catalog fresh (no caching across steps)
// and narrows it to sailings on the leg's route. Transport failures and
// malformed envelopes are logged and degrade to an empty result.
func (c *HTTPClient) OfferingsForLeg(ctx context.Context, leg models.Leg) []models.FerryOffering {
	all, err := c.Catalog(ctx)
	if err != nil {
		utils.GetLogger().Warn("Ferry catalog fetch failed",
			zap.String("from", leg.From), zap.String("to", leg.To), zap.Error(err))
		return nil
	}
	return FilterByRoute(all, leg)
}

// FetchForStep tags OfferingsForLeg's result with the issuing step.
func (c *HTTPClient) FetchForStep(ctx context.Context, step int, leg models.Leg) StepOfferings {
	return StepOfferings{Step: step, Offerings: c.OfferingsForLeg(ctx, leg)}
}

// FilterByRoute keeps offerings whose route codes match the leg's endpoints,
// case-insensitively. Leg endpoints carry display names; unmapped names
// translate to the Not Found sentinel and match nothing.
func FilterByRoute(offerings []models.FerryOffering, leg models.Leg) []models.FerryOffering {
	fromCode := string(models.CodeForLocation(leg.From))
	toCode := string(models.CodeForLocation(leg.To))

	var matched []models.FerryOffering
	for _, offering := range offerings {
		if strings.EqualFold(offering.From, fromCode) && strings.EqualFold(offering.To, toCode) {
			matched = append(matched, offering)
		}
	}
	return matched
}
