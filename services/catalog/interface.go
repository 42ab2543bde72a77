package catalog

import (
	"context"

	"trabby/models"
)

// StepOfferings tags a fetch result with the wizard step it was issued for,
// so a late response can be discarded instead of overwriting a newer step's
// offerings.
type StepOfferings struct {
	Step      int
	Offerings []models.FerryOffering
}

// Client fetches sailings from the upstream ferry catalog.
type Client interface {
	// Catalog returns the entire upstream catalog or a fetch error.
	Catalog(ctx context.Context) ([]models.FerryOffering, error)

	// OfferingsForLeg narrows the catalog to the leg's route. Failures
	// degrade to an empty result, indistinguishable from a sold-out route.
	OfferingsForLeg(ctx context.Context, leg models.Leg) []models.FerryOffering

	// FetchForStep is OfferingsForLeg tagged with the issuing step.
	FetchForStep(ctx context.Context, step int, leg models.Leg) StepOfferings
}
