package wizard

import (
	"context"
	"time"

	"trabby/models"
	"trabby/services/catalog"

	"github.com/go-redis/redis/v8"
)

// SessionService defines the interface for the stateful ferry-selection
// wizard: one Redis-backed session per booking flow.
type SessionService interface {
	Initiate(ctx context.Context, params map[string]interface{}, userAgent string) (*models.WizardSession, []models.FerryOffering, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSession, []models.FerryOffering, error)
	SelectCategory(ctx context.Context, sessionID string, offeringID int, category string) (*models.WizardSession, []models.FerryOffering, error)
	Advance(ctx context.Context, sessionID string) (*models.WizardSession, []models.FerryOffering, bool, error)
	Retreat(ctx context.Context, sessionID string) (*models.WizardSession, []models.FerryOffering, bool, error)
	Confirm(ctx context.Context, sessionID string) (*models.BookingPayload, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Catalog catalog.Client
	// Cache overrides the shared wizard cache client, mainly for tests.
	Cache *redis.Client
	// TTL overrides the configured session lifetime when positive.
	TTL time.Duration
}
