// File: services/wizard/wizard.go
package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trabby/config"
	"trabby/models"
	"trabby/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Initiate creates a new wizard session from the raw search submission,
// assigns it a unique SessionID, and stores it in Redis. It returns the
// session along with the offerings for the first leg.
func (s *DefaultSessionService) Initiate(ctx context.Context, params map[string]interface{}, userAgent string) (*models.WizardSession, []models.FerryOffering, error) {
	legs := ParseLegs(params["sections"])
	if len(legs) == 0 {
		return nil, nil, ErrInvalidSearchParams
	}

	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		State:     NewState(legs),
		Adults:    utils.NormalizeCount(params["adults"]),
		Children:  utils.NormalizeCount(params["children"]),
		UserAgent: userAgent,
	}

	if err := s.storeSession(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, s.offeringsForCurrentStep(ctx, session), nil
}

// Get reloads a session and re-fetches the offerings for its current step.
// Catalog data is assumed to change infrequently but must reflect the latest
// availability, so there is no caching across steps.
func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.WizardSession, []models.FerryOffering, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session, s.offeringsForCurrentStep(ctx, session), nil
}

// SelectCategory resolves the chosen offering and category into the current
// step's slot and advances the wizard when it is not on the final leg. The
// offering must be among those currently listed for the step.
func (s *DefaultSessionService) SelectCategory(ctx context.Context, sessionID string, offeringID int, category string) (*models.WizardSession, []models.FerryOffering, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	offerings := s.offeringsForCurrentStep(ctx, session)
	var offering *models.FerryOffering
	for i := range offerings {
		if offerings[i].ID == offeringID {
			offering = &offerings[i]
			break
		}
	}
	if offering == nil {
		return nil, nil, NewWizardError(CodeOfferingNotFound,
			fmt.Sprintf("offering %d is not available for the current step", offeringID))
	}

	selected, err := ChooseCategory(*offering, category)
	if err != nil {
		return nil, nil, err
	}

	CommitSelection(&session.State, selected)
	if err := s.storeSession(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, s.offeringsForCurrentStep(ctx, session), nil
}

// Advance moves the wizard forward one step. The transition is refused, with
// the session unchanged, while the current slot is empty or the wizard is on
// its final step.
func (s *DefaultSessionService) Advance(ctx context.Context, sessionID string) (*models.WizardSession, []models.FerryOffering, bool, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, false, err
	}

	moved := Advance(&session.State)
	if moved {
		if err := s.storeSession(ctx, session); err != nil {
			return nil, nil, false, err
		}
	}
	return session, s.offeringsForCurrentStep(ctx, session), moved, nil
}

// Retreat steps the wizard back one leg, preserving prior selections.
func (s *DefaultSessionService) Retreat(ctx context.Context, sessionID string) (*models.WizardSession, []models.FerryOffering, bool, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, false, err
	}

	moved := Retreat(&session.State)
	if moved {
		if err := s.storeSession(ctx, session); err != nil {
			return nil, nil, false, err
		}
	}
	return session, s.offeringsForCurrentStep(ctx, session), moved, nil
}

// Confirm assembles the final booking payload and drops the session. The
// payload is handed to the contact-details stage; the wizard is done.
func (s *DefaultSessionService) Confirm(ctx context.Context, sessionID string) (*models.BookingPayload, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	payload, err := AssemblePayload(session.State, session.Adults, session.Children)
	if err != nil {
		return nil, err
	}

	s.cache().Del(ctx, sessionID)
	return &payload, nil
}

// Cancel allows the client to explicitly abandon a wizard session.
func (s *DefaultSessionService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.cache().Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel wizard session: %w", err)
	}
	return nil
}

// offeringsForCurrentStep fetches offerings for the session's current step.
// Results are tagged with the step they were issued for and discarded on
// mismatch, so a stale fetch can never populate a newer step.
func (s *DefaultSessionService) offeringsForCurrentStep(ctx context.Context, session *models.WizardSession) []models.FerryOffering {
	step := session.State.CurrentStep
	result := s.Catalog.FetchForStep(ctx, step, session.State.Legs[step])
	if result.Step != session.State.CurrentStep {
		return nil
	}
	return result.Offerings
}

func (s *DefaultSessionService) cache() *redis.Client {
	if s.Cache != nil {
		return s.Cache
	}
	return utils.GetWizardCacheClient()
}

func (s *DefaultSessionService) sessionTTL() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	if mins := config.AppConfig.WizardSessionTTLMin; mins > 0 {
		return time.Duration(mins) * time.Minute
	}
	return 30 * time.Minute
}

func (s *DefaultSessionService) loadSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.cache().Get(ctx, sessionID).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *DefaultSessionService) storeSession(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.cache().Set(ctx, session.SessionID, data, s.sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}
