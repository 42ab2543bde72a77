package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"trabby/models"
	"trabby/services/wizard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubSessionService drives the wizard handler without Redis or a catalog.
type stubSessionService struct {
	session   *models.WizardSession
	offerings []models.FerryOffering
	payload   *models.BookingPayload
	moved     bool
	err       error

	lastOfferingID int
	lastCategory   string
}

func (s *stubSessionService) Initiate(ctx context.Context, params map[string]interface{}, userAgent string) (*models.WizardSession, []models.FerryOffering, error) {
	return s.session, s.offerings, s.err
}

func (s *stubSessionService) Get(ctx context.Context, sessionID string) (*models.WizardSession, []models.FerryOffering, error) {
	return s.session, s.offerings, s.err
}

func (s *stubSessionService) SelectCategory(ctx context.Context, sessionID string, offeringID int, category string) (*models.WizardSession, []models.FerryOffering, error) {
	s.lastOfferingID = offeringID
	s.lastCategory = category
	return s.session, s.offerings, s.err
}

func (s *stubSessionService) Advance(ctx context.Context, sessionID string) (*models.WizardSession, []models.FerryOffering, bool, error) {
	return s.session, s.offerings, s.moved, s.err
}

func (s *stubSessionService) Retreat(ctx context.Context, sessionID string) (*models.WizardSession, []models.FerryOffering, bool, error) {
	return s.session, s.offerings, s.moved, s.err
}

func (s *stubSessionService) Confirm(ctx context.Context, sessionID string) (*models.BookingPayload, error) {
	return s.payload, s.err
}

func (s *stubSessionService) Cancel(ctx context.Context, sessionID string) error {
	return s.err
}

func wizardRouter(svc wizard.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWizardHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/booking/wizard", h.InitiateWizard)
	r.GET("/api/booking/wizard/:sessionID", h.GetWizard)
	r.POST("/api/booking/wizard/:sessionID/select", h.SelectCategory)
	r.POST("/api/booking/wizard/:sessionID/advance", h.AdvanceWizard)
	r.POST("/api/booking/wizard/:sessionID/confirm", h.ConfirmWizard)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testSession() *models.WizardSession {
	return &models.WizardSession{
		SessionID: "abc-123",
		State: models.WizardState{
			Legs:       []models.Leg{{From: "Port Blair", To: "Havelock", Departure: "2024-05-01"}},
			Selections: make([]*models.SelectedFerry, 1),
		},
		Adults: 2,
	}
}

func TestInitiateWizard(t *testing.T) {
	svc := &stubSessionService{session: testSession()}
	r := wizardRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/booking/wizard", gin.H{
		"sections": []gin.H{{"from": "Port Blair", "to": "Havelock", "departure": "2024-05-01"}},
		"adults":   "2",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc-123", resp["sessionID"])
	assert.Equal(t, float64(2), resp["adults"])
}

func TestInitiateWizardInvalidSearchParameters(t *testing.T) {
	svc := &stubSessionService{err: wizard.ErrInvalidSearchParams}
	r := wizardRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/booking/wizard", gin.H{"sections": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWizardNotFound(t *testing.T) {
	svc := &stubSessionService{err: wizard.ErrSessionNotFound}
	r := wizardRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/api/booking/wizard/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSelectCategoryPassesInput(t *testing.T) {
	svc := &stubSessionService{session: testSession()}
	r := wizardRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/booking/wizard/abc-123/select", gin.H{
		"offeringId": 7,
		"category":   "Economy",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, svc.lastOfferingID)
	assert.Equal(t, "Economy", svc.lastCategory)
}

func TestSelectCategoryRejectsMissingFields(t *testing.T) {
	svc := &stubSessionService{session: testSession()}
	r := wizardRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/booking/wizard/abc-123/select", gin.H{"category": "Economy"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvanceBlockedReturnsConflict(t *testing.T) {
	svc := &stubSessionService{session: testSession(), moved: false}
	r := wizardRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/booking/wizard/abc-123/advance", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestConfirmIncompleteReturnsConflict(t *testing.T) {
	svc := &stubSessionService{err: wizard.ErrIncompleteSelections}
	r := wizardRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/booking/wizard/abc-123/confirm", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestConfirmReturnsPayload(t *testing.T) {
	svc := &stubSessionService{payload: &models.BookingPayload{
		SelectedFerries: []models.SelectedFerry{{Category: "Economy", Price: 500}},
		Adults:          2,
		Children:        1,
	}}
	r := wizardRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/booking/wizard/abc-123/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Payload models.BookingPayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Payload.Adults)
	require.Len(t, resp.Payload.SelectedFerries, 1)
	assert.Equal(t, 500.0, resp.Payload.SelectedFerries[0].Price)
}
