package handlers

import (
	"net/http"

	"trabby/services/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler serves the multi-leg ferry-selection wizard.
type WizardHandler struct {
	Service wizard.SessionService
	Logger  *zap.Logger
}

func NewWizardHandler(svc wizard.SessionService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Service: svc, Logger: logger}
}

// InitiateWizard starts a wizard session from the search form's raw
// submission (sections + adults + children, shapes normalized server-side).
func (h *WizardHandler) InitiateWizard(c *gin.Context) {
	var params map[string]interface{}
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, offerings, err := h.Service.Initiate(c.Request.Context(), params, c.Request.UserAgent())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": session.SessionID,
		"state":     session.State,
		"adults":    session.Adults,
		"children":  session.Children,
		"offerings": offerings,
	})
}

// GetWizard returns the current wizard state plus fresh offerings for the
// current step.
func (h *WizardHandler) GetWizard(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, offerings, err := h.Service.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondSession(c, session, offerings)
}

// SelectCategory commits a priced category for the current step and advances
// the wizard when it is not on the last leg.
func (h *WizardHandler) SelectCategory(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		OfferingID int    `json:"offeringId" binding:"required"`
		Category   string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, offerings, err := h.Service.SelectCategory(c.Request.Context(), sessionID, input.OfferingID, input.Category)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondSession(c, session, offerings)
}

// AdvanceWizard moves the wizard forward; refused while the current slot is
// empty or the wizard sits on the final step.
func (h *WizardHandler) AdvanceWizard(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, offerings, moved, err := h.Service.Advance(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !moved {
		c.JSON(http.StatusConflict, gin.H{"error": "cannot advance", "details": "current step has no selection or wizard is on the final step"})
		return
	}
	h.respondSession(c, session, offerings)
}

// RetreatWizard steps the wizard back one leg.
func (h *WizardHandler) RetreatWizard(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, offerings, moved, err := h.Service.Retreat(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !moved {
		c.JSON(http.StatusConflict, gin.H{"error": "cannot retreat", "details": "wizard is already on the first step"})
		return
	}
	h.respondSession(c, session, offerings)
}

// ConfirmWizard assembles the final booking payload and finishes the session.
func (h *WizardHandler) ConfirmWizard(c *gin.Context) {
	sessionID := c.Param("sessionID")
	payload, err := h.Service.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payload": payload})
}

// CancelWizard abandons the session.
func (h *WizardHandler) CancelWizard(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.Cancel(c.Request.Context(), sessionID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *WizardHandler) respondSession(c *gin.Context, session interface{}, offerings interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"session":   session,
		"offerings": offerings,
	})
}

func (h *WizardHandler) respondError(c *gin.Context, err error) {
	switch wizard.ErrorCode(err) {
	case wizard.CodeInvalidSearchParameters:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search parameters", "details": err.Error()})
	case wizard.CodeSessionNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "wizard session not found or expired"})
	case wizard.CodeOfferingNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "offering not found", "details": err.Error()})
	case wizard.CodeIncompleteSelections, wizard.CodeNoAdults:
		c.JSON(http.StatusConflict, gin.H{"error": "cannot confirm booking", "details": err.Error()})
	case wizard.CodeCategoryNotFound:
		// Data/UI desync, not user error.
		h.Logger.Error("Category selection desync", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "category not found", "details": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "wizard operation failed", "details": err.Error()})
	}
}
