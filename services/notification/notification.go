package notification

import (
	"context"

	"trabby/models"
	"trabby/utils"

	"go.uber.org/zap"
)

// NotificationService delivers booking confirmations to travellers.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// DefaultNotificationService logs confirmations; the deployment's mail
// transport hangs off this interface.
type DefaultNotificationService struct {
	Logger *zap.Logger
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	logger := s.Logger
	if logger == nil {
		logger = utils.GetLogger()
	}
	logger.Info("Sending booking confirmation",
		zap.String("reference", payload.Reference),
		zap.String("email", payload.Email),
		zap.Strings("ships", payload.Ships),
		zap.Float64("totalFare", payload.TotalFare),
	)
	return nil
}
