package tasks

import (
	"encoding/json"
	"fmt"

	"trabby/config"
	"trabby/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "booking:confirmation"

// NewConfirmationTask builds the asynq task for a booking confirmation.
func NewConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}

// ConfirmationEnqueuer schedules confirmation sends for stored bookings.
type ConfirmationEnqueuer interface {
	Schedule(booking models.Booking) error
}

// ConfirmationScheduler enqueues confirmation tasks onto the reminder queue.
type ConfirmationScheduler struct {
	client *asynq.Client
}

func NewConfirmationScheduler() *ConfirmationScheduler {
	return &ConfirmationScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// Schedule enqueues a confirmation for the booking.
func (s *ConfirmationScheduler) Schedule(booking models.Booking) error {
	ships := make([]string, 0, len(booking.Ferries))
	for _, item := range booking.Ferries {
		ships = append(ships, item.Ferry.ShipName)
	}

	payload := models.ConfirmationPayload{
		Reference: booking.Reference,
		Email:     booking.Email,
		Ships:     ships,
		TotalFare: booking.TotalFare,
	}

	task, opts, err := NewConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}
