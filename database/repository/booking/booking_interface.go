package bookingRepo

import "trabby/models"

// BookingRepository defines the interface for booking record data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByReference(reference string) (*models.Booking, error)
	ListByEmail(email string) ([]models.Booking, error)
}
