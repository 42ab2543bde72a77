// File: database/repository/booking/booking_crud.go
package bookingRepo

import (
	"fmt"
	"time"

	"trabby/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByReference fetches a booking document by its reference.
func (r *MongoBookingRepo) GetByReference(reference string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"reference": reference}
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking with reference %s not found", reference)
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", reference, err)
	}
	return &booking, nil
}

// ListByEmail returns all bookings submitted under the given contact email,
// newest first.
func (r *MongoBookingRepo) ListByEmail(email string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for %s: %w", email, err)
	}
	return bookings, nil
}
