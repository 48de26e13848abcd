package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cabtour/database/repository"
	"cabtour/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.Version = 1
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", repository.Translate(err))
	}
	return nil
}

// UpdateStatus performs a compare-and-set on the booking status.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id string, change models.StatusChange) (*models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	at := change.At
	if at.IsZero() {
		at = time.Now()
	}
	set := bson.M{"status": change.To, "updatedAt": at}
	switch change.To {
	case models.StatusConfirmed:
		set["confirmedAt"] = at
	case models.StatusInProgress:
		set["startedAt"] = at
	case models.StatusCompleted:
		set["completedAt"] = at
	case models.StatusCancelled:
		set["cancelledAt"] = at
		set["cancelledBy"] = change.CancelledBy
	}
	if change.AdminNotes != nil {
		set["adminNotes"] = *change.AdminNotes
	}

	filter := bson.M{"id": id, "status": change.From}
	update := bson.M{"$set": set, "$inc": bson.M{"version": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out)
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	n, cerr := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if cerr != nil {
		return nil, fmt.Errorf("failed to update booking %s status: %w", id, cerr)
	}
	if n == 0 {
		return nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	}
	return nil, fmt.Errorf("booking %s left %s before the write: %w", id, change.From, repository.ErrVersionMismatch)
}
