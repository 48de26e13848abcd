package bookingRepo

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cabtour/database/repository"
	"cabtour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchFields are matched case-insensitively by the free-text search.
var searchFields = []string{"bookingReference", "userName", "userEmail", "title"}

func buildFilter(f models.BookingFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.UserID != "" {
		filter["userId"] = f.UserID
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		or := make(bson.A, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, bson.M{field: rx})
		}
		filter["$or"] = or
	}
	if f.From != nil || f.To != nil {
		created := bson.M{}
		if f.From != nil {
			created["$gte"] = *f.From
		}
		if f.To != nil {
			created["$lt"] = *f.To
		}
		filter["createdAt"] = created
	}
	return filter
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, repository.Translate(err))
	}
	return &booking, nil
}

// List returns a page of bookings and the total match count.
func (r *MongoBookingRepo) List(ctx context.Context, f models.BookingFilter, page models.Page) ([]models.Booking, int64, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := buildFilter(f)
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Size))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, total, nil
}

func (r *MongoBookingRepo) ListAll(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, buildFilter(f), options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// CountByStatus issues one count per status value.
func (r *MongoBookingRepo) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	counts := make(map[models.BookingStatus]int64, len(models.BookingStatuses))
	for _, status := range models.BookingStatuses {
		n, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			return nil, fmt.Errorf("failed to count %s bookings: %w", status, err)
		}
		counts[status] = n
	}
	return counts, nil
}

func (r *MongoBookingRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": from, "$lt": to}})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings in range: %w", err)
	}
	return n, nil
}

// SumPrice aggregates the price snapshot over bookings in status.
func (r *MongoBookingRepo) SumPrice(ctx context.Context, status models.BookingStatus) (float64, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$match": bson.M{"status": status}},
		bson.M{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$price"}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate %s revenue: %w", status, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
