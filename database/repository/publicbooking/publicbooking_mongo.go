package publicBookingRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cabtour/database/repository"
	"cabtour/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPublicBookingRepo implements PublicBookingRepository using MongoDB.
type MongoPublicBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoPublicBookingRepo creates a new instance of PublicBookingRepository using MongoDB.
func NewMongoPublicBookingRepo(db *mongo.Database) PublicBookingRepository {
	return &MongoPublicBookingRepo{coll: db.Collection("publicbookings")}
}

func (r *MongoPublicBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingReference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create public booking indexes: %w", err)
	}
	return nil
}

func (r *MongoPublicBookingRepo) Create(ctx context.Context, booking *models.PublicBooking) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create public booking: %w", repository.Translate(err))
	}
	return nil
}

func (r *MongoPublicBookingRepo) GetByID(ctx context.Context, id string) (*models.PublicBooking, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.PublicBooking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch public booking %s: %w", id, repository.Translate(err))
	}
	return &booking, nil
}

func (r *MongoPublicBookingRepo) UpdateStatus(ctx context.Context, id string, from, to models.PublicBookingStatus, adminNotes *string) (*models.PublicBooking, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"status": to, "updatedAt": time.Now()}
	if adminNotes != nil {
		set["adminNotes"] = *adminNotes
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out models.PublicBooking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id, "status": from}, bson.M{"$set": set}, opts).Decode(&out)
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update public booking %s: %w", id, err)
	}
	n, cerr := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if cerr != nil {
		return nil, fmt.Errorf("failed to update public booking %s: %w", id, cerr)
	}
	if n == 0 {
		return nil, fmt.Errorf("public booking %s: %w", id, repository.ErrNotFound)
	}
	return nil, fmt.Errorf("public booking %s: %w", id, repository.ErrVersionMismatch)
}

func (r *MongoPublicBookingRepo) List(ctx context.Context, f PublicBookingFilter, page models.Page) ([]models.PublicBooking, int64, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"bookingReference": rx},
			bson.M{"name": rx},
			bson.M{"email": rx},
			bson.M{"phone": rx},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count public bookings: %w", err)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Size))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list public bookings: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.PublicBooking{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("failed to decode public bookings: %w", err)
	}
	return out, total, nil
}
