package cabRepo

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

// Create inserts a new cab document.
func (r *MongoCabRepo) Create(ctx context.Context, cab *models.CabOffering) error {
	c, err := r.coll(cab.Category)
	if err != nil {
		return err
	}
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if cab.ID == "" {
		cab.ID = uuid.New().String()
	}
	cab.Version = 1
	cab.CreatedAt = now
	cab.UpdatedAt = now

	if _, err := c.InsertOne(ctx, cab); err != nil {
		return fmt.Errorf("failed to create %s cab: %w", cab.Category, repository.Translate(err))
	}
	return nil
}

// casUpdate applies update to the document with the expected version, bumping
// the version, and tells a stale version apart from a missing document.
func casUpdate(ctx context.Context, c *mongo.Collection, id string, expectedVersion int64, set bson.M) (*models.CabOffering, error) {
	set["updatedAt"] = time.Now()
	update := bson.M{"$set": set, "$inc": bson.M{"version": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out models.CabOffering
	err := c.FindOneAndUpdate(ctx, bson.M{"id": id, "version": expectedVersion}, update, opts).Decode(&out)
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	n, cerr := c.CountDocuments(ctx, bson.M{"id": id})
	if cerr != nil {
		return nil, cerr
	}
	if n == 0 {
		return nil, repository.ErrNotFound
	}
	return nil, repository.ErrVersionMismatch
}

// Update modifies an existing cab document.
func (r *MongoCabRepo) Update(ctx context.Context, cab *models.CabOffering, expectedVersion int64) (*models.CabOffering, error) {
	c, err := r.coll(cab.Category)
	if err != nil {
		return nil, err
	}
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"from":             cab.From,
		"to":               cab.To,
		"city":             cab.City,
		"hours":            cab.Hours,
		"vehicleName":      cab.VehicleName,
		"image":            cab.Image,
		"basePrice":        cab.BasePrice,
		"seats":            cab.Seats,
		"luggage":          cab.Luggage,
		"incrementPercent": cab.IncrementPercent,
	}
	out, err := casUpdate(ctx, c, cab.ID, expectedVersion, set)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s cab %s: %w", cab.Category, cab.ID, err)
	}
	out.Category = cab.Category
	return out, nil
}

// Delete removes a cab document by its ID.
func (r *MongoCabRepo) Delete(ctx context.Context, category models.CabCategory, id string) error {
	c, err := r.coll(category)
	if err != nil {
		return err
	}
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := c.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s cab %s: %w", category, id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s cab %s: %w", category, id, repository.ErrNotFound)
	}
	return nil
}

// SetIncrement sets the increment percentage of a single offering.
func (r *MongoCabRepo) SetIncrement(ctx context.Context, category models.CabCategory, id string, percent float64, expectedVersion int64) (*models.CabOffering, error) {
	c, err := r.coll(category)
	if err != nil {
		return nil, err
	}
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := casUpdate(ctx, c, id, expectedVersion, bson.M{"incrementPercent": percent})
	if err != nil {
		return nil, fmt.Errorf("failed to set increment on %s cab %s: %w", category, id, err)
	}
	out.Category = category
	return out, nil
}

// BulkSetIncrement updates every document of the category inside a single
// transaction so a failure leaves no offering half-updated.
func (r *MongoCabRepo) BulkSetIncrement(ctx context.Context, category models.CabCategory, percent float64) (int64, error) {
	c, err := r.coll(category)
	if err != nil {
		return 0, err
	}
	ctx, cancel := repository.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := c.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return 0, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	update := bson.M{
		"$set": bson.M{"incrementPercent": percent, "updatedAt": time.Now()},
		"$inc": bson.M{"version": 1},
	}

	var modified int64
	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		res, err := c.UpdateMany(sc, bson.M{}, update)
		if err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		modified = res.ModifiedCount
		return sc.CommitTransaction(sc)
	}); err != nil {
		return 0, fmt.Errorf("bulk increment on %s cabs failed: %w", category, err)
	}
	return modified, nil
}
