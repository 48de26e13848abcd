package cabRepo

import (
	"context"
	"fmt"
	"time"

	"cabtour/database/repository"
	"cabtour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCabRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for category, c := range r.colls {
		indexModels := []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		}
		if category == models.CabHourly {
			indexModels = append(indexModels, mongo.IndexModel{Keys: bson.D{{Key: "city", Value: 1}, {Key: "hours", Value: 1}}})
		} else {
			indexModels = append(indexModels, mongo.IndexModel{Keys: bson.D{{Key: "from", Value: 1}, {Key: "to", Value: 1}}})
		}
		if _, err := c.Indexes().CreateMany(ctx, indexModels); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", category, err)
		}
	}
	return nil
}
