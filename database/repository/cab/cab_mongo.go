package cabRepo

import (
	"fmt"

	"cabtour/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCabRepo implements CabRepository using one collection per category.
type MongoCabRepo struct {
	colls map[models.CabCategory]*mongo.Collection
}

// NewMongoCabRepo creates a new instance of CabRepository using MongoDB.
func NewMongoCabRepo(db *mongo.Database) CabRepository {
	colls := make(map[models.CabCategory]*mongo.Collection, len(models.CabCategories))
	for _, c := range models.CabCategories {
		colls[c] = db.Collection(c.Collection())
	}
	return &MongoCabRepo{colls: colls}
}

func (r *MongoCabRepo) coll(category models.CabCategory) (*mongo.Collection, error) {
	c, ok := r.colls[category]
	if !ok {
		return nil, fmt.Errorf("unknown cab category %q", category)
	}
	return c, nil
}
