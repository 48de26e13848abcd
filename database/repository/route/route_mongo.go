package routeRepo

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRouteRepo implements RouteRepository using MongoDB.
type MongoRouteRepo struct {
	coll *mongo.Collection
}

// NewMongoRouteRepo creates a new instance of RouteRepository using MongoDB.
func NewMongoRouteRepo(db *mongo.Database) RouteRepository {
	return &MongoRouteRepo{coll: db.Collection("routes")}
}
