package cabRepo

import (
	"context"
	"fmt"
	"time"

	"cabtour/database/repository"
	"cabtour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// routeFilter builds the exact-match selector for a quote.
func routeFilter(f models.QuoteFilter) bson.M {
	if f.Category == models.CabHourly {
		return bson.M{"city": f.City, "hours": f.Hours}
	}
	return bson.M{"from": f.From, "to": f.To}
}

// FindByRoute returns the offerings matching the quote filter, cheapest first.
func (r *MongoCabRepo) FindByRoute(ctx context.Context, f models.QuoteFilter) ([]models.CabOffering, error) {
	c, err := r.coll(f.Category)
	if err != nil {
		return nil, err
	}
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "basePrice", Value: 1}})
	cursor, err := c.Find(ctx, routeFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s cabs: %w", f.Category, err)
	}
	defer cursor.Close(ctx)

	cabs := []models.CabOffering{}
	if err := cursor.All(ctx, &cabs); err != nil {
		return nil, fmt.Errorf("failed to decode %s cabs: %w", f.Category, err)
	}
	for i := range cabs {
		cabs[i].Category = f.Category
	}
	return cabs, nil
}

// ListByCategory returns all offerings of a category, newest first.
func (r *MongoCabRepo) ListByCategory(ctx context.Context, category models.CabCategory) ([]models.CabOffering, error) {
	c, err := r.coll(category)
	if err != nil {
		return nil, err
	}
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s cabs: %w", category, err)
	}
	defer cursor.Close(ctx)

	cabs := []models.CabOffering{}
	if err := cursor.All(ctx, &cabs); err != nil {
		return nil, fmt.Errorf("failed to decode %s cabs: %w", category, err)
	}
	for i := range cabs {
		cabs[i].Category = category
	}
	return cabs, nil
}

// GetByID retrieves a cab offering by its unique ID.
func (r *MongoCabRepo) GetByID(ctx context.Context, category models.CabCategory, id string) (*models.CabOffering, error) {
	c, err := r.coll(category)
	if err != nil {
		return nil, err
	}
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cab models.CabOffering
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&cab); err != nil {
		return nil, fmt.Errorf("failed to fetch %s cab %s: %w", category, id, repository.Translate(err))
	}
	cab.Category = category
	return &cab, nil
}
