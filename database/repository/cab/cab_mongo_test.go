package cabRepo

import (
	"context"
	"errors"
	"testing"

	"cabtour/database/repository"
	"cabtour/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func cabDoc(id, from, to, vehicle string, base, pct float64, version int64) bson.D {
	return bson.D{
		{Key: "id", Value: id},
		{Key: "from", Value: from},
		{Key: "to", Value: to},
		{Key: "vehicleName", Value: vehicle},
		{Key: "basePrice", Value: base},
		{Key: "seats", Value: 4},
		{Key: "incrementPercent", Value: pct},
		{Key: "version", Value: version},
	}
}

func TestMongoCabRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find by route decodes and tags category", func(mt *mtest.T) {
		repo := NewMongoCabRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "cabtour.onewaycabs", mtest.FirstBatch,
			cabDoc("c1", "Delhi", "Agra", "Sedan", 2000, 10, 1),
			cabDoc("c2", "Delhi", "Agra", "SUV", 3000, 0, 4),
		))

		cabs, err := repo.FindByRoute(ctx, models.QuoteFilter{Category: models.CabOneWay, From: "Delhi", To: "Agra"})
		require.NoError(t, err)
		require.Len(t, cabs, 2)
		assert.Equal(t, "Sedan", cabs[0].VehicleName)
		assert.Equal(t, 10.0, cabs[0].IncrementPercent)
		assert.Equal(t, models.CabOneWay, cabs[1].Category)
		assert.Equal(t, int64(4), cabs[1].Version)
	})

	mt.Run("find by route with no match returns empty slice", func(mt *mtest.T) {
		repo := NewMongoCabRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "cabtour.hourlycabs", mtest.FirstBatch))

		cabs, err := repo.FindByRoute(ctx, models.QuoteFilter{Category: models.CabHourly, City: "Jaipur", Hours: "8"})
		require.NoError(t, err)
		assert.NotNil(t, cabs)
		assert.Empty(t, cabs)
	})

	mt.Run("unknown category", func(mt *mtest.T) {
		repo := NewMongoCabRepo(mt.DB)
		_, err := repo.FindByRoute(ctx, models.QuoteFilter{Category: "monthly"})
		assert.Error(t, err)
	})

	mt.Run("create stamps version and maps duplicate key", func(mt *mtest.T) {
		repo := NewMongoCabRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		cab := &models.CabOffering{Category: models.CabRoundTrip, From: "A", To: "B", VehicleName: "Sedan", BasePrice: 100, Seats: 4}
		require.NoError(t, repo.Create(ctx, cab))
		assert.NotEmpty(t, cab.ID)
		assert.Equal(t, int64(1), cab.Version)
		assert.False(t, cab.CreatedAt.IsZero())

		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))
		err := repo.Create(ctx, &models.CabOffering{ID: cab.ID, Category: models.CabRoundTrip})
		assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	})

	mt.Run("set increment returns the updated document", func(mt *mtest.T) {
		repo := NewMongoCabRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: cabDoc("c1", "Delhi", "Agra", "Sedan", 2000, 15, 3)},
		))

		cab, err := repo.SetIncrement(ctx, models.CabOneWay, "c1", 15, 2)
		require.NoError(t, err)
		assert.Equal(t, 15.0, cab.IncrementPercent)
		assert.Equal(t, int64(3), cab.Version)
		assert.Equal(t, models.CabOneWay, cab.Category)
	})

	mt.Run("set increment with stale version", func(mt *mtest.T) {
		repo := NewMongoCabRepo(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
			mtest.CreateCursorResponse(0, "cabtour.onewaycabs", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
		)

		_, err := repo.SetIncrement(ctx, models.CabOneWay, "c1", 15, 1)
		assert.ErrorIs(t, err, repository.ErrVersionMismatch)
	})

	mt.Run("set increment on missing offering", func(mt *mtest.T) {
		repo := NewMongoCabRepo(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
			mtest.CreateCursorResponse(0, "cabtour.onewaycabs", mtest.FirstBatch),
		)

		_, err := repo.SetIncrement(ctx, models.CabOneWay, "missing", 15, 1)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	mt.Run("bulk increment commits and reports modified count", func(mt *mtest.T) {
		repo := NewMongoCabRepo(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(3)}, bson.E{Key: "nModified", Value: int32(3)}),
			mtest.CreateSuccessResponse(),
		)

		modified, err := repo.BulkSetIncrement(ctx, models.CabHourly, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(3), modified)

		started := mt.GetAllStartedEvents()
		var names []string
		for _, ev := range started {
			names = append(names, ev.CommandName)
		}
		assert.Contains(t, names, "update")
		assert.Contains(t, names, "commitTransaction")
	})

	mt.Run("bulk increment failure is wrapped and reports nothing modified", func(mt *mtest.T) {
		repo := NewMongoCabRepo(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 112, Name: "WriteConflict", Message: "write conflict"}),
			mtest.CreateSuccessResponse(),
		)

		modified, err := repo.BulkSetIncrement(ctx, models.CabHourly, 5)
		require.Error(t, err)
		assert.Equal(t, int64(0), modified)
		assert.Contains(t, err.Error(), "bulk increment on hourly cabs failed")
		var cmdErr mongo.CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, int32(112), cmdErr.Code)
	})

	mt.Run("bulk increment on unknown category", func(mt *mtest.T) {
		repo := NewMongoCabRepo(mt.DB)
		modified, err := repo.BulkSetIncrement(ctx, "monthly", 5)
		assert.Error(t, err)
		assert.Equal(t, int64(0), modified)
	})

	mt.Run("delete missing offering", func(mt *mtest.T) {
		repo := NewMongoCabRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(ctx, models.CabHourly, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
