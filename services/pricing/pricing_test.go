package pricing

import (
	"context"
	"errors"
	"math"
	"testing"

	"cabtour/database/repository"
	"cabtour/models"
	"cabtour/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCabRepo struct {
	mock.Mock
}

func (m *mockCabRepo) FindByRoute(ctx context.Context, f models.QuoteFilter) ([]models.CabOffering, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CabOffering), args.Error(1)
}
func (m *mockCabRepo) ListByCategory(ctx context.Context, c models.CabCategory) ([]models.CabOffering, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CabOffering), args.Error(1)
}
func (m *mockCabRepo) GetByID(ctx context.Context, c models.CabCategory, id string) (*models.CabOffering, error) {
	args := m.Called(ctx, c, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CabOffering), args.Error(1)
}
func (m *mockCabRepo) Create(ctx context.Context, cab *models.CabOffering) error {
	return m.Called(ctx, cab).Error(0)
}
func (m *mockCabRepo) Update(ctx context.Context, cab *models.CabOffering, v int64) (*models.CabOffering, error) {
	args := m.Called(ctx, cab, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CabOffering), args.Error(1)
}
func (m *mockCabRepo) Delete(ctx context.Context, c models.CabCategory, id string) error {
	return m.Called(ctx, c, id).Error(0)
}
func (m *mockCabRepo) SetIncrement(ctx context.Context, c models.CabCategory, id string, p float64, v int64) (*models.CabOffering, error) {
	args := m.Called(ctx, c, id, p, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CabOffering), args.Error(1)
}
func (m *mockCabRepo) BulkSetIncrement(ctx context.Context, c models.CabCategory, p float64) (int64, error) {
	args := m.Called(ctx, c, p)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockCabRepo) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestComputeDisplayPrice(t *testing.T) {
	cases := []struct {
		base, pct, want float64
	}{
		{2000, 10, 2200},
		{1500, 0, 1500},
		{1000, -50, 500},
		{1000, 200, 3000},
		{999, 12.5, 1123.875},
	}
	for _, tc := range cases {
		got := ComputeDisplayPrice(models.CabOffering{BasePrice: tc.base, IncrementPercent: tc.pct})
		assert.InDelta(t, tc.want, got, 1e-9, "base=%v pct=%v", tc.base, tc.pct)
	}
}

func TestComputeDiscount(t *testing.T) {
	assert.InDelta(t, 20.0, ComputeDiscount(5000, 4000), 1e-9)
	assert.Zero(t, ComputeDiscount(0, 4000), "zero original price means no discount")
	assert.Zero(t, ComputeDiscount(-10, 4000))
	assert.Zero(t, ComputeDiscount(3000, 4000), "price above original clamps to 0")
	assert.Equal(t, 100.0, ComputeDiscount(3000, -1000), "negative current clamps to 100")
	assert.Equal(t, 100.0, ComputeDiscount(3000, 0))
	assert.Zero(t, ComputeDiscount(math.NaN(), 10))

	for _, pair := range [][2]float64{{0, 0}, {1, 1e9}, {1e9, 1}, {100, 55.5}, {7, -7}} {
		d := ComputeDiscount(pair[0], pair[1])
		assert.False(t, math.IsNaN(d) || math.IsInf(d, 0))
		assert.GreaterOrEqual(t, d, 0.0)
		assert.LessOrEqual(t, d, 100.0)
	}
}

func TestQuoteComputesDisplayPrice(t *testing.T) {
	repo := new(mockCabRepo)
	svc := NewPricingService(repo, Bounds{})
	filter := models.QuoteFilter{Category: models.CabOneWay, From: "Mohali", To: "Delhi"}

	repo.On("FindByRoute", mock.Anything, filter).Return([]models.CabOffering{
		{ID: "c1", Category: models.CabOneWay, From: "Mohali", To: "Delhi", VehicleName: "Dzire", BasePrice: 2000, IncrementPercent: 10},
	}, nil)

	quotes, err := svc.Quote(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, 2200.0, quotes[0].DisplayPrice)
	assert.Equal(t, 2000.0, quotes[0].BasePrice, "quote leaves the stored base price alone")
	repo.AssertExpectations(t)
}

func TestQuoteNoMatchIsEmpty(t *testing.T) {
	repo := new(mockCabRepo)
	svc := NewPricingService(repo, Bounds{})
	filter := models.QuoteFilter{Category: models.CabHourly, City: "Shimla", Hours: "8"}
	repo.On("FindByRoute", mock.Anything, filter).Return([]models.CabOffering{}, nil)

	quotes, err := svc.Quote(context.Background(), filter)
	require.NoError(t, err)
	assert.NotNil(t, quotes)
	assert.Empty(t, quotes)
}

func TestQuoteValidation(t *testing.T) {
	svc := NewPricingService(new(mockCabRepo), Bounds{})
	for _, f := range []models.QuoteFilter{
		{Category: "weekly", From: "A", To: "B"},
		{Category: models.CabOneWay, To: "B"},
		{Category: models.CabRoundTrip, From: "A"},
		{Category: models.CabHourly, City: "Shimla"},
	} {
		_, err := svc.Quote(context.Background(), f)
		assert.True(t, utils.IsKind(err, utils.KindValidation), "filter %+v", f)
	}
}

func TestQuoteStoreFailure(t *testing.T) {
	repo := new(mockCabRepo)
	svc := NewPricingService(repo, Bounds{})
	repo.On("FindByRoute", mock.Anything, mock.Anything).Return(nil, errors.New("socket closed"))

	_, err := svc.Quote(context.Background(), models.QuoteFilter{Category: models.CabOneWay, From: "A", To: "B"})
	assert.True(t, utils.IsKind(err, utils.KindDependency))
}

func TestSetIncrement(t *testing.T) {
	ctx := context.Background()

	t.Run("applies within bounds", func(t *testing.T) {
		repo := new(mockCabRepo)
		svc := NewPricingService(repo, Bounds{})
		repo.On("SetIncrement", mock.Anything, models.CabRoundTrip, "c1", 25.0, int64(3)).
			Return(&models.CabOffering{ID: "c1", Category: models.CabRoundTrip, BasePrice: 1000, IncrementPercent: 25, Version: 4}, nil)

		q, err := svc.SetIncrement(ctx, "roundtrip", "c1", 25, 3)
		require.NoError(t, err)
		assert.Equal(t, 1250.0, q.DisplayPrice)
		assert.Equal(t, int64(4), q.Version)
		repo.AssertExpectations(t)
	})

	t.Run("rejects out of bounds before touching the store", func(t *testing.T) {
		repo := new(mockCabRepo)
		svc := NewPricingService(repo, Bounds{})
		for _, pct := range []float64{-50.01, 200.5, math.NaN(), math.Inf(1)} {
			_, err := svc.SetIncrement(ctx, models.CabOneWay, "c1", pct, 1)
			assert.True(t, utils.IsKind(err, utils.KindValidation), "pct=%v", pct)
		}
		repo.AssertNotCalled(t, "SetIncrement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("edges of the range are accepted", func(t *testing.T) {
		repo := new(mockCabRepo)
		svc := NewPricingService(repo, Bounds{})
		repo.On("SetIncrement", mock.Anything, models.CabOneWay, "c1", mock.Anything, int64(1)).
			Return(&models.CabOffering{ID: "c1", BasePrice: 100, Version: 2}, nil)

		_, err := svc.SetIncrement(ctx, models.CabOneWay, "c1", -50, 1)
		assert.NoError(t, err)
		_, err = svc.SetIncrement(ctx, models.CabOneWay, "c1", 200, 1)
		assert.NoError(t, err)
	})

	t.Run("custom bounds", func(t *testing.T) {
		svc := NewPricingService(new(mockCabRepo), Bounds{Min: 0, Max: 30})
		_, err := svc.SetIncrement(ctx, models.CabOneWay, "c1", -5, 1)
		assert.True(t, utils.IsKind(err, utils.KindValidation))
		assert.Equal(t, Bounds{Min: 0, Max: 30}, svc.Bounds())
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		repo := new(mockCabRepo)
		svc := NewPricingService(repo, Bounds{})
		repo.On("SetIncrement", mock.Anything, models.CabOneWay, "c1", 5.0, int64(1)).
			Return(nil, repository.ErrVersionMismatch)

		_, err := svc.SetIncrement(ctx, models.CabOneWay, "c1", 5, 1)
		assert.True(t, utils.HasCode(err, "stale_version"))
		assert.Equal(t, 409, utils.HTTPStatus(err))
	})

	t.Run("missing offering", func(t *testing.T) {
		repo := new(mockCabRepo)
		svc := NewPricingService(repo, Bounds{})
		repo.On("SetIncrement", mock.Anything, models.CabOneWay, "gone", 5.0, int64(1)).
			Return(nil, repository.ErrNotFound)

		_, err := svc.SetIncrement(ctx, models.CabOneWay, "gone", 5, 1)
		assert.True(t, utils.IsKind(err, utils.KindNotFound))
	})

	t.Run("invalid category and version", func(t *testing.T) {
		svc := NewPricingService(new(mockCabRepo), Bounds{})
		_, err := svc.SetIncrement(ctx, "daily", "c1", 5, 1)
		assert.True(t, utils.IsKind(err, utils.KindValidation))
		_, err = svc.SetIncrement(ctx, models.CabOneWay, "c1", 5, 0)
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	})
}

// memCabRepo applies bulk increments to an in-memory category so quotes
// observe them afterwards.
type memCabRepo struct {
	mockCabRepo
	cabs []models.CabOffering
}

func (m *memCabRepo) FindByRoute(_ context.Context, f models.QuoteFilter) ([]models.CabOffering, error) {
	var out []models.CabOffering
	for _, c := range m.cabs {
		if c.Category == f.Category && c.City == f.City && c.Hours == f.Hours {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCabRepo) BulkSetIncrement(_ context.Context, category models.CabCategory, pct float64) (int64, error) {
	var n int64
	for i := range m.cabs {
		if m.cabs[i].Category == category {
			m.cabs[i].IncrementPercent = pct
			m.cabs[i].Version++
			n++
		}
	}
	return n, nil
}

func TestBulkSetIncrementAppliesToWholeCategory(t *testing.T) {
	repo := &memCabRepo{cabs: []models.CabOffering{
		{ID: "h1", Category: models.CabHourly, City: "Shimla", Hours: "8", BasePrice: 1000, Version: 1},
		{ID: "h2", Category: models.CabHourly, City: "Shimla", Hours: "8", BasePrice: 2000, IncrementPercent: 12, Version: 3},
		{ID: "h3", Category: models.CabHourly, City: "Shimla", Hours: "8", BasePrice: 3000, Version: 1},
		{ID: "o1", Category: models.CabOneWay, From: "A", To: "B", BasePrice: 500, IncrementPercent: 7, Version: 1},
	}}
	svc := NewPricingService(repo, Bounds{})
	ctx := context.Background()

	n, err := svc.BulkSetIncrement(ctx, models.CabHourly, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	quotes, err := svc.Quote(ctx, models.QuoteFilter{Category: models.CabHourly, City: "Shimla", Hours: "8"})
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	for _, q := range quotes {
		assert.Equal(t, 5.0, q.IncrementPercent)
		assert.InDelta(t, q.BasePrice*1.05, q.DisplayPrice, 1e-9)
	}
	assert.Equal(t, int64(4), repo.cabs[1].Version)
	assert.Equal(t, 7.0, repo.cabs[3].IncrementPercent, "other categories untouched")
}

func TestBulkSetIncrementFailures(t *testing.T) {
	repo := new(mockCabRepo)
	svc := NewPricingService(repo, Bounds{})
	ctx := context.Background()

	_, err := svc.BulkSetIncrement(ctx, models.CabHourly, 500)
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	repo.On("BulkSetIncrement", mock.Anything, models.CabHourly, 5.0).Return(int64(0), errors.New("transaction aborted"))
	_, err = svc.BulkSetIncrement(ctx, models.CabHourly, 5)
	assert.True(t, utils.IsKind(err, utils.KindDependency))
}
