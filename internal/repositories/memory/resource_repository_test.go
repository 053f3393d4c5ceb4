package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"resourcedir/internal/errs"
	"resourcedir/internal/models"
	"resourcedir/internal/repositories/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newShelter(name, city, state string, lng, lat, rating float64) *models.Resource {
	return &models.Resource{
		Name:        name,
		Description: "Emergency Housing",
		Rating:      rating,
		Location:    models.NewGeoPoint(lng, lat),
		Address:     models.Address{City: city, State: state, Country: "USA"},
		IsActive:    true,
	}
}

func TestInsertAssignsIDAndTimestamps(t *testing.T) {
	repo := NewResourceRepository(models.KindShelter)
	ctx := context.Background()

	shelter := newShelter("Hope Shelter", "New York", "NY", -74.0060, 40.7128, 4.6)
	id, err := repo.Insert(ctx, shelter)
	require.NoError(t, err)

	assert.False(t, id.IsZero())
	assert.Equal(t, id, shelter.ID)
	assert.False(t, shelter.CreatedAt.IsZero())
	assert.Equal(t, shelter.CreatedAt, shelter.UpdatedAt)

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hope Shelter", stored.Name)
	assert.Equal(t, models.KindShelter, stored.Kind)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewResourceRepository(models.KindShelter)

	_, err := repo.GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetByIDReturnsInactiveRecords(t *testing.T) {
	repo := NewResourceRepository(models.KindShelter)
	ctx := context.Background()

	id, err := repo.Insert(ctx, newShelter("Hope Shelter", "New York", "NY", -74.0060, 40.7128, 4.6))
	require.NoError(t, err)

	_, err = repo.SoftDelete(ctx, id)
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestSoftDeleteHidesFromQueries(t *testing.T) {
	repo := NewResourceRepository(models.KindShelter)
	ctx := context.Background()

	id, err := repo.Insert(ctx, newShelter("Hope Shelter", "New York", "NY", -74.0060, 40.7128, 4.6))
	require.NoError(t, err)

	results, err := repo.Query(ctx, interfaces.Predicate{}, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	_, err = repo.SoftDelete(ctx, id)
	require.NoError(t, err)

	results, err = repo.Query(ctx, interfaces.Predicate{}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)

	count, err := repo.Count(ctx, interfaces.Predicate{}, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSoftDeleteIsIdempotentWithMonotonicUpdatedAt(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := NewResourceRepositoryWithClock(models.KindShelter, func() time.Time { return current })
	ctx := context.Background()

	id, err := repo.Insert(ctx, newShelter("Hope Shelter", "New York", "NY", -74.0060, 40.7128, 4.6))
	require.NoError(t, err)

	current = current.Add(time.Minute)
	first, err := repo.SoftDelete(ctx, id)
	require.NoError(t, err)
	assert.False(t, first.IsActive)

	current = current.Add(time.Minute)
	second, err := repo.SoftDelete(ctx, id)
	require.NoError(t, err)
	assert.False(t, second.IsActive)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	repo := NewResourceRepository(models.KindShelter)
	ctx := context.Background()

	id, err := repo.Insert(ctx, newShelter("Hope Shelter", "New York", "NY", -74.0060, 40.7128, 4.6))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, id, map[string]interface{}{
		"rating":              3.5,
		"attributes.capacity": float64(80),
	})
	require.NoError(t, err)

	assert.Equal(t, 3.5, updated.Rating)
	assert.Equal(t, "Hope Shelter", updated.Name)
	assert.Equal(t, float64(80), updated.Attributes["capacity"])
	assert.True(t, updated.IsActive)
}

func TestUpdateDoesNotImplicitlyReactivate(t *testing.T) {
	repo := NewResourceRepository(models.KindShelter)
	ctx := context.Background()

	id, err := repo.Insert(ctx, newShelter("Hope Shelter", "New York", "NY", -74.0060, 40.7128, 4.6))
	require.NoError(t, err)

	_, err = repo.SoftDelete(ctx, id)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, id, map[string]interface{}{"rating": 5.0})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	reactivated, err := repo.Update(ctx, id, map[string]interface{}{"is_active": true})
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive)
}

func TestQueryPredicateMatching(t *testing.T) {
	repo := NewResourceRepository(models.KindShelter)
	ctx := context.Background()

	_, err := repo.Insert(ctx, newShelter("Hope Shelter", "New York", "NY", -74.0060, 40.7128, 4.6))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, newShelter("Safe Haven", "Los Angeles", "CA", -118.2437, 34.0522, 4.4))
	require.NoError(t, err)

	results, err := repo.Query(ctx, interfaces.Predicate{City: "york"}, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Hope Shelter", results[0].Name)

	results, err = repo.Query(ctx, interfaces.Predicate{State: "ca"}, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Safe Haven", results[0].Name)

	results, err = repo.Query(ctx, interfaces.Predicate{Keyword: "haven"}, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Safe Haven", results[0].Name)

	results, err = repo.Query(ctx, interfaces.Predicate{Keyword: "missing"}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestQueryGeoFilterNearestFirst(t *testing.T) {
	repo := NewResourceRepository(models.KindShelter)
	ctx := context.Background()

	// Query point is downtown SF; one degree of latitude is ~111.2 km.
	center := [2]float64{37.7749, -122.4194}
	far := newShelter("Far Shelter", "Sacramento", "CA", center[1], center[0]+0.54, 4.0)        // ~60 km
	near := newShelter("Near Shelter", "San Francisco", "CA", center[1], center[0]+0.018, 4.0) // ~2 km
	mid := newShelter("Mid Shelter", "Oakland", "CA", center[1], center[0]+0.09, 4.0)          // ~10 km

	for _, s := range []*models.Resource{far, near, mid} {
		_, err := repo.Insert(ctx, s)
		require.NoError(t, err)
	}

	geo := &interfaces.GeoFilter{Latitude: center[0], Longitude: center[1], RadiusKM: 50}
	results, err := repo.Query(ctx, interfaces.Predicate{}, geo, nil)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Near Shelter", results[0].Name)
	assert.Equal(t, "Mid Shelter", results[1].Name)

	count, err := repo.Count(ctx, interfaces.Predicate{}, geo)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestQuerySortAndPagination(t *testing.T) {
	repo := NewResourceRepository(models.KindShelter)
	ctx := context.Background()

	ratings := []float64{3.1, 4.8, 2.2, 4.1, 3.9}
	for i, rating := range ratings {
		shelter := newShelter("Shelter "+string(rune('A'+i)), "New York", "NY", -74.0060, 40.7128, rating)
		_, err := repo.Insert(ctx, shelter)
		require.NoError(t, err)
	}

	results, err := repo.Query(ctx, interfaces.Predicate{}, nil, &interfaces.QueryOptions{SortBy: "rating", Skip: 0, Limit: 3})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 4.8, results[0].Rating)
	assert.Equal(t, 4.1, results[1].Rating)
	assert.Equal(t, 3.9, results[2].Rating)

	rest, err := repo.Query(ctx, interfaces.Predicate{}, nil, &interfaces.QueryOptions{SortBy: "rating", Skip: 3, Limit: 3})
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, 3.1, rest[0].Rating)
	assert.Equal(t, 2.2, rest[1].Rating)

	empty, err := repo.Query(ctx, interfaces.Predicate{}, nil, &interfaces.QueryOptions{Skip: 10, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestQueryReturnsCopies(t *testing.T) {
	repo := NewResourceRepository(models.KindShelter)
	ctx := context.Background()

	id, err := repo.Insert(ctx, newShelter("Hope Shelter", "New York", "NY", -74.0060, 40.7128, 4.6))
	require.NoError(t, err)

	results, err := repo.Query(ctx, interfaces.Predicate{}, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	results[0].Name = "mutated"

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hope Shelter", stored.Name)
}

func TestQueryConcurrentWithWrites(t *testing.T) {
	repo := NewResourceRepository(models.KindShelter)
	ctx := context.Background()

	ids := make([]primitive.ObjectID, 0, 10)
	for i := 0; i < 10; i++ {
		id, err := repo.Insert(ctx, newShelter("Hope Shelter", "San Francisco", "CA", -122.4194, 37.7749, 4.0))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	geo := &interfaces.GeoFilter{Latitude: 37.7749, Longitude: -122.4194, RadiusKM: 50}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_, err := repo.Update(ctx, ids[i%len(ids)], map[string]interface{}{"rating": float64(i % 5)})
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			results, err := repo.Query(ctx, interfaces.Predicate{}, geo, nil)
			assert.NoError(t, err)
			assert.Len(t, results, len(ids))
		}
	}()
	wg.Wait()
}
