package interfaces

import (
	"context"

	"resourcedir/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Predicate is the attribute filter applied to active records. City and
// State are case-insensitive substring matches against the address;
// Keyword matches name, description, address city, or address state.
type Predicate struct {
	City    string
	State   string
	Keyword string
}

// GeoFilter restricts a query to records within RadiusKM of the point.
type GeoFilter struct {
	Latitude  float64
	Longitude float64
	RadiusKM  float64
}

// QueryOptions controls ordering and pagination of a query. SortBy is a
// descending sort on a base attribute and is ignored on proximity
// queries, which order nearest-first.
type QueryOptions struct {
	SortBy string
	Skip   int64
	Limit  int64
}

// ResourceRepository is the per-kind record store consumed by the query
// engine. Query and Count see active records only; GetByID ignores the
// active flag so soft-deleted records stay retrievable by id.
type ResourceRepository interface {
	Insert(ctx context.Context, resource *models.Resource) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Resource, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Resource, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) (*models.Resource, error)
	Query(ctx context.Context, predicate Predicate, geo *GeoFilter, opts *QueryOptions) ([]*models.Resource, error)
	Count(ctx context.Context, predicate Predicate, geo *GeoFilter) (int64, error)
}
