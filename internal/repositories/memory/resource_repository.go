package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"resourcedir/internal/errs"
	"resourcedir/internal/models"
	"resourcedir/internal/repositories/interfaces"
	"resourcedir/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resourceRepository is an in-memory ResourceRepository. Proximity
// queries are a linear scan ordered nearest-first with the haversine
// distance. Used by tests and the seed tool's dry-run mode; the MongoDB
// implementation is the production store.
type resourceRepository struct {
	mu    sync.RWMutex
	kind  models.Kind
	byID  map[primitive.ObjectID]*models.Resource
	order []primitive.ObjectID
	now   func() time.Time
}

func NewResourceRepository(kind models.Kind) interfaces.ResourceRepository {
	return NewResourceRepositoryWithClock(kind, time.Now)
}

// NewResourceRepositoryWithClock injects the clock used for record
// timestamps.
func NewResourceRepositoryWithClock(kind models.Kind, now func() time.Time) interfaces.ResourceRepository {
	return &resourceRepository{
		kind: kind,
		byID: make(map[primitive.ObjectID]*models.Resource),
		now:  now,
	}
}

func (r *resourceRepository) Insert(ctx context.Context, resource *models.Resource) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := resource.Clone()
	stored.ID = primitive.NewObjectID()
	stored.Kind = r.kind
	now := r.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.byID[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	resource.ID = stored.ID
	resource.CreatedAt = stored.CreatedAt
	resource.UpdatedAt = stored.UpdatedAt

	return stored.ID, nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resource, ok := r.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return resource.Clone(), nil
}

func (r *resourceRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resource, ok := r.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}

	applyUpdates(resource, updates)
	resource.UpdatedAt = r.now()

	return resource.Clone(), nil
}

func (r *resourceRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (*models.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resource, ok := r.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}

	resource.IsActive = false
	resource.UpdatedAt = r.now()

	return resource.Clone(), nil
}

func (r *resourceRepository) Query(ctx context.Context, predicate interfaces.Predicate, geo *interfaces.GeoFilter, opts *interfaces.QueryOptions) ([]*models.Resource, error) {
	// scan returns live records, so the lock covers the sort and clone
	// reads too; a concurrent write would race with them otherwise.
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.scan(predicate, geo)

	if geo != nil {
		// Nearest-first, matching the production store's $near ordering.
		sort.SliceStable(matched, func(i, j int) bool {
			return distanceTo(geo, matched[i]) < distanceTo(geo, matched[j])
		})
	} else if opts != nil && opts.SortBy != "" {
		sortDescending(matched, opts.SortBy)
	}

	if opts != nil {
		matched = paginate(matched, opts.Skip, opts.Limit)
	}

	results := make([]*models.Resource, 0, len(matched))
	for _, resource := range matched {
		results = append(results, resource.Clone())
	}
	return results, nil
}

func (r *resourceRepository) Count(ctx context.Context, predicate interfaces.Predicate, geo *interfaces.GeoFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.scan(predicate, geo))), nil
}

// scan walks records in insertion order and collects active records
// matching the predicate and, when given, the radius filter. Callers hold
// the lock.
func (r *resourceRepository) scan(predicate interfaces.Predicate, geo *interfaces.GeoFilter) []*models.Resource {
	var matched []*models.Resource
	for _, id := range r.order {
		resource := r.byID[id]
		if !resource.IsActive {
			continue
		}
		if !matchesPredicate(resource, predicate) {
			continue
		}
		if geo != nil && !utils.IsWithinRadius(geo.Latitude, geo.Longitude, resource.Location.Latitude(), resource.Location.Longitude(), geo.RadiusKM) {
			continue
		}
		matched = append(matched, resource)
	}
	return matched
}

func matchesPredicate(resource *models.Resource, predicate interfaces.Predicate) bool {
	if predicate.City != "" && !containsFold(resource.Address.City, predicate.City) {
		return false
	}
	if predicate.State != "" && !containsFold(resource.Address.State, predicate.State) {
		return false
	}
	if predicate.Keyword != "" {
		if !containsFold(resource.Name, predicate.Keyword) &&
			!containsFold(resource.Description, predicate.Keyword) &&
			!containsFold(resource.Address.City, predicate.Keyword) &&
			!containsFold(resource.Address.State, predicate.Keyword) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func distanceTo(geo *interfaces.GeoFilter, resource *models.Resource) float64 {
	return utils.CalculateDistance(geo.Latitude, geo.Longitude, resource.Location.Latitude(), resource.Location.Longitude())
}

func sortDescending(resources []*models.Resource, field string) {
	sort.SliceStable(resources, func(i, j int) bool {
		switch field {
		case "name":
			return resources[i].Name > resources[j].Name
		case "created_at":
			return resources[i].CreatedAt.After(resources[j].CreatedAt)
		case "updated_at":
			return resources[i].UpdatedAt.After(resources[j].UpdatedAt)
		default:
			return resources[i].Rating > resources[j].Rating
		}
	})
}

func paginate(resources []*models.Resource, skip, limit int64) []*models.Resource {
	if skip >= int64(len(resources)) {
		return nil
	}
	resources = resources[skip:]
	if limit > 0 && limit < int64(len(resources)) {
		resources = resources[:limit]
	}
	return resources
}

// applyUpdates mirrors the field keys the MongoDB store accepts in a
// $set document, including dotted attribute paths.
func applyUpdates(resource *models.Resource, updates map[string]interface{}) {
	for key, value := range updates {
		if attr, ok := strings.CutPrefix(key, "attributes."); ok {
			if resource.Attributes == nil {
				resource.Attributes = make(map[string]interface{})
			}
			resource.Attributes[attr] = value
			continue
		}

		switch key {
		case "name":
			if v, ok := value.(string); ok {
				resource.Name = v
			}
		case "description":
			if v, ok := value.(string); ok {
				resource.Description = v
			}
		case "details":
			if v, ok := value.(string); ok {
				resource.Details = v
			}
		case "price_info":
			if v, ok := value.(string); ok {
				resource.PriceInfo = v
			}
		case "hours":
			if v, ok := value.(string); ok {
				resource.Hours = v
			}
		case "rating":
			if v, ok := value.(float64); ok {
				resource.Rating = v
			}
		case "location":
			if v, ok := value.(models.GeoPoint); ok {
				resource.Location = v
			}
		case "address":
			if v, ok := value.(models.Address); ok {
				resource.Address = v
			}
		case "contact":
			if v, ok := value.(models.Contact); ok {
				resource.Contact = v
			}
		case "is_active":
			if v, ok := value.(bool); ok {
				resource.IsActive = v
			}
		}
	}
}
