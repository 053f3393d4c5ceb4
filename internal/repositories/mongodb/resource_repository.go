package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"resourcedir/internal/errs"
	"resourcedir/internal/models"
	"resourcedir/internal/repositories/interfaces"
	"resourcedir/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CacheService is the optional read cache consumed by the repository.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type resourceRepository struct {
	kind       models.Kind
	collection *mongo.Collection
	cache      CacheService
}

// NewResourceRepository returns the MongoDB-backed store for one kind.
// cache may be nil.
func NewResourceRepository(db *mongo.Database, kind models.Kind, cache CacheService) interfaces.ResourceRepository {
	return &resourceRepository{
		kind:       kind,
		collection: db.Collection(kind.Collection()),
		cache:      cache,
	}
}

func (r *resourceRepository) Insert(ctx context.Context, resource *models.Resource) (primitive.ObjectID, error) {
	resource.ID = primitive.NewObjectID()
	resource.Kind = r.kind
	now := time.Now()
	resource.CreatedAt = now
	resource.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, resource)
	if err != nil {
		return primitive.NilObjectID, errs.Store("insert", fmt.Errorf("failed to insert %s: %w", r.kind, err))
	}

	return resource.ID, nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Resource, error) {
	cacheKey := r.cacheKey(id)
	if r.cache != nil {
		var cached models.Resource
		if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	var resource models.Resource
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&resource)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Store("get", fmt.Errorf("failed to get %s: %w", r.kind, err))
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, &resource, utils.ResourceCacheTTL)
	}

	return &resource, nil
}

func (r *resourceRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Resource, error) {
	set := bson.M{"updated_at": time.Now()}
	for key, value := range updates {
		set[key] = value
	}

	var resource models.Resource
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&resource)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Store("update", fmt.Errorf("failed to update %s: %w", r.kind, err))
	}

	r.invalidate(ctx, id)

	return &resource, nil
}

func (r *resourceRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (*models.Resource, error) {
	return r.Update(ctx, id, map[string]interface{}{"is_active": false})
}

func (r *resourceRepository) Query(ctx context.Context, predicate interfaces.Predicate, geo *interfaces.GeoFilter, opts *interfaces.QueryOptions) ([]*models.Resource, error) {
	filter := buildFilter(predicate)

	findOpts := options.Find()
	if opts != nil {
		if opts.Skip > 0 {
			findOpts.SetSkip(opts.Skip)
		}
		if opts.Limit > 0 {
			findOpts.SetLimit(opts.Limit)
		}
	}

	if geo != nil {
		// $near sorts nearest-first; radius converts to meters.
		filter["location"] = bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{geo.Longitude, geo.Latitude},
				},
				"$maxDistance": geo.RadiusKM * 1000,
			},
		}
	} else if opts != nil && opts.SortBy != "" {
		findOpts.SetSort(bson.D{{Key: opts.SortBy, Value: -1}})
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, errs.Store("query", fmt.Errorf("failed to query %s: %w", r.kind, err))
	}
	defer cursor.Close(ctx)

	var resources []*models.Resource
	for cursor.Next(ctx) {
		var resource models.Resource
		if err := cursor.Decode(&resource); err != nil {
			return nil, errs.Store("query", fmt.Errorf("failed to decode %s: %w", r.kind, err))
		}
		resources = append(resources, &resource)
	}
	if err := cursor.Err(); err != nil {
		return nil, errs.Store("query", fmt.Errorf("cursor error on %s: %w", r.kind, err))
	}

	return resources, nil
}

func (r *resourceRepository) Count(ctx context.Context, predicate interfaces.Predicate, geo *interfaces.GeoFilter) (int64, error) {
	filter := buildFilter(predicate)

	if geo != nil {
		// countDocuments rejects $near; $centerSphere takes the radius in
		// radians.
		filter["location"] = bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": []interface{}{
					[]float64{geo.Longitude, geo.Latitude},
					geo.RadiusKM / utils.EarthRadiusKM,
				},
			},
		}
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, errs.Store("count", fmt.Errorf("failed to count %s: %w", r.kind, err))
	}

	return count, nil
}

func buildFilter(predicate interfaces.Predicate) bson.M {
	filter := bson.M{"is_active": true}

	// Predicates are literal substrings, so metacharacters are escaped
	// before they reach $regex.
	if predicate.City != "" {
		filter["address.city"] = bson.M{"$regex": regexp.QuoteMeta(predicate.City), "$options": "i"}
	}
	if predicate.State != "" {
		filter["address.state"] = bson.M{"$regex": regexp.QuoteMeta(predicate.State), "$options": "i"}
	}
	if predicate.Keyword != "" {
		keyword := bson.M{"$regex": regexp.QuoteMeta(predicate.Keyword), "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": keyword},
			{"description": keyword},
			{"address.city": keyword},
			{"address.state": keyword},
		}
	}

	return filter
}

func (r *resourceRepository) cacheKey(id primitive.ObjectID) string {
	return fmt.Sprintf("%s%s:%s", utils.CacheResourcePrefix, r.kind, id.Hex())
}

func (r *resourceRepository) invalidate(ctx context.Context, id primitive.ObjectID) {
	if r.cache != nil {
		r.cache.Delete(ctx, r.cacheKey(id))
	}
}
