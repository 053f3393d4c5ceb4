package services

import (
	"context"
	"fmt"
	"strings"

	"resourcedir/internal/errs"
	"resourcedir/internal/models"
	"resourcedir/internal/registry"
	"resourcedir/internal/repositories/interfaces"
	"resourcedir/internal/utils"
	"resourcedir/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Geocoder resolves a postal address to coordinates. It is a best-effort
// external enrichment; failures never fail the operation that invoked it.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

// ListFilters are the browse-query parameters. All fields are optional;
// zero values take the documented defaults. Lat and Lng must be present
// together, a lone one is ignored.
type ListFilters struct {
	City     string
	State    string
	Lat      *float64
	Lng      *float64
	RadiusKM float64
	Limit    int
	Page     int
	SortBy   string
}

type ListResult struct {
	Data       []*models.Resource
	Pagination *utils.PaginationMeta
}

// ResourceService is the query engine plus the generic CRUD surface. One
// implementation serves all five kinds through the registry.
type ResourceService interface {
	List(ctx context.Context, kind models.Kind, filters *ListFilters) (*ListResult, error)
	Search(ctx context.Context, kind models.Kind, keyword string, limit int) ([]*models.Resource, error)
	Get(ctx context.Context, kind models.Kind, id primitive.ObjectID) (*models.Resource, error)
	Create(ctx context.Context, kind models.Kind, resource *models.Resource) (*models.Resource, error)
	Update(ctx context.Context, kind models.Kind, id primitive.ObjectID, fields map[string]interface{}) (*models.Resource, error)
	Delete(ctx context.Context, kind models.Kind, id primitive.ObjectID) error
}

type resourceService struct {
	registry *registry.Registry
	geocoder Geocoder
	logger   *logger.Logger
}

// NewResourceService builds the engine. geocoder may be nil to disable
// address enrichment.
func NewResourceService(reg *registry.Registry, geocoder Geocoder, log *logger.Logger) ResourceService {
	return &resourceService{
		registry: reg,
		geocoder: geocoder,
		logger:   log,
	}
}

func (s *resourceService) List(ctx context.Context, kind models.Kind, filters *ListFilters) (*ListResult, error) {
	entry, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	f := normalizeFilters(filters)
	predicate := interfaces.Predicate{City: f.City, State: f.State}

	var geo *interfaces.GeoFilter
	if f.Lat != nil && f.Lng != nil {
		geo = &interfaces.GeoFilter{
			Latitude:  *f.Lat,
			Longitude: *f.Lng,
			RadiusKM:  f.RadiusKM,
		}
	}

	opts := &interfaces.QueryOptions{
		Skip:  int64(utils.Offset(f.Page, f.Limit)),
		Limit: int64(f.Limit),
	}
	if geo == nil {
		opts.SortBy = f.SortBy
	}

	resources, err := entry.Store.Query(ctx, predicate, geo, opts)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []*models.Resource{}
	}

	if geo != nil {
		for _, resource := range resources {
			d := utils.RoundDistance(utils.CalculateDistance(
				geo.Latitude, geo.Longitude,
				resource.Location.Latitude(), resource.Location.Longitude(),
			))
			resource.Distance = &d
		}
	}

	// Total honors the radius filter, so pages always reflects retrievable
	// pages.
	total, err := entry.Store.Count(ctx, predicate, geo)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Data:       resources,
		Pagination: utils.CreatePaginationMeta(f.Page, f.Limit, total),
	}, nil
}

func (s *resourceService) Search(ctx context.Context, kind models.Kind, keyword string, limit int) ([]*models.Resource, error) {
	entry, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidArgument, utils.ErrKeywordRequired)
	}
	if limit <= 0 {
		limit = utils.DefaultSearchLimit
	}

	resources, err := entry.Store.Query(ctx,
		interfaces.Predicate{Keyword: keyword},
		nil,
		&interfaces.QueryOptions{SortBy: utils.DefaultSortField, Limit: int64(limit)},
	)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []*models.Resource{}
	}

	return resources, nil
}

func (s *resourceService) Get(ctx context.Context, kind models.Kind, id primitive.ObjectID) (*models.Resource, error) {
	entry, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	return entry.Store.GetByID(ctx, id)
}

func (s *resourceService) Create(ctx context.Context, kind models.Kind, resource *models.Resource) (*models.Resource, error) {
	entry, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	resource.Kind = kind
	resource.IsActive = true
	resource.ApplyDefaults()

	ve := errs.NewValidationError()
	if err := resource.Validate(); err != nil {
		base, ok := errs.AsValidation(err)
		if !ok {
			return nil, err
		}
		for field, message := range base.Fields {
			ve.Add(field, message)
		}
	}

	attrs, err := entry.Schema.Normalize(resource.Attributes, false)
	if err != nil {
		if attrErrs, ok := errs.AsValidation(err); ok {
			for field, message := range attrErrs.Fields {
				ve.Add(field, message)
			}
		} else {
			return nil, err
		}
	}

	if ve.HasErrors() {
		return nil, ve
	}
	resource.Attributes = attrs

	s.maybeGeocode(ctx, resource)

	if _, err := entry.Store.Insert(ctx, resource); err != nil {
		return nil, err
	}

	s.logger.WithField("kind", kind.String()).WithField("id", resource.ID.Hex()).Info("resource created")

	return resource, nil
}

func (s *resourceService) Update(ctx context.Context, kind models.Kind, id primitive.ObjectID, fields map[string]interface{}) (*models.Resource, error) {
	entry, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	updates, err := buildUpdates(entry.Schema, fields)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		// Nothing but ignored keys supplied; still refreshes updated_at.
		return entry.Store.Update(ctx, id, nil)
	}

	return entry.Store.Update(ctx, id, updates)
}

func (s *resourceService) Delete(ctx context.Context, kind models.Kind, id primitive.ObjectID) error {
	entry, err := s.registry.Lookup(kind)
	if err != nil {
		return err
	}

	if _, err := entry.Store.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("kind", kind.String()).WithField("id", id.Hex()).Info("resource deactivated")

	return nil
}

// maybeGeocode fills missing coordinates from the structured address.
// Best effort only.
func (s *resourceService) maybeGeocode(ctx context.Context, resource *models.Resource) {
	if s.geocoder == nil {
		return
	}
	if resource.Location.Longitude() != 0 || resource.Location.Latitude() != 0 {
		return
	}

	address := formatAddress(resource.Address)
	if address == "" {
		return
	}

	lat, lng, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.logger.WithError(err).WithField("address", address).Warn("geocoding failed")
		return
	}

	resource.Location = models.NewGeoPoint(lng, lat)
}

func formatAddress(address models.Address) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{address.Street, address.City, address.State, address.ZipCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ", ")
}

func normalizeFilters(filters *ListFilters) *ListFilters {
	f := &ListFilters{}
	if filters != nil {
		*f = *filters
	}
	if f.RadiusKM <= 0 {
		f.RadiusKM = utils.DefaultSearchRadiusKM
	}
	if f.Limit <= 0 {
		f.Limit = utils.DefaultPageSize
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.SortBy == "" {
		f.SortBy = utils.DefaultSortField
	}
	return f
}
