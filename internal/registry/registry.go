package registry

import (
	"fmt"

	"resourcedir/internal/errs"
	"resourcedir/internal/models"
	"resourcedir/internal/repositories/interfaces"
)

// Entry binds a kind's validation schema to the store holding its
// records.
type Entry struct {
	Schema *models.KindSchema
	Store  interfaces.ResourceRepository
}

// Registry maps kind identifiers to their schema and backing store. The
// query engine and the CRUD operations are implemented once and
// parameterized by registry lookup, so adding a kind means registering
// it here and nothing else.
type Registry struct {
	entries map[models.Kind]*Entry
}

func New() *Registry {
	return &Registry{entries: make(map[models.Kind]*Entry)}
}

func (r *Registry) Register(schema *models.KindSchema, store interfaces.ResourceRepository) {
	r.entries[schema.Kind] = &Entry{Schema: schema, Store: store}
}

func (r *Registry) Lookup(kind models.Kind) (*Entry, error) {
	entry, ok := r.entries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown resource kind %q", errs.ErrInvalidArgument, kind)
	}
	return entry, nil
}

func (r *Registry) Kinds() []models.Kind {
	kinds := make([]models.Kind, 0, len(r.entries))
	for _, schema := range models.AllSchemas() {
		if _, ok := r.entries[schema.Kind]; ok {
			kinds = append(kinds, schema.Kind)
		}
	}
	return kinds
}
