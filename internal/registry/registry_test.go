package registry

import (
	"testing"

	"resourcedir/internal/errs"
	"resourcedir/internal/models"
	"resourcedir/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRegisteredKind(t *testing.T) {
	reg := New()
	schema := models.ShelterSchema()
	store := memory.NewResourceRepository(models.KindShelter)
	reg.Register(schema, store)

	entry, err := reg.Lookup(models.KindShelter)
	require.NoError(t, err)
	assert.Equal(t, schema, entry.Schema)
	assert.Equal(t, store, entry.Store)
}

func TestLookupUnknownKind(t *testing.T) {
	reg := New()

	_, err := reg.Lookup(models.Kind("unicorn"))
	require.Error(t, err)
	assert.True(t, errs.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "unicorn")
}

func TestKindsFollowDeclarationOrder(t *testing.T) {
	reg := New()
	// Registered out of order on purpose
	reg.Register(models.ShelterSchema(), memory.NewResourceRepository(models.KindShelter))
	reg.Register(models.ConsulateSchema(), memory.NewResourceRepository(models.KindConsulate))
	reg.Register(models.ICEResourceSchema(), memory.NewResourceRepository(models.KindICEResource))

	assert.Equal(t, []models.Kind{models.KindConsulate, models.KindShelter, models.KindICEResource}, reg.Kinds())
}
