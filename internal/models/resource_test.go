package models

import (
	"testing"

	"resourcedir/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResource() *Resource {
	return &Resource{
		Name:        "Hope Emergency Shelter",
		Description: "24/7 Emergency Housing",
		Rating:      4.6,
		Location:    NewGeoPoint(-74.0060, 40.7128),
		Address:     Address{City: "New York", State: "NY", Country: "USA"},
	}
}

func TestResourceValidateAccepts(t *testing.T) {
	require.NoError(t, validResource().Validate())
}

func TestResourceValidateRequiredFields(t *testing.T) {
	resource := validResource()
	resource.Name = ""
	resource.Description = ""

	err := resource.Validate()
	require.Error(t, err)

	ve, ok := errs.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "description")
}

func TestResourceValidateRatingBounds(t *testing.T) {
	resource := validResource()
	resource.Rating = 5.5

	err := resource.Validate()
	require.Error(t, err)

	ve, ok := errs.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "rating")
}

func TestResourceValidateCoordinateBounds(t *testing.T) {
	resource := validResource()
	resource.Location = NewGeoPoint(-200, 40)

	err := resource.Validate()
	require.Error(t, err)

	ve, ok := errs.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "location")
}

func TestApplyDefaults(t *testing.T) {
	resource := &Resource{Name: "Test", Description: "Test"}
	resource.ApplyDefaults()

	assert.Equal(t, "Point", resource.Location.Type)
	assert.Equal(t, []float64{0, 0}, resource.Location.Coordinates)
	assert.Equal(t, "USA", resource.Address.Country)
}

func TestCloneIsDeep(t *testing.T) {
	resource := validResource()
	resource.Attributes = map[string]interface{}{
		"services": []string{"Meals", "Showers"},
	}

	clone := resource.Clone()
	clone.Location.Coordinates[0] = 0
	clone.Attributes["services"].([]string)[0] = "changed"
	clone.Attributes["extra"] = true

	assert.Equal(t, -74.0060, resource.Location.Coordinates[0])
	assert.Equal(t, "Meals", resource.Attributes["services"].([]string)[0])
	assert.NotContains(t, resource.Attributes, "extra")
}

func TestGeoPointAccessors(t *testing.T) {
	point := NewGeoPoint(-122.4194, 37.7749)

	assert.Equal(t, "Point", point.Type)
	assert.Equal(t, -122.4194, point.Longitude())
	assert.Equal(t, 37.7749, point.Latitude())
	assert.Zero(t, GeoPoint{}.Latitude())
}
