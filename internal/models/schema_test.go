package models

import (
	"testing"

	"resourcedir/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	schema := ShelterSchema()

	attrs, err := schema.Normalize(map[string]interface{}{}, false)
	require.NoError(t, err)

	assert.Equal(t, "General", attrs["shelterType"])
	assert.Equal(t, false, attrs["is24Hour"])
	assert.Equal(t, true, attrs["isFree"])
	assert.Equal(t, false, attrs["isPetFriendly"])
	assert.NotContains(t, attrs, "capacity")
	assert.NotContains(t, attrs, "eligibility")
}

func TestNormalizeRejectsInvalidEnum(t *testing.T) {
	schema := ShelterSchema()

	_, err := schema.Normalize(map[string]interface{}{"shelterType": "Bogus"}, false)
	require.Error(t, err)

	ve, ok := errs.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "shelterType")
	assert.Contains(t, ve.Fields["shelterType"], "must be one of")
}

func TestNormalizeRequiredField(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]interface{}
		field string
	}{
		{"ice resource missing type", map[string]interface{}{}, "resourceType"},
		{"consulate missing country", map[string]interface{}{"consulateType": "Embassy"}, "country"},
	}

	schemas := map[string]*KindSchema{
		"ice resource missing type": ICEResourceSchema(),
		"consulate missing country": ConsulateSchema(),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schemas[tt.name].Normalize(tt.attrs, false)
			require.Error(t, err)

			ve, ok := errs.AsValidation(err)
			require.True(t, ok)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestNormalizePartialSkipsRequiredAndDefaults(t *testing.T) {
	schema := ICEResourceSchema()

	attrs, err := schema.Normalize(map[string]interface{}{"is24Hour": true}, true)
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"is24Hour": true}, attrs)
}

func TestNormalizeCoercesNumbersAndLists(t *testing.T) {
	schema := LawyerSchema()

	attrs, err := schema.Normalize(map[string]interface{}{
		"yearsExperience": 25,
		"languages":       []interface{}{"English", "Spanish"},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, float64(25), attrs["yearsExperience"])
	assert.Equal(t, []string{"English", "Spanish"}, attrs["languages"])
}

func TestNormalizeRejectsTypeMismatches(t *testing.T) {
	schema := LawyerSchema()

	_, err := schema.Normalize(map[string]interface{}{
		"yearsExperience": "lots",
		"isProBono":       "yes",
		"languages":       []interface{}{"English", 3},
	}, true)
	require.Error(t, err)

	ve, ok := errs.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "yearsExperience")
	assert.Contains(t, ve.Fields, "isProBono")
	assert.Contains(t, ve.Fields, "languages")
}

func TestNormalizeRejectsNumberBelowMin(t *testing.T) {
	schema := ShelterSchema()

	_, err := schema.Normalize(map[string]interface{}{"capacity": -5}, true)
	require.Error(t, err)

	ve, ok := errs.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "capacity")
}

func TestNormalizeDropsUndeclaredKeys(t *testing.T) {
	schema := SurgeonSchema()

	attrs, err := schema.Normalize(map[string]interface{}{
		"examFee":    "$250",
		"unexpected": "value",
	}, true)
	require.NoError(t, err)

	assert.Contains(t, attrs, "examFee")
	assert.NotContains(t, attrs, "unexpected")
}
