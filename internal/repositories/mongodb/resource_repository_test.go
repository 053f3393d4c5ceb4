package mongodb

import (
	"testing"

	"resourcedir/internal/repositories/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFilterActiveOnly(t *testing.T) {
	filter := buildFilter(interfaces.Predicate{})

	assert.Equal(t, bson.M{"is_active": true}, filter)
}

func TestBuildFilterEscapesRegexMetacharacters(t *testing.T) {
	filter := buildFilter(interfaces.Predicate{City: "St. Louis (MO)", State: "M.O"})

	city, ok := filter["address.city"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, `St\. Louis \(MO\)`, city["$regex"])
	assert.Equal(t, "i", city["$options"])

	state, ok := filter["address.state"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, `M\.O`, state["$regex"])
}

func TestBuildFilterKeywordSearchesAllFieldsLiterally(t *testing.T) {
	filter := buildFilter(interfaces.Predicate{Keyword: "a+b"})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 4)

	for _, clause := range or {
		for _, condition := range clause {
			regex, ok := condition.(bson.M)
			require.True(t, ok)
			assert.Equal(t, `a\+b`, regex["$regex"])
		}
	}
}
