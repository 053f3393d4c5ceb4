package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaginationMeta(t *testing.T) {
	meta := CreatePaginationMeta(2, 10, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 5, meta.Pages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 3, *meta.NextPage)
	require.NotNil(t, meta.PreviousPage)
	assert.Equal(t, 1, *meta.PreviousPage)
}

func TestCreatePaginationMetaSinglePage(t *testing.T) {
	meta := CreatePaginationMeta(1, 50, 3)

	assert.Equal(t, 1, meta.Pages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
	assert.Nil(t, meta.NextPage)
	assert.Nil(t, meta.PreviousPage)
}

func TestCreatePaginationMetaEmpty(t *testing.T) {
	meta := CreatePaginationMeta(1, 50, 0)

	assert.Equal(t, 0, meta.Pages)
	assert.False(t, meta.HasNext)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 50))
	assert.Equal(t, 50, Offset(2, 50))
	assert.Equal(t, 40, Offset(3, 20))
}
