package utils

import (
	"math"
)

type PaginationMeta struct {
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	Total        int64 `json:"total"`
	Pages        int   `json:"pages"`
	HasNext      bool  `json:"has_next"`
	HasPrevious  bool  `json:"has_previous"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

func CreatePaginationMeta(page, limit int, total int64) *PaginationMeta {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	meta := &PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		Pages:       totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}

	if meta.HasNext {
		nextPage := page + 1
		meta.NextPage = &nextPage
	}

	if meta.HasPrevious {
		previousPage := page - 1
		meta.PreviousPage = &previousPage
	}

	return meta
}

// Offset converts 1-indexed page and limit into a list offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
