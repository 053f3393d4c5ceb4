package utils

import "time"

// Application Constants
const (
	AppName    = "ResourceDirectory"
	AppVersion = "1.0.0"

	// Default values
	DefaultCountry  = "USA"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 50
	MinPageSize     = 1

	// Query Engine
	DefaultSearchRadiusKM = 50.0
	DefaultSearchLimit    = 20
	DefaultSortField      = "rating"

	// Geo Constants
	EarthRadiusKM = 6371.0

	// Rating bounds
	MinRating = 0.0
	MaxRating = 5.0

	// Cache
	ResourceCacheTTL = 5 * time.Minute
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidInput     = "invalid input"
	ErrInternalServer   = "internal server error"
	ErrNotFoundMsg      = "not found"
	ErrValidationFailed = "validation failed"
	ErrKeywordRequired  = "search query is required"
)

// Cache Keys
const (
	CacheResourcePrefix = "resource:"
)
