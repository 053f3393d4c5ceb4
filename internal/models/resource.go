package models

import (
	"reflect"
	"strings"
	"time"

	"resourcedir/internal/errs"
	"resourcedir/internal/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind identifies one of the five resource categories served by the
// directory. All kinds share the common Resource shape; kind-specific
// fields live in the Attributes payload and are validated against the
// kind's schema.
type Kind string

const (
	KindConsulate   Kind = "consulate"
	KindLawyer      Kind = "lawyer"
	KindSurgeon     Kind = "surgeon"
	KindShelter     Kind = "shelter"
	KindICEResource Kind = "ice-resource"
)

func (k Kind) String() string {
	return string(k)
}

// Collection returns the MongoDB collection name backing the kind.
func (k Kind) Collection() string {
	switch k {
	case KindConsulate:
		return "consulates"
	case KindLawyer:
		return "lawyers"
	case KindSurgeon:
		return "civil_surgeons"
	case KindShelter:
		return "shelters"
	case KindICEResource:
		return "ice_resources"
	}
	return string(k)
}

// DisplayName is the human-readable name used in API messages.
func (k Kind) DisplayName() string {
	switch k {
	case KindConsulate:
		return "Consulate"
	case KindLawyer:
		return "Lawyer"
	case KindSurgeon:
		return "Civil Surgeon"
	case KindShelter:
		return "Shelter"
	case KindICEResource:
		return "ICE Resource"
	}
	return string(k)
}

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoPoint(longitude, latitude float64) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) >= 1 {
		return p.Coordinates[0]
	}
	return 0
}

func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) >= 2 {
		return p.Coordinates[1]
	}
	return 0
}

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
	Country string `json:"country" bson:"country"`
}

type Contact struct {
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`
}

// Resource is the record shape shared by all five kinds. Deletion is a
// soft state transition: IsActive goes false and the record drops out of
// list/search/proximity queries but stays retrievable by id.
type Resource struct {
	ID          primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	Kind        Kind                   `json:"kind" bson:"kind"`
	Name        string                 `json:"name" bson:"name" validate:"required"`
	Description string                 `json:"description" bson:"description" validate:"required"`
	Details     string                 `json:"details,omitempty" bson:"details,omitempty"`
	Rating      float64                `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	PriceInfo   string                 `json:"price_info,omitempty" bson:"price_info,omitempty"`
	Location    GeoPoint               `json:"location" bson:"location" validate:"geopoint"`
	Address     Address                `json:"address" bson:"address"`
	Contact     Contact                `json:"contact" bson:"contact"`
	Hours       string                 `json:"hours,omitempty" bson:"hours,omitempty"`
	IsActive    bool                   `json:"is_active" bson:"is_active"`
	Attributes  map[string]interface{} `json:"attributes,omitempty" bson:"attributes,omitempty"`
	CreatedAt   time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at" bson:"updated_at"`

	// Distance from the query point in kilometers, attached on proximity
	// queries only. Never persisted.
	Distance *float64 `json:"distance,omitempty" bson:"-"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("geopoint", validateGeoPoint)
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateGeoPoint(fl validator.FieldLevel) bool {
	point, ok := fl.Field().Interface().(GeoPoint)
	if !ok {
		return false
	}
	if len(point.Coordinates) != 2 {
		return false
	}
	lng, lat := point.Coordinates[0], point.Coordinates[1]
	return lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90
}

// ApplyDefaults fills the declared base-field defaults on a new record.
func (r *Resource) ApplyDefaults() {
	if r.Location.Type == "" {
		r.Location.Type = "Point"
	}
	if len(r.Location.Coordinates) == 0 {
		r.Location.Coordinates = []float64{0, 0}
	}
	if r.Address.Country == "" {
		r.Address.Country = utils.DefaultCountry
	}
}

// Validate checks the common field invariants. Kind-specific attributes
// are validated separately against the kind schema.
func (r *Resource) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	ve := errs.NewValidationError()
	for _, fe := range fieldErrors {
		ve.Add(fe.Field(), validationMessage(fe))
	}
	return ve
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "lte":
		return fe.Field() + " must be at most " + fe.Param()
	case "email":
		return "invalid email format"
	case "geopoint":
		return "coordinates must be [longitude, latitude] within valid bounds"
	}
	return "invalid value"
}

// Clone returns a deep copy so store internals never alias caller data.
func (r *Resource) Clone() *Resource {
	clone := *r

	if r.Location.Coordinates != nil {
		clone.Location.Coordinates = append([]float64(nil), r.Location.Coordinates...)
	}
	if r.Attributes != nil {
		attrs := make(map[string]interface{}, len(r.Attributes))
		for k, v := range r.Attributes {
			if list, ok := v.([]string); ok {
				v = append([]string(nil), list...)
			}
			attrs[k] = v
		}
		clone.Attributes = attrs
	}
	if r.Distance != nil {
		d := *r.Distance
		clone.Distance = &d
	}

	return &clone
}
