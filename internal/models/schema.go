package models

import (
	"fmt"
	"strings"

	"resourcedir/internal/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FieldType string

const (
	FieldString     FieldType = "string"
	FieldStringList FieldType = "string_list"
	FieldBool       FieldType = "bool"
	FieldNumber     FieldType = "number"
	FieldEnum       FieldType = "enum"
)

// FieldSpec declares the constraints of one kind-specific attribute.
type FieldSpec struct {
	Type     FieldType
	Required bool
	Enum     []string
	Default  interface{}
	Min      *float64
	Max      *float64
}

// KindSchema is the registry-provided validation schema for a kind's
// attribute payload. One generic engine serves all five kinds; this is
// the only place a new kind's fields need to be declared.
type KindSchema struct {
	Kind   Kind
	Fields map[string]FieldSpec
}

// Normalize validates an attribute payload against the schema and returns
// a copy with type-coerced values and declared defaults applied. With
// partial set, absent fields are skipped instead of defaulted or required
// (the update path). Attribute keys the schema does not declare are
// dropped.
func (s *KindSchema) Normalize(attrs map[string]interface{}, partial bool) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	ve := errs.NewValidationError()

	for name, spec := range s.Fields {
		value, supplied := attrs[name]
		if !supplied || value == nil {
			if partial {
				continue
			}
			if spec.Required {
				ve.Add(name, name+" is required")
				continue
			}
			if spec.Default != nil {
				out[name] = spec.Default
			}
			continue
		}

		coerced, err := coerceField(name, spec, value)
		if err != "" {
			ve.Add(name, err)
			continue
		}
		out[name] = coerced
	}

	if ve.HasErrors() {
		return nil, ve
	}
	return out, nil
}

func coerceField(name string, spec FieldSpec, value interface{}) (interface{}, string) {
	switch spec.Type {
	case FieldString:
		str, ok := value.(string)
		if !ok {
			return nil, name + " must be a string"
		}
		return str, ""

	case FieldBool:
		b, ok := value.(bool)
		if !ok {
			return nil, name + " must be a boolean"
		}
		return b, ""

	case FieldNumber:
		num, ok := toFloat64(value)
		if !ok {
			return nil, name + " must be a number"
		}
		if spec.Min != nil && num < *spec.Min {
			return nil, fmt.Sprintf("%s must be at least %g", name, *spec.Min)
		}
		if spec.Max != nil && num > *spec.Max {
			return nil, fmt.Sprintf("%s must be at most %g", name, *spec.Max)
		}
		return num, ""

	case FieldStringList:
		list, ok := toStringList(value)
		if !ok {
			return nil, name + " must be a list of strings"
		}
		return list, ""

	case FieldEnum:
		str, ok := value.(string)
		if !ok {
			return nil, name + " must be a string"
		}
		for _, allowed := range spec.Enum {
			if str == allowed {
				return str, ""
			}
		}
		return nil, fmt.Sprintf("%s must be one of: %s", name, strings.Join(spec.Enum, ", "))
	}

	return nil, name + " has an unknown field type"
}

func toFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func toStringList(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), true
	case primitive.A:
		return toStringList([]interface{}(v))
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			list = append(list, str)
		}
		return list, true
	}
	return nil, false
}
