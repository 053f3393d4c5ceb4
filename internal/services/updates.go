package services

import (
	"resourcedir/internal/errs"
	"resourcedir/internal/models"
	"resourcedir/internal/utils"
)

// buildUpdates turns a partial request body into the store's update
// document, validating every supplied field. Only supplied fields change;
// an inactive record is reactivated only by an explicit is_active true.
// Immutable and unknown keys are ignored.
func buildUpdates(schema *models.KindSchema, fields map[string]interface{}) (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	ve := errs.NewValidationError()

	for key, value := range fields {
		switch key {
		case "name", "description":
			str, ok := value.(string)
			if !ok || str == "" {
				ve.Add(key, key+" must be a non-empty string")
				continue
			}
			updates[key] = str

		case "details", "price_info", "hours":
			str, ok := value.(string)
			if !ok {
				ve.Add(key, key+" must be a string")
				continue
			}
			updates[key] = str

		case "rating":
			num, ok := toNumber(value)
			if !ok || num < utils.MinRating || num > utils.MaxRating {
				ve.Add(key, "rating must be a number between 0 and 5")
				continue
			}
			updates[key] = num

		case "location":
			point, ok := decodeGeoPoint(value)
			if !ok {
				ve.Add(key, "coordinates must be [longitude, latitude] within valid bounds")
				continue
			}
			updates[key] = point

		case "address":
			address, ok := decodeAddress(value)
			if !ok {
				ve.Add(key, "address must be an object of strings")
				continue
			}
			updates[key] = address

		case "contact":
			contact, ok := decodeContact(value)
			if !ok {
				ve.Add(key, "contact must be an object of strings")
				continue
			}
			updates[key] = contact

		case "is_active":
			active, ok := value.(bool)
			if !ok {
				ve.Add(key, "is_active must be a boolean")
				continue
			}
			updates[key] = active

		case "attributes":
			attrs, ok := value.(map[string]interface{})
			if !ok {
				ve.Add(key, "attributes must be an object")
				continue
			}
			normalized, err := schema.Normalize(attrs, true)
			if err != nil {
				if attrErrs, ok := errs.AsValidation(err); ok {
					for field, message := range attrErrs.Fields {
						ve.Add(field, message)
					}
					continue
				}
				return nil, err
			}
			for field, v := range normalized {
				updates["attributes."+field] = v
			}
		}
	}

	if ve.HasErrors() {
		return nil, ve
	}
	return updates, nil
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func decodeGeoPoint(value interface{}) (models.GeoPoint, bool) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return models.GeoPoint{}, false
	}

	raw, ok := obj["coordinates"].([]interface{})
	if !ok || len(raw) != 2 {
		return models.GeoPoint{}, false
	}

	lng, lngOK := toNumber(raw[0])
	lat, latOK := toNumber(raw[1])
	if !lngOK || !latOK {
		return models.GeoPoint{}, false
	}
	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return models.GeoPoint{}, false
	}

	return models.NewGeoPoint(lng, lat), true
}

func decodeAddress(value interface{}) (models.Address, bool) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return models.Address{}, false
	}

	address := models.Address{}
	fields := map[string]*string{
		"street":   &address.Street,
		"city":     &address.City,
		"state":    &address.State,
		"zip_code": &address.ZipCode,
		"country":  &address.Country,
	}
	if !decodeStringFields(obj, fields) {
		return models.Address{}, false
	}
	if address.Country == "" {
		address.Country = utils.DefaultCountry
	}

	return address, true
}

func decodeContact(value interface{}) (models.Contact, bool) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return models.Contact{}, false
	}

	contact := models.Contact{}
	fields := map[string]*string{
		"phone":   &contact.Phone,
		"email":   &contact.Email,
		"website": &contact.Website,
	}
	if !decodeStringFields(obj, fields) {
		return models.Contact{}, false
	}

	return contact, true
}

func decodeStringFields(obj map[string]interface{}, fields map[string]*string) bool {
	for key, dest := range fields {
		value, supplied := obj[key]
		if !supplied {
			continue
		}
		str, ok := value.(string)
		if !ok {
			return false
		}
		*dest = str
	}
	return true
}
