package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GoogleGeocoder resolves postal addresses through the Google Maps
// Geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleGeocoder{
		client: client,
	}, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (float64, float64, error) {
	req := &maps.GeocodingRequest{
		Address: address,
	}

	resp, err := g.client.Geocode(ctx, req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding failed: %w", err)
	}
	if len(resp) == 0 {
		return 0, 0, fmt.Errorf("no geocoding results for %q", address)
	}

	location := resp[0].Geometry.Location
	return location.Lat, location.Lng, nil
}
