package setu

import "context"

// LocationAPI resolves places and lists reference regions. Its calls never
// fail; on any error they return an "Unknown" location or an empty list.
type LocationAPI struct {
	c *Client
}

// ReverseGeocode resolves a coordinate to {city, district, state}.
func (a *LocationAPI) ReverseGeocode(ctx context.Context, latitude, longitude float64) Response {
	return a.c.lookup(ctx, EndpointReverseGeocode, map[string]any{
		"latitude":  latitude,
		"longitude": longitude,
	})
}

// GetStates lists the supported states, or {"states": []} on failure.
func (a *LocationAPI) GetStates(ctx context.Context) Response {
	return a.c.lookup(ctx, EndpointStates, nil)
}

// GetSubdivisions lists the meteorological subdivisions, or
// {"subdivisions": []} on failure.
func (a *LocationAPI) GetSubdivisions(ctx context.Context) Response {
	return a.c.lookup(ctx, EndpointSubdivisions, nil)
}
