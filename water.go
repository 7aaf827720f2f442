package setu

import "context"

// WaterAPI estimates irrigation needs.
type WaterAPI struct {
	c *Client
}

// CalculateRequirement estimates the water requirement of a crop.
func (a *WaterAPI) CalculateRequirement(ctx context.Context, data any) (Response, error) {
	return a.c.call(ctx, EndpointWaterRequirement, data)
}
