package setu

import "context"

// CropAPI recommends crops.
type CropAPI struct {
	c *Client
}

// Recommend suggests crops for the given soil and climate readings.
func (a *CropAPI) Recommend(ctx context.Context, data any) (Response, error) {
	return a.c.call(ctx, EndpointRecommendCrop, data)
}

// GetCropList lists known crops, or {"crops": []} on failure.
func (a *CropAPI) GetCropList(ctx context.Context) Response {
	return a.c.lookup(ctx, EndpointCropList, nil)
}
