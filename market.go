package setu

import "context"

// MarketAPI covers yield, price and profit predictions.
type MarketAPI struct {
	c *Client
}

// PredictYield predicts the yield of a crop for a season and area.
func (a *MarketAPI) PredictYield(ctx context.Context, data any) (Response, error) {
	return a.c.call(ctx, EndpointPredictYield, data)
}

// GetSeasons lists cropping seasons, or {"seasons": []} on failure.
func (a *MarketAPI) GetSeasons(ctx context.Context) Response {
	return a.c.lookup(ctx, EndpointSeasons, nil)
}

// PredictPrice predicts the market price of a crop.
func (a *MarketAPI) PredictPrice(ctx context.Context, data any) (Response, error) {
	return a.c.call(ctx, EndpointPredictPrice, data)
}

// CalculateProfit estimates profit from costs, yield and price.
func (a *MarketAPI) CalculateProfit(ctx context.Context, data any) (Response, error) {
	return a.c.call(ctx, EndpointCalculateProfit, data)
}
