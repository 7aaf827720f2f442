package setu

import "context"

// WeatherAPI wraps the weather and environment prediction models.
type WeatherAPI struct {
	c *Client
}

// PredictFlood predicts flood risk.
func (a *WeatherAPI) PredictFlood(ctx context.Context, data any) (Response, error) {
	return a.c.call(ctx, EndpointPredictFlood, data)
}

// PredictStorm predicts storm likelihood.
func (a *WeatherAPI) PredictStorm(ctx context.Context, data any) (Response, error) {
	return a.c.call(ctx, EndpointPredictStorm, data)
}

// PredictRainfall predicts rainfall.
func (a *WeatherAPI) PredictRainfall(ctx context.Context, data any) (Response, error) {
	return a.c.call(ctx, EndpointPredictRainfall, data)
}

// PredictAQI predicts the air quality index.
func (a *WeatherAPI) PredictAQI(ctx context.Context, data any) (Response, error) {
	return a.c.call(ctx, EndpointPredictAQI, data)
}

// PredictCO2 predicts carbon dioxide emissions.
func (a *WeatherAPI) PredictCO2(ctx context.Context, data any) (Response, error) {
	return a.c.call(ctx, EndpointPredictCO2, data)
}
