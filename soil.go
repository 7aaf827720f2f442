package setu

import "context"

// SoilAPI classifies soil images and scores soil test results.
type SoilAPI struct {
	c *Client
}

// DetectType uploads a soil image for classification.
func (a *SoilAPI) DetectType(ctx context.Context, file *File, lang string) (Response, error) {
	form, err := a.c.uploadForm(file, lang)
	if err != nil {
		return nil, err
	}
	return a.c.call(ctx, EndpointDetectSoilType, form)
}

// AssessHealth scores soil nutrient readings. data is any JSON-serializable value.
func (a *SoilAPI) AssessHealth(ctx context.Context, data any) (Response, error) {
	return a.c.call(ctx, EndpointAssessSoilHealth, data)
}
