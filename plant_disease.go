package setu

import "context"

// PlantDiseaseAPI runs leaf image disease detection.
type PlantDiseaseAPI struct {
	c *Client
}

// Detect uploads a leaf image. lang selects the language of the diagnosis
// and defaults to "en".
func (a *PlantDiseaseAPI) Detect(ctx context.Context, file *File, lang string) (Response, error) {
	form, err := a.c.uploadForm(file, lang)
	if err != nil {
		return nil, err
	}
	return a.c.call(ctx, EndpointDetectDisease, form)
}

// DetectBase64 sends an already encoded image, with or without a data URL
// prefix, as JSON.
func (a *PlantDiseaseAPI) DetectBase64(ctx context.Context, imageData, lang string) (Response, error) {
	return a.c.call(ctx, EndpointDetectDiseaseBase64, map[string]any{
		"image_data":  imageData,
		FieldLanguage: a.c.languageField(lang),
	})
}
