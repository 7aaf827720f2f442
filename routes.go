package setu

import (
	"github.com/dhartisetu/setu/pkg/constants"
	"github.com/dhartisetu/setu/pkg/response"
)

// Route table. Paths are relative to the /api/v1 base URL.
var (
	EndpointReverseGeocode = post("location.reverse-geocode", "/location/reverse", FallbackOnError(response.Response{
		"city":     constants.UnknownLocation,
		"district": constants.UnknownLocation,
		"state":    constants.UnknownLocation,
	}))
	EndpointStates       = get("location.states", "/location/states", FallbackOnError(emptyList("states")))
	EndpointSubdivisions = get("location.subdivisions", "/location/subdivisions", FallbackOnError(emptyList("subdivisions")))

	EndpointDetectDisease       = post("plant-disease.detect", "/plant-disease/detect", ThrowOnError)
	EndpointDetectDiseaseBase64 = post("plant-disease.detect-base64", "/plant-disease/detect-base64", ThrowOnError)

	EndpointDetectSoilType   = post("soil.detect-type", "/soil/detect", ThrowOnError)
	EndpointAssessSoilHealth = post("soil.assess-health", "/soil-health/assess", ThrowOnError)

	EndpointRecommendCrop = post("crop.recommend", "/crop/recommend", ThrowOnError)
	EndpointCropList      = get("crop.list", "/yield/crops", FallbackOnError(emptyList("crops")))

	EndpointPredictFlood    = post("weather.flood", "/flood/predict", ThrowOnError)
	EndpointPredictStorm    = post("weather.storm", "/storm/predict", ThrowOnError)
	EndpointPredictRainfall = post("weather.rainfall", "/rainfall/predict", ThrowOnError)
	EndpointPredictAQI      = post("weather.aqi", "/aqi/predict", ThrowOnError)
	EndpointPredictCO2      = post("weather.co2", "/co2/predict", ThrowOnError)

	EndpointPredictYield    = post("market.yield", "/yield/predict", ThrowOnError)
	EndpointSeasons         = get("market.seasons", "/yield/seasons", FallbackOnError(emptyList("seasons")))
	EndpointPredictPrice    = post("market.price", "/price/predict", ThrowOnError)
	EndpointCalculateProfit = post("market.profit", "/profit/calculate", ThrowOnError)

	EndpointWaterRequirement = post("water.requirement", "/water/calculate", ThrowOnError)
)

// Routes returns every endpoint in declaration order.
func Routes() []Endpoint {
	return []Endpoint{
		EndpointReverseGeocode,
		EndpointStates,
		EndpointSubdivisions,
		EndpointDetectDisease,
		EndpointDetectDiseaseBase64,
		EndpointDetectSoilType,
		EndpointAssessSoilHealth,
		EndpointRecommendCrop,
		EndpointCropList,
		EndpointPredictFlood,
		EndpointPredictStorm,
		EndpointPredictRainfall,
		EndpointPredictAQI,
		EndpointPredictCO2,
		EndpointPredictYield,
		EndpointSeasons,
		EndpointPredictPrice,
		EndpointCalculateProfit,
		EndpointWaterRequirement,
	}
}

func emptyList(key string) response.Response {
	return response.Response{key: []any{}}
}
