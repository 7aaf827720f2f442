// Package setu is a Go client for the DhartiSetu agricultural prediction API.
// It forwards typed calls to the backend's plant disease, soil, crop,
// weather, market and water services.
//
// Every call goes through one shared gateway that logs the request and turns
// any transport failure into a normalized failure value. Endpoints then apply
// one of two policies: action endpoints return an error on failure, lookup
// endpoints return an empty default instead.
//
// Example usage:
//
//	client, err := setu.New(setu.WithBaseURL("https://backend.example"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	file, err := setu.OpenFile("leaf.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	result, err := client.PlantDisease().Detect(ctx, file, "hi")
//	if err != nil {
//	    log.Printf("detection failed: %v", err)
//	    return
//	}
//	fmt.Println(result["disease"])
//
//	// Lookups never fail; they fall back to {"states": []}.
//	states := client.Location().GetStates(ctx)
package setu

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/dhartisetu/setu/internal/config"
	"github.com/dhartisetu/setu/internal/transport"
	"github.com/dhartisetu/setu/pkg/constants"
	"github.com/dhartisetu/setu/pkg/logging"
	"github.com/dhartisetu/setu/pkg/response"
)

// Response is the normalized value every endpoint returns.
type Response = response.Response

// Client bundles the endpoint groups around one gateway.
// It is immutable after New and safe for concurrent use.
type Client struct {
	gateway *transport.Gateway
	logger  *zerolog.Logger

	location     *LocationAPI
	plantDisease *PlantDiseaseAPI
	soil         *SoilAPI
	crop         *CropAPI
	weather      *WeatherAPI
	market       *MarketAPI
	water        *WaterAPI
}

// New creates a client. Without WithBaseURL the server URL and timeout are
// read from SETU_API_URL (or VITE_API_URL), SETU_TIMEOUT, .env files or
// ~/.setu.yaml; a missing or malformed URL is a configuration error.
// With WithBaseURL none of those sources are read and the timeout is 120s
// unless WithTimeout sets it.
func New(opts ...Option) (*Client, error) {
	cfg := &options{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.serverURL == "" {
		v := config.New(cfg.configFile)
		url, err := config.APIURL(v)
		if err != nil {
			return nil, err
		}
		cfg.serverURL = url
		if cfg.timeout == 0 {
			cfg.timeout = config.Timeout(v)
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = logging.Default()
	}

	gw, err := transport.New(transport.Config{
		BaseURL:    BaseURL(cfg.serverURL),
		Timeout:    cfg.timeout,
		Headers:    cfg.headers,
		HTTPClient: cfg.httpClient,
		Logger:     logger,
		Middleware: cfg.middleware,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{gateway: gw, logger: logger}
	c.location = &LocationAPI{c: c}
	c.plantDisease = &PlantDiseaseAPI{c: c}
	c.soil = &SoilAPI{c: c}
	c.crop = &CropAPI{c: c}
	c.weather = &WeatherAPI{c: c}
	c.market = &MarketAPI{c: c}
	c.water = &WaterAPI{c: c}
	return c, nil
}

// BaseURL appends the API version prefix to a server URL. A URL that
// already ends in the prefix is left as is.
func BaseURL(serverURL string) string {
	serverURL = strings.TrimRight(strings.TrimSpace(serverURL), "/")
	if serverURL == "" || strings.HasSuffix(serverURL, constants.APIVersionPrefix) {
		return serverURL
	}
	return serverURL + constants.APIVersionPrefix
}

// BaseURL returns the API root all routes are appended to.
func (c *Client) BaseURL() string {
	return c.gateway.BaseURL()
}

// CloseIdleConnections releases pooled connections. The client stays usable.
func (c *Client) CloseIdleConnections() {
	c.gateway.CloseIdleConnections()
}

// Location returns the location lookup endpoints.
func (c *Client) Location() *LocationAPI { return c.location }

// PlantDisease returns the plant disease detection endpoints.
func (c *Client) PlantDisease() *PlantDiseaseAPI { return c.plantDisease }

// Soil returns the soil endpoints.
func (c *Client) Soil() *SoilAPI { return c.soil }

// Crop returns the crop endpoints.
func (c *Client) Crop() *CropAPI { return c.crop }

// Weather returns the weather and environment prediction endpoints.
func (c *Client) Weather() *WeatherAPI { return c.weather }

// Market returns the market and finance endpoints.
func (c *Client) Market() *MarketAPI { return c.market }

// Water returns the water management endpoints.
func (c *Client) Water() *WaterAPI { return c.water }
