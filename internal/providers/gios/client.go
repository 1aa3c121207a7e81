package gios

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// API Docs: https://powietrze.gios.gov.pl/pjp/content/api
// Sample request: https://api.gios.gov.pl/pjp-api/rest/station/findAll
const (
	defaultBaseURL = "https://api.gios.gov.pl/pjp-api/rest"
	defaultTimeout = 10 * time.Second
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithBaseURL(defaultBaseURL, defaultTimeout, logger)
}

// NewClientWithBaseURL creates a client against a custom endpoint, which lets
// tests point at a local mock server.
func NewClientWithBaseURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.With("component", "gios-client"),
	}
}

// FindAllStations fetches every air-quality measurement station.
func (c *Client) FindAllStations() ([]Station, error) {
	url := fmt.Sprintf("%s/station/findAll", c.baseURL)

	c.logger.Debug("fetching GIOS stations", "url", url)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		c.logger.Error("failed to fetch GIOS stations", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("GIOS station API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var stations []Station
	if err := json.NewDecoder(resp.Body).Decode(&stations); err != nil {
		c.logger.Error("failed to decode GIOS station response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched GIOS stations", "station_count", len(stations))

	return stations, nil
}

// GetStationSensors fetches the sensors (measurement positions) of one station.
// An id the server does not know yields an empty list or an error status; the
// client does not range-check it.
func (c *Client) GetStationSensors(stationId int) ([]Sensor, error) {
	url := fmt.Sprintf("%s/station/sensors/%d", c.baseURL, stationId)

	c.logger.Debug("fetching GIOS sensors", "station_id", stationId, "url", url)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		c.logger.Error("failed to fetch GIOS sensors",
			"station_id", stationId,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch sensors for station %d: %w", stationId, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("GIOS sensor API returned error",
			"status_code", resp.StatusCode,
			"station_id", stationId,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch for station %d returned status %d: %s", stationId, resp.StatusCode, string(body))
	}

	var sensors []Sensor
	if err := json.NewDecoder(resp.Body).Decode(&sensors); err != nil {
		c.logger.Error("failed to decode GIOS sensor response",
			"station_id", stationId,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched GIOS sensors",
		"station_id", stationId,
		"sensor_count", len(sensors),
	)

	return sensors, nil
}

// GetSensorData fetches the raw measurement series for one sensor. The wire
// structure is returned unmodified; dates and values stay strings.
func (c *Client) GetSensorData(sensorId int) (*SensorDataResponse, error) {
	url := fmt.Sprintf("%s/data/getData/%d", c.baseURL, sensorId)

	c.logger.Debug("fetching GIOS sensor data", "sensor_id", sensorId, "url", url)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		c.logger.Error("failed to fetch GIOS sensor data",
			"sensor_id", sensorId,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch data for sensor %d: %w", sensorId, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("GIOS data API returned error",
			"status_code", resp.StatusCode,
			"sensor_id", sensorId,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch for sensor %d returned status %d: %s", sensorId, resp.StatusCode, string(body))
	}

	var apiResp SensorDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode GIOS data response",
			"sensor_id", sensorId,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched GIOS sensor data",
		"sensor_id", sensorId,
		"key", apiResp.Key,
		"value_count", len(apiResp.Values),
	)

	return &apiResp, nil
}
