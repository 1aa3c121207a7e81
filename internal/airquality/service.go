package airquality

import (
	"fmt"
	"log/slog"

	"gios-air/internal/config"
	"gios-air/internal/providers/gios"
	"gios-air/internal/types"
)

// StationProvider fetches the full station list.
type StationProvider interface {
	FindAllStations() ([]gios.Station, error)
}

// SensorProvider fetches the sensors of one station.
type SensorProvider interface {
	GetStationSensors(stationId int) ([]gios.Sensor, error)
}

// MeasurementProvider fetches the raw measurement series of one sensor.
type MeasurementProvider interface {
	GetSensorData(sensorId int) (*gios.SensorDataResponse, error)
}

// Service provides air-quality station, sensor, and measurement data.
type Service interface {
	ListStations() ([]gios.Station, error)
	ListSensors(stationId int) ([]gios.Sensor, error)
	GetMeasurements(sensorId int) (*types.MeasurementSeries, error)
}

type airQualityService struct {
	stationProvider     StationProvider
	sensorProvider      SensorProvider
	measurementProvider MeasurementProvider
	logger              *slog.Logger
}

// NewService creates a service backed by the real GIOS client, configured
// with the base URL and timeout from cfg.
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	client := gios.NewClientWithBaseURL(cfg.GIOS.BaseURL, cfg.GIOS.Timeout, logger)
	return NewServiceWithProviders(logger, client, client, client)
}

// NewServiceWithProviders creates a service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	logger *slog.Logger,
	stationProvider StationProvider,
	sensorProvider SensorProvider,
	measurementProvider MeasurementProvider,
) Service {
	return &airQualityService{
		stationProvider:     stationProvider,
		sensorProvider:      sensorProvider,
		measurementProvider: measurementProvider,
		logger:              logger.With("component", "airquality-service"),
	}
}

// ListStations returns the station list exactly as the API provided it.
// No field validation happens at this stage.
func (s *airQualityService) ListStations() ([]gios.Station, error) {
	stations, err := s.stationProvider.FindAllStations()
	if err != nil {
		s.logger.Error("failed to list stations", "error", err)
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}

	return stations, nil
}

// ListSensors returns the sensors of the given station, verbatim.
func (s *airQualityService) ListSensors(stationId int) ([]gios.Sensor, error) {
	sensors, err := s.sensorProvider.GetStationSensors(stationId)
	if err != nil {
		s.logger.Error("failed to list sensors",
			"station_id", stationId,
			"error", err,
		)
		return nil, fmt.Errorf("failed to list sensors for station %d: %w", stationId, err)
	}

	return sensors, nil
}

// GetMeasurements fetches the raw series for the given sensor and normalizes
// it into typed dates and values.
func (s *airQualityService) GetMeasurements(sensorId int) (*types.MeasurementSeries, error) {
	raw, err := s.measurementProvider.GetSensorData(sensorId)
	if err != nil {
		s.logger.Error("failed to get measurements",
			"sensor_id", sensorId,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get measurements for sensor %d: %w", sensorId, err)
	}

	series, err := normalizeSensorData(raw, s.logger)
	if err != nil {
		s.logger.Error("failed to normalize measurements",
			"sensor_id", sensorId,
			"error", err,
		)
		return nil, fmt.Errorf("failed to normalize measurements for sensor %d: %w", sensorId, err)
	}

	return series, nil
}
