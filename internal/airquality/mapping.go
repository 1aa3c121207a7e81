package airquality

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"gios-air/internal/providers/gios"
	"gios-air/internal/types"
)

// giosTimeLayout is the fixed wire format of measurement dates.
const giosTimeLayout = "2006-01-02 15:04:05"

// ErrNoMeasurementData is returned when a raw series is missing or has no
// values field to normalize.
var ErrNoMeasurementData = errors.New("no measurement data to normalize")

// normalizeSensorData translates a raw GIOS measurement series into typed
// dates and values. Every raw entry yields exactly one normalized entry in
// the original order; a malformed date or value leaves that field nil and is
// logged as a warning, without failing the series. A wire-null value becomes
// nil silently.
func normalizeSensorData(raw *gios.SensorDataResponse, logger *slog.Logger) (*types.MeasurementSeries, error) {
	if raw == nil || raw.Values == nil {
		return nil, ErrNoMeasurementData
	}

	series := &types.MeasurementSeries{
		Key:    raw.Key,
		Values: make([]types.Measurement, 0, len(raw.Values)),
	}

	for _, entry := range raw.Values {
		var m types.Measurement

		if parsed, err := time.Parse(giosTimeLayout, entry.Date); err != nil {
			logger.Warn("unparseable measurement date",
				"key", raw.Key,
				"date", entry.Date,
			)
		} else {
			m.Date = &parsed
		}

		if entry.Value != nil {
			if parsed, err := strconv.ParseFloat(*entry.Value, 64); err != nil {
				logger.Warn("unparseable measurement value",
					"key", raw.Key,
					"value", *entry.Value,
				)
			} else {
				m.Value = &parsed
			}
		}

		series.Values = append(series.Values, m)
	}

	return series, nil
}
