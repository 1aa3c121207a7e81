package airquality

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"gios-air/internal/providers/gios"
)

// recordingHandler captures log records so tests can assert on warnings.
type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) warningCount() int {
	count := 0
	for _, r := range h.records {
		if r.Level == slog.LevelWarn {
			count++
		}
	}
	return count
}

func strPtr(s string) *string { return &s }

func TestNormalizeSensorData_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		raw  *gios.SensorDataResponse
	}{
		{
			name: "nil input",
			raw:  nil,
		},
		{
			name: "missing values field",
			raw:  &gios.SensorDataResponse{Key: "PM10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := slog.New(&recordingHandler{})
			series, err := normalizeSensorData(tt.raw, logger)
			if !errors.Is(err, ErrNoMeasurementData) {
				t.Errorf("normalizeSensorData() error = %v, want ErrNoMeasurementData", err)
			}
			if series != nil {
				t.Errorf("normalizeSensorData() = %v, want nil", series)
			}
		})
	}
}

func TestNormalizeSensorData_EmptyValues(t *testing.T) {
	logger := slog.New(&recordingHandler{})
	raw := &gios.SensorDataResponse{Key: "PM10", Values: []gios.SensorDataValue{}}

	series, err := normalizeSensorData(raw, logger)
	if err != nil {
		t.Fatalf("normalizeSensorData() error = %v", err)
	}
	if series.Key != "PM10" {
		t.Errorf("Key = %q, want %q", series.Key, "PM10")
	}
	if series.Values == nil || len(series.Values) != 0 {
		t.Errorf("Values = %v, want empty slice", series.Values)
	}
}

func TestNormalizeSensorData_Example(t *testing.T) {
	logger := slog.New(&recordingHandler{})
	raw := &gios.SensorDataResponse{
		Key: "PM10",
		Values: []gios.SensorDataValue{
			{Date: "2024-01-01 10:00:00", Value: strPtr("12.5")},
			{Date: "2024-01-01 11:00:00", Value: nil},
		},
	}

	series, err := normalizeSensorData(raw, logger)
	if err != nil {
		t.Fatalf("normalizeSensorData() error = %v", err)
	}

	if len(series.Values) != 2 {
		t.Fatalf("len(Values) = %d, want 2", len(series.Values))
	}

	first := series.Values[0]
	wantDate := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	if first.Date == nil || !first.Date.Equal(wantDate) {
		t.Errorf("Values[0].Date = %v, want %v", first.Date, wantDate)
	}
	if first.Value == nil || *first.Value != 12.5 {
		t.Errorf("Values[0].Value = %v, want 12.5", first.Value)
	}

	second := series.Values[1]
	wantDate = time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	if second.Date == nil || !second.Date.Equal(wantDate) {
		t.Errorf("Values[1].Date = %v, want %v", second.Date, wantDate)
	}
	if second.Value != nil {
		t.Errorf("Values[1].Value = %v, want nil", *second.Value)
	}
}

func TestNormalizeSensorData_MalformedEntries(t *testing.T) {
	tests := []struct {
		name         string
		entry        gios.SensorDataValue
		wantDate     bool
		wantValue    bool
		wantWarnings int
	}{
		{
			name:         "valid entry",
			entry:        gios.SensorDataValue{Date: "2024-01-01 10:00:00", Value: strPtr("42.1")},
			wantDate:     true,
			wantValue:    true,
			wantWarnings: 0,
		},
		{
			name:         "malformed date keeps value",
			entry:        gios.SensorDataValue{Date: "not-a-date", Value: strPtr("42.1")},
			wantDate:     false,
			wantValue:    true,
			wantWarnings: 1,
		},
		{
			name:         "null value without warning",
			entry:        gios.SensorDataValue{Date: "2024-01-01 10:00:00", Value: nil},
			wantDate:     true,
			wantValue:    false,
			wantWarnings: 0,
		},
		{
			name:         "unparseable value with warning",
			entry:        gios.SensorDataValue{Date: "2024-01-01 10:00:00", Value: strPtr("abc")},
			wantDate:     true,
			wantValue:    false,
			wantWarnings: 1,
		},
		{
			name:         "both fields malformed",
			entry:        gios.SensorDataValue{Date: "", Value: strPtr("abc")},
			wantDate:     false,
			wantValue:    false,
			wantWarnings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &recordingHandler{}
			logger := slog.New(handler)
			raw := &gios.SensorDataResponse{Key: "PM10", Values: []gios.SensorDataValue{tt.entry}}

			series, err := normalizeSensorData(raw, logger)
			if err != nil {
				t.Fatalf("normalizeSensorData() error = %v", err)
			}
			if len(series.Values) != 1 {
				t.Fatalf("len(Values) = %d, want 1", len(series.Values))
			}

			m := series.Values[0]
			if (m.Date != nil) != tt.wantDate {
				t.Errorf("Date present = %v, want %v", m.Date != nil, tt.wantDate)
			}
			if (m.Value != nil) != tt.wantValue {
				t.Errorf("Value present = %v, want %v", m.Value != nil, tt.wantValue)
			}
			if got := handler.warningCount(); got != tt.wantWarnings {
				t.Errorf("warnings = %d, want %d", got, tt.wantWarnings)
			}
		})
	}
}

func TestNormalizeSensorData_PreservesCountAndOrder(t *testing.T) {
	logger := slog.New(&recordingHandler{})
	raw := &gios.SensorDataResponse{
		Key: "NO2",
		Values: []gios.SensorDataValue{
			{Date: "2024-03-01 01:00:00", Value: strPtr("1")},
			{Date: "garbage", Value: nil},
			{Date: "2024-03-01 03:00:00", Value: strPtr("nope")},
			{Date: "2024-03-01 04:00:00", Value: strPtr("4")},
		},
	}

	series, err := normalizeSensorData(raw, logger)
	if err != nil {
		t.Fatalf("normalizeSensorData() error = %v", err)
	}

	if len(series.Values) != len(raw.Values) {
		t.Fatalf("len(Values) = %d, want %d", len(series.Values), len(raw.Values))
	}

	// Order follows the input: parseable dates land at the same index.
	if series.Values[0].Value == nil || *series.Values[0].Value != 1 {
		t.Errorf("Values[0].Value = %v, want 1", series.Values[0].Value)
	}
	if series.Values[1].Date != nil {
		t.Errorf("Values[1].Date = %v, want nil", series.Values[1].Date)
	}
	if series.Values[2].Value != nil {
		t.Errorf("Values[2].Value = %v, want nil", series.Values[2].Value)
	}
	if series.Values[3].Value == nil || *series.Values[3].Value != 4 {
		t.Errorf("Values[3].Value = %v, want 4", series.Values[3].Value)
	}
}

func TestNormalizeSensorData_Idempotent(t *testing.T) {
	logger := slog.New(&recordingHandler{})
	raw := &gios.SensorDataResponse{
		Key: "SO2",
		Values: []gios.SensorDataValue{
			{Date: "2024-05-10 08:00:00", Value: strPtr("3.25")},
			{Date: "bad", Value: strPtr("bad")},
			{Date: "2024-05-10 10:00:00", Value: nil},
		},
	}

	first, err := normalizeSensorData(raw, logger)
	if err != nil {
		t.Fatalf("first normalizeSensorData() error = %v", err)
	}
	second, err := normalizeSensorData(raw, logger)
	if err != nil {
		t.Fatalf("second normalizeSensorData() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization is not idempotent: %v != %v", first, second)
	}
}
