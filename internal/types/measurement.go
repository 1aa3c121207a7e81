package types

import "time"

// Measurement is one normalized series entry. A nil Date means the wire date
// did not parse; a nil Value means the wire value was null or unparseable.
// The two are independent: a bad date never invalidates the value.
type Measurement struct {
	Date  *time.Time `json:"date" doc:"Measurement timestamp, null if the wire date was malformed"`
	Value *float64   `json:"value" doc:"Measured concentration, null if missing or malformed"`
}

// MeasurementSeries is a normalized measurement series for one sensor,
// in the chronological order the server returned it.
type MeasurementSeries struct {
	Key    string        `json:"key" example:"PM10" doc:"Measured parameter code"`
	Values []Measurement `json:"values"`
}
