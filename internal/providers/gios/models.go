package gios

// Station is a measurement station record as returned by station/findAll.
// Coordinates arrive as decimal strings.
type Station struct {
	Id            int    `json:"id"`
	StationName   string `json:"stationName"`
	GegrLat       string `json:"gegrLat"`
	GegrLon       string `json:"gegrLon"`
	AddressStreet string `json:"addressStreet"`
	City          struct {
		Id      int    `json:"id"`
		Name    string `json:"name"`
		Commune struct {
			CommuneName  string `json:"communeName"`
			DistrictName string `json:"districtName"`
			ProvinceName string `json:"provinceName"`
		} `json:"commune"`
	} `json:"city"`
}

// Sensor is a measurement position at a station, tied to one parameter.
type Sensor struct {
	Id        int `json:"id"`
	StationId int `json:"stationId"`
	Param     struct {
		ParamName    string `json:"paramName"`
		ParamFormula string `json:"paramFormula"`
		ParamCode    string `json:"paramCode"`
		IdParam      int    `json:"idParam"`
	} `json:"param"`
}

// SensorDataResponse is the raw measurement series for one sensor.
// Value is a pointer so a JSON null stays distinguishable from text that
// fails numeric parsing later on.
type SensorDataResponse struct {
	Key    string            `json:"key"`
	Values []SensorDataValue `json:"values"`
}

type SensorDataValue struct {
	Date  string  `json:"date"`
	Value *string `json:"value"`
}
