package main

import (
	"net/http"
	"strconv"

	_ "gios-air/internal/types" // imported for swagger type definitions

	"github.com/gin-gonic/gin"
)

// handleGetMeasurements godoc
// @Summary Get normalized measurements for a sensor
// @Description Retrieve the measurement series of one sensor with dates and values normalized to typed form. Entries with a malformed date or value keep a null in that field only.
// @Tags measurements
// @Produce json
// @Param sensorId path int true "Sensor identifier" example(92)
// @Success 200 {object} types.MeasurementSeries
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /sensors/{sensorId}/measurements [get]
func (app *App) handleGetMeasurements(c *gin.Context) {
	sensorId, err := strconv.Atoi(c.Param("sensorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sensorId must be an integer"})
		return
	}

	series, err := app.airQualityService.GetMeasurements(sensorId)
	if err != nil {
		app.logger.Error("failed to get measurements",
			"sensor_id", sensorId,
			"error", err,
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to get measurements"})
		return
	}

	c.JSON(http.StatusOK, series)
}
