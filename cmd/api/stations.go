package main

import (
	"net/http"
	"strconv"

	_ "gios-air/internal/providers/gios" // imported for swagger type definitions

	"github.com/gin-gonic/gin"
)

// handleListStations godoc
// @Summary List measurement stations
// @Description Retrieve all air quality measurement stations, verbatim from the GIOS API
// @Tags stations
// @Produce json
// @Success 200 {array} gios.Station
// @Failure 502 {object} map[string]string
// @Router /stations [get]
func (app *App) handleListStations(c *gin.Context) {
	stations, err := app.airQualityService.ListStations()
	if err != nil {
		app.logger.Error("failed to list stations", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to list stations"})
		return
	}

	c.JSON(http.StatusOK, stations)
}

// handleListSensors godoc
// @Summary List sensors for a station
// @Description Retrieve the sensors (measurement positions) of one station. An id unknown to the upstream API yields an empty list or an upstream error.
// @Tags stations
// @Produce json
// @Param stationId path int true "Station identifier" example(52)
// @Success 200 {array} gios.Sensor
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /stations/{stationId}/sensors [get]
func (app *App) handleListSensors(c *gin.Context) {
	stationId, err := strconv.Atoi(c.Param("stationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stationId must be an integer"})
		return
	}

	sensors, err := app.airQualityService.ListSensors(stationId)
	if err != nil {
		app.logger.Error("failed to list sensors",
			"station_id", stationId,
			"error", err,
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to list sensors"})
		return
	}

	c.JSON(http.StatusOK, sensors)
}
