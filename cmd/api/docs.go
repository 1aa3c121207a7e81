package main

// @title GIOS Air Quality API
// @version 1.0.0
// @description Read-only API over the public GIOS air quality service: stations, sensors, and normalized measurement series.
// @contact.name API Support
// @BasePath /
