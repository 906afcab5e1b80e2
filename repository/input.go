// input.go - Reading input payload and boundary validation
//
// Every write path (HTTP handlers and the MQTT ingest) funnels through
// ReadingInput.Validate before anything touches the database.

package repository

import (
	"time"

	"go-pollution-backend/apperrors"
)

// ReadingInput is the validated payload for creating or replacing a reading.
// Required numerics are pointers so a missing field is distinguishable from
// a legitimate zero (AQI 0 is a valid measurement).
type ReadingInput struct {
	City    string   `json:"city" binding:"required"`
	Country string   `json:"country" binding:"required"`
	Lat     *float64 `json:"lat" binding:"required"`
	Lng     *float64 `json:"lng" binding:"required"`
	AQI     *int     `json:"aqi" binding:"required"`
	PM25    *float64 `json:"pm25" binding:"required"`
	PM10    *float64 `json:"pm10" binding:"required"`
	NO2     *float64 `json:"no2" binding:"required"`
	O3      *float64 `json:"o3" binding:"required"`
	SO2     *float64 `json:"so2" binding:"required"`
	CO      *float64 `json:"co" binding:"required"`

	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	WindSpeed   *float64 `json:"windSpeed"`

	RecordedAt *time.Time `json:"recordedAt"`
}

// Validate checks every field against its allowed range and returns a
// validation error carrying one message per offending field.
func (in *ReadingInput) Validate() error {
	var fields []apperrors.FieldError

	if in.City == "" {
		fields = append(fields, apperrors.FieldError{Field: "city", Message: "City is required"})
	}
	if in.Country == "" {
		fields = append(fields, apperrors.FieldError{Field: "country", Message: "Country is required"})
	}
	if in.Lat == nil || *in.Lat < -90 || *in.Lat > 90 {
		fields = append(fields, apperrors.FieldError{Field: "lat", Message: "Latitude must be between -90 and 90"})
	}
	if in.Lng == nil || *in.Lng < -180 || *in.Lng > 180 {
		fields = append(fields, apperrors.FieldError{Field: "lng", Message: "Longitude must be between -180 and 180"})
	}
	if in.AQI == nil || *in.AQI < 0 || *in.AQI > 500 {
		fields = append(fields, apperrors.FieldError{Field: "aqi", Message: "AQI must be between 0 and 500"})
	}
	fields = appendPollutant(fields, "pm25", "PM2.5", in.PM25)
	fields = appendPollutant(fields, "pm10", "PM10", in.PM10)
	fields = appendPollutant(fields, "no2", "NO2", in.NO2)
	fields = appendPollutant(fields, "o3", "O3", in.O3)
	fields = appendPollutant(fields, "so2", "SO2", in.SO2)
	fields = appendPollutant(fields, "co", "CO", in.CO)

	if len(fields) > 0 {
		return apperrors.Validation(fields...)
	}
	return nil
}

func appendPollutant(fields []apperrors.FieldError, name, label string, value *float64) []apperrors.FieldError {
	if value == nil || *value < 0 {
		fields = append(fields, apperrors.FieldError{Field: name, Message: label + " must be a positive number"})
	}
	return fields
}
