// shape.go - Response shaping per the policy decision

package policy

import (
	"time"

	"github.com/google/uuid"

	"go-pollution-backend/models"
)

// Pollutants is the particulate subset exposed to guests.
type Pollutants struct {
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
}

// RestrictedReading is the guest projection of a reading: no coordinates,
// no gas pollutants, no weather context, no owner linkage.
type RestrictedReading struct {
	ID         uuid.UUID  `json:"id"`
	City       string     `json:"city"`
	AQI        int        `json:"aqi"`
	RecordedAt time.Time  `json:"recordedAt"`
	Pollutants Pollutants `json:"pollutants"`
}

// ShapeReading projects a reading per the decided shape. Full is a
// passthrough; Restricted drops everything outside the guest field set.
func ShapeReading(reading *models.PollutionReading, shape Shape) interface{} {
	if shape == ShapeRestricted {
		return RestrictedReading{
			ID:         reading.ID,
			City:       reading.City,
			AQI:        reading.AQI,
			RecordedAt: reading.RecordedAt,
			Pollutants: Pollutants{PM25: reading.PM25, PM10: reading.PM10},
		}
	}
	return reading
}

// ShapeReadings applies ShapeReading to a list, preserving order.
func ShapeReadings(readings []models.PollutionReading, shape Shape) []interface{} {
	shaped := make([]interface{}, 0, len(readings))
	for i := range readings {
		shaped = append(shaped, ShapeReading(&readings[i], shape))
	}
	return shaped
}
