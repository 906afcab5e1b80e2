// pollutionReading.go - Defines the PollutionReading model for the database

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PollutionReading is a single air-quality measurement for a city.
// At most one reading may exist per (city, recordedAt) pair; the unique
// index is the only arbiter when two creates race.
type PollutionReading struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	City    string    `gorm:"not null;uniqueIndex:idx_city_recorded_at" json:"city"`
	Country string    `gorm:"not null" json:"country"`
	Lat     float64   `json:"lat"` // Latitude in degrees, [-90, 90]
	Lng     float64   `json:"lng"` // Longitude in degrees, [-180, 180]

	AQI  int     `gorm:"not null" json:"aqi"` // Air Quality Index, [0, 500]
	PM25 float64 `json:"pm25"`                // Fine particulate matter, µg/m³
	PM10 float64 `json:"pm10"`                // Coarse particulate matter, µg/m³
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	CO   float64 `json:"co"`

	// Optional weather context reported by some stations.
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	WindSpeed   *float64 `json:"windSpeed,omitempty"`

	RecordedAt time.Time `gorm:"not null;uniqueIndex:idx_city_recorded_at" json:"recordedAt"`

	// UserID is the owning user. Nullable: readings ingested from sensors
	// have no owner, and deleting a user does not cascade to readings.
	UserID *uuid.UUID `gorm:"type:uuid" json:"userId,omitempty"`
	User   *User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID and defaults recordedAt to now when the
// caller did not supply a measurement time.
func (r *PollutionReading) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now().UTC()
	}
	return nil
}
