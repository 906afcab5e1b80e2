// ingest_test.go - Tests for MQTT payload handling

package ingest

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-pollution-backend/models"
	"go-pollution-backend/repository"
)

func setupIngestor(t *testing.T) (*Ingestor, *repository.Readings) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.PollutionReading{}))

	readings := repository.NewReadings(db)
	return &Ingestor{Readings: readings}, readings
}

func sensorPayload(city string, recordedAt time.Time, aqi int) []byte {
	payload, _ := json.Marshal(map[string]interface{}{
		"city":       city,
		"country":    "India",
		"lat":        28.7041,
		"lng":        77.1025,
		"aqi":        aqi,
		"pm25":       65.4,
		"pm10":       110.2,
		"no2":        42.1,
		"o3":         78.3,
		"so2":        18.7,
		"co":         1.2,
		"recordedAt": recordedAt.Format(time.RFC3339),
	})
	return payload
}

func TestHandlePayloadStoresOwnerlessReading(t *testing.T) {
	ingestor, readings := setupIngestor(t)
	ctx := context.Background()

	recordedAt := time.Now().UTC().Truncate(time.Second)
	ingestor.handlePayload(ctx, sensorPayload("Delhi", recordedAt, 156))

	reading, err := readings.FindLatestByCity(ctx, "Delhi")
	require.NoError(t, err)
	assert.Equal(t, 156, reading.AQI)
	assert.Nil(t, reading.UserID) // Sensor readings have no owner
}

func TestHandlePayloadDropsDuplicates(t *testing.T) {
	ingestor, readings := setupIngestor(t)
	ctx := context.Background()

	recordedAt := time.Now().UTC().Truncate(time.Second)
	ingestor.handlePayload(ctx, sensorPayload("Delhi", recordedAt, 156))
	ingestor.handlePayload(ctx, sensorPayload("Delhi", recordedAt, 200)) // Retained/replayed message

	_, total, err := readings.FindPage(ctx, repository.PageFilter{City: "Delhi"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	// The original measurement wins the race.
	reading, err := readings.FindLatestByCity(ctx, "Delhi")
	require.NoError(t, err)
	assert.Equal(t, 156, reading.AQI)
}

func TestHandlePayloadDropsInvalidReadings(t *testing.T) {
	ingestor, readings := setupIngestor(t)
	ctx := context.Background()

	// Out-of-range AQI fails boundary validation.
	ingestor.handlePayload(ctx, sensorPayload("Delhi", time.Now().UTC(), 600))
	// Garbage is dropped without panicking.
	ingestor.handlePayload(ctx, []byte("not json"))

	_, total, err := readings.FindPage(ctx, repository.PageFilter{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}
