// readings.go - Data access for pollution readings
//
// Readings holds its own *gorm.DB handle and is constructed explicitly in
// main (or a test); there is no package-level connection.

package repository

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn" // Postgres error codes
	"gorm.io/gorm"

	"go-pollution-backend/apperrors"
	"go-pollution-backend/models"
)

// Readings is the data-access object for pollution readings.
type Readings struct {
	db *gorm.DB
}

func NewReadings(db *gorm.DB) *Readings {
	return &Readings{db: db}
}

// PageFilter narrows FindPage results. The date range only applies when both
// bounds are present.
type PageFilter struct {
	City      string
	StartDate *time.Time
	EndDate   *time.Time
}

// Create validates the input and inserts a new reading owned by ownerID
// (nil for sensor-ingested readings). A duplicate (city, recordedAt) pair
// surfaces as a conflict error; when two creates race, the unique index
// decides which one wins.
func (r *Readings) Create(ctx context.Context, input *ReadingInput, ownerID *uuid.UUID) (*models.PollutionReading, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	reading := readingFromInput(input)
	reading.UserID = ownerID

	if err := r.db.WithContext(ctx).Create(reading).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("A reading for this city and time already exists")
		}
		return nil, apperrors.Unexpected("Server error creating pollution reading", err)
	}
	return reading, nil
}

// FindByID fetches one reading, preloading its owner.
func (r *Readings) FindByID(ctx context.Context, id uuid.UUID) (*models.PollutionReading, error) {
	var reading models.PollutionReading
	err := r.db.WithContext(ctx).Preload("User").First(&reading, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Pollution reading not found")
		}
		return nil, apperrors.Unexpected("Server error fetching pollution reading", err)
	}
	return &reading, nil
}

// FindPage returns one page of readings ordered by recordedAt descending,
// plus the unfiltered-within-filter total count.
func (r *Readings) FindPage(ctx context.Context, filter PageFilter, page, pageSize int) ([]models.PollutionReading, int64, error) {
	if page < 1 {
		page = 1
	}

	query := r.db.WithContext(ctx).Model(&models.PollutionReading{})
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.Where("recorded_at BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Unexpected("Server error fetching pollution readings", err)
	}

	var readings []models.PollutionReading
	err := query.Preload("User").
		Order("recorded_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&readings).Error
	if err != nil {
		return nil, 0, apperrors.Unexpected("Server error fetching pollution readings", err)
	}
	return readings, total, nil
}

// TotalPages converts a count into page arithmetic for the list envelope.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// Update validates and replaces the measurable fields of an existing
// reading. Ownership is not checked here; that is the policy layer's job.
func (r *Readings) Update(ctx context.Context, id uuid.UUID, input *ReadingInput) (*models.PollutionReading, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	reading, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := readingFromInput(input)
	updated.ID = reading.ID
	updated.UserID = reading.UserID
	updated.CreatedAt = reading.CreatedAt
	if input.RecordedAt == nil {
		updated.RecordedAt = reading.RecordedAt
	}

	if err := r.db.WithContext(ctx).Save(updated).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("A reading for this city and time already exists")
		}
		return nil, apperrors.Unexpected("Server error updating pollution reading", err)
	}
	return updated, nil
}

// Delete removes a reading by id.
func (r *Readings) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PollutionReading{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Unexpected("Server error deleting pollution reading", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Pollution reading not found")
	}
	return nil
}

// FindLatestByCity returns the most recent reading for a city.
func (r *Readings) FindLatestByCity(ctx context.Context, city string) (*models.PollutionReading, error) {
	var reading models.PollutionReading
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Order("recorded_at DESC").
		First(&reading).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("No pollution data found for this city")
		}
		return nil, apperrors.Unexpected("Server error fetching latest pollution data", err)
	}
	return &reading, nil
}

func readingFromInput(input *ReadingInput) *models.PollutionReading {
	reading := &models.PollutionReading{
		City:        input.City,
		Country:     input.Country,
		Lat:         *input.Lat,
		Lng:         *input.Lng,
		AQI:         *input.AQI,
		PM25:        *input.PM25,
		PM10:        *input.PM10,
		NO2:         *input.NO2,
		O3:          *input.O3,
		SO2:         *input.SO2,
		CO:          *input.CO,
		Temperature: input.Temperature,
		Humidity:    input.Humidity,
		WindSpeed:   input.WindSpeed,
	}
	if input.RecordedAt != nil {
		reading.RecordedAt = *input.RecordedAt
	}
	return reading
}

// isUniqueViolation detects a uniqueness-constraint failure from either
// supported driver: SQLSTATE 23505 on Postgres, the constraint message on
// SQLite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
