// database.go - Handles database connection, migrations and seeding

package database // Declares the package name

import ( // Import required packages
	"log/slog"
	"time"

	"gorm.io/driver/postgres" // Postgres driver for GORM (production)
	"gorm.io/driver/sqlite"   // SQLite driver for GORM (dev/test)
	"gorm.io/gorm"            // GORM ORM

	"go-pollution-backend/config"
	"go-pollution-backend/models"
)

// Connect opens the database and runs migrations. DATABASE_URL selects
// Postgres; otherwise the SQLite file at DB_PATH is used. The handle is
// returned to the caller, never stored package-wide.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Create/alter tables as needed.
	if err := db.AutoMigrate(&models.User{}, &models.PollutionReading{}); err != nil {
		return nil, err
	}

	if err := seedDefaultAdmin(db, cfg); err != nil {
		return nil, err
	}
	if cfg.SeedDemoData {
		if err := seedDemoReadings(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// seedDefaultAdmin creates a default admin user if configured and none
// exists. Credentials come from the environment, never hardcoded.
func seedDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	if !cfg.CreateAdmin || cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count)
	if count > 0 {
		return nil // An admin already exists
	}

	admin := models.User{
		Name:    cfg.AdminName,
		Email:   cfg.AdminEmail,
		IsAdmin: true,
	}
	if err := admin.SetPassword(cfg.AdminPassword, cfg.BcryptCost); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	slog.Info("seeded default admin user", "email", admin.Email)
	return nil
}

// seedDemoReadings inserts a handful of ownerless demo readings so a fresh
// dashboard has something to show. Skipped when any readings exist.
func seedDemoReadings(db *gorm.DB) error {
	var count int64
	db.Model(&models.PollutionReading{}).Count(&count)
	if count > 0 {
		return nil
	}

	now := time.Now().UTC().Truncate(time.Hour)
	demo := []models.PollutionReading{
		{
			City: "Delhi", Country: "India", Lat: 28.7041, Lng: 77.1025,
			AQI: 156, PM25: 65.4, PM10: 110.2, NO2: 42.1, O3: 78.3, SO2: 18.7, CO: 1.2,
			RecordedAt: now.Add(-1 * time.Hour),
		},
		{
			City: "Mumbai", Country: "India", Lat: 19.0760, Lng: 72.8777,
			AQI: 89, PM25: 35.2, PM10: 65.8, NO2: 28.5, O3: 45.2, SO2: 12.4, CO: 0.8,
			RecordedAt: now.Add(-2 * time.Hour),
		},
		{
			City: "Beijing", Country: "China", Lat: 39.9042, Lng: 116.4074,
			AQI: 172, PM25: 82.1, PM10: 120.5, NO2: 51.3, O3: 61.0, SO2: 22.9, CO: 1.6,
			RecordedAt: now.Add(-3 * time.Hour),
		},
	}
	if err := db.Create(&demo).Error; err != nil {
		return err
	}
	slog.Info("seeded demo pollution readings", "count", len(demo))
	return nil
}
