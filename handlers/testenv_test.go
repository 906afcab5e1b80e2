// testenv_test.go - Shared test environment for handler tests
//
// Builds the same wiring as main against a throwaway SQLite database:
// real repositories, real resolver, real middleware. No rate limiters.

package handlers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-pollution-backend/auth"
	"go-pollution-backend/middleware"
	"go-pollution-backend/models"
	"go-pollution-backend/repository"
)

const testSecret = "test-secret"

type testEnv struct {
	router   *gin.Engine
	users    *repository.Users
	readings *repository.Readings
}

// setupEnv wires a full router over a fresh database for one test.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.PollutionReading{}))

	users := repository.NewUsers(db)
	readings := repository.NewReadings(db)
	resolver := &auth.Resolver{Secret: testSecret, Users: users}

	authHandler := &AuthHandler{Users: users, JWTSecret: testSecret, BcryptCost: 4} // Min cost for test speed
	pollutionHandler := &PollutionHandler{Readings: readings}

	r := gin.New()
	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.GET("/me", middleware.AuthMiddleware(resolver), authHandler.Me)

	pollution := api.Group("/pollution")
	pollution.GET("", middleware.GuestAuthMiddleware(resolver), pollutionHandler.List)
	pollution.GET("/latest", middleware.GuestAuthMiddleware(resolver), pollutionHandler.GetLatest)
	pollution.GET("/:id", middleware.AuthMiddleware(resolver), pollutionHandler.GetByID)
	pollution.POST("", middleware.AuthMiddleware(resolver), pollutionHandler.Create)
	pollution.PUT("/:id", middleware.AuthMiddleware(resolver), pollutionHandler.Update)
	pollution.DELETE("/:id", middleware.AuthMiddleware(resolver), pollutionHandler.Delete)

	return &testEnv{router: r, users: users, readings: readings}
}

// createUser stores a user and returns it with a valid token.
func (e *testEnv) createUser(t *testing.T, email string, isAdmin bool) (*models.User, string) {
	t.Helper()

	user := &models.User{Name: "Test User", Email: email, IsAdmin: isAdmin}
	require.NoError(t, user.SetPassword("password123", 4))
	require.NoError(t, e.users.Create(context.Background(), user))

	token, err := auth.GenerateToken(testSecret, user.ID)
	require.NoError(t, err)
	return user, token
}
