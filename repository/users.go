// users.go - Data access for user accounts

package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-pollution-backend/apperrors"
	"go-pollution-backend/models"
)

// Users is the data-access object for user accounts.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Create inserts a new user. A taken email surfaces as a conflict error.
func (u *Users) Create(ctx context.Context, user *models.User) error {
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("User already exists with this email")
		}
		return apperrors.Unexpected("Server error during registration", err)
	}
	return nil
}

// FindByEmail looks a user up by email for login.
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Unexpected("Server error", err)
	}
	return &user, nil
}

// FindByID looks a user up by id. Satisfies auth.UserLookup.
func (u *Users) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Unexpected("Server error", err)
	}
	return &user, nil
}
