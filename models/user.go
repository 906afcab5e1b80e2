// user.go - Defines the User model for the database

package models // Declares the package name

import (
	"time"

	"github.com/google/uuid"     // UUID primary keys
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"
)

type User struct { // User struct represents a user in the database
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"` // Unique user ID (primary key)
	Name      string    `gorm:"not null" json:"name"`           // Display name
	Email     string    `gorm:"unique;not null" json:"email"`   // User's email (must be unique, cannot be null)
	Password  string    `gorm:"not null" json:"-"`              // Hashed password (never serialized)
	IsAdmin   bool      `gorm:"default:false" json:"isAdmin"`   // Whether the user has admin privileges
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID primary key if one was not set explicitly.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SetPassword hashes the plaintext password and stores the hash.
// The plaintext is never persisted.
func (u *User) SetPassword(plaintext string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// ValidatePassword compares a plaintext password against the stored hash.
func (u *User) ValidatePassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext)) == nil
}
