package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUserIDRequired = errors.New("user ID is required")
)

// User mirrors an identity managed by the external auth provider. The
// ID is the provider's opaque subject string; profile fields are
// whatever the provider handed over and may all be absent. Users own
// their transactions exclusively; deleting a user removes every
// transaction they created.
type User struct {
	ID              string    `gorm:"type:varchar(255);primary_key" json:"id"`
	Email           *string   `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	FirstName       *string   `gorm:"type:varchar(100)" json:"first_name,omitempty"`
	LastName        *string   `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	ProfileImageURL *string   `gorm:"type:varchar(512)" json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

// BeforeUpdate hook for User
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

// Validate validates the user fields
func (u *User) Validate() error {
	if u.ID == "" {
		return ErrUserIDRequired
	}
	return nil
}

// FullName joins first and last name, falling back to the ID
func (u *User) FullName() string {
	first, last := "", ""
	if u.FirstName != nil {
		first = *u.FirstName
	}
	if u.LastName != nil {
		last = *u.LastName
	}

	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	default:
		return u.ID
	}
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
