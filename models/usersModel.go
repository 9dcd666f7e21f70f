package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Every user carries exactly one of these.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// ValidRole reports whether role is one of the enumerated roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Username  string    `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Password  string    `gorm:"size:255;not null;column:password" json:"-"`
	Role      string    `gorm:"size:20;not null;index;check:role IN ('admin', 'doctor', 'patient');column:role" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// SeedAdmin inserts the initial admin account if no admin exists yet.
// The password must already be hashed by the caller.
func SeedAdmin(db *gorm.DB, username, hashedPassword string) error {
	admin := User{Username: username, Password: hashedPassword, Role: RoleAdmin}
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Where("role = ?", RoleAdmin).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Create(&admin).Error
	})
}
