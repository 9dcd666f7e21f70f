package models

import (
	"time"
)

// HealthRecord model
type HealthRecord struct {
	ID              int64     `gorm:"primaryKey;column:id" json:"id"`
	Name            string    `gorm:"column:name;not null;index" json:"name"`
	Age             *int      `gorm:"column:age" json:"age"`
	Gender          string    `gorm:"column:gender;not null" json:"gender"`
	Origin          string    `gorm:"column:origin;not null" json:"origin"`
	HealthStatus    string    `gorm:"column:health_status;not null" json:"health_status"`
	LastCheckupDate *string   `gorm:"column:last_checkup_date" json:"last_checkup_date"`
	Notes           string    `gorm:"type:text;column:notes" json:"notes"`
	UserID          int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	User            User      `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (HealthRecord) TableName() string {
	return "migrant_health_records"
}

// RecordSummary is a HealthRecord row joined with the username of the
// patient account it was provisioned for. Used by the dashboard listing.
type RecordSummary struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Age             *int    `json:"age"`
	Gender          string  `json:"gender"`
	Origin          string  `json:"origin"`
	HealthStatus    string  `json:"health_status"`
	LastCheckupDate *string `json:"last_checkup_date"`
	Notes           string  `json:"notes"`
	UserID          int64   `json:"user_id"`
	AccountUsername string  `json:"account_username"`
}

// Prescription model
type Prescription struct {
	ID               int64        `gorm:"primaryKey;column:id" json:"id"`
	RecordID         int64        `gorm:"column:record_id;not null;index" json:"record_id"`
	DoctorID         int64        `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Medication       string       `gorm:"column:medication;not null" json:"medication"`
	Notes            string       `gorm:"type:text;column:notes" json:"notes"`
	PrescriptionDate string       `gorm:"column:prescription_date;not null" json:"prescription_date"`
	Record           HealthRecord `gorm:"foreignKey:RecordID;references:ID" json:"-"`
	Doctor           User         `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionView is a Prescription row joined with the authoring
// doctor's username. Shown on the record edit view.
type PrescriptionView struct {
	ID               int64  `json:"id"`
	RecordID         int64  `json:"record_id"`
	DoctorID         int64  `json:"doctor_id"`
	Medication       string `json:"medication"`
	Notes            string `json:"notes"`
	PrescriptionDate string `json:"prescription_date"`
	DoctorName       string `json:"doctor_name"`
}
