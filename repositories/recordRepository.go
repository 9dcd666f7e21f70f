package repositories

import (
	"context"
	"errors"
	"fmt"

	"MigrantHealth/apperrors"
	"MigrantHealth/models"

	"gorm.io/gorm"
)

type RecordRepository interface {
	ListAll(ctx context.Context) ([]models.RecordSummary, error)
	ListByPatient(ctx context.Context, userID int64) ([]models.RecordSummary, error)
	GetByID(ctx context.Context, id int64) (*models.HealthRecord, error)
	CreateWithPatient(ctx context.Context, record *models.HealthRecord, patient *models.User) error
	Update(ctx context.Context, record *models.HealthRecord) error
	Delete(ctx context.Context, id int64) error
	CreatePrescription(ctx context.Context, prescription *models.Prescription) error
	ListPrescriptions(ctx context.Context, recordID int64) ([]models.PrescriptionView, error)
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

const recordSummarySelect = "migrant_health_records.id, migrant_health_records.name, " +
	"migrant_health_records.age, migrant_health_records.gender, migrant_health_records.origin, " +
	"migrant_health_records.health_status, migrant_health_records.last_checkup_date, " +
	"migrant_health_records.notes, migrant_health_records.user_id, users.username AS account_username"

func (r *recordRepository) ListAll(ctx context.Context) ([]models.RecordSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var records []models.RecordSummary
	err := r.db.WithContext(ctx).Model(&models.HealthRecord{}).
		Select(recordSummarySelect).
		Joins("LEFT JOIN users ON users.id = migrant_health_records.user_id").
		Order("migrant_health_records.id DESC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

func (r *recordRepository) ListByPatient(ctx context.Context, userID int64) ([]models.RecordSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var records []models.RecordSummary
	err := r.db.WithContext(ctx).Model(&models.HealthRecord{}).
		Select(recordSummarySelect).
		Joins("LEFT JOIN users ON users.id = migrant_health_records.user_id").
		Where("migrant_health_records.user_id = ?", userID).
		Order("migrant_health_records.id DESC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records for patient: %w", err)
	}
	return records, nil
}

func (r *recordRepository) GetByID(ctx context.Context, id int64) (*models.HealthRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var record models.HealthRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &record, nil
}

// CreateWithPatient provisions the patient account and its health record
// as one transaction. A concurrent reader never observes one without the
// other, and a username collision aborts both inserts.
func (r *recordRepository) CreateWithPatient(ctx context.Context, record *models.HealthRecord, patient *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", patient.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check username existence: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("username %q %w", patient.Username, apperrors.ErrConflict)
		}
		if err := tx.Create(patient).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("username %q %w", patient.Username, apperrors.ErrConflict)
			}
			return fmt.Errorf("failed to create patient user: %w", err)
		}
		record.UserID = patient.ID
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create health record: %w", err)
		}
		return nil
	})
}

// Update overwrites all mutable fields of an existing record. Updating a
// missing record reports ErrNotFound instead of silently writing nothing.
func (r *recordRepository) Update(ctx context.Context, record *models.HealthRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.HealthRecord
		if err := tx.First(&existing, record.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("record %d: %w", record.ID, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to find record: %w", err)
		}
		record.UserID = existing.UserID
		record.CreatedAt = existing.CreatedAt
		err := tx.Model(&models.HealthRecord{}).
			Where("id = ?", record.ID).
			Updates(map[string]interface{}{
				"name":              record.Name,
				"age":               record.Age,
				"gender":            record.Gender,
				"origin":            record.Origin,
				"health_status":     record.HealthStatus,
				"last_checkup_date": record.LastCheckupDate,
				"notes":             record.Notes,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update record: %w", err)
		}
		return nil
	})
}

// Delete removes a record and its prescriptions. Deleting a missing
// record is not an error.
func (r *recordRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_id = ?", id).Delete(&models.Prescription{}).Error; err != nil {
			return fmt.Errorf("failed to delete prescriptions: %w", err)
		}
		if err := tx.Delete(&models.HealthRecord{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}
		return nil
	})
}

// CreatePrescription appends a prescription to an existing record,
// verifying the record inside the transaction.
func (r *recordRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.HealthRecord{}).Where("id = ?", prescription.RecordID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check record existence: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("record %d: %w", prescription.RecordID, apperrors.ErrNotFound)
		}
		if err := tx.Create(prescription).Error; err != nil {
			return fmt.Errorf("failed to create prescription: %w", err)
		}
		return nil
	})
}

func (r *recordRepository) ListPrescriptions(ctx context.Context, recordID int64) ([]models.PrescriptionView, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var prescriptions []models.PrescriptionView
	err := r.db.WithContext(ctx).Model(&models.Prescription{}).
		Select("prescriptions.id, prescriptions.record_id, prescriptions.doctor_id, "+
			"prescriptions.medication, prescriptions.notes, prescriptions.prescription_date, "+
			"users.username AS doctor_name").
		Joins("JOIN users ON users.id = prescriptions.doctor_id").
		Where("prescriptions.record_id = ?", recordID).
		Order("prescriptions.prescription_date DESC").
		Scan(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	return prescriptions, nil
}
