package services

import (
	"context"
	"fmt"

	"MigrantHealth/apperrors"
	"MigrantHealth/models"
	"MigrantHealth/repositories"
	"MigrantHealth/utils"
)

// RecordFields carries the mutable fields of a health record as
// submitted by the add and edit forms.
type RecordFields struct {
	Name            string  `json:"name" form:"name"`
	Age             *int    `json:"age" form:"age"`
	Gender          string  `json:"gender" form:"gender"`
	Origin          string  `json:"origin" form:"origin"`
	HealthStatus    string  `json:"health_status" form:"health_status"`
	LastCheckupDate *string `json:"last_checkup_date" form:"last_checkup_date"`
	Notes           string  `json:"notes" form:"notes"`
}

// PrescriptionFields carries a new prescription's payload.
type PrescriptionFields struct {
	Medication       string `json:"medication" form:"medication"`
	Notes            string `json:"notes" form:"notes"`
	PrescriptionDate string `json:"prescription_date" form:"prescription_date"`
}

// ProvisionedCredentials are the one-time credentials of an
// auto-provisioned patient account. They are returned to the caller
// exactly once and are not retrievable afterwards.
type ProvisionedCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RecordService interface {
	ListRecords(ctx context.Context, role string, userID int64) ([]models.RecordSummary, error)
	ListDoctors(ctx context.Context) ([]models.User, error)
	CreateRecord(ctx context.Context, fields RecordFields) (*models.HealthRecord, *ProvisionedCredentials, error)
	GetRecord(ctx context.Context, id int64) (*models.HealthRecord, []models.PrescriptionView, error)
	UpdateRecord(ctx context.Context, id int64, fields RecordFields) (*models.HealthRecord, error)
	DeleteRecord(ctx context.Context, id int64) error
	AddPrescription(ctx context.Context, recordID, doctorID int64, fields PrescriptionFields) (*models.Prescription, error)
}

type recordService struct {
	recordRepo repositories.RecordRepository
	userRepo   repositories.UserRepository
}

func NewRecordService(recordRepo repositories.RecordRepository, userRepo repositories.UserRepository) RecordService {
	return &recordService{recordRepo: recordRepo, userRepo: userRepo}
}

// ListRecords returns the records visible to the caller: everything for
// admins and doctors, only the caller's own for patients, nothing for
// anything else. Ordered most-recently-created first.
func (s *recordService) ListRecords(ctx context.Context, role string, userID int64) ([]models.RecordSummary, error) {
	switch role {
	case models.RoleAdmin, models.RoleDoctor:
		records, err := s.recordRepo.ListAll(ctx)
		if err != nil {
			return nil, apperrors.Store(err)
		}
		return records, nil
	case models.RolePatient:
		records, err := s.recordRepo.ListByPatient(ctx, userID)
		if err != nil {
			return nil, apperrors.Store(err)
		}
		return records, nil
	default:
		return []models.RecordSummary{}, nil
	}
}

func (s *recordService) ListDoctors(ctx context.Context) ([]models.User, error) {
	doctors, err := s.userRepo.ListDoctors(ctx)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return doctors, nil
}

// CreateRecord provisions a brand-new patient account and its health
// record in one transaction. The generated plaintext credentials are
// returned for one-time display and never persisted or logged.
func (s *recordService) CreateRecord(ctx context.Context, fields RecordFields) (*models.HealthRecord, *ProvisionedCredentials, error) {
	if err := utils.ValidateRecordFields(fields.Name, fields.Gender, fields.Origin,
		fields.HealthStatus, fields.Age, fields.LastCheckupDate); err != nil {
		return nil, nil, apperrors.Validation(err)
	}

	username, err := utils.DeriveUsername(fields.Name)
	if err != nil {
		return nil, nil, apperrors.Validation(err)
	}
	password, err := utils.GeneratePassword(utils.GeneratedPasswordLength)
	if err != nil {
		return nil, nil, apperrors.Store(err)
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, nil, apperrors.Store(err)
	}

	patient := &models.User{
		Username: username,
		Password: hashedPassword,
		Role:     models.RolePatient,
	}
	record := &models.HealthRecord{
		Name:            fields.Name,
		Age:             fields.Age,
		Gender:          fields.Gender,
		Origin:          fields.Origin,
		HealthStatus:    fields.HealthStatus,
		LastCheckupDate: fields.LastCheckupDate,
		Notes:           fields.Notes,
	}
	if err := s.recordRepo.CreateWithPatient(ctx, record, patient); err != nil {
		if isTaxonomyError(err) {
			return nil, nil, err
		}
		return nil, nil, apperrors.Store(err)
	}

	return record, &ProvisionedCredentials{Username: username, Password: password}, nil
}

func (s *recordService) GetRecord(ctx context.Context, id int64) (*models.HealthRecord, []models.PrescriptionView, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, apperrors.Store(err)
	}
	if record == nil {
		return nil, nil, fmt.Errorf("record %d: %w", id, apperrors.ErrNotFound)
	}
	prescriptions, err := s.recordRepo.ListPrescriptions(ctx, id)
	if err != nil {
		return nil, nil, apperrors.Store(err)
	}
	return record, prescriptions, nil
}

// UpdateRecord overwrites all mutable fields of an existing record.
func (s *recordService) UpdateRecord(ctx context.Context, id int64, fields RecordFields) (*models.HealthRecord, error) {
	if err := utils.ValidateRecordFields(fields.Name, fields.Gender, fields.Origin,
		fields.HealthStatus, fields.Age, fields.LastCheckupDate); err != nil {
		return nil, apperrors.Validation(err)
	}

	record := &models.HealthRecord{
		ID:              id,
		Name:            fields.Name,
		Age:             fields.Age,
		Gender:          fields.Gender,
		Origin:          fields.Origin,
		HealthStatus:    fields.HealthStatus,
		LastCheckupDate: fields.LastCheckupDate,
		Notes:           fields.Notes,
	}
	if err := s.recordRepo.Update(ctx, record); err != nil {
		if isTaxonomyError(err) {
			return nil, err
		}
		return nil, apperrors.Store(err)
	}
	return record, nil
}

// DeleteRecord removes a record and its prescriptions. Idempotent:
// deleting an id that does not exist is not an observable error.
func (s *recordService) DeleteRecord(ctx context.Context, id int64) error {
	if err := s.recordRepo.Delete(ctx, id); err != nil {
		return apperrors.Store(err)
	}
	return nil
}

// AddPrescription appends a prescription to an existing record, authored
// by the calling admin or doctor.
func (s *recordService) AddPrescription(ctx context.Context, recordID, doctorID int64, fields PrescriptionFields) (*models.Prescription, error) {
	if err := utils.ValidatePrescriptionFields(fields.Medication, fields.PrescriptionDate); err != nil {
		return nil, apperrors.Validation(err)
	}

	prescription := &models.Prescription{
		RecordID:         recordID,
		DoctorID:         doctorID,
		Medication:       fields.Medication,
		Notes:            fields.Notes,
		PrescriptionDate: fields.PrescriptionDate,
	}
	if err := s.recordRepo.CreatePrescription(ctx, prescription); err != nil {
		if isTaxonomyError(err) {
			return nil, err
		}
		return nil, apperrors.Store(err)
	}
	return prescription, nil
}
