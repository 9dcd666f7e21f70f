package services

import (
	"context"
	"errors"

	"MigrantHealth/models"
	"MigrantHealth/repositories"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ repositories.UserRepository   = (*mockUserRepository)(nil)
	_ repositories.RecordRepository = (*mockRecordRepository)(nil)
)

type mockUserRepository struct {
	GetByUsernameFunc  func(ctx context.Context, username string) (*models.User, error)
	GetByIDFunc        func(ctx context.Context, userID int64) (*models.User, error)
	UsernameExistsFunc func(ctx context.Context, username string) (bool, error)
	CreateFunc         func(ctx context.Context, user *models.User) error
	UpdatePasswordFunc func(ctx context.Context, userID int64, hashedPassword string) error
	ListDoctorsFunc    func(ctx context.Context) ([]models.User, error)

	UpdatePasswordCalls int
	CreateCalls         int
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.UsernameExistsFunc != nil {
		return m.UsernameExistsFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	m.UpdatePasswordCalls++
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, hashedPassword)
	}
	return nil
}

func (m *mockUserRepository) ListDoctors(ctx context.Context) ([]models.User, error) {
	if m.ListDoctorsFunc != nil {
		return m.ListDoctorsFunc(ctx)
	}
	return []models.User{}, nil
}

type mockRecordRepository struct {
	ListAllFunc            func(ctx context.Context) ([]models.RecordSummary, error)
	ListByPatientFunc      func(ctx context.Context, userID int64) ([]models.RecordSummary, error)
	GetByIDFunc            func(ctx context.Context, id int64) (*models.HealthRecord, error)
	CreateWithPatientFunc  func(ctx context.Context, record *models.HealthRecord, patient *models.User) error
	UpdateFunc             func(ctx context.Context, record *models.HealthRecord) error
	DeleteFunc             func(ctx context.Context, id int64) error
	CreatePrescriptionFunc func(ctx context.Context, prescription *models.Prescription) error
	ListPrescriptionsFunc  func(ctx context.Context, recordID int64) ([]models.PrescriptionView, error)

	ListAllCalls       int
	ListByPatientCalls int
}

func (m *mockRecordRepository) ListAll(ctx context.Context) ([]models.RecordSummary, error) {
	m.ListAllCalls++
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []models.RecordSummary{}, nil
}

func (m *mockRecordRepository) ListByPatient(ctx context.Context, userID int64) ([]models.RecordSummary, error) {
	m.ListByPatientCalls++
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, userID)
	}
	return []models.RecordSummary{}, nil
}

func (m *mockRecordRepository) GetByID(ctx context.Context, id int64) (*models.HealthRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRecordRepository) CreateWithPatient(ctx context.Context, record *models.HealthRecord, patient *models.User) error {
	if m.CreateWithPatientFunc != nil {
		return m.CreateWithPatientFunc(ctx, record, patient)
	}
	return nil
}

func (m *mockRecordRepository) Update(ctx context.Context, record *models.HealthRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *mockRecordRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRecordRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	if m.CreatePrescriptionFunc != nil {
		return m.CreatePrescriptionFunc(ctx, prescription)
	}
	return nil
}

func (m *mockRecordRepository) ListPrescriptions(ctx context.Context, recordID int64) ([]models.PrescriptionView, error) {
	if m.ListPrescriptionsFunc != nil {
		return m.ListPrescriptionsFunc(ctx, recordID)
	}
	return []models.PrescriptionView{}, nil
}
