package handlers

import (
	"context"
	"errors"

	"MigrantHealth/middlewares"
	"MigrantHealth/models"
	"MigrantHealth/services"
	"MigrantHealth/sessions"

	"github.com/gin-gonic/gin"
)

// Compile-time checks that the fakes satisfy the contracts.
var (
	_ services.AuthService      = (*fakeAuthService)(nil)
	_ services.RecordService    = (*fakeRecordService)(nil)
	_ SessionManager            = (*fakeSessionManager)(nil)
	_ middlewares.SessionLoader = (*fakeSessionManager)(nil)
)

type fakeAuthService struct {
	AuthenticateFunc   func(ctx context.Context, username, password string) (*models.User, error)
	CreateUserFunc     func(ctx context.Context, username, password, role string) (*models.User, error)
	ChangePasswordFunc func(ctx context.Context, userID int64, oldPassword, newPassword, confirmPassword string) error

	ChangePasswordUserID int64
}

func (f *fakeAuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if f.AuthenticateFunc != nil {
		return f.AuthenticateFunc(ctx, username, password)
	}
	return nil, errors.New("AuthenticateFunc not implemented in fake")
}

func (f *fakeAuthService) CreateUser(ctx context.Context, username, password, role string) (*models.User, error) {
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(ctx, username, password, role)
	}
	return nil, errors.New("CreateUserFunc not implemented in fake")
}

func (f *fakeAuthService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword, confirmPassword string) error {
	f.ChangePasswordUserID = userID
	if f.ChangePasswordFunc != nil {
		return f.ChangePasswordFunc(ctx, userID, oldPassword, newPassword, confirmPassword)
	}
	return nil
}

type fakeRecordService struct {
	ListRecordsFunc     func(ctx context.Context, role string, userID int64) ([]models.RecordSummary, error)
	ListDoctorsFunc     func(ctx context.Context) ([]models.User, error)
	CreateRecordFunc    func(ctx context.Context, fields services.RecordFields) (*models.HealthRecord, *services.ProvisionedCredentials, error)
	GetRecordFunc       func(ctx context.Context, id int64) (*models.HealthRecord, []models.PrescriptionView, error)
	UpdateRecordFunc    func(ctx context.Context, id int64, fields services.RecordFields) (*models.HealthRecord, error)
	DeleteRecordFunc    func(ctx context.Context, id int64) error
	AddPrescriptionFunc func(ctx context.Context, recordID, doctorID int64, fields services.PrescriptionFields) (*models.Prescription, error)

	ListRole     string
	ListUserID   int64
	DeletedID    int64
	DeleteCalls  int
	DoctorsCalls int
}

func (f *fakeRecordService) ListRecords(ctx context.Context, role string, userID int64) ([]models.RecordSummary, error) {
	f.ListRole, f.ListUserID = role, userID
	if f.ListRecordsFunc != nil {
		return f.ListRecordsFunc(ctx, role, userID)
	}
	return []models.RecordSummary{}, nil
}

func (f *fakeRecordService) ListDoctors(ctx context.Context) ([]models.User, error) {
	f.DoctorsCalls++
	if f.ListDoctorsFunc != nil {
		return f.ListDoctorsFunc(ctx)
	}
	return []models.User{}, nil
}

func (f *fakeRecordService) CreateRecord(ctx context.Context, fields services.RecordFields) (*models.HealthRecord, *services.ProvisionedCredentials, error) {
	if f.CreateRecordFunc != nil {
		return f.CreateRecordFunc(ctx, fields)
	}
	return nil, nil, errors.New("CreateRecordFunc not implemented in fake")
}

func (f *fakeRecordService) GetRecord(ctx context.Context, id int64) (*models.HealthRecord, []models.PrescriptionView, error) {
	if f.GetRecordFunc != nil {
		return f.GetRecordFunc(ctx, id)
	}
	return nil, nil, errors.New("GetRecordFunc not implemented in fake")
}

func (f *fakeRecordService) UpdateRecord(ctx context.Context, id int64, fields services.RecordFields) (*models.HealthRecord, error) {
	if f.UpdateRecordFunc != nil {
		return f.UpdateRecordFunc(ctx, id, fields)
	}
	return nil, errors.New("UpdateRecordFunc not implemented in fake")
}

func (f *fakeRecordService) DeleteRecord(ctx context.Context, id int64) error {
	f.DeleteCalls++
	f.DeletedID = id
	if f.DeleteRecordFunc != nil {
		return f.DeleteRecordFunc(ctx, id)
	}
	return nil
}

func (f *fakeRecordService) AddPrescription(ctx context.Context, recordID, doctorID int64, fields services.PrescriptionFields) (*models.Prescription, error) {
	if f.AddPrescriptionFunc != nil {
		return f.AddPrescriptionFunc(ctx, recordID, doctorID, fields)
	}
	return nil, errors.New("AddPrescriptionFunc not implemented in fake")
}

// fakeSessionManager serves both the handlers' SessionManager and the
// guard's SessionLoader.
type fakeSessionManager struct {
	session *sessions.Session

	Created      *sessions.Session
	CreateCalls  int
	DestroyCalls int
	Theme        string
}

func (f *fakeSessionManager) Create(_ *gin.Context, session *sessions.Session) error {
	f.CreateCalls++
	f.Created = session
	return nil
}

func (f *fakeSessionManager) Load(_ *gin.Context) (*sessions.Session, error) {
	return f.session, nil
}

func (f *fakeSessionManager) Destroy(_ *gin.Context) error {
	f.DestroyCalls++
	return nil
}

func (f *fakeSessionManager) ToggleTheme(_ *gin.Context) (string, error) {
	if f.Theme == "" {
		f.Theme = sessions.ThemeDark
	} else {
		f.Theme = ""
	}
	return f.Theme, nil
}
