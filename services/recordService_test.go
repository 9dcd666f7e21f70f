package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"MigrantHealth/apperrors"
	"MigrantHealth/models"
	"MigrantHealth/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRecords(t *testing.T) {
	all := []models.RecordSummary{{ID: 2, UserID: 8}, {ID: 1, UserID: 7}}
	own := []models.RecordSummary{{ID: 1, UserID: 7}}

	cases := []struct {
		name        string
		role        string
		userID      int64
		wantRecords []models.RecordSummary
		wantAll     int
		wantScoped  int
	}{
		{name: "admin sees everything", role: models.RoleAdmin, userID: 1, wantRecords: all, wantAll: 1},
		{name: "doctor sees everything", role: models.RoleDoctor, userID: 2, wantRecords: all, wantAll: 1},
		{name: "patient sees only own", role: models.RolePatient, userID: 7, wantRecords: own, wantScoped: 1},
		{name: "unknown role sees nothing", role: "auditor", userID: 9, wantRecords: []models.RecordSummary{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var scopedTo int64
			repo := &mockRecordRepository{
				ListAllFunc: func(_ context.Context) ([]models.RecordSummary, error) {
					return all, nil
				},
				ListByPatientFunc: func(_ context.Context, userID int64) ([]models.RecordSummary, error) {
					scopedTo = userID
					return own, nil
				},
			}
			svc := NewRecordService(repo, &mockUserRepository{})

			records, err := svc.ListRecords(context.Background(), tc.role, tc.userID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRecords, records)
			assert.Equal(t, tc.wantAll, repo.ListAllCalls)
			assert.Equal(t, tc.wantScoped, repo.ListByPatientCalls)
			if tc.wantScoped > 0 {
				assert.Equal(t, tc.userID, scopedTo, "patient listing must be scoped to the caller")
			}
		})
	}
}

func TestCreateRecord(t *testing.T) {
	fields := RecordFields{
		Name:         "John Smith",
		Gender:       "male",
		Origin:       "Guatemala",
		HealthStatus: "stable",
		Notes:        "seasonal worker",
	}

	t.Run("provisions patient account and record together", func(t *testing.T) {
		var gotRecord *models.HealthRecord
		var gotPatient *models.User
		repo := &mockRecordRepository{
			CreateWithPatientFunc: func(_ context.Context, record *models.HealthRecord, patient *models.User) error {
				gotRecord, gotPatient = record, patient
				patient.ID = 42
				record.UserID = patient.ID
				return nil
			},
		}
		svc := NewRecordService(repo, &mockUserRepository{})

		record, credentials, err := svc.CreateRecord(context.Background(), fields)
		require.NoError(t, err)
		require.NotNil(t, gotRecord)
		require.NotNil(t, gotPatient)
		require.NotNil(t, credentials)

		assert.Regexp(t, regexp.MustCompile(`^john\d{4}$`), credentials.Username)
		assert.Len(t, credentials.Password, utils.GeneratedPasswordLength)
		assert.Equal(t, credentials.Username, gotPatient.Username)
		assert.Equal(t, models.RolePatient, gotPatient.Role)
		assert.NotEqual(t, credentials.Password, gotPatient.Password, "only the hash may be stored")
		assert.True(t, utils.CheckPassword(gotPatient.Password, credentials.Password))
		assert.Equal(t, int64(42), record.UserID)
	})

	t.Run("no credentials leak when the transaction fails", func(t *testing.T) {
		repo := &mockRecordRepository{
			CreateWithPatientFunc: func(_ context.Context, _ *models.HealthRecord, _ *models.User) error {
				return errors.New("insert failed")
			},
		}
		svc := NewRecordService(repo, &mockUserRepository{})

		record, credentials, err := svc.CreateRecord(context.Background(), fields)
		require.Error(t, err)
		assert.True(t, apperrors.IsStore(err))
		assert.Nil(t, record)
		assert.Nil(t, credentials)
	})

	t.Run("username conflict surfaces as Conflict", func(t *testing.T) {
		repo := &mockRecordRepository{
			CreateWithPatientFunc: func(_ context.Context, _ *models.HealthRecord, patient *models.User) error {
				return fmt.Errorf("username %q %w", patient.Username, apperrors.ErrConflict)
			},
		}
		svc := NewRecordService(repo, &mockUserRepository{})

		_, _, err := svc.CreateRecord(context.Background(), fields)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		svc := NewRecordService(&mockRecordRepository{}, &mockUserRepository{})
		_, _, err := svc.CreateRecord(context.Background(), RecordFields{Name: "John Smith"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestUpdateRecord(t *testing.T) {
	fields := RecordFields{
		Name:         "John Smith",
		Gender:       "male",
		Origin:       "Guatemala",
		HealthStatus: "recovering",
	}

	t.Run("not found passes through", func(t *testing.T) {
		repo := &mockRecordRepository{
			UpdateFunc: func(_ context.Context, record *models.HealthRecord) error {
				return fmt.Errorf("record %d: %w", record.ID, apperrors.ErrNotFound)
			},
		}
		svc := NewRecordService(repo, &mockUserRepository{})
		_, err := svc.UpdateRecord(context.Background(), 99, fields)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("overwrites mutable fields", func(t *testing.T) {
		var updated *models.HealthRecord
		repo := &mockRecordRepository{
			UpdateFunc: func(_ context.Context, record *models.HealthRecord) error {
				updated = record
				return nil
			},
		}
		svc := NewRecordService(repo, &mockUserRepository{})
		record, err := svc.UpdateRecord(context.Background(), 5, fields)
		require.NoError(t, err)
		assert.Equal(t, int64(5), updated.ID)
		assert.Equal(t, "recovering", record.HealthStatus)
	})
}

func TestAddPrescription(t *testing.T) {
	t.Run("requires medication and date", func(t *testing.T) {
		svc := NewRecordService(&mockRecordRepository{}, &mockUserRepository{})
		_, err := svc.AddPrescription(context.Background(), 1, 2, PrescriptionFields{Notes: "rest"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("missing record reported as NotFound", func(t *testing.T) {
		repo := &mockRecordRepository{
			CreatePrescriptionFunc: func(_ context.Context, p *models.Prescription) error {
				return fmt.Errorf("record %d: %w", p.RecordID, apperrors.ErrNotFound)
			},
		}
		svc := NewRecordService(repo, &mockUserRepository{})
		_, err := svc.AddPrescription(context.Background(), 99, 2, PrescriptionFields{
			Medication:       "ibuprofen",
			PrescriptionDate: "2025-06-01",
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("attributes the prescription to the caller", func(t *testing.T) {
		var created *models.Prescription
		repo := &mockRecordRepository{
			CreatePrescriptionFunc: func(_ context.Context, p *models.Prescription) error {
				created = p
				return nil
			},
		}
		svc := NewRecordService(repo, &mockUserRepository{})
		prescription, err := svc.AddPrescription(context.Background(), 3, 11, PrescriptionFields{
			Medication:       "ibuprofen",
			Notes:            "after meals",
			PrescriptionDate: "2025-06-01",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), created.RecordID)
		assert.Equal(t, int64(11), created.DoctorID)
		assert.Equal(t, "ibuprofen", prescription.Medication)
	})
}
