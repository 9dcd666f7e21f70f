package utils

import (
	"MigrantHealth/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

// ValidateLogin checks a login attempt for the required fields.
func ValidateLogin(username, password string) error {
	return validation.Errors{
		"username": validation.Validate(username, validation.Required),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
}

// ValidateNewUser validates an explicit user creation by an admin.
func ValidateNewUser(username, password, role string) error {
	return validation.Errors{
		"username": validation.Validate(username, validation.Required, validation.Length(3, 100)),
		"password": validation.Validate(password, validation.Required, validation.Length(6, 72)),
		"role": validation.Validate(role, validation.Required,
			validation.In(models.RoleAdmin, models.RoleDoctor, models.RolePatient)),
	}.Filter()
}

// ValidateRecordFields validates the mutable fields of a health record.
// Age and last checkup date are optional; everything else is required.
func ValidateRecordFields(name, gender, origin, healthStatus string, age *int, lastCheckupDate *string) error {
	errs := validation.Errors{
		"name":          validation.Validate(name, validation.Required, validation.Length(1, 255)),
		"gender":        validation.Validate(gender, validation.Required),
		"origin":        validation.Validate(origin, validation.Required),
		"health_status": validation.Validate(healthStatus, validation.Required),
	}
	if age != nil {
		errs["age"] = validation.Validate(*age, validation.Min(0), validation.Max(150))
	}
	if lastCheckupDate != nil {
		errs["last_checkup_date"] = validation.Validate(*lastCheckupDate, validation.Date(dateLayout))
	}
	return errs.Filter()
}

// ValidatePrescriptionFields validates a new prescription. Medication and
// the prescription date are required; absence is a validation error.
func ValidatePrescriptionFields(medication, prescriptionDate string) error {
	return validation.Errors{
		"medication":        validation.Validate(medication, validation.Required),
		"prescription_date": validation.Validate(prescriptionDate, validation.Required, validation.Date(dateLayout)),
	}.Filter()
}

// ValidatePasswordChange checks the fields of a password change request.
// The old-password comparison happens in the service, not here.
func ValidatePasswordChange(oldPassword, newPassword, confirmPassword string) error {
	return validation.Errors{
		"old_password":     validation.Validate(oldPassword, validation.Required),
		"new_password":     validation.Validate(newPassword, validation.Required, validation.Length(6, 72)),
		"confirm_password": validation.Validate(confirmPassword, validation.Required),
	}.Filter()
}
