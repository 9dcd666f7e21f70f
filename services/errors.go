package services

import (
	"errors"

	"MigrantHealth/apperrors"
)

// isTaxonomyError reports whether err already carries one of the
// user-facing failure classes, so it should pass through unwrapped
// instead of being folded into a store error.
func isTaxonomyError(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrConflict) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrAuthFailure) ||
		errors.Is(err, apperrors.ErrPermissionDenied)
}
