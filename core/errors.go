package core

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorBadInput  = "AUTH_BAD_INPUT"
	ErrorExternal  = "AUTH_EXTERNAL_FAILURE"
	ErrorExhausted = "AUTH_RETRIES_EXHAUSTED"
	ErrorInternal  = "AUTH_INTERNAL_ERROR"
)

// TextCodeFor maps an error category to the envelope text code shared across
// the module's packages.
func TextCodeFor(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return ErrorBadInput
	case goerrors.CategoryExternal, goerrors.CategoryOperation:
		return ErrorExternal
	default:
		return ErrorInternal
	}
}

func coreValidationError(field string, message string) error {
	return goerrors.NewValidation("core: validation failed", goerrors.FieldError{
		Field:   field,
		Message: message,
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorBadInput).
		WithSeverity(goerrors.SeverityError)
}
