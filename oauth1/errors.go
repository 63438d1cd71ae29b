package oauth1

import (
	"errors"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	"github.com/skuvault/etsyAccess/core"
)

var (
	ErrMalformedResponse = errors.New("oauth1: malformed handshake response")
	ErrMissingTokenPair  = errors.New("oauth1: handshake response is missing the token pair")
	ErrRetriesExhausted  = errors.New("oauth1: retry budget exhausted")
)

func validationError(field string, message string) error {
	return goerrors.NewValidation("oauth1: validation failed", goerrors.FieldError{
		Field:   field,
		Message: message,
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(core.ErrorBadInput).
		WithSeverity(goerrors.SeverityError)
}

func invalidInputError(message string, source error) error {
	if source == nil {
		return goerrors.New(message, goerrors.CategoryBadInput).
			WithCode(http.StatusBadRequest).
			WithTextCode(core.ErrorBadInput)
	}
	return goerrors.Wrap(source, goerrors.CategoryBadInput, message).
		WithCode(http.StatusBadRequest).
		WithTextCode(core.ErrorBadInput)
}

// attemptError wraps one failed exchange attempt with its request context so
// the retry boundary can log and swallow it without losing diagnostics.
func attemptError(source error, message string, metadata map[string]any) error {
	err := goerrors.Wrap(source, goerrors.CategoryExternal, message).
		WithCode(http.StatusBadGateway).
		WithTextCode(core.ErrorExternal)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}
