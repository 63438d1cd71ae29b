package oauth1

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"
	"github.com/skuvault/etsyAccess/core"
)

const (
	// CallbackOutOfBand asks the provider to display the verifier code to
	// the user instead of redirecting.
	CallbackOutOfBand = "oob"

	scopesParam   = "scopes"
	callbackParam = "oauth_callback"
	verifierParam = "oauth_verifier"

	operationRequestTemporary  = "request_temporary_credentials"
	operationExchangePermanent = "exchange_permanent_credentials"
)

// ExchangeState tracks where the two-leg handshake stands after an
// operation completes.
type ExchangeState string

const (
	StateStart                        ExchangeState = "start"
	StateAwaitingTemporaryCredentials ExchangeState = "awaiting_temporary_credentials"
	StateAwaitingUserAuthorization    ExchangeState = "awaiting_user_authorization"
	StateAwaitingPermanentCredentials ExchangeState = "awaiting_permanent_credentials"
	StateDone                         ExchangeState = "done"
	StateFailed                       ExchangeState = "failed"
)

// ExchangerConfig wires the signing context, endpoints, transport, and retry
// behavior of a credential exchanger. Nonce, Now, and CorrelationID are
// overridable for tests.
type ExchangerConfig struct {
	Signing         core.SigningContext
	RequestTokenURL string
	AccessTokenURL  string
	Transport       core.TransportAdapter
	Retry           RetryPolicy
	Logger          core.Logger
	Nonce           func() string
	Now             func() time.Time
	CorrelationID   func() string
}

// CredentialExchanger orchestrates the two-leg handshake. All state is
// immutable after construction; concurrent exchanges proceed independently
// with distinct nonces, timestamps, and correlation markers.
type CredentialExchanger struct {
	authenticator   *Authenticator
	requestTokenURL string
	accessTokenURL  string
	transport       core.TransportAdapter
	retry           RetryPolicy
	logger          core.Logger
	correlationID   func() string
}

func NewCredentialExchanger(cfg ExchangerConfig) (*CredentialExchanger, error) {
	if strings.TrimSpace(cfg.Signing.ConsumerKey) == "" {
		return nil, validationError("consumer_key", "consumer key is required")
	}
	if strings.TrimSpace(cfg.Signing.ConsumerSecret) == "" {
		return nil, validationError("consumer_secret", "consumer secret is required")
	}
	if strings.TrimSpace(cfg.RequestTokenURL) == "" {
		return nil, validationError("request_token_url", "temporary credentials endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessTokenURL) == "" {
		return nil, validationError("access_token_url", "access token endpoint is required")
	}
	if cfg.Transport == nil {
		return nil, validationError("transport", "transport adapter is required")
	}

	logger := glog.Ensure(cfg.Logger)
	retry := cfg.Retry
	if retry.Logger == nil {
		retry.Logger = logger
	}
	correlationID := cfg.CorrelationID
	if correlationID == nil {
		correlationID = uuid.NewString
	}

	return &CredentialExchanger{
		authenticator: NewAuthenticator(AuthenticatorConfig{
			Signing: cfg.Signing,
			Nonce:   cfg.Nonce,
			Now:     cfg.Now,
		}),
		requestTokenURL: strings.TrimSpace(cfg.RequestTokenURL),
		accessTokenURL:  strings.TrimSpace(cfg.AccessTokenURL),
		transport:       cfg.Transport,
		retry:           retry,
		logger:          logger,
		correlationID:   correlationID,
	}, nil
}

// RequestTemporaryCredentials performs the first handshake leg. The returned
// error is non-nil only for validation failures, which are never retried and
// make no network calls; every transient failure is folded into the result.
func (e *CredentialExchanger) RequestTemporaryCredentials(ctx context.Context, scopes []string) (ExchangeResult, error) {
	cleaned := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		if trimmed := strings.TrimSpace(scope); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return ExchangeResult{State: StateStart}, validationError("scopes", "at least one scope is required")
	}

	correlationID := e.correlationID()
	extra := map[string]string{
		scopesParam:   strings.Join(cleaned, " "),
		callbackParam: CallbackOutOfBand,
	}
	result := e.retry.Run(ctx, operationRequestTemporary, correlationID,
		func(ctx context.Context, attempt int) (core.Credentials, error) {
			return e.fetchCredentials(ctx, operationRequestTemporary, correlationID,
				e.requestTokenURL, "", extra, parseTemporaryCredentials)
		})
	if result.Ok() {
		result.State = StateAwaitingUserAuthorization
	} else {
		result.State = StateFailed
	}
	return result, nil
}

// ExchangePermanentCredentials performs the final handshake leg, signing with
// the temporary token secret and presenting the verifier the user obtained
// during authorization.
func (e *CredentialExchanger) ExchangePermanentCredentials(ctx context.Context, temporaryToken, temporaryTokenSecret, verifierCode string) (ExchangeResult, error) {
	temporaryToken = strings.TrimSpace(temporaryToken)
	temporaryTokenSecret = strings.TrimSpace(temporaryTokenSecret)
	verifierCode = strings.TrimSpace(verifierCode)
	if temporaryToken == "" {
		return ExchangeResult{State: StateAwaitingUserAuthorization}, validationError("oauth_token", "temporary token is required")
	}
	if temporaryTokenSecret == "" {
		return ExchangeResult{State: StateAwaitingUserAuthorization}, validationError("oauth_token_secret", "temporary token secret is required")
	}
	if verifierCode == "" {
		return ExchangeResult{State: StateAwaitingUserAuthorization}, validationError("oauth_verifier", "verifier code is required")
	}

	correlationID := e.correlationID()
	extra := map[string]string{
		tokenParam:    temporaryToken,
		verifierParam: verifierCode,
	}
	result := e.retry.Run(ctx, operationExchangePermanent, correlationID,
		func(ctx context.Context, attempt int) (core.Credentials, error) {
			return e.fetchCredentials(ctx, operationExchangePermanent, correlationID,
				e.accessTokenURL, temporaryTokenSecret, extra, parsePermanentCredentials)
		})
	if result.Ok() {
		result.State = StateDone
	} else {
		result.State = StateFailed
	}
	return result, nil
}

// fetchCredentials runs one attempt: sign the endpoint URL with a fresh
// nonce and timestamp, issue the GET through the transport, and parse the
// body. Any failure is captured with its request context before the retry
// boundary swallows it.
func (e *CredentialExchanger) fetchCredentials(
	ctx context.Context,
	operation string,
	correlationID string,
	endpointURL string,
	tokenSecret string,
	extra map[string]string,
	parse func(body string) (core.Credentials, error),
) (core.Credentials, error) {
	signedURL, err := e.authenticator.SignedURL(endpointURL, http.MethodGet, tokenSecret, extra)
	if err != nil {
		return core.Credentials{}, e.captureFailure(ctx, operation, endpointURL, correlationID, err)
	}

	response, err := e.transport.Do(ctx, core.TransportRequest{
		Method: http.MethodGet,
		URL:    signedURL,
	})
	if err != nil {
		return core.Credentials{}, e.captureFailure(ctx, operation, signedURL, correlationID, err)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		statusErr := fmt.Errorf("oauth1: unexpected status %d", response.StatusCode)
		return core.Credentials{}, e.captureFailure(ctx, operation, signedURL, correlationID, statusErr)
	}

	credentials, err := parse(string(response.Body))
	if err != nil {
		return core.Credentials{}, e.captureFailure(ctx, operation, signedURL, correlationID, err)
	}
	return credentials, nil
}

// captureFailure enriches an attempt failure with the request URL, the
// correlation marker, and a description of the attempted operation, logs it,
// and returns the normalized attempt error the retry loop consumes. Nothing
// is silently dropped.
func (e *CredentialExchanger) captureFailure(ctx context.Context, operation, requestURL, correlationID string, source error) error {
	logger := e.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	logger.Error(operation+" attempt failed",
		"operation", operation,
		"url", requestURL,
		"correlation_id", correlationID,
		"error", source.Error(),
	)
	return attemptError(source, "oauth1: "+operation+" attempt failed", map[string]any{
		"operation":      operation,
		"url":            requestURL,
		"correlation_id": correlationID,
	})
}
