package core

import "strings"

// Credentials is the token material extracted from one handshake response.
// Token and TokenSecret are non-empty whenever the value exists; LoginURL is
// populated only for temporary credentials, which still need the resource
// owner to authorize the application.
type Credentials struct {
	LoginURL    string
	Token       string
	TokenSecret string
}

// Temporary reports whether the credentials belong to the authorization leg
// of the handshake.
func (c Credentials) Temporary() bool {
	return strings.TrimSpace(c.LoginURL) != ""
}

// SigningContext carries the secrets used to sign requests for one
// (consumer, token) pair. It is set once at construction and never mutated,
// so a single context may serve concurrent signing operations without
// synchronization.
type SigningContext struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
}

// NewSigningContext trims and validates the credential material. Token and
// TokenSecret stay empty until the handshake has produced them.
func NewSigningContext(consumerKey, consumerSecret, token, tokenSecret string) (SigningContext, error) {
	signing := SigningContext{
		ConsumerKey:    strings.TrimSpace(consumerKey),
		ConsumerSecret: strings.TrimSpace(consumerSecret),
		Token:          strings.TrimSpace(token),
		TokenSecret:    strings.TrimSpace(tokenSecret),
	}
	if signing.ConsumerKey == "" {
		return SigningContext{}, coreValidationError("consumer_key", "consumer key is required")
	}
	if signing.ConsumerSecret == "" {
		return SigningContext{}, coreValidationError("consumer_secret", "consumer secret is required")
	}
	return signing, nil
}

// WithToken derives a new context bound to a token pair, leaving the
// receiver untouched.
func (s SigningContext) WithToken(token, tokenSecret string) SigningContext {
	s.Token = strings.TrimSpace(token)
	s.TokenSecret = strings.TrimSpace(tokenSecret)
	return s
}
