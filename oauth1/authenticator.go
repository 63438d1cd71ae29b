package oauth1

import (
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/skuvault/etsyAccess/core"
)

const (
	signatureMethod = "HMAC-SHA1"
	oauthVersion    = "1.0"

	consumerKeyParam     = "oauth_consumer_key"
	nonceParam           = "oauth_nonce"
	signatureMethodParam = "oauth_signature_method"
	timestampParam       = "oauth_timestamp"
	versionParam         = "oauth_version"
	tokenParam           = "oauth_token"
	signatureParam       = "oauth_signature"
)

// AuthenticatorConfig wires the signing context with optional overrides for
// the nonce and clock sources, which tests inject to make signing
// deterministic.
type AuthenticatorConfig struct {
	Signing core.SigningContext
	Nonce   func() string
	Now     func() time.Time
}

// Authenticator assembles and canonicalizes the full OAuth parameter set for
// a request. It holds only immutable state, so one instance may serve
// concurrent signing operations.
type Authenticator struct {
	signing core.SigningContext
	signer  Signer
	nonce   func() string
	now     func() time.Time
}

func NewAuthenticator(cfg AuthenticatorConfig) *Authenticator {
	nonce := cfg.Nonce
	if nonce == nil {
		nonce = newNonce
	}
	now := cfg.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Authenticator{
		signing: cfg.Signing,
		nonce:   nonce,
		now:     now,
	}
}

// BuildSignedParameters assembles the OAuth parameter set for one request
// attempt and appends its signature. Extra parameters override the seeded
// OAuth defaults on collision; query parameters already present in rawURL
// are merged underneath anything already set. The signature is always
// computed over a set that does not contain oauth_signature itself. For
// non-GET requests, the keys that arrived via extra are removed from the
// final set — they travel in the request body, not the query string.
func (a *Authenticator) BuildSignedParameters(rawURL, method, tokenSecret string, extra map[string]string) (*RequestParameters, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, invalidInputError("oauth1: invalid request url", err)
	}

	params := NewRequestParameters()
	params.Set(consumerKeyParam, a.signing.ConsumerKey)
	params.Set(nonceParam, a.nonce())
	params.Set(signatureMethodParam, signatureMethod)
	params.Set(timestampParam, strconv.FormatInt(a.now().Unix(), 10))
	params.Set(versionParam, oauthVersion)
	if a.signing.Token != "" {
		params.Set(tokenParam, a.signing.Token)
	}

	for _, key := range sortedMapKeys(extra) {
		params.Set(key, extra[key])
	}
	query := parsed.Query()
	for _, key := range sortedQueryKeys(query) {
		params.SetIfAbsent(key, query.Get(key))
	}

	// A signature must never be part of its own input.
	params.Delete(signatureParam)

	signature := a.signer.Sign(baseURLOf(parsed), method, a.signing.ConsumerSecret, tokenSecret, params)
	params.Set(signatureParam, signature)

	if !strings.EqualFold(strings.TrimSpace(method), http.MethodGet) {
		for key := range extra {
			params.Delete(key)
		}
	}
	return params, nil
}

// SignedURL serializes the signed parameter set onto the request's base URL.
func (a *Authenticator) SignedURL(rawURL, method, tokenSecret string, extra map[string]string) (string, error) {
	params, err := a.BuildSignedParameters(rawURL, method, tokenSecret, extra)
	if err != nil {
		return "", err
	}
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", invalidInputError("oauth1: invalid request url", err)
	}
	return baseURLOf(parsed) + "?" + params.Encode(), nil
}

// baseURLOf strips the query and fragment, keeping scheme, host, and path.
func baseURLOf(parsed *url.URL) string {
	trimmed := *parsed
	trimmed.RawQuery = ""
	trimmed.Fragment = ""
	trimmed.RawFragment = ""
	return trimmed.String()
}

func sortedMapKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedQueryKeys(values url.Values) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
