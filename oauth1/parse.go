package oauth1

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skuvault/etsyAccess/core"
)

const (
	loginURLKey    = "login_url"
	tokenKey       = "oauth_token"
	tokenSecretKey = "oauth_token_secret"
)

// parseQueryPairs is the tolerant splitter both handshake endpoints share:
// split on "&", then on the first "=". Segments without a separator are
// skipped and the first occurrence of a key wins.
func parseQueryPairs(body string) map[string]string {
	pairs := map[string]string{}
	for _, segment := range strings.Split(body, "&") {
		parts := strings.SplitN(segment, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := parts[0]
		if key == "" {
			continue
		}
		if _, ok := pairs[key]; ok {
			continue
		}
		pairs[key] = parts[1]
	}
	return pairs
}

// parseTemporaryCredentials extracts the token pair from a temporary
// credentials response: a login_url segment carrying a URL-encoded
// authorization URL whose own query string holds oauth_token and
// oauth_token_secret.
func parseTemporaryCredentials(body string) (core.Credentials, error) {
	pairs := parseQueryPairs(strings.TrimSpace(body))
	encoded := pairs[loginURLKey]
	if encoded == "" {
		return core.Credentials{}, ErrMalformedResponse
	}
	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		return core.Credentials{}, fmt.Errorf("%w: %s", ErrMalformedResponse, err.Error())
	}
	parts := strings.SplitN(decoded, "?", 2)
	if len(parts) != 2 {
		return core.Credentials{}, ErrMalformedResponse
	}
	tokens := parseQueryPairs(parts[1])
	token := tokens[tokenKey]
	tokenSecret := tokens[tokenSecretKey]
	if token == "" || tokenSecret == "" {
		return core.Credentials{}, ErrMissingTokenPair
	}
	return core.Credentials{
		LoginURL:    decoded,
		Token:       token,
		TokenSecret: tokenSecret,
	}, nil
}

// parsePermanentCredentials reads an access token response, which is a bare
// key=value query string with no wrapping prefix.
func parsePermanentCredentials(body string) (core.Credentials, error) {
	tokens := parseQueryPairs(strings.TrimSpace(body))
	token := tokens[tokenKey]
	tokenSecret := tokens[tokenSecretKey]
	if token == "" || tokenSecret == "" {
		return core.Credentials{}, ErrMissingTokenPair
	}
	return core.Credentials{
		Token:       token,
		TokenSecret: tokenSecret,
	}, nil
}
