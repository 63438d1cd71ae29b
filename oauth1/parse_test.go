package oauth1

import (
	"errors"
	"testing"
)

const temporaryCredentialsBody = "login_url=https%3A%2F%2Fexample.com%2Foauth%2Fauthorize" +
	"%3Foauth_token%3DABC%26oauth_token_secret%3DXYZ"

func TestParseTemporaryCredentials(t *testing.T) {
	credentials, err := parseTemporaryCredentials(temporaryCredentialsBody)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if credentials.LoginURL != "https://example.com/oauth/authorize?oauth_token=ABC&oauth_token_secret=XYZ" {
		t.Fatalf("unexpected login url %q", credentials.LoginURL)
	}
	if credentials.Token != "ABC" {
		t.Fatalf("unexpected token %q", credentials.Token)
	}
	if credentials.TokenSecret != "XYZ" {
		t.Fatalf("unexpected token secret %q", credentials.TokenSecret)
	}
}

func TestParseTemporaryCredentials_MissingLoginURL(t *testing.T) {
	if _, err := parseTemporaryCredentials("other=1&noise=2"); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestParseTemporaryCredentials_LoginURLWithoutQuery(t *testing.T) {
	body := "login_url=https%3A%2F%2Fexample.com%2Fauthorize"
	if _, err := parseTemporaryCredentials(body); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestParseTemporaryCredentials_MissingTokenSecret(t *testing.T) {
	body := "login_url=https%3A%2F%2Fexample.com%2Fauthorize%3Foauth_token%3DABC"
	if _, err := parseTemporaryCredentials(body); !errors.Is(err, ErrMissingTokenPair) {
		t.Fatalf("expected ErrMissingTokenPair, got %v", err)
	}
}

func TestParsePermanentCredentials(t *testing.T) {
	credentials, err := parsePermanentCredentials("oauth_token=PERM&oauth_token_secret=SECRET\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if credentials.Token != "PERM" || credentials.TokenSecret != "SECRET" {
		t.Fatalf("unexpected credentials %+v", credentials)
	}
	if credentials.LoginURL != "" {
		t.Fatalf("permanent credentials should carry no login url, got %q", credentials.LoginURL)
	}
}

func TestParsePermanentCredentials_MissingToken(t *testing.T) {
	if _, err := parsePermanentCredentials("oauth_token_secret=SECRET"); !errors.Is(err, ErrMissingTokenPair) {
		t.Fatalf("expected ErrMissingTokenPair, got %v", err)
	}
}

func TestParseQueryPairs_TolerantSplitting(t *testing.T) {
	pairs := parseQueryPairs("a=1&broken&a=shadowed&=empty&b=2&c=")
	if pairs["a"] != "1" {
		t.Fatalf("expected first occurrence to win, got %q", pairs["a"])
	}
	if pairs["b"] != "2" {
		t.Fatalf("unexpected value for b: %q", pairs["b"])
	}
	if value, ok := pairs["c"]; !ok || value != "" {
		t.Fatalf("expected empty value for c, got %q (present %v)", value, ok)
	}
	if _, ok := pairs["broken"]; ok {
		t.Fatalf("segments without a separator must be skipped")
	}
	if _, ok := pairs[""]; ok {
		t.Fatalf("empty keys must be skipped")
	}
}
