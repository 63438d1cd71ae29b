package oauth1

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/skuvault/etsyAccess/core"
)

func fixedAuthenticator(t *testing.T, token, tokenSecret string) *Authenticator {
	t.Helper()
	signing, err := core.NewSigningContext("CK", "CS", token, tokenSecret)
	if err != nil {
		t.Fatalf("signing context: %v", err)
	}
	return NewAuthenticator(AuthenticatorConfig{
		Signing: signing,
		Nonce:   func() string { return "ABCDEFGHIJK" },
		Now:     func() time.Time { return time.Unix(1000000000, 0).UTC() },
	})
}

func TestBuildSignedParameters_ScenarioOne(t *testing.T) {
	auth := fixedAuthenticator(t, "", "")
	params, err := auth.BuildSignedParameters(scenarioBaseURL, http.MethodGet, "", map[string]string{
		"a": "1",
		"b": "2",
	})
	if err != nil {
		t.Fatalf("build signed parameters: %v", err)
	}

	expectations := map[string]string{
		"oauth_consumer_key":     "CK",
		"oauth_nonce":            "ABCDEFGHIJK",
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_timestamp":        "1000000000",
		"oauth_version":          "1.0",
		"a":                      "1",
		"b":                      "2",
		"oauth_signature":        scenarioSignature,
	}
	if params.Len() != len(expectations) {
		t.Fatalf("expected %d parameters, got %d (%v)", len(expectations), params.Len(), params.Keys())
	}
	for key, want := range expectations {
		got, ok := params.Get(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if got != want {
			t.Fatalf("parameter %q = %q, want %q", key, got, want)
		}
	}
}

func TestBuildSignedParameters_ExtraOverridesSeededDefaults(t *testing.T) {
	auth := fixedAuthenticator(t, "", "")
	params, err := auth.BuildSignedParameters(scenarioBaseURL, http.MethodGet, "", map[string]string{
		"oauth_version": "1.0a",
	})
	if err != nil {
		t.Fatalf("build signed parameters: %v", err)
	}
	if got, _ := params.Get("oauth_version"); got != "1.0a" {
		t.Fatalf("expected extra parameter to override the seed, got %q", got)
	}
}

func TestBuildSignedParameters_URLQueryLosesToExistingKeys(t *testing.T) {
	auth := fixedAuthenticator(t, "", "")
	params, err := auth.BuildSignedParameters(
		scenarioBaseURL+"?x=native&oauth_version=9.9",
		http.MethodGet, "", nil)
	if err != nil {
		t.Fatalf("build signed parameters: %v", err)
	}
	if got, _ := params.Get("x"); got != "native" {
		t.Fatalf("expected url query parameter to be merged, got %q", got)
	}
	if got, _ := params.Get("oauth_version"); got != "1.0" {
		t.Fatalf("expected seeded oauth_version to win over url query, got %q", got)
	}
}

func TestBuildSignedParameters_StripsIncomingSignature(t *testing.T) {
	auth := fixedAuthenticator(t, "", "")
	params, err := auth.BuildSignedParameters(scenarioBaseURL, http.MethodGet, "", map[string]string{
		"oauth_signature": "bogus",
	})
	if err != nil {
		t.Fatalf("build signed parameters: %v", err)
	}
	got, ok := params.Get("oauth_signature")
	if !ok {
		t.Fatalf("expected a computed signature")
	}
	if got == "bogus" {
		t.Fatalf("expected the incoming signature to be discarded")
	}
}

func TestBuildSignedParameters_TokenIncludedWhenConfigured(t *testing.T) {
	auth := fixedAuthenticator(t, "TOKEN", "TS")
	params, err := auth.BuildSignedParameters(scenarioBaseURL, http.MethodGet, "TS", nil)
	if err != nil {
		t.Fatalf("build signed parameters: %v", err)
	}
	if got, _ := params.Get("oauth_token"); got != "TOKEN" {
		t.Fatalf("expected oauth_token to be seeded, got %q", got)
	}
}

func TestBuildSignedParameters_NonGETDropsExtraKeys(t *testing.T) {
	auth := fixedAuthenticator(t, "", "")
	params, err := auth.BuildSignedParameters(
		scenarioBaseURL+"?native=1",
		http.MethodPost, "", map[string]string{
			"body_field": "value",
		})
	if err != nil {
		t.Fatalf("build signed parameters: %v", err)
	}
	if _, ok := params.Get("body_field"); ok {
		t.Fatalf("expected extra parameter to be removed for POST")
	}
	if _, ok := params.Get("native"); !ok {
		t.Fatalf("expected url-native parameter to remain")
	}
	if _, ok := params.Get("oauth_signature"); !ok {
		t.Fatalf("expected signature to remain")
	}
}

func TestSignedURL_SerializesOntoBaseURL(t *testing.T) {
	auth := fixedAuthenticator(t, "", "")
	signed, err := auth.SignedURL(scenarioBaseURL+"?x=1", http.MethodGet, "", nil)
	if err != nil {
		t.Fatalf("signed url: %v", err)
	}
	if !strings.HasPrefix(signed, scenarioBaseURL+"?") {
		t.Fatalf("expected signed url to start with the base url, got %q", signed)
	}
	parsed, err := url.Parse(signed)
	if err != nil {
		t.Fatalf("parse signed url: %v", err)
	}
	query := parsed.Query()
	if query.Get("x") != "1" {
		t.Fatalf("expected native query parameter to survive, got %q", query.Get("x"))
	}
	if query.Get("oauth_signature") == "" {
		t.Fatalf("expected signed url to carry a signature")
	}
}
