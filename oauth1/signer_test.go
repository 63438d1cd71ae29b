package oauth1

import "testing"

const (
	scenarioBaseURL    = "https://api.example.com/oauth/request_token"
	scenarioBaseString = "GET&https%3A%2F%2Fapi.example.com%2Foauth%2Frequest_token&" +
		"a%3D1%26b%3D2%26oauth_consumer_key%3DCK%26oauth_nonce%3DABCDEFGHIJK%26" +
		"oauth_signature_method%3DHMAC-SHA1%26oauth_timestamp%3D1000000000%26oauth_version%3D1.0"
	scenarioSignature = "AB1pvdzLVBkDF33XEgQIfrwo3mc="
)

func scenarioParameters() *RequestParameters {
	params := NewRequestParameters()
	params.Set("oauth_consumer_key", "CK")
	params.Set("oauth_nonce", "ABCDEFGHIJK")
	params.Set("oauth_signature_method", "HMAC-SHA1")
	params.Set("oauth_timestamp", "1000000000")
	params.Set("oauth_version", "1.0")
	params.Set("a", "1")
	params.Set("b", "2")
	return params
}

func TestSignatureBaseString(t *testing.T) {
	if got := SignatureBaseString(scenarioBaseURL, "get", scenarioParameters()); got != scenarioBaseString {
		t.Fatalf("base string mismatch:\n got %s\nwant %s", got, scenarioBaseString)
	}
}

func TestSigner_SignMatchesKnownDigest(t *testing.T) {
	got := Signer{}.Sign(scenarioBaseURL, "GET", "CS", "", scenarioParameters())
	if got != scenarioSignature {
		t.Fatalf("signature mismatch: got %q, want %q", got, scenarioSignature)
	}
}

func TestSigner_SignWithTokenSecret(t *testing.T) {
	got := Signer{}.Sign(scenarioBaseURL, "GET", "CS", "TS", scenarioParameters())
	if got != "Ne78m8/zcuYZIsLBzWSLa9Fn9ow=" {
		t.Fatalf("signature mismatch: got %q", got)
	}
}

func TestSigner_Deterministic(t *testing.T) {
	first := Signer{}.Sign(scenarioBaseURL, "GET", "CS", "", scenarioParameters())
	second := Signer{}.Sign(scenarioBaseURL, "GET", "CS", "", scenarioParameters())
	if first != second {
		t.Fatalf("identical inputs produced different signatures: %q vs %q", first, second)
	}
}

func TestSigner_InvariantUnderInsertionOrder(t *testing.T) {
	reversed := NewRequestParameters()
	reversed.Set("b", "2")
	reversed.Set("a", "1")
	reversed.Set("oauth_version", "1.0")
	reversed.Set("oauth_timestamp", "1000000000")
	reversed.Set("oauth_signature_method", "HMAC-SHA1")
	reversed.Set("oauth_nonce", "ABCDEFGHIJK")
	reversed.Set("oauth_consumer_key", "CK")

	sorted := Signer{}.Sign(scenarioBaseURL, "GET", "CS", "", scenarioParameters())
	shuffled := Signer{}.Sign(scenarioBaseURL, "GET", "CS", "", reversed)
	if sorted != shuffled {
		t.Fatalf("insertion order changed the signature: %q vs %q", sorted, shuffled)
	}
}
