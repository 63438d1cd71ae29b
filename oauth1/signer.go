package oauth1

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"strings"
)

// Signer computes HMAC-SHA1 signatures over the RFC 5849 signature base
// string. It is a pure function of its inputs; the nonce and timestamp are
// already part of the parameter set by the time Sign runs.
type Signer struct{}

// Sign builds the base string for baseURL (scheme, host, and path only, no
// query) and the given parameter set, then returns the base64-encoded
// HMAC-SHA1 digest.
//
// The signing key concatenates the raw secrets: the deployed Etsy signer
// never percent-encodes its key material, and signatures must match it byte
// for byte even where RFC 5849 reads differently.
func (Signer) Sign(baseURL, method, consumerSecret, tokenSecret string, params *RequestParameters) string {
	base := SignatureBaseString(baseURL, method, params)
	key := consumerSecret + "&" + tokenSecret
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SignatureBaseString is the canonical text that gets signed: the uppercase
// method, the encoded base URL, and the encoded parameter string joined with
// ampersands. The parameter string is percent-encoded a second time as a
// whole so it appears verbatim as a single base string segment.
func SignatureBaseString(baseURL, method string, params *RequestParameters) string {
	return strings.ToUpper(strings.TrimSpace(method)) +
		"&" + percentEncode(baseURL) +
		"&" + percentEncode(parameterString(params))
}

// parameterString joins the sorted, individually encoded pairs with
// ampersands.
func parameterString(params *RequestParameters) string {
	pairs := make([]string, 0, params.Len())
	for _, key := range params.sortedKeys() {
		value, _ := params.Get(key)
		pairs = append(pairs, percentEncode(key)+"="+percentEncode(value))
	}
	return strings.Join(pairs, "&")
}
