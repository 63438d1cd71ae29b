// Package oauth1 implements the OAuth 1.0a signing core used against the
// Etsy marketplace API: RFC 5849 parameter normalization, HMAC-SHA1
// signature computation, and the two-leg credential exchange (temporary
// credentials, user authorization, permanent access token) with retry and
// exponential backoff on transient failures.
package oauth1
