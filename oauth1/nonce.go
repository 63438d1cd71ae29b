package oauth1

import (
	"strings"

	"github.com/google/uuid"
)

const nonceLength = 11

// newNonce derives an 11 character uppercase alphanumeric nonce from a
// random UUID. Every request attempt, including retries, gets a fresh one.
func newNonce() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if len(raw) > nonceLength {
		raw = raw[:nonceLength]
	}
	return raw
}
