package crypto

import "errors"

var (
	// ErrMalformedCredential is returned by Verify when the stored
	// credential cannot be parsed (missing separator or non-hex segments).
	// It signals a data-integrity problem, never a password mismatch.
	ErrMalformedCredential = errors.New("malformed stored credential")

	// ErrKeyDerivationFailed is returned when the KDF itself fails, e.g.
	// on invalid cost parameters or resource exhaustion.
	ErrKeyDerivationFailed = errors.New("key derivation failed")
)
