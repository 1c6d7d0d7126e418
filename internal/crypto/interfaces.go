package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

import "context"

// PasswordHasher turns plaintext passwords into storage-safe credential
// strings and verifies them. It never persists or logs plaintext.
//
// The stored format is hex(salt) + "." + hex(derivedKey). A fresh random
// salt is generated per Hash call, so hashing the same password twice
// yields two different credentials.
type PasswordHasher interface {
	// Hash derives a credential string from password.
	// Blocks while waiting for a derivation slot; the wait is cancellable
	// through ctx, the derivation itself is not.
	Hash(ctx context.Context, password string) (string, error)

	// Verify re-derives the key from password and the salt embedded in
	// credential and compares it to the stored key in constant time.
	// A malformed credential yields (false, ErrMalformedCredential) and is
	// never treated as a match.
	Verify(ctx context.Context, password string, credential string) (bool, error)
}
