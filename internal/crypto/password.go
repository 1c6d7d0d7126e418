// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Voronin

package crypto

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"

	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/workers"
)

const (
	// scryptN is the default CPU/memory cost. 2^15 keeps a single
	// derivation around 32 MiB, which together with the slot pool gives a
	// predictable worst-case memory footprint.
	scryptN = 1 << 15

	scryptR = 8
	scryptP = 1

	// saltLength is the per-credential random salt size in bytes.
	saltLength = 8

	// keyLength is the derived key size in bytes.
	keyLength = 32
)

// scryptHasher is the concrete implementation of [PasswordHasher].
// It derives keys with scrypt, a deliberately slow, memory-hard KDF, so a
// leaked credential store still resists GPU/ASIC brute force.
type scryptHasher struct {
	// n is the scrypt cost parameter. Kept in the struct so tests and
	// constrained deployments can lower it without touching the default.
	n int

	// limiter caps the number of derivations running at once.
	limiter workers.Limiter

	logger *logger.Logger
}

// NewScryptHasher constructs a [PasswordHasher] with the given cost and
// concurrency limiter. A cost of zero or less selects the default.
//
// The returned hasher is safe for concurrent use; all state is read-only
// after construction.
func NewScryptHasher(cost int, limiter workers.Limiter, logger *logger.Logger) PasswordHasher {
	if cost <= 0 {
		cost = scryptN
	}
	return &scryptHasher{
		n:       cost,
		limiter: limiter,
		logger:  logger,
	}
}

// Hash implements [PasswordHasher]. It reads a fresh salt from the OS
// CSPRNG, derives a fixed-length key from (password, salt) and returns the
// credential as hex(salt) + "." + hex(key).
func (s *scryptHasher) Hash(ctx context.Context, password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("reading random salt: %w", err)
	}

	key, err := s.deriveKey(ctx, password, salt)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(salt) + "." + hex.EncodeToString(key), nil
}

// Verify implements [PasswordHasher]. Credentials that do not parse fail
// closed: the caller gets false plus [ErrMalformedCredential] and must not
// treat the result as a match.
func (s *scryptHasher) Verify(ctx context.Context, password string, credential string) (bool, error) {
	saltHex, keyHex, found := strings.Cut(credential, ".")
	if !found {
		return false, fmt.Errorf("%w: missing separator", ErrMalformedCredential)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("%w: salt is not hex", ErrMalformedCredential)
	}

	storedKey, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, fmt.Errorf("%w: key is not hex", ErrMalformedCredential)
	}

	key, err := s.deriveKey(ctx, password, salt)
	if err != nil {
		return false, err
	}

	// ConstantTimeCompare rejects length mismatches up front; beyond that
	// unavoidable check its timing does not depend on the byte values.
	return subtle.ConstantTimeCompare(key, storedKey) == 1, nil
}

// deriveKey runs scrypt under a pool slot. Once the derivation starts it
// runs to completion; ctx only bounds the wait for a free slot.
func (s *scryptHasher) deriveKey(ctx context.Context, password string, salt []byte) ([]byte, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("waiting for derivation slot: %w", err)
	}
	defer s.limiter.Release()

	key, err := scrypt.Key([]byte(password), salt, s.n, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivationFailed, err)
	}

	return key, nil
}
