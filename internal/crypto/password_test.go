package crypto

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/workers"
)

// testCost keeps scrypt cheap enough for the test suite while still going
// through the real derivation path.
const testCost = 1 << 4

func newTestHasher() PasswordHasher {
	return NewScryptHasher(testCost, workers.NewPool(2), logger.Nop())
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	h := newTestHasher()
	ctx := context.Background()

	c1, err := h.Hash(ctx, "Passw0rd!")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	c2, err := h.Hash(ctx, "Passw0rd!")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if c1 == c2 {
		t.Fatal("expected two hashes of the same password to differ")
	}

	for _, c := range []string{c1, c2} {
		ok, err := h.Verify(ctx, "Passw0rd!", c)
		if err != nil {
			t.Fatalf("Verify error: %v", err)
		}
		if !ok {
			t.Fatalf("expected credential %q to verify", c)
		}
	}
}

func TestHash_Format(t *testing.T) {
	h := newTestHasher()

	credential, err := h.Hash(context.Background(), "secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	saltHex, keyHex, found := strings.Cut(credential, ".")
	if !found {
		t.Fatalf("credential %q has no separator", credential)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		t.Fatalf("salt segment is not hex: %v", err)
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		t.Fatalf("key segment is not hex: %v", err)
	}

	if len(salt) != saltLength {
		t.Errorf("salt length = %d, want %d", len(salt), saltLength)
	}
	if len(key) != keyLength {
		t.Errorf("key length = %d, want %d", len(key), keyLength)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	h := newTestHasher()
	ctx := context.Background()

	credential, err := h.Hash(ctx, "right password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify(ctx, "wrong password", credential)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestVerify_MalformedCredential(t *testing.T) {
	h := newTestHasher()
	ctx := context.Background()

	tests := []struct {
		name       string
		credential string
	}{
		{"empty", ""},
		{"no separator", "deadbeefdeadbeef"},
		{"non-hex salt", "zzzz.deadbeef"},
		{"non-hex key", "deadbeef.not-hex-at-all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify(ctx, "whatever", tt.credential)
			if ok {
				t.Fatal("malformed credential must never verify")
			}
			if !errors.Is(err, ErrMalformedCredential) {
				t.Fatalf("expected ErrMalformedCredential, got %v", err)
			}
		})
	}
}

func TestVerify_TruncatedStoredKeyFailsClosed(t *testing.T) {
	h := newTestHasher()
	ctx := context.Background()

	credential, err := h.Hash(ctx, "secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	// Valid hex, wrong length: ConstantTimeCompare must reject it.
	truncated := credential[:len(credential)-2]

	ok, err := h.Verify(ctx, "secret", truncated)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatal("truncated stored key must not verify")
	}
}

func TestHash_CancelledContextWhileQueued(t *testing.T) {
	pool := workers.NewPool(1)
	h := NewScryptHasher(testCost, pool, logger.Nop())

	// Occupy the only slot so Hash has to wait.
	if err := pool.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire error: %v", err)
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := h.Hash(ctx, "secret"); err == nil {
		t.Fatal("expected error when waiting with a cancelled context")
	}
}
