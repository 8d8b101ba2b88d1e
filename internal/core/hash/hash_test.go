package hash

import (
	"errors"
	"testing"

	"github.com/playgroundhq/playground-api/internal/core/domain"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := New()

	out, err := h.Hash("sup3rsecret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if out == "sup3rsecret" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Verify("sup3rsecret", out) {
		t.Fatalf("Verify rejected the original plaintext")
	}
	if h.Verify("sup3rsecreT", out) {
		t.Fatalf("Verify accepted a different plaintext")
	}
}

func TestHasher_SaltedHashesStillVerify(t *testing.T) {
	h := New()

	first, err := h.Hash("sup3rsecret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("sup3rsecret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected salted hashes to differ")
	}
	if !h.Verify("sup3rsecret", first) || !h.Verify("sup3rsecret", second) {
		t.Fatalf("both hashes must verify the same plaintext")
	}
}

func TestHasher_EmptyInput(t *testing.T) {
	h := New()

	if _, err := h.Hash(""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestHasher_VerifyGarbageHash(t *testing.T) {
	h := New()

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("expected false for malformed hash")
	}
}
