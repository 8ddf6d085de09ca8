package access

import "testing"

func TestHashPasswordIsDeterministicHex(t *testing.T) {
	first := HashPassword("secret")
	second := HashPassword("secret")

	if first != second {
		t.Fatalf("expected stable digest, got %s and %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
	if first == HashPassword("other") {
		t.Fatalf("different passwords produced the same digest")
	}
}

func TestVerifyOpenResourceAcceptsAnything(t *testing.T) {
	if err := Verify("anything", nil); err != nil {
		t.Fatalf("nil digest should be open, got %v", err)
	}

	empty := ""
	if err := Verify("", &empty); err != nil {
		t.Fatalf("empty digest should be open, got %v", err)
	}
}

func TestVerifyMatchesStoredDigest(t *testing.T) {
	digest := HashPassword("secret")

	if err := Verify("secret", &digest); err != nil {
		t.Fatalf("expected matching password to verify, got %v", err)
	}
	if err := Verify("wrong", &digest); err != ErrInvalidPassword {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}
