package crypto

import (
	"bytes"
	"testing"
)

// cheap keeps tests fast; production code uses Default.
var cheap = Hasher{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestRandBytes_LengthAndUniqueness(t *testing.T) {
	t.Parallel()

	a, err := RandBytes(32)
	if err != nil {
		t.Fatalf("RandBytes: %v", err)
	}
	b, err := RandBytes(32)
	if err != nil {
		t.Fatalf("RandBytes(2): %v", err)
	}
	if len(a) != 32 || bytes.Equal(a, b) {
		t.Fatalf("len=%d, equal=%v", len(a), bytes.Equal(a, b))
	}
}

func TestDerive_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h1, s1, err := cheap.Derive("p@ssw0rd")
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	h2, s2, err := cheap.Derive("p@ssw0rd")
	if err != nil {
		t.Fatalf("Derive(2): %v", err)
	}
	if len(s1) != cheap.SaltLen || len(h1) != int(cheap.KeyLen) {
		t.Fatalf("salt=%d hash=%d", len(s1), len(h1))
	}
	if bytes.Equal(s1, s2) || bytes.Equal(h1, h2) {
		t.Fatalf("two derivations share salt or hash")
	}
}

func TestDerive_EmptyPassword(t *testing.T) {
	t.Parallel()

	if _, _, err := cheap.Derive(""); err != ErrEmptyPassword {
		t.Fatalf("want ErrEmptyPassword, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	hash, salt, err := cheap.Derive("correct horse battery staple")
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if !cheap.Verify("correct horse battery staple", salt, hash) {
		t.Fatalf("expected true for correct password")
	}
	if cheap.Verify("wrong", salt, hash) {
		t.Fatalf("expected false for wrong password")
	}
	if cheap.Verify("correct horse battery staple", []byte("other-salt-bytes"), hash) {
		t.Fatalf("expected false for wrong salt")
	}
	if cheap.Verify("", salt, nil) {
		t.Fatalf("expected false for missing hash")
	}
}
