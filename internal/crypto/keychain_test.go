package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// fastKDF keeps Argon2id cheap in tests.
var fastKDF = models.KDFParams{Time: 1, MemoryKiB: 8 * 1024, Threads: 1, KeyLen: 32}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	kc := NewVaultKeyChain()

	s1, err := kc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := kc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 || len(s2) != 16 {
		t.Fatalf("salt length = %d/%d, want 16", len(s1), len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKEK_DeterministicForSameInputs(t *testing.T) {
	kc := NewVaultKeyChain()
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := kc.DeriveKEK("1234", salt, fastKDF)
	k2 := kc.DeriveKEK("1234", salt, fastKDF)

	if len(k1) != 32 {
		t.Fatalf("KEK length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected KEKs to match for same secret+salt")
	}
}

func TestDeriveKEK_DifferentSaltOrSecret(t *testing.T) {
	kc := NewVaultKeyChain()
	salt1 := bytes.Repeat([]byte{0x01}, 16)
	salt2 := bytes.Repeat([]byte{0x02}, 16)

	base := kc.DeriveKEK("1234", salt1, fastKDF)
	if bytes.Equal(base, kc.DeriveKEK("1234", salt2, fastKDF)) {
		t.Fatalf("expected different KEKs for different salts")
	}
	if bytes.Equal(base, kc.DeriveKEK("4321", salt1, fastKDF)) {
		t.Fatalf("expected different KEKs for different secrets")
	}
}

func TestDeriveKEK_ZeroParamsUseDefaultKeyLen(t *testing.T) {
	kc := NewVaultKeyChain()
	kek := kc.DeriveKEK("1234", bytes.Repeat([]byte{0x01}, 16), models.KDFParams{Time: 1, MemoryKiB: 8 * 1024, Threads: 1})
	if len(kek) != int(DefaultKDFParams.KeyLen) {
		t.Fatalf("KEK length = %d, want %d", len(kek), DefaultKDFParams.KeyLen)
	}
}

func TestVerifier_ConstantTimeMatch(t *testing.T) {
	kc := NewVaultKeyChain()
	kek := bytes.Repeat([]byte{0x11}, 32)
	other := bytes.Repeat([]byte{0x12}, 32)

	v := kc.Verifier(kek)
	if bytes.Equal(v, kek) {
		t.Fatalf("verifier must not equal the KEK")
	}
	if !kc.VerifyKEK(kek, v) {
		t.Fatalf("expected KEK to verify")
	}
	if kc.VerifyKEK(other, v) {
		t.Fatalf("expected other KEK to be rejected")
	}
}

func TestWrapKey_RoundTrip(t *testing.T) {
	kc := NewVaultKeyChain()
	identity, recipient, err := kc.GenerateVaultKey()
	if err != nil {
		t.Fatalf("GenerateVaultKey error: %v", err)
	}
	if !strings.HasPrefix(string(identity), "AGE-SECRET-KEY-1") || !strings.HasPrefix(recipient, "age1") {
		t.Fatalf("unexpected key format: %q / %q", identity[:16], recipient)
	}

	kek := bytes.Repeat([]byte{0x2A}, 32)
	wrapped, err := kc.WrapKey(identity, kek)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}
	if bytes.Contains(wrapped, identity) {
		t.Fatalf("wrapped key contains the plaintext identity")
	}

	got, err := kc.UnwrapKey(wrapped, kek)
	if err != nil {
		t.Fatalf("UnwrapKey error: %v", err)
	}
	if !bytes.Equal(got, identity) {
		t.Fatalf("unwrapped identity mismatch")
	}
}

func TestUnwrapKey_WrongKEK(t *testing.T) {
	kc := NewVaultKeyChain()
	wrapped, err := kc.WrapKey([]byte("identity"), bytes.Repeat([]byte{0x2A}, 32))
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}

	_, err = kc.UnwrapKey(wrapped, bytes.Repeat([]byte{0x2B}, 32))
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("err = %v, want ErrDecryptionFailed", err)
	}

	_, err = kc.UnwrapKey([]byte{1, 2, 3}, bytes.Repeat([]byte{0x2A}, 32))
	if !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("err = %v, want ErrCiphertextTooShort", err)
	}
}

func TestSealSecret_RoundTripAndBinding(t *testing.T) {
	kc := NewVaultKeyChain()
	identity, recipient, err := kc.GenerateVaultKey()
	if err != nil {
		t.Fatalf("GenerateVaultKey error: %v", err)
	}

	ciphered, err := kc.SealSecret("entry-1", "p@ss1", recipient)
	if err != nil {
		t.Fatalf("SealSecret error: %v", err)
	}
	if strings.Contains(ciphered, "p@ss1") {
		t.Fatalf("ciphered value leaks plaintext")
	}

	got, err := kc.OpenSecret("entry-1", ciphered, identity)
	if err != nil {
		t.Fatalf("OpenSecret error: %v", err)
	}
	if got != "p@ss1" {
		t.Fatalf("OpenSecret = %q, want p@ss1", got)
	}

	if _, err = kc.OpenSecret("entry-2", ciphered, identity); !errors.Is(err, ErrEntryMismatch) {
		t.Fatalf("err = %v, want ErrEntryMismatch", err)
	}
}

func TestOpenSecret_WrongIdentity(t *testing.T) {
	kc := NewVaultKeyChain()
	_, recipient, _ := kc.GenerateVaultKey()
	otherIdentity, _, _ := kc.GenerateVaultKey()

	ciphered, err := kc.SealSecret("entry-1", "secret", recipient)
	if err != nil {
		t.Fatalf("SealSecret error: %v", err)
	}

	if _, err = kc.OpenSecret("entry-1", ciphered, otherIdentity); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("err = %v, want ErrDecryptionFailed", err)
	}
}

func TestSealSecret_InvalidRecipient(t *testing.T) {
	kc := NewVaultKeyChain()
	if _, err := kc.SealSecret("entry-1", "secret", "not-a-key"); !errors.Is(err, ErrInvalidRecipient) {
		t.Fatalf("err = %v, want ErrInvalidRecipient", err)
	}
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	Wipe(b)
	if !bytes.Equal(b, make([]byte, 6)) {
		t.Fatalf("Wipe left data: %v", b)
	}
}
