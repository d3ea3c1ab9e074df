package crypto

import "github.com/Chandhru-27/Primer-The-Digital-Handbook/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// VaultKeyChain holds every cryptographic primitive the vault relies on.
// It knows nothing about storage, HTTP or accounts.
//
// Envelope scheme:
//
//	Salt, VaultKey = GenerateSalt() + GenerateVaultKey()     (step 1)
//	KEK            = DeriveKEK(secret, salt, params)          (step 2)
//	WrappedKey     = WrapKey(identity, KEK)                   (step 3)
//	Verifier       = Verifier(KEK)                            (step 4)
//	Ciphered       = SealSecret(entryID, value, recipient)    (per entry)
type VaultKeyChain interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret.
	GenerateSalt() ([]byte, error)

	// DeriveKEK derives the key-encryption key from the vault secret with
	// Argon2id. The KEK only ever lives in server memory for one call.
	DeriveKEK(secret string, salt []byte, params models.KDFParams) []byte

	// Verifier computes the one-way value stored to check a KEK.
	Verifier(kek []byte) []byte

	// VerifyKEK compares Verifier(kek) with the stored verifier in constant
	// time.
	VerifyKEK(kek, verifier []byte) bool

	// GenerateVaultKey creates a fresh age X25519 key pair and returns the
	// private identity (AGE-SECRET-KEY-1...) and the public recipient (age1...).
	GenerateVaultKey() (identity []byte, recipient string, err error)

	// WrapKey seals the vault identity with the KEK using AES-256-GCM.
	// Result layout: nonce || ciphertext.
	WrapKey(identity, kek []byte) ([]byte, error)

	// UnwrapKey reverses WrapKey. A wrong KEK yields ErrDecryptionFailed.
	UnwrapKey(wrapped, kek []byte) ([]byte, error)

	// SealSecret encrypts an entry secret to the vault recipient. The entry
	// id is sealed next to the value and checked by OpenSecret.
	SealSecret(entryID, secret, recipient string) (string, error)

	// OpenSecret decrypts a value produced by SealSecret.
	OpenSecret(entryID, ciphered string, identity []byte) (string, error)
}
