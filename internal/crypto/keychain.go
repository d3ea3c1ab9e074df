// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"filippo.io/age"
	"golang.org/x/crypto/argon2"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// verifierLabel domain-separates the verifier from the KEK itself.
const verifierLabel = "vault-verifier"

// DefaultKDFParams are the Argon2id parameters used for new vaults when the
// configuration does not override them.
var DefaultKDFParams = models.KDFParams{
	Time:      3,
	MemoryKiB: 64 * 1024, // 64 MiB
	Threads:   4,
	KeyLen:    32, // AES-256
}

// sealedSecret is the plaintext layout encrypted to the vault recipient.
type sealedSecret struct {
	EntryID string `json:"entry_id"`
	Secret  string `json:"secret"`
}

// keyChain is the private implementation of [VaultKeyChain].
type keyChain struct{}

// NewVaultKeyChain constructs a [VaultKeyChain].
func NewVaultKeyChain() VaultKeyChain {
	return &keyChain{}
}

// GenerateSalt implements [VaultKeyChain].
func (k *keyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKEK implements [VaultKeyChain]. Zero-valued params fall back to
// [DefaultKDFParams] field by field.
func (k *keyChain) DeriveKEK(secret string, salt []byte, params models.KDFParams) []byte {
	params = withDefaults(params)
	return argon2.IDKey([]byte(secret), salt, params.Time, params.MemoryKiB, params.Threads, params.KeyLen)
}

// Verifier implements [VaultKeyChain]: SHA-256(KEK ‖ label).
func (k *keyChain) Verifier(kek []byte) []byte {
	h := sha256.New()
	h.Write(kek)
	h.Write([]byte(verifierLabel))
	return h.Sum(nil)
}

// VerifyKEK implements [VaultKeyChain].
func (k *keyChain) VerifyKEK(kek, verifier []byte) bool {
	return subtle.ConstantTimeCompare(k.Verifier(kek), verifier) == 1
}

// GenerateVaultKey implements [VaultKeyChain].
func (k *keyChain) GenerateVaultKey() ([]byte, string, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, "", fmt.Errorf("generating age keypair: %w", err)
	}
	return []byte(identity.String()), identity.Recipient().String(), nil
}

// WrapKey implements [VaultKeyChain].
func (k *keyChain) WrapKey(identity, kek []byte) ([]byte, error) {
	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	wrapped := gcm.Seal(nil, nonce, identity, nil)
	return append(nonce, wrapped...), nil
}

// UnwrapKey implements [VaultKeyChain]. An authentication-tag mismatch almost
// always means the KEK came from a wrong secret.
func (k *keyChain) UnwrapKey(wrapped, kek []byte) ([]byte, error) {
	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(wrapped) < nonceSize {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := wrapped[:nonceSize], wrapped[nonceSize:]

	identity, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return identity, nil
}

// SealSecret implements [VaultKeyChain]. The output is standard base64 of the
// binary age file.
func (k *keyChain) SealSecret(entryID, secret, recipient string) (string, error) {
	r, err := age.ParseX25519Recipient(recipient)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRecipient, err)
	}

	plaintext, err := json.Marshal(sealedSecret{EntryID: entryID, Secret: secret})
	if err != nil {
		return "", fmt.Errorf("marshal secret: %w", err)
	}
	defer Wipe(plaintext)

	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, r)
	if err != nil {
		return "", fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err = w.Write(plaintext); err != nil {
		return "", fmt.Errorf("writing plaintext to age encryptor: %w", err)
	}
	if err = w.Close(); err != nil {
		return "", fmt.Errorf("finalizing age encryption: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// OpenSecret implements [VaultKeyChain].
func (k *keyChain) OpenSecret(entryID, ciphered string, identity []byte) (string, error) {
	id, err := age.ParseX25519Identity(string(identity))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidIdentity, err)
	}

	raw, err := base64.StdEncoding.DecodeString(ciphered)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	r, err := age.Decrypt(bytes.NewReader(raw), id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	defer Wipe(plaintext)

	var sealed sealedSecret
	if err = json.Unmarshal(plaintext, &sealed); err != nil {
		return "", fmt.Errorf("unmarshal secret: %w", err)
	}
	if sealed.EntryID != entryID {
		return "", ErrEntryMismatch
	}

	return sealed.Secret, nil
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func withDefaults(p models.KDFParams) models.KDFParams {
	if p.Time == 0 {
		p.Time = DefaultKDFParams.Time
	}
	if p.MemoryKiB == 0 {
		p.MemoryKiB = DefaultKDFParams.MemoryKiB
	}
	if p.Threads == 0 {
		p.Threads = DefaultKDFParams.Threads
	}
	if p.KeyLen == 0 {
		p.KeyLen = DefaultKDFParams.KeyLen
	}
	return p
}
