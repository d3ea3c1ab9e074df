package crypto

import "errors"

var (
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrDecryptionFailed   = errors.New("decryption failed")
	ErrInvalidRecipient   = errors.New("invalid vault recipient")
	ErrInvalidIdentity    = errors.New("invalid vault identity")
	ErrEntryMismatch      = errors.New("ciphered secret belongs to another entry")
)
