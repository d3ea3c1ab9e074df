// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// MaskToken is the fixed placeholder written in place of a secret in every
// response that is not a disclosure.
const MaskToken = "••••••••"

// SecretValue is a tagged variant holding either nothing (Masked) or the
// plaintext of an entry secret (Revealed).
//
// The zero value is Masked. A Masked value has no storage for plaintext, so a
// view built from [MaskedView] can never serialize a real secret.
type SecretValue struct {
	revealed bool
	value    string
}

// MaskedSecret returns the Masked variant.
func MaskedSecret() SecretValue {
	return SecretValue{}
}

// RevealedSecret returns the Revealed variant carrying value.
func RevealedSecret(value string) SecretValue {
	return SecretValue{revealed: true, value: value}
}

// IsMasked reports whether s is the Masked variant.
func (s SecretValue) IsMasked() bool {
	return !s.revealed
}

// Value returns the plaintext and true for a Revealed value, or "" and false
// for a Masked one.
func (s SecretValue) Value() (string, bool) {
	return s.value, s.revealed
}

// Display returns the plaintext of a Revealed value or [MaskToken].
func (s SecretValue) Display() string {
	if !s.revealed {
		return MaskToken
	}
	return s.value
}

// String always returns [MaskToken] so that formatting a SecretValue with %v
// in logs never prints plaintext.
func (s SecretValue) String() string {
	return MaskToken
}

// MarshalJSON encodes Masked as [MaskToken] and Revealed as its plaintext.
func (s SecretValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Display())
}

// UnmarshalJSON decodes null and [MaskToken] as Masked; any other string
// becomes Revealed.
func (s *SecretValue) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*s = MaskedSecret()
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	if raw == MaskToken {
		*s = MaskedSecret()
		return nil
	}

	*s = RevealedSecret(raw)
	return nil
}
