// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldDomain        = "domain"
	FieldAccountName   = "account_name"
	FieldSecret        = "pin_or_password"
	FieldURL           = "url"
	FieldNotes         = "notes"
	FieldVaultPassword = "vault_password"
	FieldEntryID       = "entry_id"
)

// Size limits of entry fields, in bytes.
const (
	MaxDomainLength      = 256
	MaxAccountNameLength = 256
	MaxURLLength         = 2048
	MaxNotesLength       = 10 * 1024
	MaxSecretLength      = 4 * 1024
)

// VaultValidator validates the payloads of the vault API:
// models.EntryInput, models.EntryPatch, models.SetSecretRequest,
// models.UnlockRequest and models.ViewRequest. Values and pointers are both
// accepted.
type VaultValidator struct {
	minSecretLength int
}

// NewVaultValidator returns a [Validator] that requires vault passwords of
// at least minSecretLength characters.
func NewVaultValidator(minSecretLength int) Validator {
	return &VaultValidator{minSecretLength: minSecretLength}
}

// Validate dispatches on the dynamic type of obj. Every error it returns
// matches [ErrValidation].
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EntryInput:
		return v.validateEntryInput(value, fields...)
	case *models.EntryInput:
		return v.validateEntryInput(*value, fields...)
	case models.EntryPatch:
		return v.validateEntryPatch(value, fields...)
	case *models.EntryPatch:
		return v.validateEntryPatch(*value, fields...)
	case models.SetSecretRequest:
		return v.validateVaultPassword(value.Secret)
	case *models.SetSecretRequest:
		return v.validateVaultPassword(value.Secret)
	case models.UnlockRequest:
		return validatePresent(value.Secret, ErrEmptySecret)
	case *models.UnlockRequest:
		return validatePresent(value.Secret, ErrEmptySecret)
	case models.ViewRequest:
		return v.validateViewRequest(value)
	case *models.ViewRequest:
		return v.validateViewRequest(*value)
	default:
		return invalid(ErrUnsupportedType)
	}
}

func (v *VaultValidator) validateEntryInput(input models.EntryInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDomain, FieldAccountName, FieldSecret, FieldURL, FieldNotes}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldDomain:
			err = validateRequired(input.Domain, MaxDomainLength, ErrEmptyDomain, ErrDomainTooLong)
		case FieldAccountName:
			err = validateRequired(input.AccountName, MaxAccountNameLength, ErrEmptyAccountName, ErrAccountNameTooLong)
		case FieldSecret:
			err = validateEntrySecret(input.Secret)
		case FieldURL:
			err = validateURL(input.URL)
		case FieldNotes:
			err = validateMax(input.Notes, MaxNotesLength, ErrNotesTooLong)
		default:
			err = invalid(ErrUnknownField)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateEntryPatch checks only the supplied fields. An empty patch is
// valid.
func (v *VaultValidator) validateEntryPatch(patch models.EntryPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDomain, FieldAccountName, FieldSecret, FieldURL, FieldNotes}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldDomain:
			if patch.Domain != nil {
				err = validateRequired(*patch.Domain, MaxDomainLength, ErrEmptyDomain, ErrDomainTooLong)
			}
		case FieldAccountName:
			if patch.AccountName != nil {
				err = validateRequired(*patch.AccountName, MaxAccountNameLength, ErrEmptyAccountName, ErrAccountNameTooLong)
			}
		case FieldSecret:
			if patch.Secret != nil {
				err = validateEntrySecret(*patch.Secret)
			}
		case FieldURL:
			if patch.URL != nil {
				err = validateURL(*patch.URL)
			}
		case FieldNotes:
			if patch.Notes != nil {
				err = validateMax(*patch.Notes, MaxNotesLength, ErrNotesTooLong)
			}
		default:
			err = invalid(ErrUnknownField)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *VaultValidator) validateVaultPassword(secret string) error {
	if secret == "" {
		return invalid(ErrEmptySecret)
	}
	if utf8.RuneCountInString(secret) < v.minSecretLength {
		return invalid(ErrSecretTooShort)
	}
	return validateMax(secret, MaxSecretLength, ErrSecretTooLong)
}

func (v *VaultValidator) validateViewRequest(req models.ViewRequest) error {
	if strings.TrimSpace(req.EntryID) == "" {
		return invalid(ErrEmptyEntryID)
	}
	return validatePresent(req.Secret, ErrEmptySecret)
}

// validateEntrySecret also rejects the mask token, which could not be told
// apart from a masked value once stored.
func validateEntrySecret(secret string) error {
	if secret == models.MaskToken {
		return invalid(ErrSecretIsMask)
	}
	return validateRequired(secret, MaxSecretLength, ErrEmptySecret, ErrSecretTooLong)
}

func validateRequired(value string, maxLen int, emptyErr, tooLongErr error) error {
	if strings.TrimSpace(value) == "" {
		return invalid(emptyErr)
	}
	return validateMax(value, maxLen, tooLongErr)
}

func validatePresent(value string, emptyErr error) error {
	if value == "" {
		return invalid(emptyErr)
	}
	return nil
}

func validateMax(value string, maxLen int, tooLongErr error) error {
	if len(value) > maxLen {
		return invalid(tooLongErr)
	}
	return nil
}

func validateURL(raw string) error {
	if err := validateMax(raw, MaxURLLength, ErrURLTooLong); err != nil {
		return err
	}
	if _, err := NormalizeURL(raw); err != nil {
		return err
	}
	return nil
}

// schemePrefix matches a leading "scheme://". A "://" later in the path or
// query does not count.
var schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// NormalizeURL trims raw and prefixes "https://" when it carries no scheme.
// Only http and https links are accepted. An empty url stays empty.
//
//	example.com          → https://example.com
//	http://example.com   → http://example.com
//	ftp://example.com    → ErrInvalidURL
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	if !schemePrefix.MatchString(raw) {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", invalid(ErrInvalidURL)
	}
	scheme := strings.ToLower(u.Scheme)
	if (scheme != "http" && scheme != "https") || u.Host == "" {
		return "", invalid(ErrInvalidURL)
	}

	return raw, nil
}
