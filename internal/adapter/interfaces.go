// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the terminal client to talk
// to the vault server.
//
// The primary abstraction is [VaultAdapter], which decouples the client cache
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPVaultAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_adapter_mock.go -package=mock

// VaultAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type VaultAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the bearer token, or "" if none has been set.
	Token() string

	// SetSessionToken stores the vault session token sent in the
	// X-Vault-Session header. An empty token clears it.
	SetSessionToken(token string)

	// SessionToken returns the current vault session token.
	SessionToken() string

	// List fetches every entry of the account, masked.
	List(ctx context.Context) ([]models.EntryView, error)

	// Add creates an entry and returns the server copy.
	Add(ctx context.Context, input models.EntryInput) (models.EntryView, error)

	// Update applies patch to entry id and returns the server copy.
	Update(ctx context.Context, id string, patch models.EntryPatch) (models.EntryView, error)

	// Delete removes entry id and reports whether the server removed
	// anything.
	Delete(ctx context.Context, id string) (bool, error)

	// Reveal discloses one entry with the stored session token.
	Reveal(ctx context.Context, id string) (models.Disclosure, error)

	// RevealWithSecret discloses one entry by re-submitting the vault secret.
	RevealWithSecret(ctx context.Context, id, secret string) (models.Disclosure, error)

	// Unlock opens a disclosure session and stores its token.
	Unlock(ctx context.Context, secret string) (models.DisclosureSession, error)

	// Lock closes the stored session and clears the token even when the
	// call fails.
	Lock(ctx context.Context) error

	// Status reports whether the vault is configured, unlocked or cooling
	// down.
	Status(ctx context.Context) (models.VaultStatus, error)

	// SetSecret creates or rotates the vault secret.
	SetSecret(ctx context.Context, req models.SetSecretRequest) (models.SetSecretResponse, error)

	// VerifyPin checks a vault secret without opening a session.
	VerifyPin(ctx context.Context, secret string) (bool, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
