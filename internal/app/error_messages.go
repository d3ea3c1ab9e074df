// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault server handlers, middleware and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// the "error" field of HTTP error bodies. The client maps them back to
// sentinel errors, so server and client must agree on the exact wording.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires an account id
	// but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does
	// not match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgVersionIsNotSpecified is returned when the server was started
	// without a version.
	MsgVersionIsNotSpecified = "app version is not specified"
)

// Vault messages. Each one is also the text of the matching service
// sentinel error.
const (
	MsgWrongVaultPassword = "wrong vault password"
	MsgVaultLocked        = "vault is locked"
	MsgSessionExpired     = "vault session expired"
	MsgProofRequired      = "current vault password or an unlocked session is required"
	MsgVaultNotConfigured = "vault password is not set"
	MsgTooManyAttempts    = "too many failed attempts"
	MsgEntryNotFound      = "vault entry was not found"
)
