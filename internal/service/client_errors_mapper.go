// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/adapter"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/app"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/store"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/validators"
)

var validationSentinels = []error{
	validators.ErrEmptyDomain,
	validators.ErrEmptyAccountName,
	validators.ErrEmptySecret,
	validators.ErrEmptyEntryID,
	validators.ErrDomainTooLong,
	validators.ErrAccountNameTooLong,
	validators.ErrSecretTooLong,
	validators.ErrSecretIsMask,
	validators.ErrURLTooLong,
	validators.ErrNotesTooLong,
	validators.ErrInvalidURL,
	validators.ErrSecretTooShort,
}

var unauthorizedSentinels = map[string]error{
	app.MsgWrongVaultPassword:      ErrWrongVaultSecret,
	app.MsgVaultLocked:             ErrVaultLocked,
	app.MsgSessionExpired:          ErrSessionExpired,
	app.MsgProofRequired:           ErrProofRequired,
	app.MsgTokenIsExpiredOrInvalid: ErrTokenIsExpiredOrInvalid,
}

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.MessageOf(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		for _, sentinel := range validationSentinels {
			if msg == sentinel.Error() {
				return fmt.Errorf("%w: %w", validators.ErrValidation, sentinel)
			}
		}
		if msg == app.MsgVersionIsNotSpecified {
			return ErrVersionIsNotSpecified
		}
		return fmt.Errorf("%w: %s", validators.ErrValidation, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		if sentinel, ok := unauthorizedSentinels[msg]; ok {
			return sentinel
		}

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrEntryNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgVaultNotConfigured {
			return ErrVaultNotConfigured
		}

	case errors.Is(err, adapter.ErrTooManyRequests):
		if msg == app.MsgTooManyAttempts {
			return &CooldownError{Until: time.Now().Add(retryAfterOf(err))}
		}
	}

	return err
}

// retryAfterOf reads the Retry-After seconds the server sent, one second
// when it is absent.
func retryAfterOf(err error) time.Duration {
	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) {
		if secs, convErr := strconv.Atoi(serverErr.RetryAfter); convErr == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Second
}
