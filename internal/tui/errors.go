// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/service"
)

// humanizeError turns client errors into a line fit for the error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var cooldown *service.CooldownError
	if errors.As(err, &cooldown) {
		return fmt.Sprintf("Too many failed attempts. Try again in %s.", cooldown.RetryAfter(time.Now()))
	}

	switch {
	case errors.Is(err, service.ErrVaultLocked), errors.Is(err, service.ErrSessionExpired):
		return "The vault is locked. Press u to unlock it."
	case errors.Is(err, service.ErrWrongVaultSecret):
		return "Wrong vault password."
	case errors.Is(err, service.ErrVaultNotConfigured):
		return "No vault password is set yet. Press p to set one."
	case errors.Is(err, service.ErrEntryPending):
		return "This entry is still being saved."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The network is down or the server is unreachable."
	}

	return err.Error()
}
