package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/app"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/service"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/store"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:         http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,
	service.ErrNoUserID:              http.StatusBadRequest,

	service.ErrWrongVaultSecret:        http.StatusUnauthorized,
	service.ErrVaultLocked:             http.StatusUnauthorized,
	service.ErrSessionExpired:          http.StatusUnauthorized,
	service.ErrProofRequired:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEntryNotFound: http.StatusNotFound,

	service.ErrVaultNotConfigured: http.StatusConflict,
	service.ErrTooManyAttempts:    http.StatusTooManyRequests,
}

// statusFromError returns the status of the first sentinel err matches and
// that sentinel, or 500 and nil.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeServiceError answers with the status err maps to. A validation error
// carries its own specific message; other known errors carry the message of
// their sentinel so the client can map it back. Unknown errors are logged and
// answered with a generic 500.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, funcName string, err error) {
	status, target := statusFromError(err)

	switch {
	case target == nil:
		log.Err(err).Str("func", funcName).Msg("internal error")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	case status == http.StatusBadRequest:
		log.Debug().Err(err).Str("func", funcName).Msg("request rejected")
		utils.WriteError(w, err.Error(), status)
		return
	}

	var cooldown *service.CooldownError
	if errors.As(err, &cooldown) {
		retryAfter := cooldown.RetryAfter(time.Now())
		w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter/time.Second)))
	}

	log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request refused")
	utils.WriteError(w, target.Error(), status)
}
