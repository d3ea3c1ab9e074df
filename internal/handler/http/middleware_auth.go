package http

import (
	"context"
	"net/http"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/app"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The bearer token of the "Authorization" header is validated by
// [service.AuthService.ParseToken]; on success the account id is stored in
// the request context under [utils.UserIDCtxKey] and added to the
// context-scoped logger. Any failure is answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Msg("token rejected")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		userLog := log.With().Int64("user_id", token.UserID).Logger()
		ctx = userLog.WithContext(ctx)
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withVaultSession moves the X-Vault-Session header into the request
// context. Handlers read it with [utils.GetVaultSessionFromContext].
func (h *Handler) withVaultSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(models.VaultSessionHeader)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().Str("func", "*Handler.withVaultSession").Msg("request carries a vault session")
		next.ServeHTTP(w, r.WithContext(utils.WithVaultSession(r.Context(), token)))
	})
}
