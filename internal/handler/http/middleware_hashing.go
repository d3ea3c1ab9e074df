package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/app"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
)

// hashHeader carries the hex HMAC-SHA256 of the request body.
const hashHeader = "HashSHA256"

// withIntegrityCheck verifies the HashSHA256 header against the request body
// when the server has a hash key and the request carries the header. A
// mismatch is answered with 400 before the handler runs.
func (h *Handler) withIntegrityCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get(hashHeader)
		if h.hasher == nil || signature == "" || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withIntegrityCheck").Msg("failed to read request body")
			utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, signature) {
			log.Error().Err(ErrIntegrityCheckFailed).
				Str("func", "*Handler.withIntegrityCheck").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
