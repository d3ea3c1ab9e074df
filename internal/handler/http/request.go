package http

import (
	"encoding/json"
	"net/http"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/app"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
)

// maxBodyBytes bounds every JSON request body. The largest legal payload is
// an entry with full notes and secret.
const maxBodyBytes = 64 << 10

// decodeJSON reads the body of r into dst. On failure it answers 400 itself
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", funcName).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}

// requestUser returns the account id the auth middleware stored. On failure
// it answers 401 itself and returns false.
func requestUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
