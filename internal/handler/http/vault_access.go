package http

import (
	"context"
	"net/http"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

const (
	msgVaultSecretSet     = "vault password set"
	msgVaultSecretChanged = "vault password changed"
)

func (h *Handler) vaultStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	status, err := h.services.DisclosureService.Status(ctx, userID, utils.GetVaultSessionFromContext(ctx))
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), "*Handler.vaultStatus", err)
		return
	}

	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}

// setVaultSecret creates the vault (201 on POST) or rotates its secret (200).
func (h *Handler) setVaultSecret(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req models.SetSecretRequest
	if !decodeJSON(w, r, "*Handler.setVaultSecret", &req) {
		return
	}

	ctx := r.Context()
	created, err := h.services.SecretGuard.SetSecret(context.WithoutCancel(ctx), userID, req, utils.GetVaultSessionFromContext(ctx))
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), "*Handler.setVaultSecret", err)
		return
	}

	if created {
		status := http.StatusCreated
		if r.Method != http.MethodPost {
			status = http.StatusOK
		}
		_, _ = utils.WriteJSON(w, models.SetSecretResponse{Created: true, Message: msgVaultSecretSet}, status)
		return
	}

	_, _ = utils.WriteJSON(w, models.SetSecretResponse{Message: msgVaultSecretChanged}, http.StatusOK)
}

// verifyPin checks the vault password without opening a session.
func (h *Handler) verifyPin(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req models.UnlockRequest
	if !decodeJSON(w, r, "*Handler.verifyPin", &req) {
		return
	}

	log := logger.FromRequest(r)
	ctx := r.Context()
	if err := h.validator.Validate(ctx, req); err != nil {
		writeServiceError(w, log, "*Handler.verifyPin", err)
		return
	}

	verdict, err := h.services.SecretGuard.VerifySecret(context.WithoutCancel(ctx), userID, req.Secret)
	if err != nil {
		writeServiceError(w, log, "*Handler.verifyPin", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.VerifyResponse{Valid: verdict == models.Granted}, http.StatusOK)
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req models.UnlockRequest
	if !decodeJSON(w, r, "*Handler.unlock", &req) {
		return
	}

	log := logger.FromRequest(r)
	ctx := r.Context()
	if err := h.validator.Validate(ctx, req); err != nil {
		writeServiceError(w, log, "*Handler.unlock", err)
		return
	}

	session, err := h.services.DisclosureService.Unlock(context.WithoutCancel(ctx), userID, req.Secret)
	if err != nil {
		writeServiceError(w, log, "*Handler.unlock", err)
		return
	}

	_, _ = utils.WriteJSON(w, session, http.StatusOK)
}

// lock ends the session of the X-Vault-Session header, or every session of
// the account when the header is absent.
func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	ctx := context.WithoutCancel(r.Context())
	token := utils.GetVaultSessionFromContext(ctx)

	var err error
	if token != "" {
		err = h.services.DisclosureService.Lock(ctx, userID, token)
	} else {
		err = h.services.DisclosureService.LockAll(ctx, userID)
	}
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), "*Handler.lock", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// viewEntry discloses one entry after checking the vault password sent with
// it.
func (h *Handler) viewEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req models.ViewRequest
	if !decodeJSON(w, r, "*Handler.viewEntry", &req) {
		return
	}

	log := logger.FromRequest(r)
	ctx := r.Context()
	if err := h.validator.Validate(ctx, req); err != nil {
		writeServiceError(w, log, "*Handler.viewEntry", err)
		return
	}

	disclosure, err := h.services.DisclosureService.Reveal(context.WithoutCancel(ctx), userID, req.EntryID, req.Secret)
	if err != nil {
		writeServiceError(w, log, "*Handler.viewEntry", err)
		return
	}

	_, _ = utils.WriteJSON(w, disclosure, http.StatusOK)
}
