// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
	"github.com/go-chi/chi/v5"
)

// listEntries answers with every entry of the account, masked.
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	entries, err := h.services.EntryService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), "*Handler.listEntries", err)
		return
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

// addEntry stores a new entry. The call finishes even when the client goes
// away.
func (h *Handler) addEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var input models.EntryInput
	if !decodeJSON(w, r, "*Handler.addEntry", &input) {
		return
	}

	ctx := r.Context()
	view, err := h.services.EntryService.Add(context.WithoutCancel(ctx), userID, input, utils.GetVaultSessionFromContext(ctx))
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), "*Handler.addEntry", err)
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusCreated)
}

// revealEntry discloses one entry through the session of the X-Vault-Session
// header.
func (h *Handler) revealEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	disclosure, err := h.services.DisclosureService.RevealWithSession(ctx, userID, chi.URLParam(r, "id"), utils.GetVaultSessionFromContext(ctx))
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), "*Handler.revealEntry", err)
		return
	}

	_, _ = utils.WriteJSON(w, disclosure, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var patch models.EntryPatch
	if !decodeJSON(w, r, "*Handler.updateEntry", &patch) {
		return
	}

	ctx := r.Context()
	view, err := h.services.EntryService.Update(context.WithoutCancel(ctx), userID, chi.URLParam(r, "id"), patch, utils.GetVaultSessionFromContext(ctx))
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), "*Handler.updateEntry", err)
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

// deleteEntry answers {"deleted": false} for an id the account does not
// have.
func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	deleted, err := h.services.EntryService.Remove(context.WithoutCancel(r.Context()), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), "*Handler.deleteEntry", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DeleteResponse{Deleted: deleted}, http.StatusOK)
}
