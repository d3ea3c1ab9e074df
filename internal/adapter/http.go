package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
	"github.com/go-resty/resty/v2"
)

const hashHeader = "HashSHA256"

type httpVaultAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu           sync.RWMutex
	token        string
	sessionToken string

	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs an HTTP/REST implementation of
// [VaultAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. When appCfg.HashKey is set every
// request body is signed in the HashSHA256 header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPVaultAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (VaultAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpVaultAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpVaultAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpVaultAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpVaultAdapter) SetSessionToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessionToken = strings.TrimSpace(token)
}

func (h *httpVaultAdapter) SessionToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sessionToken
}

// List implements [VaultAdapter] via GET /api/vault/credentials.
func (h *httpVaultAdapter) List(ctx context.Context) ([]models.EntryView, error) {
	var entries []models.EntryView

	resp, err := h.authedRequest(ctx).
		SetResult(&entries).
		Get("/api/vault/credentials")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.EntryView{}
	}
	return entries, nil
}

// Add implements [VaultAdapter] via POST /api/vault/credentials.
func (h *httpVaultAdapter) Add(ctx context.Context, input models.EntryInput) (models.EntryView, error) {
	var view models.EntryView

	req, err := h.jsonRequest(ctx, input)
	if err != nil {
		return view, err
	}

	resp, err := req.SetResult(&view).Post("/api/vault/credentials")
	if err != nil {
		return view, fmt.Errorf("add request: %w", err)
	}
	return view, mapHTTPError(resp)
}

// Update implements [VaultAdapter] via PATCH /api/vault/credentials/{id}.
func (h *httpVaultAdapter) Update(ctx context.Context, id string, patch models.EntryPatch) (models.EntryView, error) {
	var view models.EntryView

	req, err := h.jsonRequest(ctx, patch)
	if err != nil {
		return view, err
	}

	resp, err := req.
		SetPathParam("id", id).
		SetResult(&view).
		Patch("/api/vault/credentials/{id}")
	if err != nil {
		return view, fmt.Errorf("update request: %w", err)
	}
	return view, mapHTTPError(resp)
}

// Delete implements [VaultAdapter] via DELETE /api/vault/credentials/{id}.
func (h *httpVaultAdapter) Delete(ctx context.Context, id string) (bool, error) {
	var result models.DeleteResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Delete("/api/vault/credentials/{id}")
	if err != nil {
		return false, fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}
	return result.Deleted, nil
}

// Reveal implements [VaultAdapter] via GET /api/vault/credentials/{id} with
// the session header.
func (h *httpVaultAdapter) Reveal(ctx context.Context, id string) (models.Disclosure, error) {
	var disclosure models.Disclosure

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&disclosure).
		Get("/api/vault/credentials/{id}")
	if err != nil {
		return disclosure, fmt.Errorf("reveal request: %w", err)
	}
	return disclosure, mapHTTPError(resp)
}

// RevealWithSecret implements [VaultAdapter] via POST /api/vault/view.
func (h *httpVaultAdapter) RevealWithSecret(ctx context.Context, id, secret string) (models.Disclosure, error) {
	var disclosure models.Disclosure

	req, err := h.jsonRequest(ctx, models.ViewRequest{EntryID: id, Secret: secret})
	if err != nil {
		return disclosure, err
	}

	resp, err := req.SetResult(&disclosure).Post("/api/vault/view")
	if err != nil {
		return disclosure, fmt.Errorf("view request: %w", err)
	}
	return disclosure, mapHTTPError(resp)
}

// Unlock implements [VaultAdapter] via POST /api/vault/unlock. The returned
// session token is stored for later calls.
func (h *httpVaultAdapter) Unlock(ctx context.Context, secret string) (models.DisclosureSession, error) {
	var session models.DisclosureSession

	req, err := h.jsonRequest(ctx, models.UnlockRequest{Secret: secret})
	if err != nil {
		return session, err
	}

	resp, err := req.SetResult(&session).Post("/api/vault/unlock")
	if err != nil {
		return session, fmt.Errorf("unlock request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return session, err
	}

	h.SetSessionToken(session.Token)
	return session, nil
}

// Lock implements [VaultAdapter] via POST /api/vault/lock.
func (h *httpVaultAdapter) Lock(ctx context.Context) error {
	req := h.authedRequest(ctx)
	h.SetSessionToken("")

	resp, err := req.Post("/api/vault/lock")
	if err != nil {
		return fmt.Errorf("lock request: %w", err)
	}
	return mapHTTPError(resp)
}

// Status implements [VaultAdapter] via GET /api/vault/setting.
func (h *httpVaultAdapter) Status(ctx context.Context) (models.VaultStatus, error) {
	var status models.VaultStatus

	resp, err := h.authedRequest(ctx).
		SetResult(&status).
		Get("/api/vault/setting")
	if err != nil {
		return status, fmt.Errorf("status request: %w", err)
	}
	return status, mapHTTPError(resp)
}

// SetSecret implements [VaultAdapter] via POST /api/vault/setting. A
// rotation revokes every session on the server, so the stored session token
// is dropped on success.
func (h *httpVaultAdapter) SetSecret(ctx context.Context, setReq models.SetSecretRequest) (models.SetSecretResponse, error) {
	var ack models.SetSecretResponse

	req, err := h.jsonRequest(ctx, setReq)
	if err != nil {
		return ack, err
	}

	resp, err := req.SetResult(&ack).Post("/api/vault/setting")
	if err != nil {
		return ack, fmt.Errorf("set secret request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return ack, err
	}

	if !ack.Created {
		h.SetSessionToken("")
	}
	return ack, nil
}

// VerifyPin implements [VaultAdapter] via POST /api/vault/verify-pin.
func (h *httpVaultAdapter) VerifyPin(ctx context.Context, secret string) (bool, error) {
	var result models.VerifyResponse

	req, err := h.jsonRequest(ctx, models.UnlockRequest{Secret: secret})
	if err != nil {
		return false, err
	}

	resp, err := req.SetResult(&result).Post("/api/vault/verify-pin")
	if err != nil {
		return false, fmt.Errorf("verify pin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}
	return result.Valid, nil
}

// Version implements [VaultAdapter] via GET /api/version/.
func (h *httpVaultAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpVaultAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if session := h.SessionToken(); session != "" {
		req.SetHeader(models.VaultSessionHeader, session)
	}
	return req
}

// jsonRequest marshals body once so the exact bytes sent are the bytes
// signed.
func (h *httpVaultAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hasher != nil {
		req.SetHeader(hashHeader, h.hasher.SumHex(payload))
	}
	return req, nil
}
