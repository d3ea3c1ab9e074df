package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/app"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPut, "/api/vault/credentials", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))

	rec = s.do(t, http.MethodGet, "/api/vault/lock", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))

	rec = s.do(t, http.MethodGet, "/api/vault/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTraceID(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/version/", nil)
	generated := rec.Header().Get(traceIDHeader)
	assert.Len(t, generated, 36)

	rec = s.do(t, http.MethodGet, "/api/version/", nil, withHeader(traceIDHeader, "trace-from-client"))
	assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))

	rec = s.do(t, http.MethodGet, "/api/version/", nil, withHeader(traceIDHeader, strings.Repeat("x", maxTraceIDLength+1)))
	assert.Len(t, rec.Header().Get(traceIDHeader), 36, "an oversized id is replaced")
}

func TestTraceID_ReachesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "abc", line["trace_id"])
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/vault/unlock?x=1", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/api/vault/unlock", line["path"])
	assert.Equal(t, http.MethodPost, line["method"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.EqualValues(t, 5, line["size"])
	assert.Equal(t, "info", line["level"])
}

func TestWithLogging_ServerErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusNotFound)
	_, err = w.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status, "the first implicit status sticks")
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Same(t, rec, w.Unwrap())
}

func TestGZip_CompressesResponse(t *testing.T) {
	s := newTestServer(t)
	s.entries.EXPECT().List(gomock.Any(), testUserID).Return([]models.EntryView{maskedView("a")}, nil)

	rec := s.do(t, http.MethodGet, "/api/vault/credentials", nil, withHeader("Accept-Encoding", "gzip"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	gr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(gr)
	require.NoError(t, err)
	assert.Contains(t, string(plain), `"domain":"GitHub"`)
}

func TestGZip_DecompressesRequest(t *testing.T) {
	s := newTestServer(t)
	s.guard.EXPECT().VerifySecret(gomock.Any(), testUserID, "1234").Return(models.Granted, nil)

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(`{"vault_password":"1234"}`))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	rec := s.do(t, http.MethodPost, "/api/vault/verify-pin", buf.Bytes(), withHeader("Content-Encoding", "gzip"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true}`, rec.Body.String())
}

func TestGZip_NoContentStaysPlain(t *testing.T) {
	s := newTestServer(t)
	s.disclosure.EXPECT().LockAll(gomock.Any(), testUserID).Return(nil)

	rec := s.do(t, http.MethodPost, "/api/vault/lock", nil, withHeader("Accept-Encoding", "gzip"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_BrokenBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not run")
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIntegrityCheck(t *testing.T) {
	const hashKey = "integrity-key"
	s := newTestServer(t, func(cfg *config.StructuredConfig) { cfg.App.HashKey = hashKey })
	s.entries.EXPECT().Add(gomock.Any(), testUserID, gomock.Any(), "").Return(maskedView("a"), nil).Times(2)

	body := []byte(`{"domain":"GitHub","account_name":"alice","pin_or_password":"p@ss1"}`)
	signature := utils.NewHasher(hashKey).SumHex(body)

	rec := s.do(t, http.MethodPost, "/api/vault/credentials", body, withHeader(hashHeader, signature))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/vault/credentials", body, withHeader(hashHeader, strings.Repeat("0", 64)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgIntegrityCheckFailed, errorBody(t, rec))

	rec = s.do(t, http.MethodPost, "/api/vault/credentials", body)
	assert.Equal(t, http.StatusCreated, rec.Code, "unsigned requests are accepted")
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, func(cfg *config.StructuredConfig) {
		cfg.Vault.UnlockRatePerMinute = 1
		cfg.Vault.UnlockBurst = 1
	})
	s.disclosure.EXPECT().Unlock(gomock.Any(), testUserID, "1234").Return(models.DisclosureSession{Token: testSession}, nil).Times(1)
	s.disclosure.EXPECT().Status(gomock.Any(), testUserID, "").Return(models.VaultStatus{}, nil).Times(2)

	rec := s.do(t, http.MethodPost, "/api/vault/unlock", models.UnlockRequest{Secret: "1234"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/vault/unlock", models.UnlockRequest{Secret: "1234"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, app.MsgTooManyRequests, errorBody(t, rec))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	for i := 0; i < 2; i++ {
		rec = s.do(t, http.MethodGet, "/api/vault/setting", nil)
		assert.Equal(t, http.StatusOK, rec.Code, "reads are not limited")
	}
}

func TestAccountLimiter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newAccountLimiter(6, 2)

	assert.Zero(t, l.reserve(1, now))
	assert.Zero(t, l.reserve(1, now))
	wait := l.reserve(1, now)
	assert.InDelta(t, float64(10*time.Second), float64(wait), float64(time.Millisecond))
	assert.Zero(t, l.reserve(2, now), "accounts have separate buckets")

	assert.Zero(t, l.reserve(1, now.Add(11*time.Second)))

	unlimited := newAccountLimiter(0, 0)
	for i := 0; i < 100; i++ {
		assert.Zero(t, unlimited.reserve(1, now))
	}
}

func TestAccountLimiter_DropsIdleBuckets(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newAccountLimiter(6, 2)
	require.Equal(t, 20*time.Second, l.idle)

	assert.Zero(t, l.reserve(1, now))
	assert.Zero(t, l.reserve(2, now.Add(5*time.Second)))
	assert.Len(t, l.limiters, 2)

	assert.Zero(t, l.reserve(3, now.Add(21*time.Second)))
	assert.Len(t, l.limiters, 2)
	assert.NotContains(t, l.limiters, int64(1))
	assert.Contains(t, l.limiters, int64(2))
}
