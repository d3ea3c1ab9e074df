package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/mock"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/service"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken         = "good-token"
	testUserID  int64 = 42
	testSession       = "session-1"
	testVersion       = "1.4.2"
)

// testServer is a router over gomock services. The auth service accepts
// testToken as account testUserID.
type testServer struct {
	router http.Handler

	guard      *mock.MockSecretGuard
	entries    *mock.MockEntryService
	disclosure *mock.MockDisclosureService
}

func newTestServer(t *testing.T, mutate ...func(*config.StructuredConfig)) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := *config.Defaults()
	cfg.Server.RequestTimeout = 0
	for _, m := range mutate {
		m(&cfg)
	}

	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: testUserID}, nil).AnyTimes()
	auth.EXPECT().ParseToken(gomock.Any(), gomock.Not(testToken)).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(testVersion).AnyTimes()

	s := &testServer{
		guard:      mock.NewMockSecretGuard(ctrl),
		entries:    mock.NewMockEntryService(ctrl),
		disclosure: mock.NewMockDisclosureService(ctrl),
	}

	services := &service.Services{
		AuthService:       auth,
		AppInfoService:    appInfo,
		SecretGuard:       s.guard,
		EntryService:      s.entries,
		DisclosureService: s.disclosure,
	}
	s.router = NewHandler(services, cfg, logger.Nop()).Init()

	return s
}

type requestOption func(*http.Request)

func withSession(token string) requestOption {
	return func(r *http.Request) { r.Header.Set(models.VaultSessionHeader, token) }
}

func withoutAuth() requestOption {
	return func(r *http.Request) { r.Header.Del("Authorization") }
}

func withHeader(key, value string) requestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

// do sends an authorized request; body is JSON encoded unless it is a
// string or []byte.
func (s *testServer) do(t *testing.T, method, path string, body any, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Error
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
