package service

import (
	"context"
	"testing"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "primer",
		TokenDuration: time.Hour,
	}
}

func TestAuthService_CreateAndParse(t *testing.T) {
	svc := NewAuthService(testAppConfig(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, testUserID)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)
	assert.Equal(t, "primer", parsed.Issuer)
}

func TestAuthService_CreateTokenMisconfigured(t *testing.T) {
	svc := NewAuthService(config.App{}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseTokenRejects(t *testing.T) {
	issuer := NewAuthService(testAppConfig(), logger.Nop())
	token, err := issuer.CreateToken(context.Background(), testUserID)
	require.NoError(t, err)

	otherKey := testAppConfig()
	otherKey.TokenSignKey = "other"
	otherIssuer := testAppConfig()
	otherIssuer.TokenIssuer = "someone-else"

	tests := []struct {
		name  string
		cfg   config.App
		token string
	}{
		{name: "wrong key", cfg: otherKey, token: token.SignedString},
		{name: "wrong issuer", cfg: otherIssuer, token: token.SignedString},
		{name: "garbage", cfg: testAppConfig(), token: "not-a-jwt"},
		{name: "empty", cfg: testAppConfig(), token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAuthService(tt.cfg, logger.Nop()).ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
