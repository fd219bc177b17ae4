package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasslearn/compass-backend/internal/requestdata"
	"github.com/compasslearn/compass-backend/internal/types"
)

func newAuthForTest(t *testing.T, accessTTL time.Duration) *authService {
	t.Helper()
	svc := NewAuthService(nil, serviceLoggerForTest(t), nil, nil, "test-secret", accessTTL, 24*time.Hour)
	return svc.(*authService)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	as := newAuthForTest(t, time.Hour)
	user := &types.User{ID: uuid.New()}
	sessionID := uuid.New()

	token, err := as.generateAccessToken(user, sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ctx, err := as.SetContextFromToken(context.Background(), token)
	require.NoError(t, err)

	rd := requestdata.GetRequestData(ctx)
	require.NotNil(t, rd)
	assert.Equal(t, user.ID, rd.UserID)
	assert.Equal(t, sessionID, rd.SessionID)
	assert.Equal(t, token, rd.TokenString)
}

func TestExpiredTokenRejected(t *testing.T) {
	as := newAuthForTest(t, -time.Minute)
	token, err := as.generateAccessToken(&types.User{ID: uuid.New()}, uuid.New())
	require.NoError(t, err)

	_, err = as.SetContextFromToken(context.Background(), token)
	assert.Error(t, err)
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	as := newAuthForTest(t, time.Hour)
	other := newAuthForTest(t, time.Hour)
	other.jwtSecretKey = "other-secret"

	token, err := other.generateAccessToken(&types.User{ID: uuid.New()}, uuid.New())
	require.NoError(t, err)

	_, err = as.SetContextFromToken(context.Background(), token)
	assert.Error(t, err)
}

func TestEmptyTokenLeavesContextUntouched(t *testing.T) {
	as := newAuthForTest(t, time.Hour)
	ctx, err := as.SetContextFromToken(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, requestdata.GetRequestData(ctx))
}
