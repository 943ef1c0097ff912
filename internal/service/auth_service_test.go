package service

import (
	"advisoryboard/internal/model"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() (*AuthService, *fakeTokenCache) {
	tokens := newFakeTokenCache()
	return NewAuthService(newFakeUserRepo(), tokens, "test-secret", time.Hour), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	user, err := svc.Register(ctx, "  founder ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "founder", user.Username)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	resp, err := svc.Login(ctx, "founder", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
	assert.NotEmpty(t, resp.Token)

	claims, err := svc.ValidateToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID())
	assert.Equal(t, "founder", claims.Username)

	current, err := svc.CurrentUser(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
	assert.Equal(t, "founder", current.Username)
}

func TestCurrentUserRejectsUnknownAccount(t *testing.T) {
	svc, _ := newTestAuthService()
	claims := &model.UserClaims{Username: "ghost"}
	claims.Subject = "missing-id"

	_, err := svc.CurrentUser(context.Background(), claims)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.CurrentUser(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	_, err := svc.Register(ctx, "", "whatever123")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Register(ctx, "bob", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register(ctx, "bob", strings.Repeat("a", MaxPasswordLength+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = svc.Register(ctx, "bob", strings.Repeat("a", MaxPasswordLength))
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bob", "another one")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()
	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()
	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }
	resp, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsForeignSignatures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	_, err := svc.ValidateToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService(newFakeUserRepo(), newFakeTokenCache(), "other-secret", time.Hour)
	_, err = other.Register(ctx, "mallory", "password123")
	require.NoError(t, err)
	resp, err := other.Login(ctx, "mallory", "password123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x", ID: "y"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(ctx, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	svc, tokens := newTestAuthService()
	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)
	resp, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, resp.Token)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, claims))
	assert.Contains(t, tokens.revoked, claims.ID)

	_, err = svc.ValidateToken(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
