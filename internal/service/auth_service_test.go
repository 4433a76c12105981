package service

import (
	"context"
	"testing"
	"time"

	"expenso/internal/dto"
	"expenso/internal/models"
	"expenso/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService(store *memUserStore, admins []string) (*AuthService, *auth.JWTManager) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(store, jwtManager, admins, zap.NewNop()), jwtManager
}

func TestSignupIssuesVerifiableToken(t *testing.T) {
	store := newMemUserStore()
	svc, jwtManager := newTestAuthService(store, nil)

	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{Email: "a@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.UserID)

	claims, err := jwtManager.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestSignupRegistersUserBeforeIssuing(t *testing.T) {
	store := newMemUserStore()
	svc, _ := newTestAuthService(store, nil)

	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{Email: "b@x.com"})
	require.NoError(t, err)

	assert.Len(t, store.users, 1)
	for _, u := range store.users {
		assert.Equal(t, resp.UserID, u.ID.String())
		assert.Equal(t, "b@x.com", u.Email)
	}
}

func TestSignupStoreFailureIssuesNoToken(t *testing.T) {
	store := newMemUserStore()
	store.fail = true
	svc, _ := newTestAuthService(store, nil)

	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrStore)
	assert.Nil(t, resp)
	assert.Empty(t, store.users)
}

func TestSignupAdminEmailGetsAdminRole(t *testing.T) {
	store := newMemUserStore()
	svc, jwtManager := newTestAuthService(store, []string{"Admin@X.com"})

	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{Email: "admin@x.com"})
	require.NoError(t, err)

	claims, err := jwtManager.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}
