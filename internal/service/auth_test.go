package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/planner/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	d := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(d), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("  Alex@Example.COM ", "correct horse battery", "Alex")
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", user.Email)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)

	got, err := svc.Login("alex@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Login("alex@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "correct horse battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("alex@example.com", "correct horse battery", "Alex")
	require.NoError(t, err)

	_, err = svc.Register("ALEX@example.com", "staple gun horizon", "Alex Two")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("not-an-email", "correct horse battery", "Alex")
	assert.Error(t, err)

	_, err = svc.Register("alex@example.com", "short", "Alex")
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("alex@example.com", "correct horse battery", "Alex")
	require.NoError(t, err)

	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := svc.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])

	// Tokens signed with a different secret are rejected
	other := NewAuthService(nil, "other-secret", time.Hour)
	_, err = other.VerifyJWT(token)
	assert.Error(t, err)

	_, err = svc.VerifyJWT("not.a.token")
	assert.Error(t, err)
}
