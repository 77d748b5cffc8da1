package services_test

import (
	"testing"

	"github.com/otterable/minifitna/services"
	"github.com/otterable/minifitna/utils"

	"github.com/stretchr/testify/require"
)

var authTestSecret = []byte("auth-test-secret")

func TestRegisterIssuesUsableToken(t *testing.T) {
	svc := services.NewAuthService(openTestDB(t), authTestSecret)

	token, username, err := svc.Register("  Alice ", "pw")
	require.NoError(t, err)
	require.Equal(t, "alice", username)

	userID, tokenUsername, err := utils.ParseJWT(token, authTestSecret)
	require.NoError(t, err)
	require.NotZero(t, userID)
	require.Equal(t, "alice", tokenUsername)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := services.NewAuthService(openTestDB(t), authTestSecret)

	_, _, err := svc.Register("alice", "pw")
	require.NoError(t, err)

	// Same name again, also when only the casing differs.
	_, _, err = svc.Register("alice", "other")
	require.ErrorIs(t, err, services.ErrUsernameTaken)
	_, _, err = svc.Register("ALICE", "other")
	require.ErrorIs(t, err, services.ErrUsernameTaken)
}

func TestRegisterRequiresBothFields(t *testing.T) {
	svc := services.NewAuthService(openTestDB(t), authTestSecret)

	_, _, err := svc.Register("", "pw")
	require.ErrorIs(t, err, services.ErrMissingFields)
	_, _, err = svc.Register("alice", "")
	require.ErrorIs(t, err, services.ErrMissingFields)
	_, _, err = svc.Register("   ", "pw")
	require.ErrorIs(t, err, services.ErrMissingFields)
}

func TestLoginWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	svc := services.NewAuthService(openTestDB(t), authTestSecret)

	_, _, err := svc.Register("alice", "pw")
	require.NoError(t, err)

	_, _, wrongPw := svc.Login("alice", "nope")
	_, _, unknown := svc.Login("nobody", "nope")

	require.ErrorIs(t, wrongPw, services.ErrInvalidCredentials)
	require.ErrorIs(t, unknown, services.ErrInvalidCredentials)
	require.Equal(t, wrongPw, unknown)
}

func TestLoginSucceedsCaseInsensitively(t *testing.T) {
	svc := services.NewAuthService(openTestDB(t), authTestSecret)

	_, _, err := svc.Register("alice", "pw")
	require.NoError(t, err)

	token, username, err := svc.Login("Alice", "pw")
	require.NoError(t, err)
	require.Equal(t, "alice", username)
	require.NotEmpty(t, token)
}
