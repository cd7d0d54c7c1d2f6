package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	created, err := svc.Register("alice", "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "a@x.com", created.Email)
	assert.NotEqual(t, "pw1", created.PasswordHash, "raw password must never be stored")
	assert.NotEmpty(t, created.PasswordHash)

	user, err := svc.Authenticate("a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Register("alice", "a@x.com", "pw1")
	require.NoError(t, err)

	// Same email fails regardless of the other fields.
	_, err = svc.Register("bob", "a@x.com", "different")
	assert.Equal(t, ErrDuplicateEmail, err)

	// Email comparison ignores case and surrounding whitespace.
	_, err = svc.Register("carol", "  A@X.COM ", "pw3")
	assert.Equal(t, ErrDuplicateEmail, err)
}

func TestRegisterAllowsDuplicateUsername(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Register("alice", "a@x.com", "pw1")
	require.NoError(t, err)
	_, err = svc.Register("alice", "other@x.com", "pw2")
	assert.NoError(t, err, "usernames are not unique, only emails are")
}

func TestAuthenticateFailures(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Register("alice", "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Authenticate("a@x.com", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)

	_, err = svc.Authenticate("nobody@x.com", "pw1")
	assert.Equal(t, ErrInvalidCredentials, err, "unknown email and bad password fail identically")
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	_, err := svc.GetByID(99)
	assert.Equal(t, ErrNotFound, err)
}
