package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("stall2026"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewService("owner", string(hash), "test-secret", time.Hour, nil)
	svc.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestLoginAndVerify(t *testing.T) {
	svc := newTestService(t)

	token, expiresIn, err := svc.Login("owner", "stall2026")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "owner", subject)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "owner", password: "nope"},
		{name: "wrong username", username: "admin", password: "stall2026"},
		{name: "both empty", username: "", password: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(tc.username, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	svc := newTestService(t)

	token, _, err := svc.Login("owner", "stall2026")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsForeignSignature(t *testing.T) {
	svc := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("stall2026"), bcrypt.MinCost)
	require.NoError(t, err)
	other := NewService("owner", string(hash), "different-secret", time.Hour, nil)

	token, _, err := other.Login("owner", "stall2026")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
