package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasteless-dev/wasteless/internal/auth"
	"github.com/wasteless-dev/wasteless/internal/models"
)

type fakeUserStore struct {
	users  map[string]*models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.Username] = &stored
	return nil
}

func (f *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func newUserService() (*UserService, *auth.TokenManager) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(newFakeUserStore(), tm), tm
}

func TestRegister(t *testing.T) {
	svc, _ := newUserService()

	user, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "alice123"})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "alice123", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "alice123"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "alice123"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Username: "alice", Email: "other@example.com", Password: "other123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	svc, tm := newUserService()

	user, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "alice123"})
	require.NoError(t, err)

	token, err := svc.Login("alice", "alice123")
	require.NoError(t, err)

	userID, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "alice123"})
	require.NoError(t, err)

	_, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Login("nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
