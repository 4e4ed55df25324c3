package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	users map[string]User
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: make(map[string]User)}
}

func (m *mockRepository) Create(user User) error {
	m.users[user.Email] = user
	return nil
}

func (m *mockRepository) FindByEmail(email string) (*User, error) {
	if user, ok := m.users[email]; ok {
		return &user, nil
	}
	return nil, nil
}

func (m *mockRepository) FindByID(userID string) (*User, error) {
	for _, user := range m.users {
		if user.ID == userID {
			return &user, nil
		}
	}
	return nil, nil
}

func TestRegister(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	created, err := service.Register("Jo", "jo@example.com", "supersecret")
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.HashPassword), []byte("supersecret")))

	stored, err := service.GetUserByEmail("jo@example.com")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
}

func TestRegister_InvalidEmail(t *testing.T) {
	service := NewService(newMockRepository())

	created, err := service.Register("Jo", "not-an-email", "supersecret")
	assert.Nil(t, created)
	assert.Equal(t, ErrInvalidEmail, err)
}

func TestRegister_PasswordTooShort(t *testing.T) {
	service := NewService(newMockRepository())

	created, err := service.Register("Jo", "jo@example.com", "short")
	assert.Nil(t, created)
	assert.Equal(t, ErrPasswordTooShort, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service := NewService(newMockRepository())

	_, err := service.Register("Jo", "jo@example.com", "supersecret")
	assert.NoError(t, err)

	created, err := service.Register("Another Jo", "jo@example.com", "differentpass")
	assert.Nil(t, created)
	assert.Equal(t, ErrUserAlreadyExists, err)
}

func TestGetUserByID_NotFound(t *testing.T) {
	service := NewService(newMockRepository())

	user, err := service.GetUserByID("missing")
	assert.Nil(t, user)
	assert.Equal(t, ErrUserNotFound, err)
}
