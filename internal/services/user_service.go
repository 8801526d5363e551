package services

import (
	"github.com/wasteless-dev/wasteless/internal/auth"
	"github.com/wasteless-dev/wasteless/internal/models"
)

type UserStore interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
}

type UserService struct {
	users  UserStore
	tokens *auth.TokenManager
}

func NewUserService(users UserStore, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, tokens: tokens}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	existing, err := s.users.FindByUsername(input.Username)

	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := auth.HashPassword(input.Password)

	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns a signed bearer token.
// A missing user and a wrong password are indistinguishable to the
// caller.
func (s *UserService) Login(username, password string) (string, error) {
	user, err := s.users.FindByUsername(username)

	if err != nil {
		return "", err
	}

	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Generate(user.ID)
}
