package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/solomon-finance/solomon/internal/user"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService interface {
	GetUserByEmail(email string) (*user.User, error)
	GetUserByID(userID string) (*user.User, error)
}

type Service struct {
	userService UserService
	jwtManager  JWTManagerInterface
}

func NewService(userService UserService, jwtManager JWTManagerInterface) *Service {
	return &Service{userService: userService, jwtManager: jwtManager}
}

// Login checks the credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(email, password string) (string, error) {
	existingUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existingUser.HashPassword), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwtManager.GenerateAccessJWT(existingUser.ID, defaultJWTDuration)
}
