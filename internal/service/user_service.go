package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/HCapraz/qa-interview-prep/internal/models"
)

// UserService handles registration and credential checks.
type UserService struct {
	userStore  UserStore
	bcryptCost int
}

// NewUserService creates a new user service.
func NewUserService(userStore UserStore) *UserService {
	return &UserService{
		userStore:  userStore,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Register creates a user with a bcrypt hash of the password. The raw
// password is never stored. Email must be unused; username is deliberately
// not checked for uniqueness.
func (s *UserService) Register(username, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	existing, err := s.userStore.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.userStore.Create(username, email, string(hash))
}

// Authenticate verifies the credentials and returns the user. An unknown
// email and a wrong password fail identically with ErrInvalidCredentials.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userStore.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID returns the user or ErrNotFound.
func (s *UserService) GetByID(id int) (*models.User, error) {
	user, err := s.userStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
