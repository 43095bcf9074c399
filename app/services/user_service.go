package services

import (
	"errors"
	"fmt"

	"book-review/app/models"
	"book-review/app/repo"

	"gorm.io/gorm"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// Register hashes the password and inserts the user. A uniqueness violation
// on username or email comes back as ErrUserExists.
func (s *UserService) Register(username, email, password string) (uint, error) {
	if username == "" || email == "" || password == "" {
		return 0, ErrInvalidInput
	}
	hash, err := HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	u := models.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.users.Create(&u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrUserExists
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return u.ID, nil
}

// Login verifies the password for the given username. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("find user: %w", err)
	}
	if !CheckPassword(password, u.PasswordHash) {
		return ErrInvalidCredentials
	}
	return nil
}

// ResolveID maps a username to its user id, ErrNotFound when absent. Used by
// the review engine for ownership checks, not for login.
func (s *UserService) ResolveID(username string) (uint, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("find user: %w", err)
	}
	return u.ID, nil
}
